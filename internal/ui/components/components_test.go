// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/parley/internal/ui/styles"
)

func TestErrorBanner(t *testing.T) {
	theme := styles.NewTheme()

	out := ErrorBanner(theme, 80, "Failed to send message. Please try again.")
	if !strings.Contains(out, "Failed to send message") {
		t.Errorf("banner missing message: %q", out)
	}

	if ErrorBanner(theme, 80, "") != "" {
		t.Error("empty message should render nothing")
	}
}

func TestStatusBar(t *testing.T) {
	theme := styles.NewTheme()
	shortcuts := []Shortcut{{Key: "Enter", Desc: "send"}, {Key: "C-r", Desc: "reset"}}

	out := StatusBar(theme, 100, "meta llama Llama 3.2 1B", false, shortcuts)
	if !strings.Contains(out, "meta llama Llama 3.2 1B") {
		t.Errorf("status bar missing model name: %q", out)
	}
	if !strings.Contains(out, "send") {
		t.Errorf("status bar missing shortcuts: %q", out)
	}

	sending := StatusBar(theme, 100, "m", true, nil)
	if !strings.Contains(sending, "sending") {
		t.Errorf("status bar should show sending state: %q", sending)
	}
}

func TestStatusBar_NarrowWidth(t *testing.T) {
	theme := styles.NewTheme()
	shortcuts := []Shortcut{{Key: "Enter", Desc: "send"}}

	// Must not panic or emit a negative repeat count on tiny widths.
	out := StatusBar(theme, 10, "a-very-long-model-name", false, shortcuts)
	if out == "" {
		t.Error("narrow status bar should still render the model")
	}
}

func TestHighlightFences(t *testing.T) {
	text := "intro\n```go\nfunc main() {}\n```\noutro"

	out := HighlightFences(text, "monokai")
	if !strings.Contains(out, "intro") || !strings.Contains(out, "outro") {
		t.Errorf("prose lines lost: %q", out)
	}
	if !strings.Contains(out, "main") {
		t.Errorf("code content lost: %q", out)
	}
	if strings.Contains(out, "```") {
		t.Error("fence markers should be consumed")
	}
}

func TestHighlightFences_UnclosedFence(t *testing.T) {
	text := "```python\nprint('hi')"

	out := HighlightFences(text, "monokai")
	if !strings.Contains(out, "print") {
		t.Errorf("unclosed fence content lost: %q", out)
	}
}

func TestHighlight_UnknownLanguage(t *testing.T) {
	code := "some plain text"
	out := Highlight(code, "definitely-not-a-language", "monokai")
	if out == "" {
		t.Error("Highlight should never return empty output")
	}
}
