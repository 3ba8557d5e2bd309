// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
)

// =============================================================================
// MODEL REGISTRY
// =============================================================================

// DefaultModels is the built-in list of selectable model identifiers.
// The identifiers are opaque to the session controller; they are passed
// through to the inference endpoint unchanged. Config may override the list.
var DefaultModels = []string{
	"meta-llama/Llama-3.2-1B-Instruct",
	"meta-llama/Llama-3.2-3B-Instruct",
	"google/gemma-2-2b-it",
	"Qwen/Qwen2.5-1.5B-Instruct",
	"mistralai/Mistral-7B-Instruct-v0.3",
}

// DefaultModel is the model selected at session start.
func DefaultModel() string {
	return DefaultModels[0]
}

// =============================================================================
// DISPLAY TRANSFORM
// =============================================================================

// DisplayName converts a model identifier into its display form:
// slashes and dashes become spaces and the literal substring "Instruct"
// is stripped. This is purely a presentation transform; the identifier
// itself is what goes over the wire.
func DisplayName(id string) string {
	name := strings.NewReplacer("/", " ", "-", " ").Replace(id)
	name = strings.ReplaceAll(name, "Instruct", "")
	return strings.Join(strings.Fields(name), " ")
}

// IsKnownModel reports whether id appears in the given list.
func IsKnownModel(id string, list []string) bool {
	for _, m := range list {
		if m == id {
			return true
		}
	}
	return false
}
