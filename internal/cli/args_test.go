// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{"empty", nil, Options{}},
		{"short model", []string{"-m", "a/b"}, Options{Model: "a/b"}},
		{"long model", []string{"--model", "a/b"}, Options{Model: "a/b"}},
		{"endpoint", []string{"--endpoint", "http://host:9000"}, Options{Endpoint: "http://host:9000"}},
		{"both", []string{"-m", "a/b", "--endpoint", "http://h"}, Options{Model: "a/b", Endpoint: "http://h"}},
		{"plain", []string{"--plain", "-m", "a/b"}, Options{Model: "a/b", Plain: true}},
		{"model flag without value", []string{"-m"}, Options{}},
		{"unknown flag skipped", []string{"--wat", "-m", "a/b"}, Options{Model: "a/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseOptions(tt.args); got != tt.want {
				t.Errorf("ParseOptions(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		arg  string
		want int
	}{
		{"1", 1},
		{"12", 12},
		{"0", 0},
		{"", 0},
		{"2b", 0},
		{"-1", 0},
	}

	for _, tt := range tests {
		if got := parseIndex(tt.arg); got != tt.want {
			t.Errorf("parseIndex(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}
