// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package astutil_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/arraystyle/internal/astutil"
	"fillmore-labs.com/arraystyle/internal/rubysrc"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	const cop = "Style/SymbolArray"

	tests := []struct {
		name    string
		comment string
		want    bool
	}{
		{"NoLint", "# nolint:arraystyle", true},
		{"NoLintAll", "#nolint:all", true},
		{"NoLintList", "# nolint:foo,ArrayStyle", true},
		{"NoLintOther", "# nolint:other", false},
		{"Disable", "# rubocop:disable Style/SymbolArray", true},
		{"DisableList", "# rubocop:disable Layout/LineLength, Style/SymbolArray", true},
		{"DisableAll", "# rubocop:disable all", true},
		{"Todo", "# rubocop:todo Style/SymbolArray", true},
		{"DisableOther", "# rubocop:disable Style/WordArray", false},
		{"Enable", "# rubocop:enable Style/SymbolArray", false},
		{"Plain", "# just a comment", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(tt.comment, cop); got != tt.want {
				t.Errorf("CommentHasNoLint(%q) = %v, want %v", tt.comment, got, tt.want)
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = "# Code generated by hand. DO NOT EDIT.\nx = [:a, :b] # nolint:arraystyle\n"

	fset := token.NewFileSet()

	c := NewCurrentFile(fset, rubysrc.Parse("test.rb", []byte(src)))
	if !c.Valid() {
		t.Fatal("Expected valid file")
	}

	if !c.Generated() {
		t.Error("Expected generated file")
	}

	if !c.NoLintComment(2) {
		t.Error("Expected nolint comment on line 2")
	}

	if c.NoLintComment(1) {
		t.Error("Unexpected nolint comment on line 1")
	}

	a := c.File().Arrays[0]

	start, end := c.Range(a)
	if p := fset.Position(start); p.Line != 2 || p.Column != 5 {
		t.Errorf("Got start %s, want test.rb:2:5", p)
	}

	if p := fset.Position(end); p.Line != 2 || p.Column != 13 {
		t.Errorf("Got end %s, want test.rb:2:13", p)
	}
}

func TestEmptyFile(t *testing.T) {
	t.Parallel()

	if c := NewCurrentFile(token.NewFileSet(), rubysrc.Parse("empty.rb", nil)); !c.Valid() {
		t.Error("Expected valid empty file")
	}
}
