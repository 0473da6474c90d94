// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package rewrite_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/arraystyle/internal/escape"
	"fillmore-labs.com/arraystyle/internal/literal"
	. "fillmore-labs.com/arraystyle/internal/rewrite"
	"fillmore-labs.com/arraystyle/internal/testsource"
)

func escaper(kind literal.Kind) escape.Escaper {
	if kind == literal.Symbols {
		return escape.Symbols{}
	}

	return escape.Words{}
}

func TestReplacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"SymbolsSingleLine", "[:a, :b, :c]", "%i[a b c]"},
		{"WordsSingleLine", `['a', "b"]`, "%w[a b]"},
		{"PercentSymbols", "%i(a b)", "[:a, :b]"},
		{"PercentWords", "%w<a b>", "['a', 'b']"},
		{
			"Multiline",
			"[\n  :a, :b,\n  :c\n]",
			"%i[\n  a b\n  c\n]",
		},
		{
			"FirstOnOpenerLine",
			"[:a,\n :b]",
			"%i[a\n b]",
		},
		{
			"BlankLine",
			"[\n    'a',\n\n    'b'\n  ]",
			"%w[\n    a\n\n    b\n  ]",
		},
		{
			"IndentedBlankLine",
			"%w[\n  a\n  \n  b\n]",
			"[\n  'a',\n  \n  'b'\n]",
		},
		{
			"Tabs",
			"%i[\n\ta\n\tb\n\t]",
			"[\n\t:a,\n\t:b\n\t]",
		},
		{
			"CRLF",
			"[\r\n  :a, :b,\r\n\r\n  :c\r\n]",
			"%i[\r\n  a b\r\n\r\n  c\r\n]",
		},
		{
			"CRLFClosingIndent",
			"%w(\r\n    a\r\n    b\r\n  )",
			"[\r\n    'a',\r\n    'b'\r\n  ]",
		},
		{
			"MixedLineEndings",
			"[\n  :a,\r\n  :b\n]",
			"%i[\n  a\r\n  b\n]",
		},
		{
			"ClosingAfterElement",
			"%w[\n  a\n  b]",
			"[\n  'a',\n  'b']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, _ := testsource.Literal(t, tt.src)
			f := FormFor(n.Kind(), n.Style().Other(), escape.Delimiters{})

			got, err := Replacement(n, f, escaper(n.Kind()))
			if err != nil {
				t.Fatalf("Replacement failed: %v", err)
			}

			if got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	n, _ := testsource.Literal(t, "%w[\n  a\n  b\n]")

	got, err := Preview(n, FormFor(literal.Words, literal.Brackets, escape.Delimiters{}), escape.Words{})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	if want := "['a', 'b']"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestIneligible(t *testing.T) {
	t.Parallel()

	n, _ := testsource.Literal(t, "['a b', 'c']")

	if _, err := Replacement(n, FormFor(literal.Words, literal.Percent, escape.Delimiters{}), escape.Words{}); !errors.Is(err, ErrIneligible) {
		t.Errorf("Got error %v, want %v", err, ErrIneligible)
	}

	if _, err := Preview(n, FormFor(literal.Words, literal.Percent, escape.Delimiters{}), escape.Words{}); !errors.Is(err, ErrIneligible) {
		t.Errorf("Got error %v, want %v", err, ErrIneligible)
	}
}

func TestFormFor(t *testing.T) {
	t.Parallel()

	parens := escape.Delimiters{Open: '(', Close: ')'}

	tests := []struct {
		kind       literal.Kind
		style      literal.Style
		delimiters escape.Delimiters
		want       Form
	}{
		{literal.Symbols, literal.Percent, escape.Delimiters{}, Form{Style: literal.Percent, Open: "%i[", Close: "]", Join: " "}},
		{literal.Words, literal.Percent, escape.Delimiters{}, Form{Style: literal.Percent, Open: "%w[", Close: "]", Join: " "}},
		{literal.Words, literal.Percent, parens, Form{Style: literal.Percent, Open: "%w(", Close: ")", Join: " "}},
		{literal.Words, literal.Brackets, parens, Form{Style: literal.Brackets, Open: "[", Close: "]", Join: ", ", Trailer: ","}},
	}

	for _, tt := range tests {
		if got := FormFor(tt.kind, tt.style, tt.delimiters); got != tt.want {
			t.Errorf("FormFor(%s, %s, %s) = %+v, want %+v", tt.kind, tt.style, tt.delimiters, got, tt.want)
		}
	}
}
