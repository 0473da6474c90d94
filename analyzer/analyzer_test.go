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

package analyzer_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/arraystyle/analyzer"
	"fillmore-labs.com/arraystyle/analyzer/style"
)

const rubySource = `STATES = [:draft, :published]
NAMES = %w[alice bob]
SHORT = [:a]
`

// runAnalyzer runs a on a package with one Go file and rubySource next to it.
func runAnalyzer(t *testing.T, a *analysis.Analyzer) (*token.FileSet, []analysis.Diagnostic) {
	t.Helper()

	dir := t.TempDir()

	gofile := filepath.Join(dir, "a.go")
	if err := os.WriteFile(gofile, []byte("package a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "a.rb"), []byte(rubySource), 0o644); err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, gofile, nil, parser.SkipObjectResolution)
	if err != nil {
		t.Fatal(err)
	}

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{
		Analyzer: a,
		Fset:     fset,
		Files:    []*ast.File{f},
		Pkg:      types.NewPackage("a", "a"),
		Report:   func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	}

	if _, err := a.Run(p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	return fset, diagnostics
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		options  Option
		flags    map[string]string
		messages []string
		fix      bool
	}{
		{
			name: "Default",
			messages: []string{
				"Use `%i[draft published]` for an array of symbols.",
				"Use `%i[a]` for an array of symbols.",
			},
			fix: true,
		},
		{
			name:     "Brackets",
			options:  Options{WithEnforcedStyle(style.Brackets), WithSuggestFixes(false)},
			messages: []string{"Use `['alice', 'bob']` for an array of words."},
		},
		{
			name:     "MinSize",
			options:  WithMinSize(2),
			messages: []string{"Use `%i[draft published]` for an array of symbols."},
			fix:      true,
		},
		{
			name:    "NoSymbols",
			options: Options{WithSymbols(false), WithWords(true)},
		},
		{
			name:    "Infer",
			options: WithEnforcedStyle(style.Infer),
		},
		{
			name:     "Flags",
			flags:    map[string]string{"style": "brackets", "words": "false"},
			messages: nil,
		},
		{
			name:     "FlagMinSize",
			flags:    map[string]string{"min-size": "2", "suggest-fixes": "false"},
			messages: []string{"Use `%i[draft published]` for an array of symbols."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)

			for name, value := range tt.flags {
				if err := a.Flags.Set(name, value); err != nil {
					t.Fatalf("Can't set flag %s: %v", name, err)
				}
			}

			fset, diagnostics := runAnalyzer(t, a)

			if len(diagnostics) != len(tt.messages) {
				t.Fatalf("Got %d diagnostics, want %d", len(diagnostics), len(tt.messages))
			}

			for i, d := range diagnostics {
				if d.Message != tt.messages[i] {
					t.Errorf("Got message %q, want %q", d.Message, tt.messages[i])
				}

				if got := len(d.SuggestedFixes) > 0; got != tt.fix {
					t.Errorf("Got suggested fix %v, want %v", got, tt.fix)
				}

				if p := fset.Position(d.Pos); filepath.Base(p.Filename) != "a.rb" {
					t.Errorf("Got diagnostic in %s, want a.rb", p.Filename)
				}
			}
		})
	}
}

func TestInvalidWordRegex(t *testing.T) {
	t.Parallel()

	a := New(WithWordRegex("("))

	p := &analysis.Pass{
		Analyzer: a,
		Fset:     token.NewFileSet(),
		Pkg:      types.NewPackage("a", "a"),
		Report:   func(analysis.Diagnostic) {},
	}

	if _, err := a.Run(p); err == nil {
		t.Error("Expected error for invalid word pattern")
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithEnforcedStyle(style.Brackets), nil, Options{WithMinSize(3), WithWordRegex(`^\w+$`)}}

	attrs := opts.LogValue().Group()
	if len(attrs) != 4 {
		t.Fatalf("Got %d attributes, want 4: %v", len(attrs), attrs)
	}

	if attrs[0].Key != "style" || attrs[0].Value.String() != "brackets" {
		t.Errorf("Got first attribute %v, want style=brackets", attrs[0])
	}

	if attrs[1].Key != "nil" {
		t.Errorf("Got second attribute %v, want nil", attrs[1])
	}
}
