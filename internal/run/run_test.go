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

package run_test

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/arraystyle/internal/config"
	. "fillmore-labs.com/arraystyle/internal/run"
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.rb"), "")
	writeFile(t, filepath.Join(dir, "lib", "b.rake"), "")
	writeFile(t, filepath.Join(dir, "lib", "c.go"), "")
	writeFile(t, filepath.Join(dir, ".git", "d.rb"), "")
	writeFile(t, filepath.Join(dir, "vendor", "e.rb"), "")

	got, err := CollectFiles([]string{dir})
	if err != nil {
		t.Fatalf("CollectFiles failed: %v", err)
	}

	want := []string{filepath.Join(dir, "a.rb"), filepath.Join(dir, "lib", "b.rake")}
	if !slices.Equal(got, want) {
		t.Errorf("Got %q, want %q", got, want)
	}

	explicit := filepath.Join(dir, "lib", "c.go")
	if got, err := CollectFiles([]string{explicit}); err != nil || !slices.Equal(got, []string{explicit}) {
		t.Errorf("Got %q, %v for explicit file", got, err)
	}
}

func TestCheckFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.rb")
	writeFile(t, plain, "A = [:a, :b]\nB = %w[c d]\n")

	generated := filepath.Join(dir, "generated.rb")
	writeFile(t, generated, "# Code generated by test. DO NOT EDIT.\nA = [:a, :b]\n")

	tests := []struct {
		name      string
		generated bool
		want      []int
	}{
		{"Default", false, []int{1, 0}},
		{"Generated", true, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := DefaultOptions()
			r.Behavior.Set(config.IncludeGenerated, tt.generated)

			results, err := r.CheckFiles(context.Background(), token.NewFileSet(), []string{plain, generated})
			if err != nil {
				t.Fatalf("CheckFiles failed: %v", err)
			}

			var got []int
			for _, res := range results {
				got = append(got, len(res.Diagnostics))
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got diagnostics per file %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidPattern(t *testing.T) {
	t.Parallel()

	r := DefaultOptions()
	r.WordPattern = "("

	if _, err := r.CheckFiles(context.Background(), token.NewFileSet(), nil); err == nil {
		t.Error("Expected error for invalid word pattern")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	gofile := filepath.Join(dir, "a.go")
	writeFile(t, gofile, "package a\n")
	writeFile(t, filepath.Join(dir, "b_test.go"), "package a\n")
	writeFile(t, filepath.Join(dir, "c.rb"), "X = ['a', 'b']\n")

	fset := token.NewFileSet()

	var files []*ast.File
	for _, name := range []string{"a.go", "b_test.go"} {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			t.Fatal(err)
		}

		files = append(files, f)
	}

	r := DefaultOptions()

	var diagnostics []analysis.Diagnostic

	// the package and its test variant share the directory
	for range 2 {
		p := &analysis.Pass{
			Fset:   fset,
			Files:  files,
			Pkg:    types.NewPackage("a", "a"),
			Report: func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
		}

		if _, err := r.Run(p); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
	}

	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	if p := fset.Position(diagnostics[0].Pos); filepath.Base(p.Filename) != "c.rb" || p.Line != 1 || p.Column != 5 {
		t.Errorf("Got position %s, want c.rb:1:5", p)
	}
}
