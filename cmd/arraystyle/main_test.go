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

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fillmore-labs.com/arraystyle/analyzer"
)

func writeSource(t *testing.T, src string) (dir, name string) {
	t.Helper()

	dir = t.TempDir()
	name = filepath.Join(dir, "example.rb")

	if err := os.WriteFile(name, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	return dir, name
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir, _ := writeSource(t, "x = [:a, :b]\ny = %w[c d]\n")

	opts := analyzer.RegisterFlags(flag.NewFlagSet("test", flag.ContinueOnError))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer

	err := check(t.Context(), logger, opts, []string{dir}, false, false, &out)
	if !errors.Is(err, errOffenses) {
		t.Fatalf("Got error %v, want %v", err, errOffenses)
	}

	if got := out.String(); !strings.Contains(got, "example.rb:1:5: Use `%i[a b]` for an array of symbols.") {
		t.Errorf("Got output %q", got)
	}
}

func TestFix(t *testing.T) {
	t.Parallel()

	dir, name := writeSource(t, "x = [:a, :b]\n")

	opts := analyzer.RegisterFlags(flag.NewFlagSet("test", flag.ContinueOnError))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := check(context.Background(), logger, opts, []string{dir}, true, false, io.Discard); err != nil {
		t.Fatalf("Fix failed: %v", err)
	}

	got, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}

	if want := "x = %i[a b]\n"; string(got) != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestInfer(t *testing.T) {
	t.Parallel()

	dir, _ := writeSource(t, "x = [:a]\ny = %i[a b c]\n")

	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := analyzer.RegisterFlags(flags)

	if err := flags.Parse([]string{"-style", "infer"}); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	if err := check(context.Background(), logger, opts, []string{dir}, false, true, &out); err != nil {
		t.Fatalf("Infer failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{`"symbols"`, `"enforced-style": "percent"`, `"min-size": 2`} {
		if !strings.Contains(got, want) {
			t.Errorf("Got output %q, want %s", got, want)
		}
	}
}
