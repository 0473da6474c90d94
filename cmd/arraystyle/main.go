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

// Arraystyle checks Ruby source files for consistent array literals of symbols and words.
//
// Usage:
//
//	arraystyle [flags] [path ...]
//
// Directories are walked recursively. Without paths, the current directory is checked.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"

	"fillmore-labs.com/arraystyle/analyzer"
	"fillmore-labs.com/arraystyle/internal/inference"
	"fillmore-labs.com/arraystyle/internal/literal"
	"fillmore-labs.com/arraystyle/internal/report"
	"fillmore-labs.com/arraystyle/internal/run"
)

// errOffenses signals that offenses were found, for the exit code.
var errOffenses = errors.New("offenses found")

func main() {
	opts := analyzer.RegisterFlags(flag.CommandLine)
	fix := flag.Bool("fix", false, "apply suggested fixes")
	infer := flag.Bool("infer", false, "print the inferred configuration as JSON")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	err := check(context.Background(), logger, opts, paths, *fix, *infer, os.Stdout)

	switch {
	case err == nil:

	case errors.Is(err, errOffenses):
		os.Exit(1)

	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func check(ctx context.Context, logger *slog.Logger, opts *run.Options, paths []string, fix, infer bool, out io.Writer) error {
	names, err := run.CollectFiles(paths)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}

	logger.DebugContext(ctx, "Checking files", slog.Int("files", len(names)), slog.Any("paths", paths))

	fset := token.NewFileSet()

	results, err := opts.CheckFiles(ctx, fset, names)
	if err != nil {
		return fmt.Errorf("check files: %w", err)
	}

	session, err := opts.Session()
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "Checked files", slog.Any("session", session))

	offenses := 0

	for _, r := range results {
		for _, d := range r.Diagnostics {
			fmt.Fprintf(out, "%s: %s\n", fset.Position(d.Pos), d.Message)
		}

		offenses += len(r.Diagnostics)

		if !fix || len(r.Diagnostics) == 0 {
			continue
		}

		file := r.File.File()

		fixed, err := report.ApplyFixes(r.File.TokenFile(), file.Source, r.Diagnostics)
		if err != nil {
			return fmt.Errorf("fix %s: %w", file.Name, err)
		}

		if err := writeFile(file.Name, fixed); err != nil {
			return fmt.Errorf("fix %s: %w", file.Name, err)
		}

		logger.InfoContext(ctx, "Fixed file", slog.String("file", file.Name), slog.Int("offenses", len(r.Diagnostics)))
	}

	if infer {
		if err := printDecisions(out, session.Decisions()); err != nil {
			return err
		}
	}

	if offenses > 0 && !fix {
		return errOffenses
	}

	return nil
}

// inferred is the JSON form of an [inference.Decision].
type inferred struct {
	Enabled       bool   `json:"enabled"`
	EnforcedStyle string `json:"enforced-style,omitempty"`
	MinSize       *int   `json:"min-size,omitempty"`
}

func printDecisions(out io.Writer, decisions map[literal.Kind]inference.Decision) error {
	m := make(map[string]inferred, len(decisions))
	for kind, d := range decisions {
		i := inferred{Enabled: d.Enabled, MinSize: d.MinSize}
		if d.Style != nil {
			i.EnforcedStyle = d.Style.String()
		}

		m[kind.String()] = i
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(m)
}

// writeFile replaces the content of an existing file, keeping its permissions.
func writeFile(name string, data []byte) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}

	return os.WriteFile(name, data, info.Mode().Perm())
}
