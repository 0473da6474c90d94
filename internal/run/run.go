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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/arraystyle/internal/astutil"
	"fillmore-labs.com/arraystyle/internal/config"
	"fillmore-labs.com/arraystyle/internal/cop"
	"fillmore-labs.com/arraystyle/internal/report"
	"fillmore-labs.com/arraystyle/internal/rubysrc"
)

// ErrInvalidFile is returned when a source file can't be registered for position information.
var ErrInvalidFile = errors.New("invalid file info")

// extensions of Ruby source files.
var extensions = []string{".rb", ".rake", ".gemspec", ".ru"}

// Run checks the Ruby source files in the directories of the package's Go files.
// Directories shared by several packages are checked once per run.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	session, err := r.Session()
	if err != nil {
		return nil, fmt.Errorf("arraystyle: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ArrayStyle")
	defer task.End()

	trace.Log(ctx, "session", session.ID.String())

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	for _, dir := range packageDirs(p) {
		if !r.firstVisit(dir) {
			continue
		}

		names, err := SourceFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("arraystyle: %w", err)
		}

		for _, name := range names {
			if _, err := r.checkFile(ctx, p.Fset, p.Report, session, name); err != nil {
				return nil, fmt.Errorf("arraystyle: %w", err)
			}
		}
	}

	return nil, nil
}

// Result is the outcome of checking one file.
type Result struct {
	File        astutil.CurrentFile
	Diagnostics []analysis.Diagnostic
}

// CheckFiles checks the named Ruby source files in order and returns the diagnostics per file.
func (r *Options) CheckFiles(ctx context.Context, fset *token.FileSet, names []string) ([]Result, error) {
	session, err := r.Session()
	if err != nil {
		return nil, err
	}

	ctx, task := trace.NewTask(ctx, "ArrayStyle")
	defer task.End()

	trace.Log(ctx, "session", session.ID.String())

	results := make([]Result, 0, len(names))

	for _, name := range names {
		var diagnostics []analysis.Diagnostic

		collect := func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }

		currentFile, err := r.checkFile(ctx, fset, collect, session, name)
		if err != nil {
			return nil, err
		}

		results = append(results, Result{File: currentFile, Diagnostics: diagnostics})
	}

	return results, nil
}

// checkFile scans one Ruby source file and reports its offenses.
func (r *Options) checkFile(ctx context.Context, fset *token.FileSet, reportFn func(analysis.Diagnostic), session *cop.Session, name string) (astutil.CurrentFile, error) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	src, err := os.ReadFile(name)
	if err != nil {
		return astutil.CurrentFile{}, err
	}

	currentFile := astutil.NewCurrentFile(fset, rubysrc.Parse(name, src))
	if !currentFile.Valid() {
		return astutil.CurrentFile{}, fmt.Errorf("%s: %w", name, ErrInvalidFile)
	}

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		return currentFile, nil
	}

	report.ProcessFile(ctx, reportFn, currentFile, session, r.Behavior)

	return currentFile, nil
}

// packageDirs returns the directories holding the Go files of a package.
func packageDirs(p *analysis.Pass) []string {
	var dirs []string

	for _, f := range p.Files {
		handle := p.Fset.File(f.FileStart)
		if handle == nil || handle.Name() == "" {
			continue
		}

		if dir := filepath.Dir(handle.Name()); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// SourceFiles returns the Ruby source files in a directory, sorted by name.
func SourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.Type().IsRegular() && isSource(e.Name()) {
			names = append(names, filepath.Join(dir, e.Name()))
		}
	}

	return names, nil
}

// CollectFiles expands the given paths into Ruby source files.
// Directories are walked recursively, skipping hidden directories and vendored code.
func CollectFiles(paths []string) ([]string, error) {
	var names []string

	for _, path := range paths {
		err := filepath.WalkDir(path, func(name string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir():
				if base := d.Name(); name != path && (strings.HasPrefix(base, ".") || base == "vendor" || base == "node_modules") {
					return filepath.SkipDir
				}

			case name == path || isSource(name):
				names = append(names, name)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return names, nil
}

func isSource(name string) bool {
	return slices.Contains(extensions, filepath.Ext(name))
}
