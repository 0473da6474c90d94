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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/arraystyle/internal/literal"
	"fillmore-labs.com/arraystyle/internal/rubysrc"
)

// arraystyle is the name of the linter.
const arraystyle = "arraystyle"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *rubysrc.File
	handle    *token.File
	generated bool
}

// NewCurrentFile registers a scanned Ruby file in the [token.FileSet] and creates a new [CurrentFile].
func NewCurrentFile(fset *token.FileSet, file *rubysrc.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	lines := file.LineStarts()
	if n := len(lines); n > 0 && lines[n-1] == len(file.Source) {
		lines = lines[:n-1] // trailing newline
	}

	handle := fset.AddFile(file.Name, -1, len(file.Source))
	if !handle.SetLines(lines) {
		return CurrentFile{}
	}

	generated := isGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// File returns the scanned Ruby file.
func (c CurrentFile) File() *rubysrc.File {
	return c.file
}

// TokenFile returns the position information registered for the file.
func (c CurrentFile) TokenFile() *token.File {
	return c.handle
}

// Pos converts a literal position into a [token.Pos].
func (c CurrentFile) Pos(p literal.Position) token.Pos {
	return c.handle.Pos(p.Offset)
}

// Range returns the positions spanned by a literal.
func (c CurrentFile) Range(n literal.Node) (token.Pos, token.Pos) {
	return c.Pos(n.Start()), c.Pos(n.End())
}

// NoLintComment checks if a line carries a `# nolint:arraystyle` comment
// or disables one of the given RuboCop cops.
func (c CurrentFile) NoLintComment(line int, cops ...string) bool {
	if c.file == nil {
		return false
	}

	comment, ok := c.file.Comment(line)
	if !ok {
		return false
	}

	return CommentHasNoLint(comment.Text, cops...)
}

var (
	nolintPattern  = regexp.MustCompile(`#\s*nolint:([a-zA-Z0-9,_-]+)`)
	disablePattern = regexp.MustCompile(`#\s*rubocop\s*:\s*(?:disable|todo)\s+([A-Za-z0-9/,\s]+)`)
)

// CommentHasNoLint checks if the provided comment contains a `# nolint:arraystyle` directive
// or a `# rubocop:disable` directive for one of the given cops.
func CommentHasNoLint(comment string, cops ...string) bool {
	if matches := nolintPattern.FindStringSubmatch(comment); matches != nil {
		// Parse comma-separated linter list
		for linter := range strings.SplitSeq(matches[1], ",") {
			if l := strings.ToLower(strings.TrimSpace(linter)); l == arraystyle || l == "all" {
				return true
			}
		}
	}

	matches := disablePattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	for cop := range strings.SplitSeq(matches[1], ",") {
		cop = strings.TrimSpace(cop)
		if strings.EqualFold(cop, "all") {
			return true
		}

		if slices.Contains(cops, cop) {
			return true
		}
	}

	return false
}

// generatedPattern matches the marker of generated files, see https://go.dev/s/generatedcode
var generatedPattern = regexp.MustCompile(`^#\s*Code generated .* DO NOT EDIT\.$`)

// isGenerated reports whether a comment marks the file as generated.
func isGenerated(file *rubysrc.File) bool {
	for _, c := range file.Comments() {
		if generatedPattern.MatchString(strings.TrimSpace(c.Text)) {
			return true
		}
	}

	return false
}
