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

package report

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/arraystyle/internal/astutil"
	"fillmore-labs.com/arraystyle/internal/cop"
)

// ErrOverlappingEdits is returned when text edits to apply overlap.
var ErrOverlappingEdits = errors.New("overlapping edits")

// createEdits creates the text edit replacing the whole literal span.
func createEdits(currentFile astutil.CurrentFile, o *cop.Offense) []analysis.TextEdit {
	pos, end := currentFile.Range(o.Node)

	return []analysis.TextEdit{{Pos: pos, End: end, NewText: []byte(o.Replacement)}}
}

// ApplyFixes applies the first suggested fix of every diagnostic to the content of file.
func ApplyFixes(file *token.File, src []byte, diagnostics []analysis.Diagnostic) ([]byte, error) {
	var edits []analysis.TextEdit
	for _, d := range diagnostics {
		if len(d.SuggestedFixes) > 0 {
			edits = append(edits, d.SuggestedFixes[0].TextEdits...)
		}
	}

	return ApplyEdits(file, src, edits)
}

// ApplyEdits applies non-overlapping text edits to the content of file.
func ApplyEdits(file *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return src, nil
	}

	type edit struct {
		start, end int
		text       []byte
	}

	offsets := make([]edit, 0, len(edits))
	for _, e := range edits {
		start, end := file.Offset(e.Pos), file.Offset(e.End)
		if end < start || end > len(src) {
			return nil, fmt.Errorf("invalid edit range [%d, %d) in %s", start, end, file.Name())
		}

		offsets = append(offsets, edit{start, end, e.NewText})
	}

	slices.SortStableFunc(offsets, func(a, b edit) int { return cmp.Compare(a.start, b.start) })

	out := make([]byte, 0, len(src))
	last := 0

	for _, e := range offsets {
		if e.start < last {
			return nil, fmt.Errorf("%w at offset %d in %s", ErrOverlappingEdits, e.start, file.Name())
		}

		out = append(out, src[last:e.start]...)
		out = append(out, e.text...)
		last = e.end
	}

	return append(out, src[last:]...), nil
}
