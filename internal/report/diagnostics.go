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
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/arraystyle/internal/astutil"
	"fillmore-labs.com/arraystyle/internal/config"
	"fillmore-labs.com/arraystyle/internal/cop"
)

// ProcessFile evaluates all array literals of a file and reports offenses as diagnostics.
//
// Every literal is evaluated, also on lines with a nolint comment, so inference sees
// the complete file. Suppressed offenses are not reported. ProcessFile returns the
// number of reported diagnostics.
func ProcessFile(ctx context.Context, report func(analysis.Diagnostic), currentFile astutil.CurrentFile, session *cop.Session, option config.Behavior) int {
	defer trace.StartRegion(ctx, "Report").End()

	fix := option.Enabled(config.SuggestFixes) && !currentFile.Generated()
	reported := 0

	for _, a := range currentFile.File().Arrays {
		c := session.Cop(a.Kind())
		if c == nil {
			continue
		}

		o, err := c.Evaluate(a, currentFile.File())
		if err != nil {
			start, end := currentFile.Range(a)
			astutil.InternalError(report, astutil.Span{Start: start, Stop: end}, "Can't render literal: %s", err)

			continue
		}

		if o == nil || currentFile.NoLintComment(a.Start().Line, c.Profile().Name) {
			continue
		}

		report(createDiagnostic(currentFile, o, fix))
		reported++
	}

	return reported
}

// createDiagnostic builds the diagnostic for an offense, with a suggested fix when requested.
func createDiagnostic(currentFile astutil.CurrentFile, o *cop.Offense, fix bool) analysis.Diagnostic {
	pos, end := currentFile.Range(o.Node)

	diagnostic := analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: o.Node.Kind().String(),
		Message:  o.Message,
	}

	if fix {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   "Convert to " + o.Target.String() + " literal",
			TextEdits: createEdits(currentFile, o),
		}}
	}

	return diagnostic
}
