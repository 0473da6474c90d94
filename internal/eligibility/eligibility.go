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

// Package eligibility decides whether an array literal may be converted to the other style.
//
// The checks form an ordered decision table, see [Rules]. The first blocking rule
// determines the [Reason] reported for a literal.
package eligibility

import (
	"slices"

	"fillmore-labs.com/arraystyle/internal/escape"
	"fillmore-labs.com/arraystyle/internal/literal"
)

// Input is the literal to check together with the context the rules need.
type Input struct {
	Node     literal.Node
	Comments literal.Comments // may be nil
	MinSize  int
	Escaper  escape.Escaper
}

// Rule is a single entry of the decision table.
type Rule struct {
	// Reason is reported when the rule blocks.
	Reason Reason

	// Targets lists the target styles this rule applies to.
	Targets []literal.Style

	// Blocks reports whether the rule prevents a conversion.
	Blocks func(in Input) bool
}

var (
	anyTarget = []literal.Style{literal.Brackets, literal.Percent}
	toPercent = []literal.Style{literal.Percent}
)

var rules = [...]Rule{
	{CommentsInSpan, anyTarget, commentsInSpan},
	{BelowMinSize, anyTarget, belowMinSize},
	{BlockArgument, toPercent, func(in Input) bool { return in.Node.BlockArgument() }},
	{ContainsSpace, toPercent, anyElement(escape.ContainsSpace)},
	{InvalidEncoding, toPercent, anyElement(func(e literal.Element) bool { return !escape.ValidEncoding(e) })},
	{UnsafeElement, toPercent, unsafeElement},
}

// Rules returns the decision table in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules[:])
}

// Check returns the first [Reason] blocking the conversion of in.Node to target,
// or [Eligible].
func Check(in Input, target literal.Style) Reason {
	for _, r := range rules {
		if !slices.Contains(r.Targets, target) {
			continue
		}

		if r.Blocks(in) {
			return r.Reason
		}
	}

	return Eligible
}

// RequiresBrackets reports whether a percent literal can't stay in percent form,
// because it contains an element that is not representable there.
func RequiresBrackets(n literal.Node) bool {
	if n.Kind() != literal.Words || n.Style() != literal.Percent {
		return false
	}

	return slices.ContainsFunc(n.Elements(), func(e literal.Element) bool {
		return escape.ContainsSpace(e) || !escape.ValidEncoding(e)
	})
}

func commentsInSpan(in Input) bool {
	if in.Comments == nil {
		return false
	}

	return in.Comments.InLines(in.Node.Start().Line, in.Node.End().Line)
}

func belowMinSize(in Input) bool {
	return literal.Size(in.Node) < in.MinSize
}

func anyElement(pred func(literal.Element) bool) func(Input) bool {
	return func(in Input) bool {
		return slices.ContainsFunc(in.Node.Elements(), pred)
	}
}

func unsafeElement(in Input) bool {
	return slices.ContainsFunc(in.Node.Elements(), func(e literal.Element) bool {
		_, ok := in.Escaper.Percent(e)

		return !ok
	})
}
