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

// Package cop evaluates array literals of one element kind against the configured style.
//
// A [Cop] runs the whole pipeline for a literal: eligibility, inference and rendering
// of the replacement. Both cops of a run share a [Session].
package cop

import (
	"errors"
	"fmt"

	"fillmore-labs.com/arraystyle/analyzer/style"
	"fillmore-labs.com/arraystyle/internal/eligibility"
	"fillmore-labs.com/arraystyle/internal/escape"
	"fillmore-labs.com/arraystyle/internal/inference"
	"fillmore-labs.com/arraystyle/internal/literal"
	"fillmore-labs.com/arraystyle/internal/rewrite"
)

// ErrKindMismatch is returned when a literal is evaluated by the cop of another element kind.
var ErrKindMismatch = errors.New("literal kind mismatch")

// Profile is the capability set of one element kind.
type Profile struct {
	Kind    literal.Kind
	Escaper escape.Escaper

	// Delimiters enclose percent literals.
	Delimiters escape.Delimiters

	// Noun names the elements in messages.
	Noun string

	// Name is the name of the corresponding RuboCop cop, for disable comments.
	Name string
}

// SymbolProfile returns the [Profile] for arrays of symbols.
func SymbolProfile(d escape.Delimiters) Profile {
	esc := escape.Symbols{Delimiters: d}

	return Profile{Kind: literal.Symbols, Escaper: esc, Delimiters: d, Noun: "symbols", Name: "Style/SymbolArray"}
}

// WordProfile returns the [Profile] for arrays of strings.
func WordProfile(esc escape.Words) Profile {
	return Profile{Kind: literal.Words, Escaper: esc, Delimiters: esc.Delimiters, Noun: "words", Name: "Style/WordArray"}
}

// Offense is a literal not written in the enforced style.
type Offense struct {
	Node literal.Node

	// Target is the style the literal should be written in.
	Target literal.Style

	// Message describes the offense, including a single-line preview of the target form.
	Message string

	// Replacement is the text to substitute for the literal's whole span.
	Replacement string
}

// Cop checks literals of one element kind.
type Cop struct {
	profile  Profile
	enforced style.Enforced
	minSize  int
	engine   *inference.Engine
}

// New creates a [Cop] for the given profile with its own inference state.
func New(p Profile, enforced style.Enforced, minSize int) *Cop {
	return &Cop{profile: p, enforced: enforced, minSize: minSize, engine: inference.New()}
}

// Profile returns the element kind capabilities of this cop.
func (c *Cop) Profile() Profile {
	return c.profile
}

// Decision returns the style inferred from the literals evaluated so far.
func (c *Cop) Decision() inference.Decision {
	return c.engine.Decision()
}

// Evaluate checks a literal and returns an [Offense] when it should be rewritten.
//
// Comments may be nil when the host can't provide them. Literals that are not
// eligible for conversion are neither reported nor observed for inference.
func (c *Cop) Evaluate(n literal.Node, comments literal.Comments) (*Offense, error) {
	if n.Kind() != c.profile.Kind {
		return nil, fmt.Errorf("%w: %s literal checked for %s", ErrKindMismatch, n.Kind(), c.profile.Kind)
	}

	current := n.Style()
	target := current.Other()

	in := eligibility.Input{Node: n, Comments: comments, MinSize: c.minSize, Escaper: c.profile.Escaper}
	if eligibility.Check(in, target) != eligibility.Eligible {
		return nil, nil
	}

	size := literal.Size(n)
	decision := c.engine.Observe(current, size)

	required := eligibility.RequiresBrackets(n)
	if required {
		// no configurable style accepts this literal
		c.engine.Abstain()
	} else if !c.enforces(decision, current, size) {
		return nil, nil
	}

	return c.offense(n, target)
}

// enforces reports whether the style in effect differs from the style of a literal.
func (c *Cop) enforces(d inference.Decision, current literal.Style, size int) bool {
	if want, ok := c.enforced.Literal(); ok {
		return want != current
	}

	return d.Enforces(current, size)
}

func (c *Cop) offense(n literal.Node, target literal.Style) (*Offense, error) {
	form := rewrite.FormFor(n.Kind(), target, c.profile.Delimiters)

	preview, err := rewrite.Preview(n, form, c.profile.Escaper)
	if err != nil {
		return nil, err
	}

	replacement, err := rewrite.Replacement(n, form, c.profile.Escaper)
	if err != nil {
		return nil, err
	}

	return &Offense{
		Node:        n,
		Target:      target,
		Message:     fmt.Sprintf("Use `%s` for an array of %s.", preview, c.profile.Noun),
		Replacement: replacement,
	}, nil
}
