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

// Package literal defines the read-only view of array literals the style checks operate on.
//
// The view is provided by a host that parsed the source. Nodes are never mutated,
// all edits are expressed as replacement text for a node's whole span.
package literal

// Kind is the element kind of an array literal.
type Kind uint8

//go:generate go tool stringer -type Kind,Style -linecomment
const (
	// Symbols are arrays of symbols, written as [:a, :b] or %i[a b].
	Symbols Kind = iota // symbols

	// Words are arrays of strings, written as ['a', 'b'] or %w[a b].
	Words // words
)

// Prefix returns the percent literal type character for this kind.
func (k Kind) Prefix() byte {
	if k == Symbols {
		return 'i'
	}

	return 'w'
}

// Style is the surface syntax of an array literal.
type Style uint8

const (
	// Brackets is the explicit list syntax with individually quoted elements.
	Brackets Style = iota // brackets

	// Percent is the compact whitespace-separated percent literal syntax.
	Percent // percent
)

// Other returns the opposite style.
func (s Style) Other() Style {
	if s == Brackets {
		return Percent
	}

	return Brackets
}

// Position is a location in the source text. Lines start at 1, columns and offsets at 0.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Node is an array literal consisting only of elements of one [Kind].
type Node interface {
	Kind() Kind
	Style() Style
	Elements() []Element

	// Start is the position of the opening delimiter, End the position just after the closing one.
	Start() Position
	End() Position

	// Source is the raw source text of the whole literal.
	Source() string

	// Closing is the closing delimiter character.
	Closing() byte

	// BlockArgument reports whether the literal is an unparenthesized final call argument
	// immediately followed by a block.
	BlockArgument() bool
}

// Element is a single symbol or string of a [Node].
type Element interface {
	// Value is the decoded content. For dynamic elements it is the raw content.
	Value() string

	// Source is the raw token text, including quotes or sigils.
	Source() string

	// Dynamic reports whether the element contains interpolation.
	Dynamic() bool

	Start() Position
	End() Position
}

// Comments answers comment queries for the file containing a [Node].
type Comments interface {
	// InLines reports whether there is a comment on any line in [first, last).
	InLines(first, last int) bool
}

// Multiline reports whether the node spans more than one line.
func Multiline(n Node) bool {
	return n.Start().Line != n.End().Line
}

// Size is the number of elements in the node.
func Size(n Node) int {
	return len(n.Elements())
}
