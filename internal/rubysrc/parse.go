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

package rubysrc

import (
	"cmp"
	"slices"

	"fillmore-labs.com/arraystyle/internal/literal"
)

// File is a scanned Ruby source file.
type File struct {
	Name   string
	Source []byte

	// Arrays holds the candidate array literals in source order.
	Arrays []*Array

	lineStarts []int
	comments   []Comment
}

var _ literal.Comments = (*File)(nil)

// Parse scans src for array literals of symbols or strings.
//
// Parse never fails. Source it can't make sense of yields fewer literals.
func Parse(name string, src []byte) *File {
	s := newScanner(src)
	s.scan()

	p := parser{scanner: s}
	p.arrays()

	slices.SortFunc(p.found, func(a, b *Array) int { return cmp.Compare(a.start.Offset, b.start.Offset) })

	return &File{
		Name:       name,
		Source:     src,
		Arrays:     p.found,
		lineStarts: s.lineStarts,
		comments:   s.comments,
	}
}

// InLines implements [literal.Comments].
func (f *File) InLines(first, last int) bool {
	i, _ := slices.BinarySearchFunc(f.comments, first, func(c Comment, line int) int { return cmp.Compare(c.Line, line) })

	return i < len(f.comments) && f.comments[i].Line < last
}

// Comments returns the comment lines of the file in source order.
func (f *File) Comments() []Comment {
	return slices.Clone(f.comments)
}

// Comment returns the first comment on the given line.
func (f *File) Comment(line int) (Comment, bool) {
	i, found := slices.BinarySearchFunc(f.comments, line, func(c Comment, line int) int { return cmp.Compare(c.Line, line) })
	if !found {
		return Comment{}, false
	}

	return f.comments[i], true
}

// LineStarts returns the offsets of the first byte of each line.
func (f *File) LineStarts() []int {
	return slices.Clone(f.lineStarts)
}

type parser struct {
	*scanner
	found []*Array
}

// arrays matches brackets and collects array literals.
func (p *parser) arrays() {
	var stack []int

	for i, t := range p.tokens {
		switch t.kind {
		case tokLBracket, tokIndex, tokOpen:
			stack = append(stack, i)

		case tokRBracket, tokClose:
			if len(stack) == 0 {
				continue
			}

			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if p.tokens[open].kind != tokLBracket || t.kind != tokRBracket {
				continue
			}

			if a := p.bracketed(open, i); a != nil {
				a.blockArg = p.blockArgument(open, i, stack)
				p.found = append(p.found, a)
			}

		case tokPercent:
			if a := t.array; len(a.elements) > 0 {
				a.blockArg = p.blockArgument(i, i, stack)
				p.found = append(p.found, a)
			}
		}
	}
}

// bracketed returns the array literal between the brackets at open and closing
// when all elements are static symbols or all are static strings.
func (p *parser) bracketed(open, closing int) *Array {
	body := p.tokens[open+1 : closing]
	if len(body) == 0 {
		return nil
	}

	elem := body[0].kind
	if elem != tokSymbol && elem != tokString {
		return nil
	}

	var elements []literal.Element

	for j, t := range body {
		switch {
		case j%2 == 0 && t.kind == elem:
			elements = append(elements, Element{
				value:  t.value,
				source: t.text,
				start:  p.position(t.start),
				end:    p.position(t.end),
			})

		case j%2 == 1 && t.kind == tokComma:

		default:
			return nil
		}
	}

	kind := literal.Words
	if elem == tokSymbol {
		kind = literal.Symbols
	}

	start, end := p.tokens[open].start, p.tokens[closing].end

	return &Array{
		kind:     kind,
		style:    literal.Brackets,
		elements: elements,
		start:    p.position(start),
		end:      p.position(end),
		source:   string(p.src[start:end]),
		closing:  ']',
	}
}

// blockArgument reports whether the literal spanning the tokens first to last is an argument
// of a method call without parentheses that takes a block, like `foo [:a, :b] do ... end`.
func (p *parser) blockArgument(first, last int, enclosing []int) bool {
	if first == 0 {
		return false
	}

	switch prev := p.tokens[first-1]; prev.kind {
	case tokIdent:
		if keywords[prev.text] || prev.end == p.tokens[first].start {
			return false
		}

	case tokComma:
		if len(enclosing) > 0 && p.src[p.tokens[enclosing[len(enclosing)-1]].start] != '{' {
			return false
		}

	default:
		return false
	}

	return p.blockFollows(last)
}

// blockFollows reports whether a block opens after the token at last on the same line,
// skipping further arguments of the call.
func (p *parser) blockFollows(last int) bool {
	line := p.position(p.tokens[last].end).Line

	if next := last + 1; next < len(p.tokens) && p.tokens[next].kind == tokOpen && p.src[p.tokens[next].start] == '{' {
		return p.position(p.tokens[next].start).Line == line
	}

	depth := 0

	for _, t := range p.tokens[last+1:] {
		if depth == 0 && p.position(t.start).Line != line {
			return false
		}

		switch t.kind {
		case tokLBracket, tokIndex, tokOpen:
			depth++

		case tokRBracket, tokClose:
			if depth == 0 {
				return false
			}

			depth--

		case tokIdent:
			if depth > 0 {
				continue
			}

			switch t.text {
			case "do":
				return true

			case "if", "unless", "while", "until", "and", "or", "then":
				return false
			}
		}
	}

	return false
}
