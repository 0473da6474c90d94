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

// Package rewrite renders array literals in the other style, keeping the line layout of multiline literals.
package rewrite

import (
	"errors"
	"fmt"
	"strings"

	"fillmore-labs.com/arraystyle/internal/escape"
	"fillmore-labs.com/arraystyle/internal/literal"
)

// ErrIneligible is returned when an element can't be rendered in the target form.
// Callers must check eligibility before rendering.
var ErrIneligible = errors.New("element not representable in target form")

// Form describes the surface syntax of a target style.
type Form struct {
	Style literal.Style

	// Open and Close delimit the literal.
	Open, Close string

	// Join separates elements in single-line output.
	Join string

	// Trailer follows every element except the last one in multiline output.
	Trailer string
}

// FormFor returns the target [Form] for literals of kind in the given style.
// Percent literals are enclosed by d.
func FormFor(kind literal.Kind, style literal.Style, d escape.Delimiters) Form {
	if style == literal.Percent {
		d = d.Resolve()

		return Form{Style: style, Open: "%" + string([]byte{kind.Prefix(), d.Open}), Close: string(d.Close), Join: " "}
	}

	return Form{Style: style, Open: "[", Close: "]", Join: ", ", Trailer: ","}
}

// Replacement returns the text replacing the full span of n in form f.
// Multiline literals keep their line breaks and indentation.
func Replacement(n literal.Node, f Form, esc escape.Escaper) (string, error) {
	tokens, err := render(n, f, esc)
	if err != nil {
		return "", err
	}

	if !literal.Multiline(n) {
		return singleLine(f, tokens), nil
	}

	return multiline(n, f, tokens), nil
}

// Preview returns n rendered on a single line in form f, for diagnostic messages.
func Preview(n literal.Node, f Form, esc escape.Escaper) (string, error) {
	tokens, err := render(n, f, esc)
	if err != nil {
		return "", err
	}

	return singleLine(f, tokens), nil
}

func render(n literal.Node, f Form, esc escape.Escaper) ([]string, error) {
	elements := n.Elements()
	tokens := make([]string, len(elements))

	for i, e := range elements {
		if f.Style == literal.Brackets {
			tokens[i] = esc.Bracketed(e)
			continue
		}

		token, ok := esc.Percent(e)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrIneligible, e.Source())
		}

		tokens[i] = token
	}

	return tokens, nil
}

func singleLine(f Form, tokens []string) string {
	return f.Open + strings.Join(tokens, f.Join) + f.Close
}

func multiline(n literal.Node, f Form, tokens []string) string {
	var (
		b     strings.Builder
		lines = strings.SplitAfter(n.Source(), "\n")
		base  = n.Start().Line
		prev  = base
		last  = len(tokens) - 1
	)

	// line returns the text of source line l and its line terminator.
	line := func(l int) (text, eol string) {
		if i := l - base; i >= 0 && i < len(lines) {
			return splitEOL(lines[i])
		}

		return "", "\n"
	}

	b.WriteString(f.Open)

	for i, e := range n.Elements() {
		switch start := e.Start(); {
		case start.Line == prev:
			if i > 0 || start.Line != base {
				b.WriteByte(' ')
			}

		default:
			_, eol := line(prev)
			b.WriteString(eol)

			for l := prev + 1; l < start.Line; l++ {
				text, eol := line(l)
				b.WriteString(indentation(text))
				b.WriteString(eol)
			}

			prefix, _ := line(start.Line)
			b.WriteString(indentation(prefix[:min(start.Column, len(prefix))]))
		}

		b.WriteString(tokens[i])

		if i < last {
			b.WriteString(f.Trailer)
		}

		prev = e.End().Line
	}

	closing, _ := line(n.End().Line)
	if indent, ok := closingIndentation(closing, n.Closing()); ok {
		_, eol := line(n.End().Line - 1)
		b.WriteString(eol)
		b.WriteString(indent)
	}

	b.WriteString(f.Close)

	return b.String()
}

// splitEOL separates a source line from its terminator, "\r\n" or "\n".
// The terminator defaults to "\n" for the last line.
func splitEOL(s string) (text, eol string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"

	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"

	default:
		return s, "\n"
	}
}

// indentation returns the leading blanks of s.
func indentation(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

// closingIndentation returns the blanks before the closing delimiter when it starts the line.
func closingIndentation(last string, closing byte) (string, bool) {
	indent := indentation(last)
	if rest := last[len(indent):]; rest == "" || rest[0] != closing {
		return "", false
	}

	return indent, true
}
