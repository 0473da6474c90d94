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

// Package escape renders single array elements as tokens of the bracketed or percent literal form.
package escape

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/arraystyle/internal/literal"
)

// Escaper renders elements of one [literal.Kind].
type Escaper interface {
	// Percent returns the bare token for a percent literal.
	// The result is false when the element can't be represented unquoted.
	Percent(e literal.Element) (string, bool)

	// Bracketed returns the quoted element for a bracketed literal.
	Bracketed(e literal.Element) string
}

// DefaultWordPattern matches the strings allowed unquoted in a percent literal of words:
// word characters (letters, marks, digits, connector punctuation) and inner hyphens.
const DefaultWordPattern = `^(?:[\p{L}\p{M}\p{N}\p{Pc}]|[\p{L}\p{M}\p{N}\p{Pc}]-[\p{L}\p{M}\p{N}\p{Pc}])+$`

// Symbols escapes elements of symbol arrays.
type Symbols struct {
	// Delimiters enclose the percent literal.
	Delimiters Delimiters
}

// Percent implements [Escaper].
func (s Symbols) Percent(e literal.Element) (string, bool) {
	v := e.Value()
	if e.Dynamic() || !bareToken(v, s.Delimiters) {
		return "", false
	}

	return v, true
}

// Bracketed implements [Escaper].
func (Symbols) Bracketed(e literal.Element) string {
	if e.Dynamic() {
		return ":" + interpolated(e.Value())
	}

	return SymbolLiteral(e.Value())
}

// Words escapes elements of string arrays.
type Words struct {
	// Pattern restricts the strings allowed unquoted, nil allows all bare tokens.
	Pattern *regexp.Regexp

	// Delimiters enclose the percent literal.
	Delimiters Delimiters
}

// NewWords returns a [Words] escaper matching the given pattern.
func NewWords(pattern string) (Words, error) {
	if pattern == "" {
		return Words{}, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return Words{}, err
	}

	return Words{Pattern: re}, nil
}

// Percent implements [Escaper].
func (w Words) Percent(e literal.Element) (string, bool) {
	v := e.Value()
	if e.Dynamic() || !bareToken(v, w.Delimiters) {
		return "", false
	}

	if w.Pattern != nil && !w.Pattern.MatchString(v) {
		return "", false
	}

	return v, true
}

// Bracketed implements [Escaper].
func (Words) Bracketed(e literal.Element) string {
	if e.Dynamic() {
		return interpolated(e.Value())
	}

	return StringLiteral(e.Value())
}

// bareToken reports whether s can appear unescaped in a percent literal enclosed by d.
func bareToken(s string, d Delimiters) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}

	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) || r == '\\' || d.contains(r) {
			return false
		}
	}

	return true
}

// ContainsSpace reports whether the element's content contains a space character.
func ContainsSpace(e literal.Element) bool {
	return strings.ContainsRune(e.Value(), ' ')
}

// ValidEncoding reports whether the element's content is valid UTF-8.
func ValidEncoding(e literal.Element) bool {
	return utf8.ValidString(e.Value())
}
