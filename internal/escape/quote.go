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

package escape

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// StringLiteral renders s as a Ruby string literal.
//
// Single quotes are used unless s contains a single quote, an interpolation
// marker or characters that need an escape sequence.
func StringLiteral(s string) string {
	if needsDoubleQuotes(s) {
		return doubleQuoted(s)
	}

	var b strings.Builder
	b.Grow(len(s) + 2)

	b.WriteByte('\'')
	for _, r := range s {
		if r == '\\' {
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}
	b.WriteByte('\'')

	return b.String()
}

// SymbolLiteral renders s as a Ruby symbol literal.
func SymbolLiteral(s string) string {
	if BareSymbol(s) {
		return ":" + s
	}

	return ":" + StringLiteral(s)
}

var bareSymbol = []*regexp.Regexp{
	regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*[!?=]?$`), // method names and setters
	regexp.MustCompile(`^@@?[a-zA-Z_][a-zA-Z0-9_]*$`),    // instance and class variables
	regexp.MustCompile(`^\$(?:[1-9][0-9]*|[a-zA-Z_][a-zA-Z0-9_]*)$`),
	regexp.MustCompile(`^(?:\[\]=?|\*\*|[!~+\-*/%&|^<>]|<=>|==?=?|=~|!~|!=|<<|>>|<=|>=|[+\-]@)$`),
}

// BareSymbol reports whether s can be written as a symbol without quotes.
func BareSymbol(s string) bool {
	for _, re := range bareSymbol {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}

func needsDoubleQuotes(s string) bool {
	if !utf8.ValidString(s) || strings.ContainsRune(s, '\'') {
		return true
	}

	for i, r := range s {
		if !unicode.IsPrint(r) {
			return true
		}

		if r == '#' && interpolationMarker(s[i+1:]) {
			return true
		}
	}

	return false
}

// interpolationMarker reports whether rest (the text after a '#') would start an interpolation.
func interpolationMarker(rest string) bool {
	return rest != "" && strings.ContainsRune("{$@", rune(rest[0]))
}

// doubleQuoted renders s in double quotes with the escapes Ruby uses in String#inspect.
func doubleQuoted(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	b.WriteByte('"')

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\x%02X`, s[i]) // ignore error
			i++

			continue
		}

		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)

		case '\n':
			b.WriteString(`\n`)

		case '\t':
			b.WriteString(`\t`)

		case '\r':
			b.WriteString(`\r`)

		case '\f':
			b.WriteString(`\f`)

		case '\v':
			b.WriteString(`\v`)

		case '\b':
			b.WriteString(`\b`)

		case '\a':
			b.WriteString(`\a`)

		case 0x1b:
			b.WriteString(`\e`)

		case '#':
			if interpolationMarker(s[i+size:]) {
				b.WriteByte('\\')
			}

			b.WriteRune(r)

		default:
			switch {
			case unicode.IsPrint(r):
				b.WriteRune(r)

			case r > 0xFFFF:
				fmt.Fprintf(&b, `\u{%X}`, r) // ignore error

			default:
				fmt.Fprintf(&b, `\u%04X`, r) // ignore error
			}
		}

		i += size
	}

	b.WriteByte('"')

	return b.String()
}

// interpolated renders the raw content of an interpolating percent literal element
// as a double-quoted literal. Escaped whitespace is unescaped, double quotes are
// escaped and interpolated code is passed through unchanged.
func interpolated(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 2)

	b.WriteByte('"')

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '\\' && i+1 < len(raw):
			i++
			switch next := raw[i]; next {
			case ' ':
				b.WriteByte(' ')

			case '\t':
				b.WriteString(`\t`)

			case '\n':
				b.WriteString(`\n`)

			default:
				b.WriteByte('\\')
				b.WriteByte(next)
			}

		case c == '"':
			b.WriteString(`\"`)

		case c == '#' && i+1 < len(raw) && raw[i+1] == '{':
			end := matchingBrace(raw, i+1)
			b.WriteString(raw[i:end])
			i = end - 1

		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte('"')

	return b.String()
}

// matchingBrace returns the offset just after the brace closing the one at open,
// or len(s) when it is unbalanced.
func matchingBrace(s string, open int) int {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++

		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}

	return len(s)
}
