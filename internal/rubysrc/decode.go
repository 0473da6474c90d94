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
	"strconv"
	"strings"
	"unicode/utf8"
)

// unquoteSingle decodes the content of a single-quoted string.
func unquoteSingle(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '\'') {
			i++
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

// unquoteWords decodes a token of a non-interpolating percent literal.
// Backslashes escape whitespace, the delimiters and themselves.
func unquoteWords(s string, open, closing byte) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch next := s[i+1]; {
			case next == '\\', next == open, next == closing, isSpace(next), next == '\n':
				i++
			}
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

var simpleEscapes = map[byte]byte{
	'n': '\n', 't': '\t', 's': ' ', 'r': '\r', 'e': 0x1b,
	'a': '\a', 'b': '\b', 'f': '\f', 'v': '\v', '0': 0,
}

// unquoteDouble decodes the content of a double-quoted string or an interpolating percent literal token.
func unquoteDouble(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		i++
		c = s[i]

		if r, ok := simpleEscapes[c]; ok {
			b.WriteByte(r)
			continue
		}

		switch c {
		case 'u':
			n := unicodeEscape(&b, s[i+1:])
			i += n

		case 'x':
			n := hexDigits(s[i+1:], 2)
			if n == 0 {
				b.WriteByte('x')
				break
			}

			v, _ := strconv.ParseUint(s[i+1:i+1+n], 16, 8)
			b.WriteByte(byte(v))
			i += n

		case '\n':
			// line continuation

		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// unicodeEscape decodes the digits of a \u escape and returns the number of bytes consumed.
func unicodeEscape(b *strings.Builder, s string) int {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			b.WriteByte('u')
			return 0
		}

		for field := range strings.FieldsSeq(s[1:end]) {
			if v, err := strconv.ParseUint(field, 16, 32); err == nil {
				b.WriteRune(rune(v))
			}
		}

		return end + 1
	}

	n := hexDigits(s, 4)
	if n < 4 {
		b.WriteByte('u')
		return 0
	}

	v, _ := strconv.ParseUint(s[:4], 16, 32)
	if r := rune(v); utf8.ValidRune(r) {
		b.WriteRune(r)
	}

	return 4
}

func hexDigits(s string, limit int) int {
	n := 0
	for n < limit && n < len(s) && isHex(s[n]) {
		n++
	}

	return n
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c >= 0x80
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || '0' <= c && c <= '9'
}
