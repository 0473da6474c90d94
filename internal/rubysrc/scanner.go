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
	"bytes"
	"strings"

	"fillmore-labs.com/arraystyle/internal/literal"
)

type tokenKind uint8

const (
	tokOther    tokenKind = iota // operators and literals we don't track
	tokIdent                     // identifiers and keywords
	tokSymbol                    // static symbol
	tokString                    // static string
	tokDynamic                   // interpolated string or symbol
	tokPercent                   // percent array literal
	tokLBracket                  // '[' opening an array literal
	tokIndex                     // '[' opening a subscript
	tokRBracket                  // ']'
	tokOpen                      // '(' or '{'
	tokClose                     // ')' or '}'
	tokComma                     // ','
)

type token struct {
	kind    tokenKind
	start   int // offset
	end     int // offset
	text    string
	value   string
	operand bool // tokOther ending an operand, like a regexp or numeric literal
	array   *Array
}

// Comment is a comment line with its text, including the leading marker.
type Comment struct {
	Line int
	Text string
}

type heredoc struct {
	id       string
	indented bool
}

// scanner splits Ruby source into the tokens needed to find array literals.
type scanner struct {
	src        []byte
	pos        int
	lineStarts []int
	tokens     []token
	comments   []Comment
	heredocs   []heredoc
}

func newScanner(src []byte) *scanner {
	lineStarts := []int{0}
	for i, c := range src {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &scanner{src: src, lineStarts: lineStarts}
}

// position converts an offset into a [literal.Position].
func (s *scanner) position(off int) literal.Position {
	lo, hi := 0, len(s.lineStarts)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.lineStarts[mid] <= off {
			lo = mid
		} else {
			hi = mid
		}
	}

	return literal.Position{Line: lo + 1, Column: off - s.lineStarts[lo], Offset: off}
}

func (s *scanner) peek(n int) byte {
	if p := s.pos + n; p < len(s.src) {
		return s.src[p]
	}

	return 0
}

func (s *scanner) emit(kind tokenKind, start int) *token {
	s.pos = min(s.pos, len(s.src))
	s.tokens = append(s.tokens, token{kind: kind, start: start, end: s.pos, text: string(s.src[start:s.pos])})

	return &s.tokens[len(s.tokens)-1]
}

func (s *scanner) scan() {
	s.lineStart()

	for s.pos < len(s.src) {
		start := s.pos

		switch c := s.src[s.pos]; {
		case c == '\n':
			s.pos++
			s.skipHeredocs()
			if !s.lineStart() {
				return
			}

		case isSpace(c):
			s.pos++

		case c == '\\' && s.peek(1) == '\n':
			s.pos += 2

		case c == '#':
			s.comment()

		case c == '\'':
			s.quoted('\'', false)
			s.stringToken(start, unquoteSingle, false)

		case c == '"':
			dynamic := s.quoted('"', true)
			s.stringToken(start, unquoteDouble, dynamic)

		case c == '`':
			s.quoted('`', true)
			s.emit(tokOther, start).operand = true

		case c == ':':
			s.colon()

		case c == '%':
			s.percent()

		case c == '/':
			s.slash()

		case c == '?':
			s.question()

		case c == '<' && s.peek(1) == '<' && s.heredocStart():

		case c == '[':
			kind := tokLBracket
			if s.adjacent() && s.valueBefore() {
				kind = tokIndex
			}

			s.pos++
			s.emit(kind, start)

		case c == ']':
			s.pos++
			s.emit(tokRBracket, start)

		case c == '(' || c == '{':
			s.pos++
			s.emit(tokOpen, start)

		case c == ')' || c == '}':
			s.pos++
			s.emit(tokClose, start)

		case c == ',':
			s.pos++
			s.emit(tokComma, start)

		case isIdentChar(c) || c == '@' || c == '$':
			s.identifier()

		default:
			s.pos++
			s.emit(tokOther, start)
		}
	}
}

// lineStart handles block comments and the end of program marker at the beginning of a line.
// It returns false when scanning should stop.
func (s *scanner) lineStart() bool {
	for {
		rest := s.src[s.pos:]

		switch {
		case lineIs(rest, "__END__"):
			s.pos = len(s.src)

			return false

		case lineIs(rest, "=begin"):
			for s.pos < len(s.src) {
				end := s.lineEnd()
				s.comments = append(s.comments, Comment{Line: s.position(s.pos).Line, Text: string(s.src[s.pos:end])})
				done := lineIs(s.src[s.pos:], "=end")
				s.pos = min(end+1, len(s.src))

				if done {
					break
				}
			}

		default:
			return true
		}
	}
}

// lineIs reports whether the line starts with the given marker as a whole word.
func lineIs(rest []byte, marker string) bool {
	if !bytes.HasPrefix(rest, []byte(marker)) {
		return false
	}

	return len(rest) == len(marker) || !isIdentChar(rest[len(marker)])
}

func (s *scanner) lineEnd() int {
	if i := bytes.IndexByte(s.src[s.pos:], '\n'); i >= 0 {
		return s.pos + i
	}

	return len(s.src)
}

func (s *scanner) comment() {
	end := s.lineEnd()
	s.comments = append(s.comments, Comment{Line: s.position(s.pos).Line, Text: string(s.src[s.pos:end])})
	s.pos = end
}

// quoted skips a quoted literal starting at the opening quote and reports whether it interpolates.
func (s *scanner) quoted(closing byte, interpolating bool) bool {
	s.pos++

	return s.delimited(0, closing, interpolating)
}

// delimited skips to just after the closing delimiter. A non-zero open allows nesting.
func (s *scanner) delimited(open, closing byte, interpolating bool) bool {
	depth, dynamic := 0, false

	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '\\':
			s.pos += 2
			continue

		case interpolating && c == '#' && s.interpolation():
			dynamic = true
			continue

		case open != 0 && c == open:
			depth++

		case c == closing:
			if depth == 0 {
				s.pos++
				return dynamic
			}

			depth--
		}

		s.pos++
	}

	s.pos = len(s.src)

	return dynamic
}

// interpolation skips an interpolation starting at '#' and reports whether there was one.
func (s *scanner) interpolation() bool {
	if !s.interpolationAhead() {
		return false
	}

	if s.peek(1) == '{' {
		s.pos = s.skipBraces(s.pos + 1)
	} else {
		s.pos += 2
	}

	return true
}

// interpolationAhead reports whether an interpolation starts at the current '#'.
func (s *scanner) interpolationAhead() bool {
	switch s.peek(1) {
	case '{':
		return true

	case '@', '$':
		return isIdentStart(s.peek(2))
	}

	return false
}

// skipBraces returns the offset after the brace matching the one at open, skipping nested literals.
func (s *scanner) skipBraces(open int) int {
	depth := 0

	for p := open; p < len(s.src); p++ {
		switch s.src[p] {
		case '{':
			depth++

		case '}':
			depth--
			if depth == 0 {
				return p + 1
			}

		case '\\':
			p++

		case '\'', '"', '`':
			saved := s.pos
			s.pos = p
			s.quoted(s.src[p], s.src[p] != '\'')
			p = s.pos - 1
			s.pos = saved
		}
	}

	return len(s.src)
}

func (s *scanner) stringToken(start int, decode func(string) string, dynamic bool) {
	if dynamic {
		s.emit(tokDynamic, start)
		return
	}

	t := s.emit(tokString, start)
	t.value = decode(t.text[1 : len(t.text)-1])
}

var keywords = map[string]bool{
	"and": true, "begin": true, "case": true, "do": true, "else": true, "elsif": true,
	"if": true, "in": true, "not": true, "or": true, "return": true, "then": true,
	"unless": true, "until": true, "when": true, "while": true, "yield": true,
}

func (s *scanner) identifier() {
	start := s.pos
	if c := s.src[s.pos]; c == '@' || c == '$' {
		s.pos++
	}

	for s.pos < len(s.src) && (isIdentChar(s.src[s.pos]) || s.src[s.pos] == '@' && s.pos == start+1) {
		s.pos++
	}

	if c := s.peek(0); (c == '?' || c == '!') && s.peek(1) != '=' {
		s.pos++
	}

	s.emit(tokIdent, start)
}

func (s *scanner) colon() {
	start := s.pos

	if s.peek(1) == ':' {
		s.pos += 2
		s.emit(tokOther, start)

		return
	}

	if start > 0 {
		if prev := s.src[start-1]; isIdentChar(prev) || prev == ')' || prev == ']' || prev == '"' || prev == '\'' {
			s.pos++
			s.emit(tokOther, start)

			return
		}
	}

	switch next := s.peek(1); {
	case next == '"':
		s.pos++
		dynamic := s.quoted('"', true)
		s.symbolToken(start, 2, unquoteDouble, dynamic)

	case next == '\'':
		s.pos++
		s.quoted('\'', false)
		s.symbolToken(start, 2, unquoteSingle, false)

	case isIdentStart(next) || next == '@' || next == '$':
		s.pos++
		s.identifier()
		s.tokens = s.tokens[:len(s.tokens)-1]

		if s.peek(0) == '=' && !strings.ContainsRune("=~>", rune(s.peek(1))) {
			s.pos++
		}

		s.symbolToken(start, 1, func(v string) string { return v }, false)

	default:
		s.pos++
		if op := operatorAt(s.src[s.pos:]); op != "" {
			s.pos += len(op)
			s.symbolToken(start, 1, func(v string) string { return v }, false)

			return
		}

		s.emit(tokOther, start)
	}
}

func (s *scanner) symbolToken(start, prefix int, decode func(string) string, dynamic bool) {
	if dynamic {
		s.emit(tokDynamic, start)
		return
	}

	t := s.emit(tokSymbol, start)

	content := t.text[prefix:]
	if prefix == 2 {
		content = content[:len(content)-1]
	}

	t.value = decode(content)
}

var operators = []string{
	"[]=", "[]", "<=>", "===", "==", "=~", "!=", "!~", "**", "<<", ">>", "<=", ">=", "+@", "-@",
	"+", "-", "*", "/", "%", "<", ">", "!", "~", "&", "|", "^",
}

func operatorAt(rest []byte) string {
	for _, op := range operators {
		if bytes.HasPrefix(rest, []byte(op)) {
			return op
		}
	}

	return ""
}

// valueBefore reports whether the previous token ends an operand.
func (s *scanner) valueBefore() bool {
	if len(s.tokens) == 0 {
		return false
	}

	switch t := s.tokens[len(s.tokens)-1]; t.kind {
	case tokIdent:
		return !keywords[t.text]

	case tokSymbol, tokString, tokDynamic, tokPercent, tokRBracket:
		return true

	case tokClose:
		return true

	case tokOther:
		return t.operand

	default:
		return false
	}
}

// adjacent reports whether the current position directly follows the previous token.
func (s *scanner) adjacent() bool {
	return len(s.tokens) > 0 && s.tokens[len(s.tokens)-1].end == s.pos
}

// literalStart reports whether an ambiguous character starts a literal instead of an operator,
// like '/' for regular expressions or '%' for percent literals.
func (s *scanner) literalStart() bool {
	if !s.valueBefore() {
		return true
	}

	// command argument: `puts /re/`
	t := s.tokens[len(s.tokens)-1]

	return t.kind == tokIdent && !s.adjacent() && !isSpace(s.peek(1)) && s.peek(1) != '\n' && s.peek(1) != '='
}

func (s *scanner) slash() {
	start := s.pos

	if !s.literalStart() {
		s.pos++
		s.emit(tokOther, start)

		return
	}

	s.pos++
	s.delimited(0, '/', true)

	for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
		s.pos++
	}

	s.emit(tokOther, start).operand = true
}

func (s *scanner) question() {
	start := s.pos

	if c := s.peek(1); c != 0 && !isSpace(c) && c != '\n' && !s.valueBefore() {
		n := 2
		if c == '\\' {
			n = 3
		}

		if !isIdentChar(s.peek(n)) {
			s.pos += n
			s.emit(tokOther, start).operand = true

			return
		}
	}

	s.pos++
	s.emit(tokOther, start)
}

// heredocStart scans a heredoc opener at "<<" and reports whether there was one.
func (s *scanner) heredocStart() bool {
	if s.valueBefore() && s.adjacent() {
		return false
	}

	p := s.pos + 2

	indented := p < len(s.src) && (s.src[p] == '~' || s.src[p] == '-')
	if indented {
		p++
	}

	var id string

	switch {
	case p < len(s.src) && (s.src[p] == '\'' || s.src[p] == '"' || s.src[p] == '`'):
		end := bytes.IndexByte(s.src[p+1:], s.src[p])
		if end < 0 {
			return false
		}

		id = string(s.src[p+1 : p+1+end])
		p += end + 2

	case p < len(s.src) && isIdentStart(s.src[p]):
		q := p
		for q < len(s.src) && isIdentChar(s.src[q]) {
			q++
		}

		id = string(s.src[p:q])
		if !indented && strings.ToUpper(id) != id {
			return false
		}

		p = q

	default:
		return false
	}

	start := s.pos
	s.pos = p
	s.emit(tokOther, start).operand = true
	s.heredocs = append(s.heredocs, heredoc{id: id, indented: indented})

	return true
}

// skipHeredocs skips pending heredoc bodies at the start of a line.
func (s *scanner) skipHeredocs() {
	for _, h := range s.heredocs {
		for s.pos < len(s.src) {
			end := s.lineEnd()
			line := strings.TrimRight(string(s.src[s.pos:end]), "\r")
			s.pos = min(end+1, len(s.src))

			if h.indented {
				line = strings.TrimLeft(line, " \t")
			}

			if line == h.id {
				break
			}
		}
	}

	s.heredocs = s.heredocs[:0]
}

var closingDelimiters = map[byte]byte{'[': ']', '(': ')', '{': '}', '<': '>'}

func (s *scanner) percent() {
	start := s.pos

	typ, delim := s.peek(1), s.peek(2)
	if !strings.ContainsRune("qQwWiIrsx", rune(typ)) || !percentDelimiter(delim) {
		typ, delim = 'Q', s.peek(1)
		if !strings.ContainsRune("([{<|!^", rune(delim)) || !s.literalStart() {
			s.pos++
			s.emit(tokOther, start)

			return
		}

		s.pos += 2
	} else {
		s.pos += 3
	}

	open, closing := byte(0), delim
	if c, ok := closingDelimiters[delim]; ok {
		open, closing = delim, c
	}

	interpolating := strings.ContainsRune("QWIrx", rune(typ))

	switch typ {
	case 'w', 'W', 'i', 'I':
		s.percentArray(start, typ, open, closing, interpolating)

	default:
		s.delimited(open, closing, interpolating)

		if typ == 'r' {
			for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
				s.pos++
			}
		}

		s.emit(tokOther, start).operand = true
	}
}

func percentDelimiter(c byte) bool {
	return c != 0 && !isIdentChar(c) && !isSpace(c) && c != '\n' && c < 0x80
}

// percentArray scans the body of a percent array literal and splits it into elements.
func (s *scanner) percentArray(start int, typ, open, closing byte, interpolating bool) {
	var (
		elements []literal.Element
		depth    int
		elem     = -1
		dynamic  bool
	)

	flush := func(end int) {
		if elem < 0 {
			return
		}

		raw := string(s.src[elem:end])

		value := raw
		switch {
		case dynamic:

		case interpolating:
			value = unquoteDouble(strings.ReplaceAll(raw, "\\\n", "\n"))

		default:
			value = unquoteWords(raw, open, closing)
		}

		elements = append(elements, Element{
			value:   value,
			source:  raw,
			dynamic: dynamic,
			start:   s.position(elem),
			end:     s.position(end),
		})
		elem, dynamic = -1, false
	}

loop:
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '\\':
			if elem < 0 {
				elem = s.pos
			}

			s.pos += 2

			continue

		case isSpace(c) || c == '\n':
			flush(s.pos)

		case interpolating && c == '#' && s.interpolationAhead():
			if elem < 0 {
				elem = s.pos
			}

			s.interpolation()
			dynamic = true

			continue

		case c == closing && depth == 0:
			flush(s.pos)
			s.pos++

			break loop

		default:
			if open != 0 && c == open {
				depth++
			} else if c == closing {
				depth--
			}

			if elem < 0 {
				elem = s.pos
			}
		}

		s.pos++
	}

	t := s.emit(tokPercent, start)

	kind := literal.Words
	if typ == 'i' || typ == 'I' {
		kind = literal.Symbols
	}

	t.array = &Array{
		kind:     kind,
		style:    literal.Percent,
		elements: elements,
		start:    s.position(start),
		end:      s.position(s.pos),
		source:   t.text,
		closing:  closing,
	}
}
