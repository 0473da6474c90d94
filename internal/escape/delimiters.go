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
	"errors"
	"fmt"
)

// ErrInvalidDelimiters is returned for an unsupported percent literal delimiter pair.
var ErrInvalidDelimiters = errors.New("invalid percent literal delimiters")

// Delimiters enclose the elements of a percent literal. The zero value means [DefaultDelimiters].
type Delimiters struct {
	Open, Close byte
}

// DefaultDelimiters are the square brackets, as in %i[a b].
var DefaultDelimiters = Delimiters{'[', ']'}

var pairs = [...]Delimiters{{'[', ']'}, {'(', ')'}, {'{', '}'}, {'<', '>'}}

// ParseDelimiters parses a delimiter pair like "()". The empty string selects [DefaultDelimiters].
func ParseDelimiters(s string) (Delimiters, error) {
	if s == "" {
		return DefaultDelimiters, nil
	}

	if len(s) == 2 {
		for _, p := range pairs {
			if s[0] == p.Open && s[1] == p.Close {
				return p, nil
			}
		}
	}

	return Delimiters{}, fmt.Errorf("%w: %q, want one of [] () {} <>", ErrInvalidDelimiters, s)
}

// Resolve returns d, or [DefaultDelimiters] for the zero value.
func (d Delimiters) Resolve() Delimiters {
	if d == (Delimiters{}) {
		return DefaultDelimiters
	}

	return d
}

// String returns the delimiter pair, like "[]".
func (d Delimiters) String() string {
	d = d.Resolve()

	return string([]byte{d.Open, d.Close})
}

// contains reports whether r is one of the delimiters.
func (d Delimiters) contains(r rune) bool {
	d = d.Resolve()

	return r == rune(d.Open) || r == rune(d.Close)
}
