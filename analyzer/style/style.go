// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package style defines the configurable enforced array literal style.
package style

import (
	"fmt"
	"strings"

	"fillmore-labs.com/arraystyle/internal/literal"
)

// Enforced specifies the array literal style to enforce.
type Enforced uint8

const (
	// Percent prefers percent literals like %i[a b] and %w[a b].
	Percent Enforced = iota

	// Brackets prefers bracketed literals like [:a, :b] and ['a', 'b'].
	Brackets

	// Infer derives the style from the literals seen during a run.
	Infer
)

// Literal returns the literal style to enforce, false when it is inferred.
func (o Enforced) Literal() (literal.Style, bool) {
	switch o {
	case Percent:
		return literal.Percent, true

	case Brackets:
		return literal.Brackets, true

	default:
		return 0, false
	}
}

// String implements [fmt.Stringer].
func (o Enforced) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Enforced(%d)", o)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (o Enforced) MarshalText() ([]byte, error) {
	switch o {
	case Percent:
		return []byte("percent"), nil

	case Brackets:
		return []byte("brackets"), nil

	case Infer:
		return []byte("infer"), nil

	default:
		return nil, fmt.Errorf("unknown enforced style %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Enforced) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "percent":
		*o = Percent

	case "brackets":
		*o = Brackets

	case "infer", "auto":
		*o = Infer

	default:
		return fmt.Errorf("unknown enforced style %q", string(text))
	}

	return nil
}
