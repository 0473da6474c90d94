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

package cop

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"fillmore-labs.com/arraystyle/analyzer/style"
	"fillmore-labs.com/arraystyle/internal/config"
	"fillmore-labs.com/arraystyle/internal/escape"
	"fillmore-labs.com/arraystyle/internal/inference"
	"fillmore-labs.com/arraystyle/internal/literal"
)

// ErrNothingToCheck is returned when no element kind is enabled.
var ErrNothingToCheck = errors.New("no array kinds enabled")

// Config holds the settings shared by both cops of a [Session].
type Config struct {
	Style   style.Enforced
	MinSize int

	// WordPattern restricts the strings allowed in word percent literals,
	// empty means [escape.DefaultWordPattern].
	WordPattern string

	// Delimiters enclose percent literals, like "()". Empty means square brackets.
	Delimiters string

	// Cops selects the element kinds to check.
	Cops config.Cops
}

// Session owns the cops and their inference state for one run.
type Session struct {
	ID   uuid.UUID
	cops [2]*Cop
}

// NewSession creates a [Session] with a fresh inference state for every enabled element kind.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Cops.Empty() {
		return nil, ErrNothingToCheck
	}

	pattern := cfg.WordPattern
	if pattern == "" {
		pattern = escape.DefaultWordPattern
	}

	words, err := escape.NewWords(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid word pattern %q: %w", pattern, err)
	}

	delimiters, err := escape.ParseDelimiters(cfg.Delimiters)
	if err != nil {
		return nil, err
	}

	words.Delimiters = delimiters

	s := &Session{ID: uuid.New()}

	if cfg.Cops.Enabled(config.SymbolArrays) {
		s.cops[literal.Symbols] = New(SymbolProfile(delimiters), cfg.Style, cfg.MinSize)
	}

	if cfg.Cops.Enabled(config.WordArrays) {
		s.cops[literal.Words] = New(WordProfile(words), cfg.Style, cfg.MinSize)
	}

	return s, nil
}

// Cop returns the cop for an element kind, nil when the kind is not checked.
func (s *Session) Cop(kind literal.Kind) *Cop {
	if int(kind) >= len(s.cops) {
		return nil
	}

	return s.cops[kind]
}

// Evaluate checks a literal with the cop for its element kind.
func (s *Session) Evaluate(n literal.Node, comments literal.Comments) (*Offense, error) {
	c := s.Cop(n.Kind())
	if c == nil {
		return nil, nil
	}

	return c.Evaluate(n, comments)
}

// Decisions returns the inferred style per checked element kind.
func (s *Session) Decisions() map[literal.Kind]inference.Decision {
	decisions := make(map[literal.Kind]inference.Decision, len(s.cops))

	for _, c := range s.cops {
		if c != nil {
			decisions[c.profile.Kind] = c.Decision()
		}
	}

	return decisions
}

// LogValue implements [slog.LogValuer].
func (s *Session) LogValue() slog.Value {
	as := []slog.Attr{slog.String("id", s.ID.String())}

	for _, c := range s.cops {
		if c != nil {
			as = append(as, slog.Any(c.profile.Kind.String(), c.Decision()))
		}
	}

	return slog.GroupValue(as...)
}
