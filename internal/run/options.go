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

package run

import (
	"sync"

	"fillmore-labs.com/arraystyle/analyzer/style"
	"fillmore-labs.com/arraystyle/internal/config"
	"fillmore-labs.com/arraystyle/internal/cop"
)

// Options represent configuration options for an arraystyle run.
type Options struct {
	// Cops represent the element kinds to be checked.
	Cops config.Cops

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Style is the enforced literal style.
	Style style.Enforced

	// MinSize is the element count below which no style is enforced.
	MinSize int

	// WordPattern restricts the strings allowed in word percent literals.
	WordPattern string

	// Delimiters enclose percent literals, like "()".
	Delimiters string

	session *session
}

// DefaultOptions returns the default [Options].
func DefaultOptions() *Options {
	return &Options{
		Cops:     config.DefaultCops(),
		Behavior: config.DefaultBehavior(),
		Style:    style.Percent,
		session:  &session{},
	}
}

// session is created on first use, after flags have been parsed.
type session struct {
	once    sync.Once
	session *cop.Session
	err     error

	// seen holds the directories already scanned, analyzers run concurrently on packages.
	seen sync.Map
}

// Session returns the [cop.Session] shared by all passes of this run.
// r must have been created by [DefaultOptions].
func (r *Options) Session() (*cop.Session, error) {
	s := r.session
	s.once.Do(func() {
		s.session, s.err = cop.NewSession(cop.Config{
			Style:       r.Style,
			MinSize:     r.MinSize,
			WordPattern: r.WordPattern,
			Delimiters:  r.Delimiters,
			Cops:        r.Cops,
		})
	})

	return s.session, s.err
}

// firstVisit reports whether a directory is scanned for the first time in this run.
func (r *Options) firstVisit(dir string) bool {
	_, loaded := r.session.seen.LoadOrStore(dir, struct{}{})

	return !loaded
}
