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

// Package inference derives an array style configuration consistent with all literals seen in a run.
//
// The [Engine] starts with the style of the first literal it observes. When a literal
// of the other style shows up, it proposes the percent style from a minimum size on,
// so that every bracketed literal seen is below and every percent literal seen is at
// or above the threshold. When no such threshold exists, inference is disabled for the
// rest of the run.
package inference

import (
	"log/slog"
	"math"
	"sync"

	"fillmore-labs.com/arraystyle/internal/literal"
)

// Decision is the configuration inferred so far.
type Decision struct {
	// Enabled is false once the observed literals contradict each other.
	Enabled bool

	// Style is the enforced style, nil until the first observation.
	Style *literal.Style

	// MinSize is the inferred size threshold, nil when none is needed.
	MinSize *int
}

// LogValue implements [slog.LogValuer].
func (d Decision) LogValue() slog.Value {
	as := []slog.Attr{slog.Bool("enabled", d.Enabled)}
	if d.Style != nil {
		as = append(as, slog.String("style", d.Style.String()))
	}

	if d.MinSize != nil {
		as = append(as, slog.Int("minSize", *d.MinSize))
	}

	return slog.GroupValue(as...)
}

// Enforces reports whether literals of the given style and size should be converted.
func (d Decision) Enforces(style literal.Style, size int) bool {
	if !d.Enabled || d.Style == nil || *d.Style == style {
		return false
	}

	if d.MinSize != nil && size < *d.MinSize {
		return false
	}

	return true
}

// State holds the size extrema observed in a run.
type State struct {
	// LargestBrackets is the size of the largest bracketed literal, [math.MinInt] when none was seen.
	LargestBrackets int

	// SmallestPercent is the size of the smallest percent literal, [math.MaxInt] when none was seen.
	SmallestPercent int
}

// Engine accumulates observations for one element kind.
// It is safe for concurrent use, observations are serialized.
type Engine struct {
	mu       sync.Mutex
	state    *State
	decision Decision
}

// New creates an [Engine] without observations.
func New() *Engine {
	return &Engine{decision: Decision{Enabled: true}}
}

// Observe records a literal of the given style and size and returns the updated [Decision].
func (e *Engine) Observe(style literal.Style, size int) Decision {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.decision.Enabled {
		return e.decision
	}

	s := e.lazyState()
	switch style {
	case literal.Brackets:
		s.LargestBrackets = max(s.LargestBrackets, size)

	case literal.Percent:
		s.SmallestPercent = min(s.SmallestPercent, size)
	}

	switch {
	case e.decision.Style == nil:
		e.decision.Style = &style

	case s.LargestBrackets == math.MinInt || s.SmallestPercent == math.MaxInt:
		// only one style seen so far

	case s.SmallestPercent <= s.LargestBrackets:
		e.decision = Decision{Enabled: false}

	default:
		percent, minSize := literal.Percent, s.LargestBrackets+1
		e.decision.Style, e.decision.MinSize = &percent, &minSize
	}

	return e.decision.clone()
}

// Abstain disables inference for the rest of the run.
// Used when a literal can't be written in any configurable style.
func (e *Engine) Abstain() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.decision = Decision{Enabled: false}
}

// Decision returns the current decision.
func (e *Engine) Decision() Decision {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.decision.clone()
}

// State returns the observed extrema, with unbounded values before the first observation.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return *e.lazyState()
}

func (e *Engine) lazyState() *State {
	if e.state == nil {
		e.state = &State{LargestBrackets: math.MinInt, SmallestPercent: math.MaxInt}
	}

	return e.state
}

func (d Decision) clone() Decision {
	c := Decision{Enabled: d.Enabled}

	if d.Style != nil {
		style := *d.Style
		c.Style = &style
	}

	if d.MinSize != nil {
		minSize := *d.MinSize
		c.MinSize = &minSize
	}

	return c
}
