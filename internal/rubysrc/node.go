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
	"slices"

	"fillmore-labs.com/arraystyle/internal/literal"
)

// Array is an array literal found in a [File]. It implements [literal.Node].
type Array struct {
	kind     literal.Kind
	style    literal.Style
	elements []literal.Element
	start    literal.Position
	end      literal.Position
	source   string
	closing  byte
	blockArg bool
}

var _ literal.Node = (*Array)(nil)

// Kind implements [literal.Node].
func (a *Array) Kind() literal.Kind { return a.kind }

// Style implements [literal.Node].
func (a *Array) Style() literal.Style { return a.style }

// Elements implements [literal.Node].
func (a *Array) Elements() []literal.Element { return slices.Clone(a.elements) }

// Start implements [literal.Node].
func (a *Array) Start() literal.Position { return a.start }

// End implements [literal.Node].
func (a *Array) End() literal.Position { return a.end }

// Source implements [literal.Node].
func (a *Array) Source() string { return a.source }

// Closing implements [literal.Node].
func (a *Array) Closing() byte { return a.closing }

// BlockArgument implements [literal.Node].
func (a *Array) BlockArgument() bool { return a.blockArg }

// Element is a symbol or string inside an [Array]. It implements [literal.Element].
type Element struct {
	value   string
	source  string
	dynamic bool
	start   literal.Position
	end     literal.Position
}

var _ literal.Element = Element{}

// Value implements [literal.Element].
func (e Element) Value() string { return e.value }

// Source implements [literal.Element].
func (e Element) Source() string { return e.source }

// Dynamic implements [literal.Element].
func (e Element) Dynamic() bool { return e.dynamic }

// Start implements [literal.Element].
func (e Element) Start() literal.Position { return e.start }

// End implements [literal.Element].
func (e Element) End() literal.Position { return e.end }
