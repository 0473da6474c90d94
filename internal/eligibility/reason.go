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

package eligibility

// Reason indicates whether a literal can be converted and why not.
type Reason uint8

//go:generate go tool stringer -type Reason -linecomment
const (
	// Eligible indicates the literal can be converted.
	Eligible Reason = iota // ok

	// CommentsInSpan indicates a comment inside the literal's lines.
	// A rewrite could not relocate it.
	CommentsInSpan // cmt

	// BelowMinSize indicates the literal has fewer elements than the size threshold in effect.
	BelowMinSize // min

	// BlockArgument indicates the literal is an unparenthesized final call argument followed by a block.
	// A percent literal would be parsed differently there.
	BlockArgument // blk

	// ContainsSpace indicates an element containing a space, which separates percent literal tokens.
	ContainsSpace // spc

	// InvalidEncoding indicates an element that is not valid UTF-8.
	InvalidEncoding // enc

	// UnsafeElement indicates an element that can't be written as a bare percent literal token.
	UnsafeElement // esc
)

// Convertible reports whether the literal may be converted.
func (r Reason) Convertible() bool { return r == Eligible }
