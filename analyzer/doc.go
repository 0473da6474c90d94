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

// Package analyzer implements the arraystyle static analysis pass.
//
// # Overview
//
// ArrayStyle checks Ruby source files for arrays of symbols and strings and enforces
// a consistent literal style, either percent literals or bracketed lists.
// The Ruby files in the directories of the analyzed Go packages are checked, a
// directory is visited once per run.
//
// # Example
//
// Before:
//
//	STATES = [:draft, :published, :archived]
//	NAMES = ['alice', 'bob']
//
// After applying arraystyle's suggested fixes:
//
//	STATES = %i[draft published archived]
//	NAMES = %w[alice bob]
//
// Multiline literals keep their line breaks and indentation. With the brackets style
// the conversion runs the other way.
//
// # Exceptions
//
// Literals are not converted when
//
//   - a comment is inside the literal,
//   - they have fewer elements than the configured minimum size,
//   - they are an unparenthesized method argument followed by a block (to percent only),
//   - an element can't be written as a bare percent literal token (to percent only).
//
// Word percent literals with an escaped space are always reported, since no bare
// token can represent them.
//
// # Inference
//
// With the infer style the analyzer observes all literals of a run and derives the
// style and minimum size consistent with every one of them, or gives up when the
// literals contradict each other.
//
// # Suppression
//
// A `# nolint:arraystyle` comment or a `# rubocop:disable Style/SymbolArray` or
// `Style/WordArray` comment on the first line of a literal suppresses the diagnostic.
package analyzer
