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

// Package testsource provides utilities for parsing Ruby source code in tests.
//
// It is designed to simplify testing of the arraystyle checks by handling common
// boilerplate code for scanning source fragments and locating the literals in them.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/arraystyle/internal/rubysrc"
)

const filename = "test.rb"

// Parse scans a Ruby source code fragment.
// Leading newlines are removed, so multiline fragments can start on a fresh line
// in raw string literals.
func Parse(tb testing.TB, src string) *rubysrc.File {
	tb.Helper()

	return rubysrc.Parse(filename, []byte(normalize(src)))
}

// Literal scans a Ruby source code fragment and returns its first array literal.
// The test fails when the fragment contains no candidate literal.
//
// Returns:
//   - *rubysrc.Array: The first array literal of the fragment.
//   - *rubysrc.File: The scanned file, providing comments.
func Literal(tb testing.TB, src string) (*rubysrc.Array, *rubysrc.File) {
	tb.Helper()

	f := Parse(tb, src)
	if len(f.Arrays) == 0 {
		tb.Fatalf("No array literal in source %q", src)
	}

	return f.Arrays[0], f
}

func normalize(src string) string {
	return strings.TrimLeft(src, "\n")
}
