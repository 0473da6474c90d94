// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import (
	"fillmore-labs.com/arraystyle/analyzer"
	"fillmore-labs.com/arraystyle/analyzer/style"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// EnforcedStyle is the enforced literal style: percent, brackets or infer.
	EnforcedStyle *style.Enforced `json:"enforced-style,omitzero"`
	// MinSize is the element count below which no style is enforced.
	MinSize *int `json:"min-size,omitzero"`
	// WordRegex restricts the strings allowed in word percent literals.
	WordRegex *string `json:"word-regex,omitzero"`
	// PercentDelimiters enclose percent literals: [], (), {} or <>.
	PercentDelimiters *string `json:"percent-delimiters,omitzero"`
	// Symbols enables checks of arrays of symbols.
	Symbols *bool `json:"symbols,omitzero"`
	// Words enables checks of arrays of strings.
	Words *bool `json:"words,omitzero"`
	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
	// SuggestFixes enables suggested fixes.
	SuggestFixes *bool `json:"suggest-fixes,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the arraystyle analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.EnforcedStyle, analyzer.WithEnforcedStyle)
	opts = appendOption(opts, s.MinSize, analyzer.WithMinSize)
	opts = appendOption(opts, s.WordRegex, analyzer.WithWordRegex)
	opts = appendOption(opts, s.PercentDelimiters, analyzer.WithPercentDelimiters)
	opts = appendOption(opts, s.Symbols, analyzer.WithSymbols)
	opts = appendOption(opts, s.Words, analyzer.WithWords)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.SuggestFixes, analyzer.WithSuggestFixes)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
