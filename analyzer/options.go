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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/arraystyle/analyzer/style"
	"fillmore-labs.com/arraystyle/internal/config"
	"fillmore-labs.com/arraystyle/internal/run"
)

// Option configures specific behavior of a [New] arraystyle analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithEnforcedStyle is an [Option] to configure the enforced array literal style.
func WithEnforcedStyle(enforced style.Enforced) Option { return styleOption{enforced: enforced} }

type styleOption struct{ enforced style.Enforced }

func (o styleOption) apply(r *run.Options) {
	r.Style = o.enforced
}

func (o styleOption) LogAttr() slog.Attr {
	return slog.String("style", o.enforced.String())
}

// WithMinSize is an [Option] to configure the element count below which no style is enforced.
func WithMinSize(minSize int) Option { return minSizeOption{minSize: minSize} }

type minSizeOption struct{ minSize int }

func (o minSizeOption) apply(r *run.Options) {
	r.MinSize = o.minSize
}

func (o minSizeOption) LogAttr() slog.Attr {
	return slog.Int("min-size", o.minSize)
}

// WithWordRegex is an [Option] to restrict the strings allowed in word percent literals.
// An empty pattern selects the default, which allows word characters and inner hyphens.
func WithWordRegex(pattern string) Option { return wordRegexOption{pattern: pattern} }

type wordRegexOption struct{ pattern string }

func (o wordRegexOption) apply(r *run.Options) {
	r.WordPattern = o.pattern
}

func (o wordRegexOption) LogAttr() slog.Attr {
	return slog.String("word-regex", o.pattern)
}

// WithPercentDelimiters is an [Option] to configure the delimiters of percent literals,
// one of "[]" (the default), "()", "{}" or "<>".
func WithPercentDelimiters(delimiters string) Option { return delimitersOption{delimiters: delimiters} }

type delimitersOption struct{ delimiters string }

func (o delimitersOption) apply(r *run.Options) {
	r.Delimiters = o.delimiters
}

func (o delimitersOption) LogAttr() slog.Attr {
	return slog.String("percent-delimiters", o.delimiters)
}

// WithSymbols is an [Option] to configure whether arrays of symbols are checked.
func WithSymbols(symbols bool) Option { return symbolsOption{symbols: symbols} }

type symbolsOption struct{ symbols bool }

func (o symbolsOption) apply(r *run.Options) {
	r.Cops.Set(config.SymbolArrays, o.symbols)
}

func (o symbolsOption) LogAttr() slog.Attr {
	return slog.Bool("symbols", o.symbols)
}

// WithWords is an [Option] to configure whether arrays of strings are checked.
func WithWords(words bool) Option { return wordsOption{words: words} }

type wordsOption struct{ words bool }

func (o wordsOption) apply(r *run.Options) {
	r.Cops.Set(config.WordArrays, o.words)
}

func (o wordsOption) LogAttr() slog.Attr {
	return slog.Bool("words", o.words)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuggestFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithSuggestFixes(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fix)
}
