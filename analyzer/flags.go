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
	"flag"

	"fillmore-labs.com/arraystyle/internal/config"
	"fillmore-labs.com/arraystyle/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.TextVar(&r.Style, "style", r.Style, "enforced style: percent, brackets or infer")
	flags.IntVar(&r.MinSize, "min-size", r.MinSize, "minimum number of elements to enforce a style")
	flags.StringVar(&r.WordPattern, "word-regex", r.WordPattern, "pattern for strings allowed in word literals")
	flags.StringVar(&r.Delimiters, "percent-delimiters", r.Delimiters, "delimiters of percent literals: [], (), {} or <>")
	flags.Var(newBitFlag(&r.Cops, config.SymbolArrays), "symbols", "check arrays of symbols")
	flags.Var(newBitFlag(&r.Cops, config.WordArrays), "words", "check arrays of strings")
	flags.Var(newBitFlag(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBitFlag(&r.Behavior, config.SuggestFixes), "suggest-fixes", "suggest fixes for offenses")
}

// RegisterFlags binds the options of a command line run to flag values.
// A nil flag set value defaults to the program's command line.
func RegisterFlags(flags *flag.FlagSet, opts ...Option) *run.Options {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	registerFlags(flags, r)

	return r
}
