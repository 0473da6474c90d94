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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/arraystyle/analyzer"
	"fillmore-labs.com/arraystyle/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.CopFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.WordArrays,
			args:    []string{"-symbols"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.SymbolArrays,
			args:    []string{"-symbols=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.SymbolArrays,
			args:    []string{"-symbols=off"},
			want:    false,
		},
		{
			name:    "Yes",
			initial: config.WordArrays,
			args:    []string{"-symbols=YES"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Cops
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.SymbolArrays
			fv := NewBitFlag(&flags, value)
			fs.Var(fv, "symbols", "check arrays of symbols")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("SymbolArrays enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if !flags.Enabled(tt.initial) && tt.initial != value {
				t.Errorf("Flag %v changed", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Cops

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewBitFlag(&flags, config.WordArrays), "words", "check arrays of strings")

	if err := fs.Parse([]string{"-words=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestBitFlagZero(t *testing.T) {
	t.Parallel()

	var zero flag.Getter = NewBitFlag[config.CopFlags](nil, config.SymbolArrays)

	if zero.String() != "false" || zero.Get() != false {
		t.Errorf("Got %s, want false", zero)
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Cops
	flags.Set(config.SymbolArrays, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBitFlag(&flags, config.SymbolArrays)
	fs.Var(fv, "symbols", "check arrays of symbols")

	const expectedUsage = `
  -symbols
    	check arrays of symbols (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	r := RegisterFlags(fs, WithMinSize(2))

	if err := fs.Parse([]string{"-style=infer", "-words=false", "-generated", "-percent-delimiters=()"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if r.Style.String() != "infer" || r.MinSize != 2 {
		t.Errorf("Got style %s and min size %d", r.Style, r.MinSize)
	}

	if r.Cops.Enabled(config.WordArrays) || !r.Cops.Enabled(config.SymbolArrays) {
		t.Error("Expected only symbol arrays enabled")
	}

	if !r.Behavior.Enabled(config.IncludeGenerated) {
		t.Error("Expected generated files included")
	}

	if r.Delimiters != "()" {
		t.Errorf("Got delimiters %q, want ()", r.Delimiters)
	}
}
