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
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/arraystyle/internal/config"
)

// bitFlag is a boolean [flag.Value] switching a single bit of a [config.BitMask].
// It serves both the checked element kinds and the behavioral options.
type bitFlag[T config.Bits] struct {
	mask *config.BitMask[T]
	bit  T
}

func newBitFlag[T config.Bits](mask *config.BitMask[T], bit T) bitFlag[T] {
	return bitFlag[T]{mask: mask, bit: bit}
}

// Set implements [flag.Value].
func (f bitFlag[T]) Set(s string) error {
	on, err := parseSwitch(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.bit, on)

	return nil
}

// String implements [flag.Value].
func (f bitFlag[T]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f bitFlag[T]) Get() any {
	return f.enabled()
}

// IsBoolFlag marks the value as a switch, so "-words" means "-words=true".
func (bitFlag[T]) IsBoolFlag() bool { return true }

// enabled is false for the zero value, which the flag package creates to detect defaults.
func (f bitFlag[T]) enabled() bool {
	return f.mask != nil && f.mask.Enabled(f.bit)
}

// parseSwitch accepts the values of [strconv.ParseBool] and the YAML-style on/off and yes/no, case-insensitive.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil

	case "off", "no":
		return false, nil
	}

	on, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return false, fmt.Errorf("invalid switch %q, want true or false", s)
	}

	return on, nil
}
