// nlquery - Numbers pass
// Copyright (C) 2024 nlquery contributors; All Rights Reserved

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package nlquery

import (
	"math"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
)

// NumbersPass resolves one literal term to an integer or double, first
// against a localized number-name table, then by permissive numeric
// coercion. Ported from pass_numbers.cpp.
type NumbersPass struct {
	Names map[string]int64
	fold  cases.Caser
}

// NewNumbersPass builds a NumbersPass with the default English name table
// (spec §4.3.2).
func NewNumbersPass() *NumbersPass {
	p := &NumbersPass{Names: map[string]int64{}, fold: cases.Fold()}
	register := func(n int64, names string) {
		for _, name := range strings.Fields(names) {
			p.Names[name] = n
		}
	}
	register(0, "zero naught null")
	register(1, "one a first")
	register(2, "two second")
	register(3, "three third")
	register(4, "four fourth")
	register(5, "five fifth")
	register(6, "six sixth")
	register(7, "seven seventh")
	register(8, "eight eighth")
	register(9, "nine nineth")
	register(10, "ten tenth")
	return p
}

// Run implements PassFunc.
func (p *NumbersPass) Run(captures []Term) []Term {
	raw, ok := termStringValue(captures[0])
	if !ok {
		return nil
	}
	pos := captures[0].Pos
	value := p.fold.String(raw)

	if n, ok := p.Names[value]; ok {
		return []Term{NewIntLiteral(n, pos)}
	}

	// Prefer integer over double, matching the original's toLongLong-first
	// behavior.
	if n, err := cast.ToInt64E(value); err == nil {
		return []Term{NewIntLiteral(n, pos)}
	}
	if d, err := cast.ToFloat64E(value); err == nil {
		return []Term{NewDoubleLiteral(d, pos)}
	}

	return nil
}

// RunDecimalPoint reconstructs a locale-specific decimal number from two
// already-resolved integer captures straddling a literal "." token (spec
// §4.3.13, pattern "%1 \. %2"). The fractional part's original digit
// count is recovered from its source position length rather than its
// integer value, since the integer value alone can't distinguish "1.5"
// from "1.05".
func (p *NumbersPass) RunDecimalPoint(captures []Term) []Term {
	whole, ok := termIntValue(captures[0])
	if !ok {
		return nil
	}
	frac := captures[1]
	fracValue, ok := termIntValue(frac)
	if !ok || fracValue < 0 || frac.Pos.Length <= 0 {
		return nil
	}

	sign := 1.0
	if whole < 0 {
		sign = -1
		whole = -whole
	}

	value := sign * (float64(whole) + float64(fracValue)/math.Pow(10, float64(frac.Pos.Length)))
	pos := Position{Start: captures[0].Pos.Start, Length: frac.Pos.End() - captures[0].Pos.Start}

	return []Term{NewDoubleLiteral(value, pos)}
}
