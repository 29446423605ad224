// nlquery - FileSize pass
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
	"strings"

	"golang.org/x/text/cases"
)

// FileSizePass matches a (number, unit) pair and folds it into a single
// literal carrying the size in bytes. Ported from pass_filesize.cpp.
type FileSizePass struct {
	Multipliers map[string]int64
	fold        cases.Caser
}

// NewFileSizePass builds a FileSizePass with SI and binary byte
// multipliers (spec §4.3.3).
func NewFileSizePass() *FileSizePass {
	p := &FileSizePass{Multipliers: map[string]int64{}, fold: cases.Fold()}
	register := func(multiplier int64, units string) {
		for _, u := range strings.Fields(units) {
			p.Multipliers[u] = multiplier
		}
	}
	register(1000, "kb kilobyte kilobytes")
	register(1000*1000, "mb megabyte megabytes")
	register(1000*1000*1000, "gb gigabyte gigabytes")
	register(1000*1000*1000*1000, "tb terabyte terabytes")
	register(1<<10, "kib k kibibyte kibibytes")
	register(1<<20, "mib m mebibyte mebibytes")
	register(1<<30, "gib g gibibyte gibibytes")
	register(1<<40, "tib t tebibyte tebibytes")
	return p
}

// Run implements PassFunc.
func (p *FileSizePass) Run(captures []Term) []Term {
	number, unitTerm := captures[0], captures[1]
	if !number.IsLiteral() || !unitTerm.IsLiteralString() {
		return nil
	}

	unit := p.fold.String(unitTerm.Str)
	multiplier, ok := p.Multipliers[unit]
	if !ok {
		return nil
	}

	pos := Position{Start: number.Pos.Start, Length: unitTerm.Pos.End() - number.Pos.Start}

	switch number.LitKind {
	case LiteralInteger:
		return []Term{NewIntLiteral(number.Int*multiplier, pos)}
	case LiteralDouble:
		return []Term{NewDoubleLiteral(number.Double*float64(multiplier), pos)}
	default:
		return nil
	}
}
