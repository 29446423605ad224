// nlquery - PeriodNames pass
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

// PeriodNamesPass resolves a day-of-week or month name to a synthetic
// date-component comparison. Ported from pass_periodnames.cpp.
type PeriodNamesPass struct {
	DayNames   map[string]int64
	MonthNames map[string]int64
	fold       cases.Caser
}

// NewPeriodNamesPass builds a PeriodNamesPass with the default English
// day/month name tables, 1-indexed per spec §4.3.9.
func NewPeriodNamesPass() *PeriodNamesPass {
	p := &PeriodNamesPass{
		DayNames:   map[string]int64{},
		MonthNames: map[string]int64{},
		fold:       cases.Fold(),
	}
	days := strings.Fields("monday tuesday wednesday thursday friday saturday sunday")
	for i, d := range days {
		p.DayNames[d] = int64(i + 1)
	}
	months := strings.Fields("january february march april may june july august september october november december")
	for i, m := range months {
		p.MonthNames[m] = int64(i + 1)
	}
	return p
}

// Run implements PassFunc.
func (p *PeriodNamesPass) Run(captures []Term) []Term {
	raw, ok := termStringValue(captures[0])
	if !ok {
		return nil
	}
	name := p.fold.String(raw)
	pos := captures[0].Pos

	if idx, ok := p.DayNames[name]; ok {
		return []Term{NewComparison(syntheticPropertyURI(PeriodDayOfWeek, false), NewIntLiteral(idx, Position{}), Equal, pos)}
	}
	if idx, ok := p.MonthNames[name]; ok {
		return []Term{NewComparison(syntheticPropertyURI(PeriodMonth, false), NewIntLiteral(idx, Position{}), Equal, pos)}
	}

	return nil
}
