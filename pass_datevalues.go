// nlquery - DateValues pass
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

// DateValuesPass resolves up to seven positional captures (year, month,
// day, dayOfWeek, hour, minute, second) into synthetic date-component
// comparisons, bounds-checked per period. Ported from pass_datevalues.cpp.
//
// It must decline unless it produces at least one *new* comparison —
// otherwise a pass-through comparison it merely re-validated would look
// like progress forever and the fixpoint would never terminate (spec §5).
type DateValuesPass struct {
	Pm bool
}

// NewDateValuesPass builds a DateValuesPass.
func NewDateValuesPass(pm bool) *DateValuesPass {
	return &DateValuesPass{Pm: pm}
}

var dateValuePeriods = [7]Period{
	PeriodYear, PeriodMonth, PeriodDay, PeriodDayOfWeek, PeriodHour, PeriodMinute, PeriodSecond,
}

// Conservative bounds: some calendars have months with more than 31 days
// and the year range simply needs to not reject any plausible absolute
// year.
var dateValueMin = [7]int64{0, 1, 1, 1, 0, 0, 0}
var dateValueMax = [7]int64{1 << 30, 60, 500, 7, 24, 60, 60}

// Run implements PassFunc.
func (p *DateValuesPass) Run(captures []Term) []Term {
	var rs []Term
	progress := false

	for i, period := range dateValuePeriods {
		if i >= len(captures) || captures[i].IsInvalid() {
			continue
		}
		term := captures[i]

		value, ok := termIntValue(term)
		if !ok {
			if !term.IsComparison() {
				return nil
			}
			prop := syntheticPropertyURI(period, false)
			if term.CompProperty.URI != prop.URI {
				return nil
			}
			rs = append(rs, term)
			continue
		}

		if value < dateValueMin[i] || value > dateValueMax[i] {
			return nil
		}

		if period == PeriodHour && p.Pm {
			value += 12
		}

		progress = true
		rs = append(rs, NewComparison(syntheticPropertyURI(period, false), NewIntLiteral(value, Position{}), Equal, term.Pos))
	}

	if !progress {
		return nil
	}

	return rs
}
