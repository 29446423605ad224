// nlquery - HourMinute pass
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

// HourMinutePass is a shortcut over a subset of DateValues, interpreting
// "HH[:.]MM" / "HH h" / "HH pm" style captures directly into Hour and
// optional Minute synthetic comparisons. Ported from pass_hourminute.cpp.
type HourMinutePass struct {
	Pm bool
}

// NewHourMinutePass builds an HourMinutePass.
func NewHourMinutePass(pm bool) *HourMinutePass {
	return &HourMinutePass{Pm: pm}
}

// Run implements PassFunc.
func (p *HourMinutePass) Run(captures []Term) []Term {
	hour, ok := termIntValue(captures[0])
	if !ok {
		return nil
	}

	var minuteTerm Term
	hasMinute := len(captures) == 2
	if hasMinute {
		minute, ok := termIntValue(captures[1])
		if !ok {
			return nil
		}
		minuteTerm = NewComparison(syntheticPropertyURI(PeriodMinute, false), NewIntLiteral(minute, Position{}), Equal, captures[1].Pos)
	}

	if p.Pm {
		hour += 12
	}

	rs := []Term{NewComparison(syntheticPropertyURI(PeriodHour, false), NewIntLiteral(hour, Position{}), Equal, captures[0].Pos)}
	if hasMinute {
		rs = append(rs, minuteTerm)
	}

	return rs
}
