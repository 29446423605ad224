// nlquery - DatePeriods pass
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

// DatePeriodValueKind selects how a DatePeriodsPass interprets its
// captured numeric value.
type DatePeriodValueKind int

const (
	DatePeriodValue DatePeriodValueKind = iota
	DatePeriodOffset
	DatePeriodInvertedOffset
)

// DatePeriodsPass emits a synthetic date-component comparison for a
// configured (or variable, name-captured) period. Ported from
// pass_dateperiods.cpp.
type DatePeriodsPass struct {
	Period      Period
	ValueKind   DatePeriodValueKind
	ForcedValue *int64
	Names       map[string]Period
}

// NewDatePeriodsPass builds a DatePeriodsPass with the default English
// period-name table (spec §4.3.8), used only when Period is
// PeriodVariable.
func NewDatePeriodsPass(period Period, kind DatePeriodValueKind, forcedValue *int64) *DatePeriodsPass {
	names := map[string]Period{
		"year": PeriodYear, "years": PeriodYear,
		"month": PeriodMonth, "months": PeriodMonth,
		"week": PeriodWeek, "weeks": PeriodWeek,
		"day": PeriodDay, "days": PeriodDay,
		"hour": PeriodHour, "hours": PeriodHour,
		"minute": PeriodMinute, "minutes": PeriodMinute,
		"second": PeriodSecond, "seconds": PeriodSecond,
		"dayofweek": PeriodDayOfWeek,
	}
	return &DatePeriodsPass{Period: period, ValueKind: kind, ForcedValue: forcedValue, Names: names}
}

// Run implements PassFunc.
func (p *DatePeriodsPass) Run(captures []Term) []Term {
	period := p.Period
	valueIndex := 0

	if period == PeriodVariable {
		name, ok := termStringValue(captures[0])
		if !ok {
			return nil
		}
		period, ok = p.Names[name]
		if !ok {
			return nil
		}
		valueIndex = 1
	}

	var value int64
	if p.ForcedValue != nil {
		value = *p.ForcedValue
	} else {
		if valueIndex >= len(captures) {
			return nil
		}
		v, ok := termIntValue(captures[valueIndex])
		if !ok {
			return nil
		}
		value = v
	}

	if p.ValueKind == DatePeriodInvertedOffset {
		value = -value
	}

	prop := syntheticPropertyURI(period, p.ValueKind != DatePeriodValue)

	pos := Position{}
	if len(captures) > 0 {
		pos = captures[0].Pos
	}
	return []Term{NewComparison(prop, NewIntLiteral(value, Position{}), Equal, pos)}
}
