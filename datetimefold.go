// nlquery - Date-time folder
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

import "time"

// fieldFlag discriminates whether a dateTimeSpec field was never touched,
// carries an absolute value, or carries a relative delta.
type fieldFlag int

const (
	fieldUnset fieldFlag = iota
	fieldAbsolute
	fieldRelative
)

type dateTimeField struct {
	value int64
	flag  fieldFlag
}

// dateTimeSpec accumulates synthetic date-component comparisons between
// flushes, one field per Period (indices Year..Second; Variable unused).
// Ported from the fold described in spec §4.4, which the original
// implementation spreads across pass_datevalues.cpp and utils.cpp rather
// than keeping as one function.
type dateTimeSpec struct {
	fields  [8]dateTimeField
	hasData bool
}

func (s *dateTimeSpec) set(period Period, value int64, relative bool) {
	flag := fieldAbsolute
	if relative {
		flag = fieldRelative
	}
	s.fields[period] = dateTimeField{value: value, flag: flag}
	s.hasData = true
}

// deepest returns the largest Period with a defined field within
// [from, to], or -1 if none in that range are defined.
func (s *dateTimeSpec) deepest(from, to Period) int {
	found := -1
	for p := from; p <= to; p++ {
		if s.fields[p].flag != fieldUnset {
			found = int(p)
		}
	}
	return found
}

// seed resolves period's absolute component value: its own absolute
// value if set; otherwise, if its group has any field defined, the
// current value when period is no deeper than the group's deepest
// defined field and the period's epoch value when it's deeper; otherwise
// (the whole group is untouched) whenGroupUnset (spec §4.4 step 1). The
// date group's whenGroupUnset is "today" (an unqualified time still
// needs a day to live on); the time group's is midnight (an unqualified
// date means the whole day, not this exact moment).
func (s *dateTimeSpec) seed(period Period, groupDeepest int, current, epoch, whenGroupUnset int64) int64 {
	f := s.fields[period]
	if f.flag == fieldAbsolute {
		return f.value
	}
	if groupDeepest == -1 {
		return whenGroupUnset
	}
	if int(period) <= groupDeepest {
		return current
	}
	return epoch
}

// foldDateTimes walks terms once, replacing each run of synthetic date-
// component comparisons with one assembled Literal(DateTime) term (spec
// §4.4).
func foldDateTimes(cal Calendar, terms []Term) []Term {
	out := make([]Term, 0, len(terms))
	spec := &dateTimeSpec{}

	flush := func() {
		if spec.hasData {
			out = append(out, NewDateTimeLiteral(spec.assemble(cal), Position{}))
			spec = &dateTimeSpec{}
		}
	}

	for _, term := range terms {
		if term.IsComparison() && term.Subterm != nil && term.Subterm.LitKind == LiteralInteger {
			if period, offset, ok := term.CompProperty.SyntheticPeriod(); ok {
				spec.set(period, term.Subterm.Int, offset)
				continue
			}
		}

		flush()
		out = append(out, term)
	}

	flush()

	return out
}

// assemble runs the date-assembly algorithm (spec §4.4 steps 1-6) and
// tunnels the deepest-defined period through the result's millisecond
// field.
func (s *dateTimeSpec) assemble(cal Calendar) time.Time {
	now := cal.Now()

	deepestDate := s.deepest(PeriodYear, PeriodDay)
	deepestTime := s.deepest(PeriodHour, PeriodSecond)

	year := s.seed(PeriodYear, deepestDate, int64(cal.Year(now)), int64(cal.Year(now)), int64(cal.Year(now)))
	month := s.seed(PeriodMonth, deepestDate, int64(cal.Month(now)), 1, int64(cal.Month(now)))
	day := s.seed(PeriodDay, deepestDate, int64(cal.Day(now)), 1, int64(cal.Day(now)))

	monthDefined := s.fields[PeriodMonth].flag != fieldUnset
	weekDefined := s.fields[PeriodWeek].flag != fieldUnset
	dayOfWeekDefined := s.fields[PeriodDayOfWeek].flag != fieldUnset

	var absDate time.Time
	if monthDefined {
		absDate = cal.SetDate(now, int(year), int(month), int(day))
	} else {
		dayOfYear := s.seed(PeriodDay, deepestDate, int64(cal.DayOfYear(now)), 1, int64(cal.DayOfYear(now)))
		absDate = cal.SetDateFromDayOfYear(now, int(year), int(dayOfYear))
	}

	if weekDefined || dayOfWeekDefined {
		isoWeek, isoYear := cal.Week(now)
		weekday := s.seed(PeriodDayOfWeek, deepestDate, int64(cal.DayOfWeek(now)), 1, int64(cal.DayOfWeek(now)))

		if weekDefined && monthDefined {
			// Week-of-month: the first ISO week of the resolved month,
			// plus (week-1) weeks.
			monthStart := cal.SetDate(now, int(year), int(month), 1)
			firstWeek, firstYear := cal.Week(monthStart)
			week := s.fields[PeriodWeek].value
			absDate = cal.SetDateISOWeek(now, firstYear, firstWeek+int(week)-1, int(weekday))
		} else {
			week := s.seed(PeriodWeek, deepestDate, int64(isoWeek), int64(isoWeek), int64(isoWeek))
			yearForWeek := s.seed(PeriodYear, deepestDate, int64(isoYear), int64(isoYear), int64(isoYear))
			absDate = cal.SetDateISOWeek(now, int(yearForWeek), int(week), int(weekday))
		}
	}

	// Apply relative date deltas in order Year, Month, Week, Day.
	if f := s.fields[PeriodYear]; f.flag == fieldRelative {
		absDate = cal.AddYears(absDate, int(f.value))
	}
	if f := s.fields[PeriodMonth]; f.flag == fieldRelative {
		absDate = cal.AddMonths(absDate, int(f.value))
	}
	if f := s.fields[PeriodWeek]; f.flag == fieldRelative {
		absDate = cal.AddDays(absDate, int(f.value)*cal.DaysInWeek())
	}
	if f := s.fields[PeriodDay]; f.flag == fieldRelative {
		absDate = cal.AddDays(absDate, int(f.value))
	}

	hour := s.seed(PeriodHour, deepestTime, int64(now.Hour()), 0, 0)
	minute := s.seed(PeriodMinute, deepestTime, int64(now.Minute()), 0, 0)
	second := s.seed(PeriodSecond, deepestTime, int64(now.Second()), 0, 0)

	result := time.Date(absDate.Year(), absDate.Month(), absDate.Day(), int(hour), int(minute), int(second), 0, absDate.Location())

	var relativeSeconds int64
	if f := s.fields[PeriodHour]; f.flag == fieldRelative {
		relativeSeconds += f.value * 3600
	}
	if f := s.fields[PeriodMinute]; f.flag == fieldRelative {
		relativeSeconds += f.value * 60
	}
	if f := s.fields[PeriodSecond]; f.flag == fieldRelative {
		relativeSeconds += f.value
	}
	result = result.Add(time.Duration(relativeSeconds) * time.Second)

	deepestOverall := s.deepest(PeriodYear, PeriodSecond)
	if deepestOverall == -1 {
		deepestOverall = int(PeriodDay)
	}
	return result.Add(time.Duration(deepestOverall) * time.Millisecond)
}
