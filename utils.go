// nlquery - Utilities
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
	"time"

	"github.com/samber/lo"
)

// termStringValue returns a Literal(String) term's value, and ok=false for
// anything else (ported from utils.cpp's termStringValue).
func termStringValue(t Term) (string, bool) {
	if !t.IsLiteralString() {
		return "", false
	}
	return t.Str, true
}

// termIntValue returns a Literal(Integer) term's value, and ok=false for
// anything else (ported from utils.cpp's termIntValue).
func termIntValue(t Term) (int64, bool) {
	if t.Kind != KindLiteral || t.LitKind != LiteralInteger {
		return 0, false
	}
	return t.Int, true
}

// connectiveWords are the case-insensitive tokens the fuser treats as
// boolean connectives rather than free-text literals.
var (
	orWords  = []string{"or"}
	andWords = []string{"and", "+"}
	notWords = []string{"!", "not", "-"}
)

const stopWordMaxLength = 2

// intervalWidth returns the calendar/clock interval associated with the
// deepest-defined period tunneled through a DateTime literal's
// milliseconds (see datetimefold.go), used to expand an Equal comparison
// over a date-time into a range whose end bound is inclusive
// (SmallerOrEqual, see intervalComparison).
func intervalWidth(cal Calendar, start time.Time, period Period) time.Time {
	switch period {
	case PeriodYear:
		return cal.AddYears(start, 1)
	case PeriodMonth:
		return cal.AddMonths(start, 1)
	case PeriodWeek:
		return cal.AddDays(start, 7)
	case PeriodDayOfWeek, PeriodDay:
		return cal.AddDays(start, 1)
	case PeriodHour:
		return start.Add(time.Hour)
	case PeriodMinute:
		return start.Add(time.Minute)
	case PeriodSecond:
		return start.Add(time.Second)
	default:
		return start
	}
}

// intervalComparison expands a Comparison(property, Literal(DateTime),
// Equal) term into And(GreaterOrEqual(start), SmallerOrEqual(end)) where
// end is computed from the period tunneled through start's milliseconds
// field (spec §4.5, ported from utils.cpp's intervalComparison).
func intervalComparison(cal Calendar, property PropertyRef, start time.Time) Term {
	period := Period(start.Nanosecond() / int(time.Millisecond))
	end := intervalWidth(cal, stripPeriodTunnel(start), period)

	return NewAnd(
		NewComparison(property, NewDateTimeLiteral(stripPeriodTunnel(start), Position{}), GreaterOrEqual, Position{}),
		NewComparison(property, NewDateTimeLiteral(end, Position{}), SmallerOrEqual, Position{}),
	)
}

// stripPeriodTunnel clears the millisecond-tunneled period code so the
// interval boundary comparisons carry a clean date-time value.
func stripPeriodTunnel(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// fuser walks a term sequence and collapses it into one boolean tree
// (spec §4.5). It is constructed once per fuseTerms call (and recursively
// for parenthesized sub-ranges), mirroring the C++ original's function
// parameters becoming a small piece of state.
type fuser struct {
	terms []Term
	cal   Calendar
}

// fuseTerms walks terms[firstIndex:] and returns the fused term plus the
// index just past the consumed range (end == len(terms) unless a ")"
// caused an early return, matching the C++ original's end_term_index
// out-parameter).
func fuseTerms(cal Calendar, terms []Term, firstIndex int) (Term, int) {
	f := fuser{terms: terms, cal: cal}
	return f.fuse(firstIndex)
}

func (f *fuser) fuse(firstIndex int) (Term, int) {
	var acc Term
	buildAnd := true
	buildNot := false

	i := firstIndex
	for ; i < len(f.terms); i++ {
		term := f.terms[i]

		if term.IsLiteralString() {
			content := strings.ToLower(term.Str)

			switch {
			case content == "(":
				sub, end := f.fuse(i + 1)
				acc = f.splice(acc, sub, buildAnd, buildNot)
				buildAnd, buildNot = true, false
				i = end
				continue
			case content == ")":
				return acc, i
			case lo.Contains(orWords, content):
				buildAnd = false
				continue
			case lo.Contains(andWords, content):
				buildAnd = true
				continue
			case lo.Contains(notWords, content):
				buildNot = true
				continue
			case len(content) <= stopWordMaxLength:
				// Stop-words are dropped silently (locale-specific opt-out).
				continue
			}
		}

		term = f.expandIfDateEquality(term)
		acc = f.splice(acc, term, buildAnd, buildNot)
		buildAnd, buildNot = true, false
	}

	return acc, i
}

// expandIfDateEquality applies the interval-expansion rule for an Equal
// comparison over a Literal(DateTime) subterm.
func (f *fuser) expandIfDateEquality(term Term) Term {
	if term.Kind != KindComparison || term.Comparator != Equal || term.Subterm == nil {
		return term
	}
	if term.Subterm.Kind != KindLiteral || term.Subterm.LitKind != LiteralDateTime {
		return term
	}
	return intervalComparison(f.cal, term.CompProperty, term.Subterm.DateTime)
}

// splice negates term if buildNot is set, then folds it into acc using
// the requested connective, appending to an existing same-connective node
// rather than nesting.
func (f *fuser) splice(acc, term Term, buildAnd, buildNot bool) Term {
	if buildNot {
		term = NewNegation(term)
	}

	if acc.IsInvalid() {
		return term
	}

	if buildAnd {
		if acc.Kind == KindAnd {
			acc.Subterms = append(acc.Subterms, term)
			return acc
		}
		return NewAnd(acc, term)
	}

	if acc.Kind == KindOr {
		acc.Subterms = append(acc.Subterms, term)
		return acc
	}
	return NewOr(acc, term)
}
