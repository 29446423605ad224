// nlquery - Pipeline driver
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
	"log/slog"

	"github.com/pkg/errors"
)

// Query is the structured result of Parse, handed to a downstream engine
// verbatim (spec §6).
type Query struct {
	Root Term
}

// Parser drives the fixpoint pipeline over one locale. It carries mutable
// pass configuration as plain fields, mutated between runPass calls
// exactly like the teacher's configuration-bearing driver mutates its
// token cursor between grammar rules.
type Parser struct {
	localizer Localizer
	calendar  Calendar
	logger    *slog.Logger

	splitUnits  *SplitUnitsPass
	numbers     *NumbersPass
	filesize    *FileSizePass
	typeHints   *TypeHintsPass
	tags        *TagsPass
	comparators *ComparatorsPass
	properties  *PropertiesPass
	periodNames *PeriodNamesPass
	datePeriods *DatePeriodsPass
	hourMinute  *HourMinutePass
	dateValues  *DateValuesPass
	subqueries  *SubqueriesPass

	compiled bool
}

// NewParser builds a Parser over localizer/calendar/tagBackend. logger
// may be nil, in which case slog.Default() is used.
func NewParser(localizer Localizer, calendar Calendar, tagBackend TagBackend, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}

	cache := newTagCache(tagBackend)

	p := &Parser{
		localizer:   localizer,
		calendar:    calendar,
		logger:      logger,
		splitUnits:  NewSplitUnitsPass(),
		numbers:     NewNumbersPass(),
		filesize:    NewFileSizePass(),
		typeHints:   NewTypeHintsPass(),
		tags:        &TagsPass{cache: cache},
		comparators: NewComparatorsPass(Equal),
		properties:  NewPropertiesPass(PropertyRef{}, RangeString, cache),
		periodNames: NewPeriodNamesPass(),
		datePeriods: NewDatePeriodsPass(PeriodVariable, DatePeriodValue, nil),
		hourMinute:  NewHourMinutePass(false),
		dateValues:  NewDateValuesPass(false),
		subqueries:  NewSubqueriesPass(PropRelatedTo, calendar),
	}
	return p
}

// Compile pre-validates every locale pattern the driver uses, returning
// an error for a missing or malformed pattern string (spec §7). NewParser
// does not call it; the first Parse call runs it when it has not been
// called yet. This is the only externally visible failure class the
// package has.
func (p *Parser) Compile() error {
	var empty []Term
	for _, key := range p.patternKeys() {
		pattern := p.localizer.Pattern(key)
		if pattern == "" {
			return errors.Errorf("nlquery: locale catalog missing pattern %q", key)
		}
		if _, err := runPass(&empty, pattern, func(_ []Term) []Term { return nil }); err != nil {
			return err
		}
	}
	p.compiled = true
	return nil
}

// patternKeys lists every catalog key Parse references, in the order
// they're run (spec §5's reference ordering).
func (p *Parser) patternKeys() []string {
	return []string{
		"splitunits", "numbers", "filesize", "typehints", "tags",
		"comparator.contains", "comparator.greater", "comparator.smaller", "comparator.equal",
		"property.sender", "property.subject", "property.recipient",
		"property.filesize", "property.filename",
		"property.senddate", "property.receiveddate", "property.createddate", "property.modifieddate",
		"periodnames",
		"dateperiod.offset", "dateperiod.invertedoffset",
		"dateperiod.next", "dateperiod.last",
		"dateperiod.tomorrow", "dateperiod.yesterday", "dateperiod.today",
		"hourminute.pm", "hourminute.am",
		"dateperiod.first", "dateperiod.lastvalue", "dateperiod.value",
		"datevalues.date", "datevalues.time", "datevalues.datetime",
		"subquery.relatedto",
		"numbers.decimalpoint",
	}
}

// Parse runs query through the fixpoint pipeline and fuses the result
// into a boolean tree (spec §4/§5). Parse returns no error; if Compile
// has not been called, Parse calls it first and panics on the error it
// returns.
func (p *Parser) Parse(queryText string) Query {
	if !p.compiled {
		if err := p.Compile(); err != nil {
			panic(err)
		}
	}

	terms := splitTerms(queryText, p.localizer.Separators(), true)
	p.runFixpoint(&terms)
	terms = foldDateTimes(p.calendar, terms)

	root, _ := fuseTerms(p.calendar, terms, 0)
	return Query{Root: root}
}

// Reset exists to satisfy spec §6's documented interface. Parser holds no
// cross-parse term state — each Parse call owns a freshly split local
// sequence — so there is nothing to clear.
func (p *Parser) Reset() {}

func (p *Parser) runFixpoint(terms *[]Term) {
	progress := true
	for progress {
		progress = false

		progress = p.step(terms, "SplitUnits", "splitunits", p.splitUnits.Run) || progress
		progress = p.step(terms, "Numbers", "numbers", p.numbers.Run) || progress
		progress = p.step(terms, "FileSize", "filesize", p.filesize.Run) || progress
		progress = p.step(terms, "TypeHints", "typehints", p.typeHints.Run) || progress
		progress = p.step(terms, "Tags", "tags", p.tags.Run) || progress

		progress = p.runComparator(terms, Contains, "comparator.contains") || progress
		progress = p.runComparator(terms, Greater, "comparator.greater") || progress
		progress = p.runComparator(terms, Smaller, "comparator.smaller") || progress
		progress = p.runComparator(terms, Equal, "comparator.equal") || progress

		progress = p.runProperty(terms, PropMessageFrom, RangeString, "property.sender") || progress
		progress = p.runProperty(terms, PropSubject, RangeString, "property.subject") || progress
		progress = p.runProperty(terms, PropRecipient, RangeString, "property.recipient") || progress
		progress = p.runProperty(terms, PropFileSize, RangeIntegerOrDouble, "property.filesize") || progress
		progress = p.runProperty(terms, PropFileName, RangeString, "property.filename") || progress
		progress = p.runProperty(terms, PropSentDate, RangeDateTime, "property.senddate") || progress
		progress = p.runProperty(terms, PropReceivedDate, RangeDateTime, "property.receiveddate") || progress
		progress = p.runProperty(terms, PropCreatedDate, RangeDateTime, "property.createddate") || progress
		progress = p.runProperty(terms, PropModifiedDate, RangeDateTime, "property.modifieddate") || progress

		progress = p.step(terms, "PeriodNames", "periodnames", p.periodNames.Run) || progress

		progress = p.runDatePeriod(terms, PeriodVariable, DatePeriodOffset, nil, "dateperiod.offset") || progress
		progress = p.runDatePeriod(terms, PeriodVariable, DatePeriodInvertedOffset, nil, "dateperiod.invertedoffset") || progress
		progress = p.runDatePeriod(terms, PeriodVariable, DatePeriodOffset, int64Ptr(1), "dateperiod.next") || progress
		progress = p.runDatePeriod(terms, PeriodVariable, DatePeriodOffset, int64Ptr(-1), "dateperiod.last") || progress
		progress = p.runDatePeriod(terms, PeriodDay, DatePeriodOffset, int64Ptr(1), "dateperiod.tomorrow") || progress
		progress = p.runDatePeriod(terms, PeriodDay, DatePeriodOffset, int64Ptr(-1), "dateperiod.yesterday") || progress
		progress = p.runDatePeriod(terms, PeriodDay, DatePeriodOffset, int64Ptr(0), "dateperiod.today") || progress

		p.hourMinute.Pm = true
		progress = p.step(terms, "HourMinute(pm)", "hourminute.pm", p.hourMinute.Run) || progress
		p.hourMinute.Pm = false
		progress = p.step(terms, "HourMinute(am)", "hourminute.am", p.hourMinute.Run) || progress

		progress = p.runDatePeriod(terms, PeriodVariable, DatePeriodValue, int64Ptr(0), "dateperiod.first") || progress
		progress = p.runDatePeriod(terms, PeriodVariable, DatePeriodValue, int64Ptr(-1), "dateperiod.lastvalue") || progress
		progress = p.runDatePeriod(terms, PeriodVariable, DatePeriodValue, nil, "dateperiod.value") || progress

		progress = p.step(terms, "DateValues(date)", "datevalues.date", p.dateValues.Run) || progress
		progress = p.step(terms, "DateValues(time)", "datevalues.time", p.dateValues.Run) || progress
		progress = p.step(terms, "DateValues(datetime)", "datevalues.datetime", p.dateValues.Run) || progress

		// Folding synthetic date-component comparisons into a single
		// DateTime literal (spec §4.4) has to happen inside the loop, not
		// just once after it: a date property keyword ("modified", "sent"...)
		// almost always sits next to a still-synthetic comparison the first
		// time Properties runs, so Properties declines that round. Folding
		// here turns it into a real Literal(DateTime) term in time for
		// Properties to pick it up on the next iteration, which DatePeriods/
		// DateValues making progress this round guarantees happens.
		*terms = foldDateTimes(p.calendar, *terms)

		progress = p.step(terms, "Subqueries", "subquery.relatedto", p.subqueries.Run) || progress

		// %1.%2, when not already consumed as an hour/minute, is a double
		// (spec §4.3.13).
		progress = p.step(terms, "Numbers(decimalpoint)", "numbers.decimalpoint", p.numbers.RunDecimalPoint) || progress
	}
}

func (p *Parser) runComparator(terms *[]Term, comparator Comparator, key string) bool {
	p.comparators.Comparator = comparator
	return p.step(terms, "Comparators", key, p.comparators.Run)
}

func (p *Parser) runProperty(terms *[]Term, property PropertyRef, rng PropertyRange, key string) bool {
	p.properties.Property = property
	p.properties.Range = rng
	return p.step(terms, "Properties", key, p.properties.Run)
}

func (p *Parser) runDatePeriod(terms *[]Term, period Period, kind DatePeriodValueKind, forced *int64, key string) bool {
	p.datePeriods.Period = period
	p.datePeriods.ValueKind = kind
	p.datePeriods.ForcedValue = forced
	return p.step(terms, "DatePeriods", key, p.datePeriods.Run)
}

// step runs one locale-translated pattern against terms, logging the
// outcome. A compile error here is a programmer error that Compile
// already reports; step is never given an error return, so it panics
// instead.
func (p *Parser) step(terms *[]Term, label, patternKey string, fn PassFunc) bool {
	pattern := p.localizer.Pattern(patternKey)
	progress, err := runPass(terms, pattern, fn)
	if err != nil {
		panic(errors.Wrapf(err, "nlquery: pass %s", label))
	}
	p.logger.Debug("pass", "pass", label, "pattern", patternKey, "matched", progress)
	return progress
}

func int64Ptr(v int64) *int64 { return &v }
