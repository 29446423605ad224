// nlquery - Term algebra
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
	"fmt"
	"net/url"
	"strings"
	"time"
)

/*
Term is a closed sum type (see spec ---DATA MODEL). We model it as a
single struct with a Kind discriminant rather than an interface per
variant, the same way the teacher's lexer_token carries a tag and lets
callers switch on it. The zero value of Term has Kind == KindInvalid,
which gives us the "Invalid is the uninitialized/zero term" invariant
for free.
*/

// Kind discriminates the Term sum type.
type Kind int

const (
	KindInvalid Kind = iota
	KindLiteral
	KindResource
	KindResourceType
	KindProperty
	KindComparison
	KindAnd
	KindOr
	KindNegation
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindLiteral:
		return "Literal"
	case KindResource:
		return "Resource"
	case KindResourceType:
		return "ResourceType"
	case KindProperty:
		return "Property"
	case KindComparison:
		return "Comparison"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindNegation:
		return "Negation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LiteralKind discriminates the tagged union carried by a Literal term.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralString
	LiteralInteger
	LiteralDouble
	LiteralDateTime
	LiteralBool
)

// Comparator enumerates the comparison operators a Comparison term can carry.
type Comparator int

const (
	Equal Comparator = iota
	Contains
	Greater
	GreaterOrEqual
	Smaller
	SmallerOrEqual
)

func (c Comparator) String() string {
	switch c {
	case Equal:
		return "="
	case Contains:
		return "contains"
	case Greater:
		return ">"
	case GreaterOrEqual:
		return ">="
	case Smaller:
		return "<"
	case SmallerOrEqual:
		return "<="
	default:
		return fmt.Sprintf("Comparator(%d)", int(c))
	}
}

// Period is the ordered enum of date/time granularities the date-period
// passes and the date-time folder reason about. VariablePeriod is a
// sentinel used only in pass configuration; it is never stored in a term.
type Period int

const (
	PeriodYear Period = iota
	PeriodMonth
	PeriodWeek
	PeriodDayOfWeek
	PeriodDay
	PeriodHour
	PeriodMinute
	PeriodSecond
	PeriodVariable
)

var periodNames = [...]string{
	"year", "month", "week", "dayofweek", "day", "hour", "minute", "second", "",
}

// Name returns the period's synthetic-URI host name.
func (p Period) Name() string {
	if p < 0 || int(p) >= len(periodNames) {
		return ""
	}
	return periodNames[p]
}

// periodFromName resolves a synthetic-URI host name to its Period, the
// inverse of Period.Name. Returns ok=false for an unknown name.
func periodFromName(name string) (Period, bool) {
	for i, n := range periodNames {
		if n == name && Period(i) != PeriodVariable {
			return Period(i), true
		}
	}
	return 0, false
}

// Position carries the character range in the original query text a term
// derives from. Passes that emit exactly one replacement term inherit
// position from the matched span (the pattern matcher does this); passes
// emitting several terms must set positions themselves.
type Position struct {
	Start  int
	Length int
}

// End returns the exclusive end offset of the position.
func (p Position) End() int { return p.Start + p.Length }

const syntheticScheme = "internal"
const syntheticHost = "dateperiod"

// PropertyRef is a URI reference to a property. Final output uses real
// vocabulary URIs; the synthetic scheme internal://dateperiod/<period>?
// offset|value exists only between the date-period passes and the
// date-time folder and must never leak into emitted output (spec
// invariant, see §3 and §8 property 2).
type PropertyRef struct {
	URI string
}

// IsSynthetic reports whether this property reference uses the
// internal://dateperiod/ scheme reserved for date-component comparisons.
func (p PropertyRef) IsSynthetic() bool {
	u, err := url.Parse(p.URI)
	if err != nil {
		return false
	}
	return u.Scheme == syntheticScheme && u.Host == syntheticHost
}

// SyntheticPeriod decodes a synthetic property's period and whether it is
// an offset (true) or an absolute value (false). ok is false if the
// property is not synthetic or malformed.
func (p PropertyRef) SyntheticPeriod() (period Period, offset bool, ok bool) {
	u, err := url.Parse(p.URI)
	if err != nil || u.Scheme != syntheticScheme || u.Host != syntheticHost {
		return 0, false, false
	}
	name := strings.Trim(u.Path, "/")
	period, ok = periodFromName(name)
	if !ok {
		return 0, false, false
	}
	switch u.RawQuery {
	case "offset":
		return period, true, true
	case "value":
		return period, false, true
	default:
		return 0, false, false
	}
}

// syntheticPropertyURI builds the internal://dateperiod/<period>?offset|value
// URI used between date-period passes and the date-time folder.
func syntheticPropertyURI(period Period, offset bool) PropertyRef {
	kind := "value"
	if offset {
		kind = "offset"
	}
	return PropertyRef{URI: fmt.Sprintf("%s://%s/%s?%s", syntheticScheme, syntheticHost, period.Name(), kind)}
}

// Well-known vocabulary property references used by the Properties, Tags
// and Subqueries passes for final output.
var (
	PropFileSize     = PropertyRef{URI: "nfo://fileSize"}
	PropFileName     = PropertyRef{URI: "nfo://fileName"}
	PropMessageFrom  = PropertyRef{URI: "nmo://messageFrom"}
	PropRecipient    = PropertyRef{URI: "nmo://messageRecipient"}
	PropSubject      = PropertyRef{URI: "nmo://messageSubject"}
	PropSentDate     = PropertyRef{URI: "nmo://sentDate"}
	PropReceivedDate = PropertyRef{URI: "nmo://receivedDate"}
	PropCreatedDate  = PropertyRef{URI: "nie://contentCreated"}
	PropModifiedDate = PropertyRef{URI: "nie://lastModified"}
	PropHasTag       = PropertyRef{URI: "nao://hasTag"}
	PropRelatedTo    = PropertyRef{URI: "nie://relatedTo"}
)

// Well-known resource-type URIs used by the TypeHints pass.
var (
	TypeFile     = "nfo://FileDataObject"
	TypeImage    = "nfo://Image"
	TypeVideo    = "nfo://Video"
	TypeAudio    = "nfo://Audio"
	TypeDocument = "nfo://Document"
	TypeEmail    = "nmo://Email"
)

// Term is a node of the intermediate or final query tree.
type Term struct {
	Kind Kind
	Pos  Position

	// Literal
	LitKind  LiteralKind
	Str      string
	Int      int64
	Double   float64
	DateTime time.Time
	Bool     bool

	// Resource / ResourceType
	URI string

	// Property (bare property reference)
	Property PropertyRef

	// Comparison
	CompProperty PropertyRef
	Subterm      *Term
	Comparator   Comparator

	// And / Or
	Subterms []Term

	// Negation
	Negated *Term
}

// IsInvalid reports whether t is the zero/uninitialized term.
func (t Term) IsInvalid() bool { return t.Kind == KindInvalid }

// IsValid is the complement of IsInvalid, matching the C++ original's
// Term::isValid() naming used throughout the passes.
func (t Term) IsValid() bool { return t.Kind != KindInvalid }

// IsLiteral reports whether t is a Literal term.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// IsLiteralString reports whether t is a Literal(String) term.
func (t Term) IsLiteralString() bool { return t.Kind == KindLiteral && t.LitKind == LiteralString }

// IsComparison reports whether t is a Comparison term.
func (t Term) IsComparison() bool { return t.Kind == KindComparison }

// NewStringLiteral builds a Literal(String) term.
func NewStringLiteral(s string, pos Position) Term {
	return Term{Kind: KindLiteral, LitKind: LiteralString, Str: s, Pos: pos}
}

// NewIntLiteral builds a Literal(Integer) term.
func NewIntLiteral(v int64, pos Position) Term {
	return Term{Kind: KindLiteral, LitKind: LiteralInteger, Int: v, Pos: pos}
}

// NewDoubleLiteral builds a Literal(Double) term.
func NewDoubleLiteral(v float64, pos Position) Term {
	return Term{Kind: KindLiteral, LitKind: LiteralDouble, Double: v, Pos: pos}
}

// NewDateTimeLiteral builds a Literal(DateTime) term.
func NewDateTimeLiteral(v time.Time, pos Position) Term {
	return Term{Kind: KindLiteral, LitKind: LiteralDateTime, DateTime: v, Pos: pos}
}

// NewBoolLiteral builds a Literal(Bool) term.
func NewBoolLiteral(v bool, pos Position) Term {
	return Term{Kind: KindLiteral, LitKind: LiteralBool, Bool: v, Pos: pos}
}

// NewResource builds a Resource term referencing uri.
func NewResource(uri string, pos Position) Term {
	return Term{Kind: KindResource, URI: uri, Pos: pos}
}

// NewResourceType builds a ResourceType term constraining to typeURI.
func NewResourceType(typeURI string, pos Position) Term {
	return Term{Kind: KindResourceType, URI: typeURI, Pos: pos}
}

// NewProperty builds a bare Property term. No pass in this package emits
// one; Comparators produces property-less Comparison terms instead.
func NewProperty(propertyURI string, pos Position) Term {
	return Term{Kind: KindProperty, Property: PropertyRef{URI: propertyURI}, Pos: pos}
}

// NewComparison builds a Comparison term. subterm is copied by value into
// an owned child; Comparison.Subterm is a Literal or Resource per spec
// invariant (except transiently during date folding, where it is a
// Literal integer).
func NewComparison(property PropertyRef, subterm Term, comparator Comparator, pos Position) Term {
	st := subterm
	return Term{
		Kind:         KindComparison,
		CompProperty: property,
		Subterm:      &st,
		Comparator:   comparator,
		Pos:          pos,
	}
}

// NewAnd builds an And term over subterms, in left-to-right source order.
func NewAnd(subterms ...Term) Term {
	return Term{Kind: KindAnd, Subterms: subterms}
}

// NewOr builds an Or term over subterms, in left-to-right source order.
func NewOr(subterms ...Term) Term {
	return Term{Kind: KindOr, Subterms: subterms}
}

// NewNegation builds a Negation term wrapping subterm.
func NewNegation(subterm Term) Term {
	st := subterm
	return Term{Kind: KindNegation, Negated: &st, Pos: subterm.Pos}
}

// String renders a compact, debug-oriented representation of the term
// tree; it is not meant for serialization, only for logging and test
// failure messages.
func (t Term) String() string {
	switch t.Kind {
	case KindInvalid:
		return "Invalid"
	case KindLiteral:
		switch t.LitKind {
		case LiteralString:
			return fmt.Sprintf("%q", t.Str)
		case LiteralInteger:
			return fmt.Sprintf("%d", t.Int)
		case LiteralDouble:
			return fmt.Sprintf("%g", t.Double)
		case LiteralDateTime:
			return t.DateTime.Format(time.RFC3339)
		case LiteralBool:
			return fmt.Sprintf("%t", t.Bool)
		default:
			return "Literal(?)"
		}
	case KindResource:
		return fmt.Sprintf("Resource(%s)", t.URI)
	case KindResourceType:
		return fmt.Sprintf("ResourceType(%s)", t.URI)
	case KindProperty:
		return fmt.Sprintf("Property(%s)", t.Property.URI)
	case KindComparison:
		sub := "?"
		if t.Subterm != nil {
			sub = t.Subterm.String()
		}
		return fmt.Sprintf("Comparison(%s, %s, %s)", t.CompProperty.URI, t.Comparator, sub)
	case KindAnd:
		return joinTerms("And", t.Subterms)
	case KindOr:
		return joinTerms("Or", t.Subterms)
	case KindNegation:
		sub := "?"
		if t.Negated != nil {
			sub = t.Negated.String()
		}
		return fmt.Sprintf("Negation(%s)", sub)
	default:
		return "?"
	}
}

func joinTerms(name string, terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
