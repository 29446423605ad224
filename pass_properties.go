// nlquery - Properties pass
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

// PropertyRange constrains which literal shapes a configured property
// accepts.
type PropertyRange int

const (
	RangeInteger PropertyRange = iota
	RangeIntegerOrDouble
	RangeString
	RangeDateTime
	RangeTag
)

// PropertiesPass attaches a configured property to a bare comparison or
// literal, coercing the subterm to the configured range. Ported from
// pass_properties.cpp.
type PropertiesPass struct {
	Property PropertyRef
	Range    PropertyRange
	cache    *tagCache
}

// NewPropertiesPass builds a PropertiesPass. tagCache may be nil unless
// range is RangeTag.
func NewPropertiesPass(property PropertyRef, rng PropertyRange, cache *tagCache) *PropertiesPass {
	return &PropertiesPass{Property: property, Range: rng, cache: cache}
}

// convertToRange coerces a literal term to the pass's configured range,
// returning an invalid term on mismatch.
func (p *PropertiesPass) convertToRange(term Term) Term {
	switch p.Range {
	case RangeInteger:
		if term.LitKind == LiteralInteger {
			return term
		}
	case RangeIntegerOrDouble:
		if term.LitKind == LiteralInteger || term.LitKind == LiteralDouble {
			return term
		}
	case RangeString:
		if term.LitKind == LiteralString {
			return term
		}
	case RangeDateTime:
		if term.LitKind == LiteralDateTime {
			return term
		}
	case RangeTag:
		if term.LitKind == LiteralString && p.cache != nil {
			if uri, ok := p.cache.lookup(term.Str); ok {
				return NewResource(uri, term.Pos)
			}
		}
	}
	return Term{}
}

// Run implements PassFunc.
func (p *PropertiesPass) Run(captures []Term) []Term {
	term := captures[0]

	var subterm Term
	var comparator Comparator

	switch {
	case term.IsComparison() && term.Subterm != nil && term.Subterm.IsLiteral():
		subterm = p.convertToRange(*term.Subterm)
		comparator = term.Comparator
	case term.IsLiteral():
		subterm = p.convertToRange(term)
		comparator = Equal
		if subterm.IsLiteralString() {
			comparator = Contains
		}
	default:
		return nil
	}

	if subterm.IsInvalid() {
		return nil
	}

	return []Term{NewComparison(p.Property, subterm, comparator, term.Pos)}
}
