// nlquery - Subqueries pass
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

// SubqueriesPass fuses the ellipsis-captured run of a pattern like
// "related to ... ," into a single boolean subtree and attaches it to a
// configured property. Ported from pass_subqueries.cpp.
type SubqueriesPass struct {
	Property PropertyRef
	Calendar Calendar
}

// NewSubqueriesPass builds a SubqueriesPass.
func NewSubqueriesPass(property PropertyRef, cal Calendar) *SubqueriesPass {
	return &SubqueriesPass{Property: property, Calendar: cal}
}

// Run implements PassFunc.
func (p *SubqueriesPass) Run(captures []Term) []Term {
	if len(captures) == 0 {
		return nil
	}

	fused, _ := fuseTerms(p.Calendar, captures, 0)
	if fused.IsInvalid() {
		return nil
	}

	return []Term{NewComparison(p.Property, fused, Equal, Position{})}
}
