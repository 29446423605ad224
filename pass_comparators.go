// nlquery - Comparators pass
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

// ComparatorsPass sets the comparator of a bare literal or an already-
// built comparison. A property is attached later by PropertiesPass; see
// pass_comparators.cpp's comment on "age > 5" matching "> 5" before
// "age".
type ComparatorsPass struct {
	Comparator Comparator
}

// NewComparatorsPass builds a ComparatorsPass configured with comparator.
func NewComparatorsPass(comparator Comparator) *ComparatorsPass {
	return &ComparatorsPass{Comparator: comparator}
}

// Run implements PassFunc.
func (p *ComparatorsPass) Run(captures []Term) []Term {
	term := captures[0]

	switch {
	case term.IsComparison():
		term.Comparator = p.Comparator
		return []Term{term}
	case term.IsLiteral():
		return []Term{NewComparison(PropertyRef{}, term, p.Comparator, term.Pos)}
	default:
		return nil
	}
}
