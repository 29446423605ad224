// nlquery - SplitUnits pass
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
	"unicode"

	"github.com/samber/lo"
)

// SplitUnitsPass detaches a leading or trailing unit suffix from a single
// literal term, e.g. "2mb" -> "2", "mb". Ported from pass_splitunits.cpp.
type SplitUnitsPass struct {
	KnownUnits map[string]struct{}
}

// NewSplitUnitsPass builds a SplitUnitsPass configured with the default
// English unit vocabulary (spec §4.3.1).
func NewSplitUnitsPass() *SplitUnitsPass {
	words := strings.Fields("k m g b kb mb gb tb kib mib gib tib h am pm th rd nd st")
	return &SplitUnitsPass{KnownUnits: lo.SliceToMap(words, func(w string) (string, struct{}) {
		return w, struct{}{}
	})}
}

func (p *SplitUnitsPass) known(s string) bool {
	_, ok := p.KnownUnits[s]
	return ok
}

// Run implements PassFunc.
func (p *SplitUnitsPass) Run(captures []Term) []Term {
	value, ok := termStringValue(captures[0])
	if !ok {
		return nil
	}
	pos := captures[0].Pos
	runes := []rune(value)

	prefixLen := 0
	for prefixLen < len(runes) && unicode.IsLetter(runes[prefixLen]) {
		prefixLen++
	}

	if prefixLen > 0 && prefixLen < len(runes) {
		prefix := strings.ToLower(string(runes[:prefixLen]))
		if p.known(prefix) {
			rest := string(runes[prefixLen:])
			return []Term{
				NewStringLiteral(prefix, Position{Start: pos.Start, Length: prefixLen}),
				NewStringLiteral(rest, Position{Start: pos.Start + prefixLen, Length: len(runes) - prefixLen}),
			}
		}
	}

	suffixLen := 0
	for suffixLen < len(runes) && unicode.IsLetter(runes[len(runes)-1-suffixLen]) {
		suffixLen++
	}

	if suffixLen > 0 && suffixLen < len(runes) {
		suffix := strings.ToLower(string(runes[len(runes)-suffixLen:]))
		if p.known(suffix) {
			head := string(runes[:len(runes)-suffixLen])
			return []Term{
				NewStringLiteral(head, Position{Start: pos.Start, Length: len(runes) - suffixLen}),
				NewStringLiteral(suffix, Position{Start: pos.Start + len(runes) - suffixLen, Length: suffixLen}),
			}
		}
	}

	return nil
}
