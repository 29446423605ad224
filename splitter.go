// nlquery - Splitter
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

import "strings"

/*
splitter turns a raw query string into an ordered sequence of
string-literal terms (spec §4.1). Whitespace is a boundary but never
emitted. Locale separators are both a boundary *and* emitted as their own
one-character term. Text between unescaped double quotes is kept verbatim,
including spaces, with the quotes removed. Ported from
original_source/parser.cpp's Parser::Private::split.
*/

// splitTerms splits query into literal terms. When splitSeparators is
// false, only whitespace is a boundary (used by the pattern matcher to
// tokenize a locale pattern rule into pattern tokens, spec §4.2).
//
// Quotes toggle a "between quotes" mode that suppresses whitespace/
// separator boundary detection without itself starting a new term; this
// mirrors original_source/parser.cpp's split() exactly, so `sent by
// "John Doe"` yields one term "John Doe" (quotes removed, space kept),
// while quotes touching other text without surrounding boundaries simply
// extend the current run, matching the original's behavior.
func splitTerms(query, separators string, splitSeparators bool) []Term {
	var terms []Term
	var part strings.Builder
	partStart := 0
	betweenQuotes := false

	flush := func(end int) {
		if part.Len() == 0 {
			return
		}
		terms = append(terms, NewStringLiteral(part.String(), Position{Start: partStart, Length: end - partStart}))
		part.Reset()
	}

	runes := []rune(query)
	for i, c := range runes {
		switch {
		case c == '"':
			betweenQuotes = !betweenQuotes
		case !betweenQuotes && (isSpace(c) || (splitSeparators && strings.ContainsRune(separators, c))):
			flush(i)
			partStart = i + 1
			if splitSeparators && strings.ContainsRune(separators, c) {
				terms = append(terms, NewStringLiteral(string(c), Position{Start: i, Length: 1}))
			}
		default:
			if part.Len() == 0 {
				partStart = i
			}
			part.WriteRune(c)
		}
	}

	flush(len(runes))

	return terms
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
