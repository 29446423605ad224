// nlquery - Pattern matcher
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
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PassFunc is a pure function of a captured term vector, returning the
// terms that should replace the matched span, or nil/empty to decline
// (spec §4.3).
type PassFunc func(captures []Term) []Term

// patternToken is one element of a tokenized pattern rule (spec §4.2):
// a capture slot (%N), the ellipsis catch-all (...), or a literal token
// matched as a case-insensitive regular expression against a
// Literal(String) term.
type patternToken struct {
	raw          string
	isCapture    bool
	captureIndex int
	isEllipsis   bool
	re           *regexp.Regexp
}

// compilePattern tokenizes rule on whitespace and compiles each non-
// capture, non-ellipsis token as a case-insensitive regular expression
// anchored to match the whole term value exactly.
func compilePattern(rule string) ([]patternToken, error) {
	rawTokens := tokenizeRule(rule)
	tokens := make([]patternToken, 0, len(rawTokens))

	for _, raw := range rawTokens {
		switch {
		case raw == "...":
			tokens = append(tokens, patternToken{raw: raw, isEllipsis: true})

		case strings.HasPrefix(raw, "%") && len(raw) > 1:
			n, err := strconv.Atoi(raw[1:])
			if err != nil || n < 1 {
				return nil, errMalformedPattern(rule, errors.Errorf("bad capture slot %q", raw))
			}
			tokens = append(tokens, patternToken{raw: raw, isCapture: true, captureIndex: n - 1})

		default:
			re, err := regexp.Compile("(?is)^(?:" + raw + ")$")
			if err != nil {
				return nil, errMalformedPattern(rule, err)
			}
			tokens = append(tokens, patternToken{raw: raw, re: re})
		}
	}

	return tokens, nil
}

// tokenizeRule splits a pattern rule into whitespace-separated tokens
// (spec §4.2: "A pattern is a string split by the splitter in
// non-separator-splitting mode").
func tokenizeRule(rule string) []string {
	terms := splitTerms(rule, "", false)
	tokens := make([]string, len(terms))
	for i, t := range terms {
		tokens[i] = t.Str
	}
	return tokens
}

// captureCount returns the highest %N capture slot seen in tokens, i.e.
// the size of the capture buffer a matching pass expects.
func captureCount(tokens []patternToken) int {
	max := 0
	for _, tok := range tokens {
		if tok.isCapture && tok.captureIndex+1 > max {
			max = tok.captureIndex + 1
		}
	}
	return max
}

// matchTerm reports whether term matches pattern token tok, and the
// capture slot it should be bound to (-1 for a non-capturing literal
// token).
func matchTerm(term Term, tok patternToken) (matched bool, captureIndex int) {
	if tok.isCapture {
		return true, tok.captureIndex
	}
	if !term.IsLiteralString() {
		return false, -1
	}
	return tok.re.MatchString(term.Str), -1
}

// matchPattern attempts to match tokens anchored at terms[start]. On
// success it returns the captured term vector (sized to captureCount,
// with any ellipsis-caught terms appended after the named slots) and the
// number of terms consumed.
func matchPattern(terms []Term, tokens []patternToken, start int) (captures []Term, length int, ok bool) {
	captures = make([]Term, captureCount(tokens))

	patternIndex := 0
	termIndex := start
	matchAnything := false
	containsCatchall := false

	for patternIndex < len(tokens) && termIndex < len(terms) {
		tok := tokens[patternIndex]

		if tok.isEllipsis {
			matchAnything = true
			containsCatchall = true
			patternIndex++
			continue
		}

		term := terms[termIndex]
		matched, capIdx := matchTerm(term, tok)

		switch {
		case matchAnything && !matched:
			// The stop pattern hasn't matched yet; keep eating terms.
			captures = append(captures, term)
		case matchAnything && matched:
			matchAnything = false
			patternIndex++
		case matched:
			if capIdx != -1 {
				captures[capIdx] = term
			}
			patternIndex++
		default:
			return nil, 0, false
		}

		termIndex++
	}

	if matchAnything {
		// A trailing "..." with no stop token catches every remaining term.
		captures = append(captures, terms[termIndex:]...)
		termIndex = len(terms)
	}

	if !containsCatchall && patternIndex != len(tokens) {
		// The pattern wasn't fully matched. Patterns containing "..."
		// are allowed to match even when we run out of terms before
		// reaching an (optional) terminating token.
		return nil, 0, false
	}

	return captures, termIndex - start, true
}

// runSingleRule implements PatternMatcher::runPass for one tokenized
// rule: scan every start position, splice in a successful pass's
// replacement, and restart scanning from the beginning (spec §4.2 point
// 3/§9 — index invariants are deliberately not preserved across a
// mutation).
func runSingleRule(terms *[]Term, tokens []patternToken, fn PassFunc) bool {
	progress := false
	index := 0

	for index < len(*terms) {
		captures, length, ok := matchPattern(*terms, tokens, index)
		if !ok {
			index++
			continue
		}

		replacement := fn(captures)
		if len(replacement) == 0 {
			index++
			continue
		}

		spliceTerms(terms, index, length, replacement)
		progress = true
		index = 0
	}

	return progress
}

// spliceTerms replaces the length terms starting at index with
// replacement, copying the matched span's position onto the replacement
// when it is a single term (spec §4.2 point 3).
func spliceTerms(terms *[]Term, index, length int, replacement []Term) {
	matched := (*terms)[index : index+length]
	start := matched[0].Pos.Start
	end := matched[len(matched)-1].Pos.End()

	next := make([]Term, 0, len(*terms)-length+len(replacement))
	next = append(next, (*terms)[:index]...)
	next = append(next, replacement...)
	next = append(next, (*terms)[index+length:]...)

	if len(replacement) == 1 {
		next[index].Pos = Position{Start: start, Length: end - start}
	}

	*terms = next
}

// runPass runs every ";"-separated alternative rule of a locale-
// translated pattern string against terms, in order, accumulating
// whether any rule made progress (spec §4.2: "Locale rule lists").
func runPass(terms *[]Term, localizedPattern string, fn PassFunc) (bool, error) {
	progress := false

	for _, rule := range strings.Split(localizedPattern, ";") {
		tokens, err := compilePattern(rule)
		if err != nil {
			return progress, err
		}
		if runSingleRule(terms, tokens, fn) {
			progress = true
		}
	}

	return progress, nil
}
