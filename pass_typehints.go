// nlquery - TypeHints pass
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

	"golang.org/x/text/cases"
)

// TypeHintsPass maps a localized type word to a ResourceType term. Ported
// from pass_typehints.cpp.
type TypeHintsPass struct {
	Hints map[string]string
	fold  cases.Caser
}

// NewTypeHintsPass builds a TypeHintsPass with the default English type
// vocabulary (spec §4.3.4).
func NewTypeHintsPass() *TypeHintsPass {
	p := &TypeHintsPass{Hints: map[string]string{}, fold: cases.Fold()}
	register := func(typeURI, words string) {
		for _, w := range strings.Fields(words) {
			p.Hints[w] = typeURI
		}
	}
	register(TypeFile, "file files")
	register(TypeImage, "image images picture pictures photo photos")
	register(TypeVideo, "video videos movie movies film films")
	register(TypeAudio, "music musics")
	register(TypeDocument, "document documents")
	register(TypeEmail, "mail mails email emails e-mail e-mails message messages")
	return p
}

// Run implements PassFunc.
func (p *TypeHintsPass) Run(captures []Term) []Term {
	value, ok := termStringValue(captures[0])
	if !ok {
		return nil
	}

	typeURI, ok := p.Hints[p.fold.String(value)]
	if !ok {
		return nil
	}

	return []Term{NewResourceType(typeURI, captures[0].Pos)}
}
