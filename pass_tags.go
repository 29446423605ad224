// nlquery - Tags pass
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

// TagsPass resolves a literal string term against the tag cache and
// emits a hasTag comparison on success. Ported from pass_tags.cpp.
type TagsPass struct {
	cache *tagCache
}

// NewTagsPass builds a TagsPass backed by backend, lazily queried once.
func NewTagsPass(backend TagBackend) *TagsPass {
	return &TagsPass{cache: newTagCache(backend)}
}

// Run implements PassFunc.
func (p *TagsPass) Run(captures []Term) []Term {
	name, ok := termStringValue(captures[0])
	if !ok || name == "" {
		return nil
	}

	uri, ok := p.cache.lookup(name)
	if !ok {
		return nil
	}

	return []Term{NewComparison(PropHasTag, NewResource(uri, Position{}), Equal, captures[0].Pos)}
}
