// nlquery - Tag backend adapter
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

import "github.com/pkg/errors"

// ErrBackendUnavailable is returned by a TagBackend when the tag store
// cannot be reached. The tag/property passes treat this as "no tags" per
// spec §7 and never surface it further.
var ErrBackendUnavailable = errors.New("nlquery: tag backend unavailable")

// TagBackend is the external collaborator (spec §6) supplying a
// label->resource-URI mapping for tag resolution. It is called lazily, at
// most once per Parser instance, and the result is cached for the
// lifetime of the parser (spec §5).
type TagBackend interface {
	// Tags returns every known (label -> URI) pair. Implementations may
	// return ErrBackendUnavailable; the tag cache then populates empty.
	Tags() (map[string]string, error)
}

// staticTagBackend is the default, in-memory TagBackend, suitable for
// tests and for callers who already have their tag set in hand.
type staticTagBackend struct {
	labels map[string]string
}

// NewStaticTagBackend returns a TagBackend backed by a fixed label->URI map.
func NewStaticTagBackend(labels map[string]string) TagBackend {
	return &staticTagBackend{labels: labels}
}

func (b *staticTagBackend) Tags() (map[string]string, error) {
	return b.labels, nil
}

// tagCache lazily fills from a TagBackend on first access and is
// effectively immutable afterwards, mirroring pass_tags.cpp's/
// pass_properties.cpp's fillCache.
type tagCache struct {
	backend TagBackend
	filled  bool
	labels  map[string]string
}

func newTagCache(backend TagBackend) *tagCache {
	return &tagCache{backend: backend}
}

func (c *tagCache) lookup(label string) (string, bool) {
	c.fill()
	uri, ok := c.labels[label]
	return uri, ok
}

func (c *tagCache) fill() {
	if c.filled {
		return
	}
	c.filled = true

	if c.backend == nil {
		c.labels = map[string]string{}
		return
	}

	labels, err := c.backend.Tags()
	if err != nil {
		c.labels = map[string]string{}
		return
	}
	c.labels = labels
}
