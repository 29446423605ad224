// nlquery - Localization adapter
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
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed localedata/en.yaml
var englishCatalogYAML []byte

// Localizer is the external collaborator (spec §6) that, given a message
// key, returns a translated pattern string. Pattern strings use %1..%N
// captures and ";" alternation; translators are expected to preserve
// capture indices. The driver reads every pattern string and the
// separator set through this interface; the passes' closed word tables
// (number names, units, type nouns, period names) are built in Go by the
// pass constructors, and no pass calls Words.
type Localizer interface {
	// Pattern returns the translated pattern string for key, or "" if the
	// catalog has no entry (a programmer error surfaced by Parser.Compile).
	Pattern(key string) string

	// Words returns the space-separated word list registered under key,
	// split into individual words.
	Words(key string) []string

	// Separators returns the locale's boundary/separator character set
	// (spec §4.1).
	Separators() string
}

// catalog is a Localizer backed by a YAML fixture (spec §9: locale
// catalogs are data, not code).
type catalog struct {
	SeparatorChars string            `yaml:"separators"`
	Patterns       map[string]string `yaml:"patterns"`
	WordSets       map[string]string `yaml:"words"`
}

func loadCatalog(data []byte) (*catalog, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "nlquery: parsing locale catalog")
	}
	return &c, nil
}

func (c *catalog) Pattern(key string) string {
	return c.Patterns[key]
}

func (c *catalog) Words(key string) []string {
	raw, ok := c.WordSets[key]
	if !ok || raw == "" {
		return nil
	}
	return strings.Fields(raw)
}

func (c *catalog) Separators() string {
	return c.SeparatorChars
}

// EnglishLocalizer returns the built-in English locale catalog shipped as
// the spec's required minimum fixture. It panics on a corrupt embedded
// fixture, which can only happen if the repository itself is broken.
func EnglishLocalizer() Localizer {
	c, err := loadCatalog(englishCatalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}
