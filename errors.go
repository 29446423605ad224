// nlquery - Internal error kinds
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

// Parsing never fails globally (spec §7). These sentinel errors are
// internal bookkeeping for a pass's decision to decline a match; none of
// them is ever returned by Parse.
var (
	// errDecline names a pass that found no applicable rewrite. Passes
	// signal this by returning a nil/empty replacement slice; no code in
	// the package returns this error.
	errDecline = errors.New("nlquery: pass declined")

	// errRangeViolation names a date-value capture outside its period's
	// valid range (spec §4.3.10). DateValuesPass declines such a match by
	// returning nil; no code in the package returns this error.
	errRangeViolation = errors.New("nlquery: date value out of range")
)

// errMalformedPattern wraps a locale catalog pattern string that the
// pattern matcher cannot parse (e.g. a "%" capture slot with no digits).
// This is the only class of failure spec §7 allows to surface. It is
// returned only from Parser.Compile; Parse, which runs Compile itself
// when it has not been called, panics with it instead of returning it.
func errMalformedPattern(pattern string, cause error) error {
	return errors.Wrapf(cause, "nlquery: malformed locale pattern %q", pattern)
}
