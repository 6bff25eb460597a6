// This file is part of Satcore.
//
// Satcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Satcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Satcore.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as the Errorf() function in the fmt package.
//
// The pattern is what identifies a curated error. The Is() function checks
// whether an error was created with a specific pattern and the Has() function
// checks whether the pattern occurs anywhere in the error chain:
//
//	const UnknownOwner = "scheduler: unknown owner (%s)"
//
//	e := curated.Errorf(UnknownOwner, "vdp2")
//	f := curated.Errorf("snapshot: %v", e)
//
//	curated.Is(f, UnknownOwner)  // false
//	curated.Has(f, UnknownOwner) // true
//
// Sentinel patterns should be exported as string constants by the package
// that creates the error.
//
// The Error() function normalises the error chain by removing adjacent
// duplicate parts. Parts are separated by the sub-string ": ". For example,
// the following:
//
//	e := curated.Errorf("snapshot: %v", curated.Errorf("snapshot: %v", "truncated"))
//
// prints as "snapshot: truncated" and not "snapshot: snapshot: truncated".
//
// Curated errors also implement Unwrap(), returning the first value that is an
// error, so errors.Is() and errors.As() from the standard library can see
// through a curated wrapping.
package curated
