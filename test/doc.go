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

// Package test contains helper functions for the test files in the project.
// The Expect*() functions report failures with t.Errorf() and allow the test
// to continue; the Demand*() functions end the test immediately with
// t.Fatalf().
//
// The optional tags arguments are prepended to the failure message and are
// useful for identifying which iteration of a loop has failed.
package test
