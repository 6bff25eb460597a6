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

// Package paths contains functions to prepare paths to Satcore resources.
//
// The ResourcePath() function returns the path to a resource file, creating
// the base directory and any sub-directory as required. For development
// builds the base directory is in the current working directory. For release
// builds (built with the release tag) the base directory is in the user's
// configuration directory.
package paths
