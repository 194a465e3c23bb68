// This file is part of Dualtrack.
//
// Dualtrack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dualtrack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dualtrack.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs implements the typed preference values used to configure the
// soundtrack mod, and a way of binding those values to a file on disk.
//
// Values are created as zero values of the Bool, Int or String types
// and added to a Disk instance under a key:
//
//	var vol prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("remaster_volume", &vol)
//	dsk.Load(true)
//
// The file format is one "key :: value" pair per line, preceded by the
// WarningBoilerPlate line.
//
// Values can also be specified on the command line with a prefs string, which
// is pushed onto the command line stack before the Disk is created. Values on
// the stack take precedence over values in the file.
package prefs
