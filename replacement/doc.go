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

// Package replacement maps original music cues to the streamed assets that
// replace them.
//
// The table is bound once, when the audio system starts. Binding asks the
// streaming subsystem for a sequence for each entry's asset and, if one is
// created, points the original cue at the new sequence in the host's tables.
// An entry whose asset could not be streamed stays unbound and the original
// cue plays as it always did.
//
// During play the table is consulted on every audio tick for every player, so
// Lookup() does not allocate.
package replacement
