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

package streaming

// IOProfile is the marker and loop profile used by a streamed sequence. Most
// sequences need no profile. The others are needed by sequences that the game
// communicates with while they play.
type IOProfile int

// List of IOProfiles.
const (
	IONone IOProfile = iota
	IOBremen
	IOWindFish
	IOFrog
	IOCredits1
	IOCredits2
)

func (p IOProfile) String() string {
	switch p {
	case IONone:
		return "none"
	case IOBremen:
		return "bremen"
	case IOWindFish:
		return "windfish"
	case IOFrog:
		return "frog"
	case IOCredits1:
		return "credits 1"
	case IOCredits2:
		return "credits 2"
	}
	return "unknown"
}
