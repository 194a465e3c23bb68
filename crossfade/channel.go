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

package crossfade

// Channel is one of the two soundtracks.
type Channel int

// List of Channels.
const (
	Remaster Channel = iota
	OriginalOST
)

// String returns the name of the channel as used in notifications.
func (ch Channel) String() string {
	switch ch {
	case Remaster:
		return "REMASTER"
	case OriginalOST:
		return "CD OST"
	}
	return "unknown"
}

// Other returns the channel that is not ch.
func (ch Channel) Other() Channel {
	if ch == Remaster {
		return OriginalOST
	}
	return Remaster
}
