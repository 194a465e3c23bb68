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

// Package userinput handles input from the user of the player and translates
// it into the controller state that the game sees.
//
// Controller state is presented once per frame as a Snapshot. A Snapshot
// records which buttons are currently held and which buttons were pressed
// since the previous frame. The Controller type derives the second from the
// first.
//
// In the absence of a real controller the Keyboard type maps keys read from
// the terminal onto controller buttons. Terminal auto-repeat is filtered with
// a per-key rate limit.
package userinput
