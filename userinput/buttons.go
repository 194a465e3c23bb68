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

package userinput

import "strings"

// Button is a bit mask of controller buttons.
type Button uint16

// List of controller buttons.
const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonZ
	ButtonStart
	ButtonDUp
	ButtonDDown
	ButtonDLeft
	ButtonDRight
	ButtonL
	ButtonR
	ButtonCUp
	ButtonCDown
	ButtonCLeft
	ButtonCRight

	ButtonNone Button = 0
)

var buttonNames = []struct {
	b Button
	n string
}{
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonZ, "Z"},
	{ButtonStart, "Start"},
	{ButtonDUp, "DUp"},
	{ButtonDDown, "DDown"},
	{ButtonDLeft, "DLeft"},
	{ButtonDRight, "DRight"},
	{ButtonL, "L"},
	{ButtonR, "R"},
	{ButtonCUp, "CUp"},
	{ButtonCDown, "CDown"},
	{ButtonCLeft, "CLeft"},
	{ButtonCRight, "CRight"},
}

func (b Button) String() string {
	if b == ButtonNone {
		return "none"
	}
	s := make([]string, 0, len(buttonNames))
	for _, n := range buttonNames {
		if b&n.b == n.b {
			s = append(s, n.n)
		}
	}
	return strings.Join(s, "+")
}

// Snapshot is the state of the controller for a single frame.
type Snapshot struct {
	// buttons being held this frame
	Down Button

	// buttons that were not held in the previous frame but are now
	Press Button
}

// Pressed returns true if all the buttons in b were pressed this frame.
func (s Snapshot) Pressed(b Button) bool {
	return b != ButtonNone && s.Press&b == b
}

// Held returns true if all the buttons in b are being held.
func (s Snapshot) Held(b Button) bool {
	return b != ButtonNone && s.Down&b == b
}
