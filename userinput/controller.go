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

// Controller derives press events from successive button states.
type Controller struct {
	prev Button
}

// Update the controller with the buttons held this frame. The returned
// Snapshot has the Press field set for buttons that were not held in the
// previous call to Update().
func (c *Controller) Update(down Button) Snapshot {
	s := Snapshot{
		Down:  down,
		Press: down &^ c.prev,
	}
	c.prev = down
	return s
}

// Reset forgets the buttons held in the previous frame.
func (c *Controller) Reset() {
	c.prev = ButtonNone
}
