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

// Package notifications carries short messages from the soundtrack mod to the
// user. A message is sent with no expectation of acknowledgement. Where and
// how it is displayed is decided by the Sink implementation.
//
// The Log sink writes to the central logger. The Desktop sink shows a desktop
// notification where one is available. Multi sends to more than one sink.
package notifications
