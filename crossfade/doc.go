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

// Package crossfade switches between the remastered and the original
// soundtrack.
//
// Both soundtracks play at the same time in the same sequence player. The
// remastered stems are on the even numbered sub-channels and the original
// stems are on the odd numbered sub-channels. The Engine decides the volume
// of each at every audio tick and writes it to the sub-channels.
//
// A switch from one soundtrack to the other fades the new soundtrack in
// along a quarter sine wave while the old soundtrack fades out along a
// quarter cosine wave. The fade lasts Duration audio ticks. A switch during a
// fade starts a new fade from the beginning of the curves.
//
// A switch happens for one of two reasons. The user can toggle between the
// soundtracks with the L button and, if the configuration asks for it, the
// soundtrack returns to the default soundtrack when a new scene is loaded.
// Both are announced with a notification.
//
// The Engine is not safe for concurrent use. The host calls it from a single
// thread, with the audio tick for a frame always before the sequence player
// ticks for the same frame.
package crossfade
