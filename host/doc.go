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

// Package host is a reference implementation of the audio host that the
// soundtrack mod plugs into. It owns the sequence table, the sequence font
// table and the sequence players, and it drives the per-frame and per-tick
// callbacks in the order the mod relies on.
//
// The callbacks are delivered through the Hooks interface. For every frame,
// OnFrameInput() is called once and then, for each of TicksPerFrame audio
// ticks, OnAudioTick() is called before OnSequencePlayerTick() is called for
// each enabled player:
//
//	a := host.NewAudio()
//	a.Init(mod)
//	a.Play(host.PlayerBGMMain, host.SeqTerminaField)
//	for {
//		a.Frame(mod, input)
//	}
//
// Volume changes written to a sub-channel are picked up by the mixer at the
// end of each tick, which clears the channel's VolumeChanged flag.
package host
