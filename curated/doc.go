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

// Package curated wraps the plain Go error type so that errors raised by the
// setup code (preferences, asset probing, wav output) can be identified by the
// pattern they were created with rather than by string matching the final
// message.
//
// Each package that raises curated errors declares its patterns as exported
// constants. For example, the streaming package declares:
//
//	const ProbeError = "streaming: probe: %s: %v"
//
// and a caller can then test for it:
//
//	if curated.Is(err, streaming.ProbeError) {
//		...
//	}
//
// Has() walks the chain of wrapped curated errors looking for the pattern.
//
// Errors raised during tick processing are never curated errors because the
// tick paths never return errors at all. A failed replacement simply leaves
// the original cue playing.
package curated
