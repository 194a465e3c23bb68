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

// Package streaming is a reference implementation of the streamed audio
// subsystem. It creates new sequences in the host's sequence table that are
// backed by asset files rather than sequence data.
//
// Asset files are probed before a sequence is created. A file that can not be
// opened or decoded does not produce a sequence and the create functions
// return InvalidHandle. Supported formats are Ogg Vorbis, MP3 and WAV. The
// audio data itself is not decoded beyond what is needed to measure it.
//
// Probing can be slow for large directories of assets and so the Prefetch()
// function probes many files at once. Results are cached and the later create
// calls use the cached result.
package streaming
