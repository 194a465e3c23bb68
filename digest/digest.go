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

// Package digest creates a SHA-1 digest of the volume envelope produced by
// the crossfade engine. Two runs with the same configuration and the same
// toggle times produce the same digest, making it useful for regression
// checks of rendered envelopes.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
)

// the digest is chained into the start of the buffer. the remainder of the
// buffer holds the volume pairs of that many ticks
const ticksPerFlush = 256
const bytesPerTick = 8
const bufferStart = sha1.Size
const bufferLength = bufferStart + ticksPerFlush*bytesPerTick

// Envelope accumulates volume pairs into a digest.
type Envelope struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
	ticks    int
}

// NewEnvelope is the preferred method of initialisation for the Envelope type.
func NewEnvelope() *Envelope {
	dig := &Envelope{
		buffer: make([]byte, bufferLength),
	}
	dig.ResetDigest()
	return dig
}

// Hash returns the digest of the volume pairs added so far.
func (dig *Envelope) Hash() string {
	if dig.bufferCt > bufferStart {
		return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
	}
	return fmt.Sprintf("%x", dig.digest)
}

func (dig *Envelope) String() string {
	return dig.Hash()
}

// ResetDigest resets the digest to its initial state.
func (dig *Envelope) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = bufferStart
	dig.ticks = 0
}

// Ticks returns the number of volume pairs added since the most recent reset.
func (dig *Envelope) Ticks() int {
	return dig.ticks
}

// AddTick adds the volume pair of one tick to the digest.
func (dig *Envelope) AddTick(remaster float32, ost float32) {
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], math.Float32bits(remaster))
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt+4:], math.Float32bits(ost))
	dig.bufferCt += bytesPerTick
	dig.ticks++

	if dig.bufferCt >= bufferLength {
		dig.flush()
	}
}

func (dig *Envelope) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = bufferStart
}
