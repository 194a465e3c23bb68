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

package digest_test

import (
	"testing"

	"github.com/dualtrack/dualtrack/crossfade"
	"github.com/dualtrack/dualtrack/digest"
	"github.com/dualtrack/dualtrack/test"
)

func envelope(ticks int, toggleAt int) string {
	dig := digest.NewEnvelope()
	for t := 0; t < ticks; t++ {
		if t == toggleAt {
			dig.AddTick(crossfade.Rising(0), crossfade.Falling(0))
			continue
		}
		dig.AddTick(crossfade.Rising(t), crossfade.Falling(t))
	}
	return dig.Hash()
}

func TestRepeatable(t *testing.T) {
	test.ExpectEquality(t, envelope(1000, -1), envelope(1000, -1))
	test.ExpectInequality(t, envelope(1000, -1), envelope(1000, 500))
	test.ExpectInequality(t, envelope(1000, -1), envelope(999, -1))
}

func TestHashMidBuffer(t *testing.T) {
	dig := digest.NewEnvelope()
	empty := dig.Hash()

	dig.AddTick(1.0, 0.0)
	h := dig.Hash()
	test.ExpectInequality(t, h, empty)

	// reading the hash does not change it
	test.ExpectEquality(t, dig.Hash(), h)
	test.ExpectEquality(t, dig.Ticks(), 1)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), empty)
	test.ExpectEquality(t, dig.Ticks(), 0)
}
