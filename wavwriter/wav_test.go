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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dualtrack/dualtrack/test"
	"github.com/dualtrack/dualtrack/wavwriter"
	"github.com/go-audio/wav"
)

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "render.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	// one second with the right channel silent
	for i := 0; i < wavwriter.TicksPerSecond; i++ {
		aw.AddTick(1.413, 0.0)
	}
	test.ExpectEquality(t, aw.Ticks(), wavwriter.TicksPerSecond)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.NumChans, uint16(2))
	test.ExpectEquality(t, dec.SampleRate, uint32(wavwriter.SampleFreq))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), wavwriter.TicksPerSecond*wavwriter.SamplesPerTick*2)

	var peakLeft, peakRight int
	for i := 0; i < len(buf.Data); i += 2 {
		peakLeft = max(peakLeft, buf.Data[i])
		peakRight = max(peakRight, buf.Data[i+1])
	}
	test.ExpectSuccess(t, peakLeft > 32000)
	test.ExpectEquality(t, peakRight, 0)
}

func TestReset(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "render.wav"))
	test.DemandSuccess(t, err)
	aw.AddTick(1.0, 1.0)
	aw.Reset()
	test.ExpectEquality(t, aw.Ticks(), 0)
}

func TestTickDuration(t *testing.T) {
	test.ExpectEquality(t, wavwriter.TickDuration(wavwriter.TicksPerSecond), time.Second)
	test.ExpectEquality(t, wavwriter.TickDuration(90), 500*time.Millisecond)
}
