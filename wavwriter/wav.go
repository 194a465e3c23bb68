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

// Package wavwriter records the output volumes of the crossfade engine to a
// WAV file. The left channel is a test tone at the remaster volume and the
// right channel is a test tone at the original soundtrack volume.
//
// Audio data is buffered in memory in its entirety and written to disk when
// EndMixing() is called. It is therefore only suitable for short recordings.
package wavwriter

import (
	"math"
	"os"
	"time"

	"github.com/dualtrack/dualtrack/curated"
	"github.com/dualtrack/dualtrack/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// TicksPerSecond is the number of audio ticks in a second.
const TicksPerSecond = 180

// SamplesPerTick is the number of samples written for every tick.
const SamplesPerTick = SampleFreq / TicksPerSecond

// TickDuration returns the playing time of the number of ticks.
func TickDuration(ticks int) time.Duration {
	return time.Duration(ticks) * time.Second / TicksPerSecond
}

// frequency of the test tones
const (
	leftTone  = 440.0
	rightTone = 330.0
)

// the loudest volume is scaled to full amplitude
const maxVolume = 1.413

const bitDepth = 16

// WavWriter records volume pairs as stereo audio.
type WavWriter struct {
	filename string
	buffer   []int

	// number of samples per channel written so far. used to keep the phase
	// of the test tones continuous across ticks
	n int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, SampleFreq*2),
	}
	return aw, nil
}

// AddTick records one audio tick.
func (aw *WavWriter) AddTick(remaster float32, ost float32) {
	const amplitude = float64(math.MaxInt16) / maxVolume

	for i := 0; i < SamplesPerTick; i++ {
		t := float64(aw.n) / SampleFreq
		l := math.Sin(2*math.Pi*leftTone*t) * float64(remaster) * amplitude
		r := math.Sin(2*math.Pi*rightTone*t) * float64(ost) * amplitude
		aw.buffer = append(aw.buffer, clip(l), clip(r))
		aw.n++
	}
}

func clip(v float64) int {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int(v)
}

// Ticks returns the number of ticks recorded.
func (aw *WavWriter) Ticks() int {
	return aw.n / SamplesPerTick
}

// EndMixing writes the recording to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, bitDepth, 2, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: SampleFreq},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d ticks to %s", aw.Ticks(), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards everything recorded so far.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.n = 0
}
