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

package streaming_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dualtrack/dualtrack/curated"
	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/streaming"
	"github.com/dualtrack/dualtrack/test"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const sampleRate = 8000

// writes one second of silence as a stereo wav file
func writeWav(t *testing.T, dir string, name string) {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, name))
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:   make([]int, sampleRate*2),
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestProbeWav(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, dir, "NA_BGM_TERMINA_FIELD.wav")

	inf, err := streaming.Probe(filepath.Join(dir, "NA_BGM_TERMINA_FIELD.wav"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inf.Format, "wav")
	test.ExpectEquality(t, inf.SampleRate, sampleRate)
	test.ExpectEquality(t, inf.Channels, 2)
	test.ExpectWithin(t, inf.Duration.Seconds(), 1.0, 0.01)
}

func TestProbeFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := streaming.Probe(filepath.Join(dir, "missing.ogg"))
	test.ExpectSuccess(t, curated.Is(err, streaming.ProbeError))

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("foo"), 0o600))
	_, err = streaming.Probe(filepath.Join(dir, "notes.txt"))
	test.ExpectSuccess(t, curated.Is(err, streaming.UnsupportedFormat))

	// not really an ogg file
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "bad.ogg"), []byte("foo"), 0o600))
	_, err = streaming.Probe(filepath.Join(dir, "bad.ogg"))
	test.ExpectSuccess(t, curated.Is(err, streaming.ProbeError))
}

func TestProbeStatus(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, dir, "NA_BGM_CHASE.wav")
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "bad.wav"), []byte("this is not a riff file at all"), 0o600))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("foo"), 0o600))

	for _, tc := range []struct {
		file   string
		status string
	}{
		{file: "NA_BGM_CHASE.wav", status: "ok"},
		{file: "missing.wav", status: "missing"},
		{file: "bad.wav", status: "invalid"},
		{file: "notes.txt", status: "unsupported"},
	} {
		_, err := streaming.Probe(filepath.Join(dir, tc.file))
		test.ExpectEquality(t, streaming.ProbeStatus(err), tc.status, tc.file)
	}

	_, err := streaming.Probe(filepath.Join(dir, "bad.wav"))
	test.ExpectSuccess(t, curated.Is(err, streaming.ProbeError))
	test.ExpectSuccess(t, curated.Has(err, streaming.InvalidWav))
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, dir, "a.wav")
	writeWav(t, dir, "b.wav")

	a := host.NewAudio()
	s := streaming.NewStreamer(a)
	s.Prefetch(dir, []string{"a.wav", "b.wav", "a.wav", "missing.wav"}, 2)

	h := s.CreateStreamedBGM(dir, "a.wav", streaming.IONone)
	test.ExpectEquality(t, h, host.NumOriginalSequences)
	test.ExpectEquality(t, s.SequenceFont(h, 0), streaming.StreamedFontBase)

	h = s.CreateStreamedFanfare(dir, "b.wav", streaming.IOBremen)
	test.ExpectEquality(t, h, host.NumOriginalSequences+1)
	test.ExpectEquality(t, s.SequenceFont(h, 0), streaming.StreamedFontBase+1)

	e, ok := a.Sequences.Entry(host.SeqID(h))
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, e.Streamed)
	test.ExpectSuccess(t, e.Fanfare)
	test.ExpectEquality(t, e.Profile, "bremen")
	test.ExpectEquality(t, e.Channels, 2)

	// failure does not add to the sequence table
	n := a.Sequences.Len()
	test.ExpectEquality(t, s.CreateStreamedBGM(dir, "missing.wav", streaming.IONone), streaming.InvalidHandle)
	test.ExpectEquality(t, a.Sequences.Len(), n)
}

func TestIOProfileString(t *testing.T) {
	test.ExpectEquality(t, streaming.IOWindFish.String(), "windfish")
	test.ExpectEquality(t, streaming.IOProfile(99).String(), "unknown")
}
