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

package streaming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dualtrack/dualtrack/curated"
	"github.com/dustin/go-humanize"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep/vorbis"
	"github.com/hajimehoshi/go-mp3"
	"github.com/hako/durafmt"
)

// Sentinal error patterns.
const (
	ProbeError        = "streaming: %s: %v"
	UnsupportedFormat = "streaming: unsupported format (%s)"
	InvalidWav        = "streaming: not a valid wav file"
)

// AssetInfo is the result of probing an asset file.
type AssetInfo struct {
	Path       string
	Format     string
	SampleRate int
	Channels   int
	Duration   time.Duration
	Size       int64
}

func (inf AssetInfo) String() string {
	return fmt.Sprintf("%s %dHz %dch %s %s", inf.Format, inf.SampleRate, inf.Channels,
		durafmt.Parse(inf.Duration.Round(time.Second)).LimitFirstN(2),
		humanize.Bytes(uint64(inf.Size)))
}

// Probe the asset file. The format is decided by the file extension.
func Probe(path string) (AssetInfo, error) {
	inf := AssetInfo{Path: path}

	st, err := os.Stat(path)
	if err != nil {
		return inf, curated.Errorf(ProbeError, path, err)
	}
	if st.IsDir() {
		return inf, curated.Errorf(ProbeError, path, "is a directory")
	}
	inf.Size = st.Size()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		err = probeOgg(&inf)
	case ".mp3":
		err = probeMP3(&inf)
	case ".wav":
		err = probeWav(&inf)
	default:
		return inf, curated.Errorf(UnsupportedFormat, filepath.Ext(path))
	}

	if err != nil {
		return inf, curated.Errorf(ProbeError, path, err)
	}

	return inf, nil
}

// ProbeStatus summarises the error returned by Probe() in a single word.
func ProbeStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case curated.Has(err, UnsupportedFormat):
		return "unsupported"
	case curated.Has(err, InvalidWav):
		return "invalid"
	case errors.Is(err, fs.ErrNotExist):
		return "missing"
	}
	return "unreadable"
}

func probeOgg(inf *AssetInfo) error {
	f, err := os.Open(inf.Path)
	if err != nil {
		return err
	}

	// the streamer takes ownership of the file
	s, format, err := vorbis.Decode(f)
	if err != nil {
		f.Close()
		return err
	}
	defer s.Close()

	inf.Format = "ogg"
	inf.SampleRate = int(format.SampleRate)
	inf.Channels = format.NumChannels
	inf.Duration = format.SampleRate.D(s.Len())

	return nil
}

func probeMP3(inf *AssetInfo) error {
	f, err := os.Open(inf.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return err
	}

	// the decoded stream is always 16bit stereo. four bytes per sample
	inf.Format = "mp3"
	inf.SampleRate = dec.SampleRate()
	inf.Channels = 2
	if n := dec.Length(); n > 0 && inf.SampleRate > 0 {
		inf.Duration = time.Duration(n/4) * time.Second / time.Duration(inf.SampleRate)
	}

	return nil
}

func probeWav(inf *AssetInfo) error {
	f, err := os.Open(inf.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if dec == nil || !dec.IsValidFile() {
		return curated.Errorf(InvalidWav)
	}

	dur, err := dec.Duration()
	if err != nil {
		return err
	}

	inf.Format = "wav"
	inf.SampleRate = int(dec.SampleRate)
	inf.Channels = int(dec.NumChans)
	inf.Duration = dur

	return nil
}
