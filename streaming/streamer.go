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
	"path/filepath"
	"runtime"
	"sync"

	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/logger"
	"github.com/remeh/sizedwaitgroup"
)

// InvalidHandle is returned by the create functions on failure.
const InvalidHandle = -1

// StreamedFontBase is the font number of the first streamed sequence. Fonts
// for later streamed sequences follow on.
const StreamedFontBase = 0x100

// Subsystem is the interface to a streamed audio subsystem.
type Subsystem interface {
	// create a looping streamed sequence from the file. returns the handle of
	// the new sequence or a negative number on failure
	CreateStreamedBGM(basePath string, file string, profile IOProfile) int

	// create a one-shot streamed sequence from the file. returns the handle
	// of the new sequence or a negative number on failure
	CreateStreamedFanfare(basePath string, file string, profile IOProfile) int

	// the sound font at index for the handle
	SequenceFont(handle int, index int) int
}

type probeResult struct {
	info AssetInfo
	err  error
}

// Streamer implements the Subsystem interface by adding streamed sequences
// to the host's sequence table.
type Streamer struct {
	audio *host.Audio

	crit  sync.Mutex
	cache map[string]probeResult

	nextFont int
}

// NewStreamer is the preferred method of initialisation for the Streamer type.
func NewStreamer(audio *host.Audio) *Streamer {
	return &Streamer{
		audio:    audio,
		cache:    make(map[string]probeResult),
		nextFont: StreamedFontBase,
	}
}

// Info returns the probe result for the file, probing it if necessary.
func (s *Streamer) Info(basePath string, file string) (AssetInfo, error) {
	pth := filepath.Join(basePath, file)

	s.crit.Lock()
	r, ok := s.cache[pth]
	s.crit.Unlock()
	if ok {
		return r.info, r.err
	}

	r.info, r.err = Probe(pth)

	s.crit.Lock()
	s.cache[pth] = r
	s.crit.Unlock()

	return r.info, r.err
}

// Prefetch probes the files concurrently. The number of concurrent probes is
// limited to parallel, or to the number of CPUs if parallel is zero or less.
// Files that have already been probed are not probed again.
func (s *Streamer) Prefetch(basePath string, files []string, parallel int) {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	seen := make(map[string]bool)

	swg := sizedwaitgroup.New(parallel)
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true

		swg.Add()
		go func(f string) {
			defer swg.Done()
			_, _ = s.Info(basePath, f)
		}(f)
	}
	swg.Wait()
}

// CreateStreamedBGM implements the Subsystem interface.
func (s *Streamer) CreateStreamedBGM(basePath string, file string, profile IOProfile) int {
	return s.create(basePath, file, profile, false)
}

// CreateStreamedFanfare implements the Subsystem interface.
func (s *Streamer) CreateStreamedFanfare(basePath string, file string, profile IOProfile) int {
	return s.create(basePath, file, profile, true)
}

func (s *Streamer) create(basePath string, file string, profile IOProfile, fanfare bool) int {
	info, err := s.Info(basePath, file)
	if err != nil {
		logger.Log(logger.Allow, "streaming", err)
		return InvalidHandle
	}

	// remaster and original stems are interleaved so a streamed sequence
	// always has at least two sub-channels
	channels := info.Channels
	if channels < 2 {
		channels = 2
	}
	if channels > host.ChannelsPerSequence {
		channels = host.ChannelsPerSequence
	}

	h := s.audio.Sequences.Add(host.SequenceEntry{
		Name:     file,
		Channels: channels,
		Streamed: true,
		Fanfare:  fanfare,
		Profile:  profile.String(),
	})
	s.audio.Fonts.Set(h, s.nextFont)
	s.nextFont++

	logger.Logf(logger.Allow, "streaming", "%s: sequence %#x (%s)", file, int(h), info)

	return int(h)
}

// SequenceFont implements the Subsystem interface.
func (s *Streamer) SequenceFont(handle int, index int) int {
	return s.audio.Fonts.Font(host.SeqID(handle), index)
}
