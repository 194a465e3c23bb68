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

package soundtrack_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dualtrack/dualtrack/crossfade"
	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/notifications"
	"github.com/dualtrack/dualtrack/replacement"
	"github.com/dualtrack/dualtrack/soundtrack"
	"github.com/dualtrack/dualtrack/streaming"
	"github.com/dualtrack/dualtrack/test"
	"github.com/dualtrack/dualtrack/userinput"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// config values for testing. a missing remaster volume is the default gain
// and other missing keys are zero
type config map[string]uint32

func (cfg config) Uint32(key string) uint32 {
	v, ok := cfg[key]
	if !ok && key == crossfade.KeyRemasterVolume {
		return crossfade.DefaultGainIndex
	}
	return v
}

// a short four channel asset. two remaster stems and two original stems
func writeAsset(t *testing.T, dir string, name string) {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, name))
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 16, 4, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 4, SampleRate: 8000},
		Data:   make([]int, 8000*4),
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

type fixture struct {
	audio *host.Audio
	mod   *soundtrack.Mod
	sink  *notifications.Recent
	cfg   config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	writeAsset(t, dir, "field.wav")
	writeAsset(t, dir, "chest.wav")

	tab := replacement.NewTable([]replacement.Entry{
		{OriginalID: host.SeqTerminaField, AssetName: "field.wav", Lane: replacement.LaneBGM},
		{OriginalID: host.SeqOpenChest, AssetName: "chest.wav", Lane: replacement.LaneFanfare},
		{OriginalID: host.SeqChase, AssetName: "missing.wav", Lane: replacement.LaneBGM},
	})

	f := &fixture{
		audio: host.NewAudio(),
		sink:  notifications.NewRecent(10),
		cfg:   config{},
	}
	f.mod = soundtrack.NewMod(f.cfg, f.sink, tab, streaming.NewStreamer(f.audio), f.audio, dir)
	test.DemandSuccess(t, f.audio.Init(f.mod))

	return f
}

func (f *fixture) frames(n int, down userinput.Button) {
	var c userinput.Controller
	for i := 0; i < n; i++ {
		f.audio.Frame(f.mod, c.Update(down))
	}
}

func TestStartup(t *testing.T) {
	f := newFixture(t)

	r := f.mod.Report()
	test.ExpectEquality(t, r.Bound, 2)
	test.ExpectEquality(t, r.Failed, 1)

	// replaced sequence now refers to the streamed asset
	e, ok := f.audio.Sequences.Entry(host.SeqTerminaField)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, e.Streamed)
	test.ExpectEquality(t, e.Name, "field.wav")
	test.ExpectEquality(t, e.Channels, 4)
	test.ExpectEquality(t, f.audio.Fonts.Font(host.SeqTerminaField, 0), streaming.StreamedFontBase)

	e, _ = f.audio.Sequences.Entry(host.SeqOpenChest)
	test.ExpectSuccess(t, e.Fanfare)

	// failed sequence is unchanged
	e, _ = f.audio.Sequences.Entry(host.SeqChase)
	test.ExpectFailure(t, e.Streamed)
	test.ExpectEquality(t, f.audio.Fonts.Font(host.SeqChase, 0), int(host.SeqChase))
}

func TestPlayAndToggle(t *testing.T) {
	f := newFixture(t)

	test.ExpectSuccess(t, f.audio.Play(host.PlayerBGMMain, host.SeqTerminaField))
	test.ExpectSuccess(t, f.audio.Play(host.PlayerBGMSub, host.SeqChase))

	f.frames(1, userinput.ButtonNone)

	bgm := f.audio.Player(host.PlayerBGMMain)
	test.ExpectEquality(t, bgm.Channels[0].Volume, 1.0)
	test.ExpectEquality(t, bgm.Channels[1].Volume, 0.0)
	test.ExpectEquality(t, bgm.Channels[2].Volume, 1.0)
	test.ExpectEquality(t, bgm.Channels[3].Volume, 0.0)

	// press L and keep holding it until the fade is over
	f.frames(crossfade.Duration/host.TicksPerFrame+1, userinput.ButtonL)
	test.ExpectEquality(t, f.mod.Engine.State().Active, crossfade.OriginalOST)
	test.ExpectEquality(t, len(f.sink.Notices()), 1)

	test.ExpectEquality(t, bgm.Channels[0].Volume, 0.0)
	test.ExpectEquality(t, bgm.Channels[1].Volume, 1.0)

	// the player with an unreplaced sequence is never touched
	sub := f.audio.Player(host.PlayerBGMSub)
	for i, c := range sub.Channels {
		test.ExpectEquality(t, c.Volume, 1.0, i)
	}
}

func TestSceneLoadReset(t *testing.T) {
	f := newFixture(t)
	f.cfg[crossfade.KeyResetOnSceneChange] = 1

	f.frames(1, userinput.ButtonL)
	test.ExpectEquality(t, f.mod.Engine.State().Active, crossfade.OriginalOST)

	f.audio.LoadScene(f.mod)
	test.ExpectEquality(t, f.mod.Engine.State().Active, crossfade.Remaster)
	test.ExpectEquality(t, f.mod.Engine.State().FadeTimer, crossfade.Duration)

	n, _ := f.sink.Last()
	test.ExpectEquality(t, n.Suffix, "REMASTER")
}
