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

package host_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dualtrack/dualtrack/curated"
	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/test"
	"github.com/dualtrack/dualtrack/userinput"
)

// records the order in which hooks are called
type recorder struct {
	calls []string
	setTo float32
}

func (r *recorder) OnStartup() error {
	r.calls = append(r.calls, "startup")
	return nil
}

func (r *recorder) OnSceneLoad() {
	r.calls = append(r.calls, "scene")
}

func (r *recorder) OnFrameInput(input userinput.Snapshot) {
	r.calls = append(r.calls, fmt.Sprintf("input %s", input.Press))
}

func (r *recorder) OnAudioTick() {
	r.calls = append(r.calls, "tick")
}

func (r *recorder) OnSequencePlayerTick(p *host.Player) {
	r.calls = append(r.calls, fmt.Sprintf("player %s", p.ID))
	for _, c := range p.Channels {
		if c != nil && c.Volume != r.setTo {
			c.Volume = r.setTo
			c.VolumeChanged = true
		}
	}
}

func TestHookOrder(t *testing.T) {
	a := host.NewAudio()
	r := &recorder{setTo: 1.0}

	test.ExpectSuccess(t, a.Init(r))
	a.LoadScene(r)
	test.ExpectSuccess(t, a.Play(host.PlayerBGMMain, host.SeqTerminaField))
	test.ExpectSuccess(t, a.Play(host.PlayerBGMSub, host.SeqAmbience))
	a.Frame(r, userinput.Snapshot{Press: userinput.ButtonL})

	expected := []string{
		"startup",
		"scene",
		"input L",
		"tick", "player BGM main", "player BGM sub",
		"tick", "player BGM main", "player BGM sub",
		"tick", "player BGM main", "player BGM sub",
	}
	test.ExpectEquality(t, strings.Join(r.calls, ", "), strings.Join(expected, ", "))
	test.ExpectEquality(t, a.Ticks(), host.TicksPerFrame)
}

func TestMixer(t *testing.T) {
	a := host.NewAudio()
	r := &recorder{setTo: 0.5}

	test.ExpectSuccess(t, a.Play(host.PlayerBGMMain, host.SeqTerminaField))
	a.Tick(r)
	test.ExpectEquality(t, a.Mixed(), host.ChannelsPerSequence)

	// the mixer clears the dirty flags
	for _, c := range a.Player(host.PlayerBGMMain).Channels {
		test.ExpectFailure(t, c.VolumeChanged)
	}

	// no change in volume means nothing for the mixer
	a.Tick(r)
	test.ExpectEquality(t, a.Mixed(), host.ChannelsPerSequence)

	a.Stop(host.PlayerBGMMain)
	test.ExpectFailure(t, a.Player(host.PlayerBGMMain).Enabled)
	test.ExpectEquality(t, a.Player(host.PlayerBGMMain).SeqID, host.NoSequence)
}

func TestReplaceSequence(t *testing.T) {
	a := host.NewAudio()

	h := a.Sequences.Add(host.SequenceEntry{
		Name:     "NA_BGM_TERMINA_FIELD.ogg",
		Channels: 2,
		Streamed: true,
	})
	test.ExpectEquality(t, h, host.SeqID(host.NumOriginalSequences))
	a.Fonts.Set(h, 0x100)

	test.ExpectSuccess(t, a.ReplaceSequence(host.SeqTerminaField, int(h)))
	test.ExpectSuccess(t, a.ReplaceSequenceFont(host.SeqTerminaField, 0, a.Fonts.Font(h, 0)))

	e, ok := a.Sequences.Entry(host.SeqTerminaField)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, e.Streamed)
	test.ExpectEquality(t, a.Fonts.Font(host.SeqTerminaField, 0), 0x100)

	// playing the replaced sequence uses the streamed entry's channel count
	test.ExpectSuccess(t, a.Play(host.PlayerBGMMain, host.SeqTerminaField))
	p := a.Player(host.PlayerBGMMain)
	test.ExpectSuccess(t, p.Channels[1] != nil)
	test.ExpectSuccess(t, p.Channels[2] == nil)

	// unknown handles and keys
	err := a.ReplaceSequence(host.SeqTerminaField, 0x1000)
	test.ExpectSuccess(t, curated.Is(err, host.UnknownSequence))
	err = a.ReplaceSequenceFont(host.SeqTerminaField, 1, 0)
	test.ExpectSuccess(t, curated.Is(err, host.UnknownFont))
	test.ExpectEquality(t, a.Fonts.Font(h, 5), -1)
}

func TestSeqIDString(t *testing.T) {
	test.ExpectEquality(t, host.SeqTerminaField.String(), "TERMINA_FIELD")
	test.ExpectEquality(t, host.SeqID(0x1ff).String(), "SEQ_0x1ff")
}
