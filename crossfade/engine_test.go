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

package crossfade_test

import (
	"math"
	"testing"

	"github.com/dualtrack/dualtrack/crossfade"
	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/notifications"
	"github.com/dualtrack/dualtrack/test"
	"github.com/dualtrack/dualtrack/userinput"
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

func newEngine(cfg config) (*crossfade.Engine, *notifications.Recent) {
	r := notifications.NewRecent(10)
	return crossfade.NewEngine(cfg, r), r
}

func ticks(eng *crossfade.Engine, n int) {
	for i := 0; i < n; i++ {
		eng.Tick()
	}
}

func TestCurves(t *testing.T) {
	test.ExpectEquality(t, crossfade.Rising(0), 0.0)
	test.ExpectEquality(t, crossfade.Falling(0), 1.0)
	test.ExpectWithin(t, crossfade.Rising(crossfade.Duration-1), 1.0, 0.001)
	test.ExpectWithin(t, crossfade.Falling(crossfade.Duration-1), 0.0, 0.01)

	for i := 1; i < crossfade.Duration; i++ {
		// strictly monotonic
		test.ExpectSuccess(t, crossfade.Rising(i) > crossfade.Rising(i-1), i)
		test.ExpectSuccess(t, crossfade.Falling(i) < crossfade.Falling(i-1), i)

		// the curves mirror each other
		test.ExpectWithin(t, crossfade.Rising(i), crossfade.Falling(crossfade.Duration-i), 0.0001, i)
	}

	for i := 0; i < crossfade.Duration; i++ {
		r := float64(crossfade.Rising(i))
		f := float64(crossfade.Falling(i))
		test.ExpectWithin(t, r*r+f*f, 1.0, 0.0001, i)

		a := float64(i) * math.Pi / (2 * crossfade.Duration)
		test.ExpectWithin(t, r, math.Sin(a), 0.0001, i)
		test.ExpectWithin(t, f, math.Cos(a), 0.0001, i)
	}
}

func TestStartup(t *testing.T) {
	eng, r := newEngine(config{})
	s := eng.State()
	test.ExpectEquality(t, s.Active, crossfade.Remaster)
	test.ExpectEquality(t, s.FadeTimer, 0)
	test.ExpectEquality(t, s.RemasterCeiling, 1.0)
	test.ExpectEquality(t, s.OSTCeiling, crossfade.OSTCeiling)

	eng, r = newEngine(config{crossfade.KeyDefaultSoundtrack: 1, crossfade.KeyRemasterVolume: 2})
	s = eng.State()
	test.ExpectEquality(t, s.Active, crossfade.OriginalOST)
	test.ExpectEquality(t, s.FadeTimer, 0)
	test.ExpectEquality(t, s.RemasterCeiling, float32(1.413))

	// no notification at startup
	test.ExpectEquality(t, len(r.Notices()), 0)

	// settled on first tick
	eng.Tick()
	remaster, ost := eng.Volumes()
	test.ExpectEquality(t, remaster, 0.0)
	test.ExpectEquality(t, ost, crossfade.OSTCeiling)
}

func TestGainClamp(t *testing.T) {
	for idx, v := range crossfade.RemasterGain {
		eng, _ := newEngine(config{crossfade.KeyRemasterVolume: uint32(idx)})
		test.ExpectEquality(t, eng.State().RemasterCeiling, v)
	}

	def, _ := newEngine(config{crossfade.KeyRemasterVolume: 1})
	for _, idx := range []uint32{3, 5, 0xffffffff} {
		eng, _ := newEngine(config{crossfade.KeyRemasterVolume: idx})
		test.ExpectEquality(t, eng.State().RemasterCeiling, def.State().RemasterCeiling, idx)

		eng.Tick()
		def.Tick()
		test.ExpectEquality(t, eng.State().RemasterVolume, def.State().RemasterVolume, idx)
	}
}

func TestIdempotentSwitch(t *testing.T) {
	eng, r := newEngine(config{})

	test.ExpectFailure(t, eng.SwitchTo(crossfade.Remaster))
	test.ExpectEquality(t, eng.State().FadeTimer, 0)
	test.ExpectEquality(t, eng.State().Active, crossfade.Remaster)
	test.ExpectEquality(t, len(r.Notices()), 0)

	// during a fade
	test.ExpectSuccess(t, eng.SwitchTo(crossfade.OriginalOST))
	ticks(eng, 10)
	test.ExpectFailure(t, eng.SwitchTo(crossfade.OriginalOST))
	test.ExpectEquality(t, eng.State().FadeTimer, crossfade.Duration-10)
	test.ExpectEquality(t, eng.State().Active, crossfade.OriginalOST)
	test.ExpectEquality(t, len(r.Notices()), 1)
}

func TestToggleAndSettle(t *testing.T) {
	eng, r := newEngine(config{})
	eng.Tick()

	eng.Toggle()
	test.ExpectEquality(t, eng.State().Active, crossfade.OriginalOST)
	test.ExpectEquality(t, eng.State().FadeTimer, crossfade.Duration)

	n, ok := r.Last()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n.Prefix, "Ben's RST")
	test.ExpectEquality(t, n.Msg, "Active:")
	test.ExpectEquality(t, n.Suffix, "CD OST")

	// first tick of the fade is the start of the curves
	eng.Tick()
	remaster, ost := eng.Volumes()
	test.ExpectEquality(t, remaster, 1.0)
	test.ExpectEquality(t, ost, 0.0)

	// half way
	ticks(eng, crossfade.Duration/2)
	remaster, ost = eng.Volumes()
	test.ExpectWithin(t, remaster, ost, 0.01)
	test.ExpectWithin(t, remaster, float32(math.Sqrt2/2), 0.01)

	// the falling channel never rises and the rising channel never falls
	prevRemaster, prevOst := remaster, ost
	for !eng.State().Settled() {
		eng.Tick()
		remaster, ost = eng.Volumes()
		test.ExpectSuccess(t, remaster <= prevRemaster)
		test.ExpectSuccess(t, ost >= prevOst)
		prevRemaster, prevOst = remaster, ost
	}

	// settled after exactly Duration ticks
	eng.Tick()
	test.ExpectEquality(t, eng.State().FadeTimer, 0)
	remaster, ost = eng.Volumes()
	test.ExpectEquality(t, remaster, 0.0)
	test.ExpectEquality(t, ost, crossfade.OSTCeiling)
}

func TestSettleCount(t *testing.T) {
	eng, _ := newEngine(config{})
	eng.Toggle()

	ticks(eng, crossfade.Duration-1)
	test.ExpectEquality(t, eng.State().FadeTimer, 1)

	eng.Tick()
	test.ExpectEquality(t, eng.State().FadeTimer, 0)

	// the final tick of the fade is still on the curves
	remaster, ost := eng.Volumes()
	test.ExpectEquality(t, remaster, crossfade.Falling(crossfade.Duration-1))
	test.ExpectEquality(t, ost, crossfade.Rising(crossfade.Duration-1))

	eng.Tick()
	remaster, ost = eng.Volumes()
	test.ExpectEquality(t, remaster, 0.0)
	test.ExpectEquality(t, ost, crossfade.OSTCeiling)
}

func TestRapidToggle(t *testing.T) {
	eng, r := newEngine(config{})

	eng.Toggle()
	ticks(eng, 5)
	test.ExpectEquality(t, eng.State().FadeTimer, crossfade.Duration-5)

	// mid fade volumes
	remaster, ost := eng.Volumes()
	test.ExpectWithin(t, remaster, crossfade.Falling(4), 0.00001)
	test.ExpectWithin(t, ost, crossfade.Rising(4), 0.00001)

	eng.Toggle()
	test.ExpectEquality(t, eng.State().Active, crossfade.Remaster)
	test.ExpectEquality(t, eng.State().FadeTimer, crossfade.Duration)

	// the new fade starts from the beginning of the curves and not from the
	// mid fade volumes
	eng.Tick()
	remaster, ost = eng.Volumes()
	test.ExpectEquality(t, remaster, 0.0)
	test.ExpectEquality(t, ost, 1.0)

	ticks(eng, crossfade.Duration)
	remaster, ost = eng.Volumes()
	test.ExpectEquality(t, remaster, 1.0)
	test.ExpectEquality(t, ost, 0.0)

	test.ExpectEquality(t, len(r.Notices()), 2)
	n, _ := r.Last()
	test.ExpectEquality(t, n.Suffix, "REMASTER")
}

func TestSceneLoad(t *testing.T) {
	cfg := config{crossfade.KeyDefaultSoundtrack: 0}
	eng, r := newEngine(cfg)

	// reset disabled. the active channel is left alone
	eng.Toggle()
	ticks(eng, 20)
	cfg[crossfade.KeyRemasterVolume] = 0
	eng.OnSceneLoad()
	test.ExpectEquality(t, eng.State().Active, crossfade.OriginalOST)
	test.ExpectEquality(t, eng.State().FadeTimer, crossfade.Duration-20)
	test.ExpectEquality(t, len(r.Notices()), 1)

	// but the volume ceiling is applied
	test.ExpectEquality(t, eng.State().RemasterCeiling, float32(0.707))

	// reset enabled
	cfg[crossfade.KeyResetOnSceneChange] = 1
	eng.OnSceneLoad()
	test.ExpectEquality(t, eng.State().Active, crossfade.Remaster)
	test.ExpectEquality(t, eng.State().FadeTimer, crossfade.Duration)
	test.ExpectEquality(t, len(r.Notices()), 2)
	n, _ := r.Last()
	test.ExpectEquality(t, n.Suffix, "REMASTER")

	// already the default channel
	ticks(eng, 30)
	eng.OnSceneLoad()
	test.ExpectEquality(t, eng.State().FadeTimer, crossfade.Duration-30)
	test.ExpectEquality(t, len(r.Notices()), 2)

	// default changed to the original soundtrack
	cfg[crossfade.KeyDefaultSoundtrack] = 7
	eng.OnSceneLoad()
	test.ExpectEquality(t, eng.State().Active, crossfade.OriginalOST)
	n, _ = r.Last()
	test.ExpectEquality(t, n.Suffix, "CD OST")
}

func TestFrameInput(t *testing.T) {
	cfg := config{}
	eng, r := newEngine(cfg)
	var c userinput.Controller

	eng.OnFrameInput(c.Update(userinput.ButtonL))
	test.ExpectEquality(t, eng.State().Active, crossfade.OriginalOST)

	// holding the button does not toggle again
	eng.OnFrameInput(c.Update(userinput.ButtonL))
	eng.OnFrameInput(c.Update(userinput.ButtonL))
	test.ExpectEquality(t, eng.State().Active, crossfade.OriginalOST)

	// other buttons do nothing
	eng.OnFrameInput(c.Update(userinput.ButtonR))
	test.ExpectEquality(t, eng.State().Active, crossfade.OriginalOST)

	eng.OnFrameInput(c.Update(userinput.ButtonL | userinput.ButtonR))
	test.ExpectEquality(t, eng.State().Active, crossfade.Remaster)
	test.ExpectEquality(t, len(r.Notices()), 2)

	// quick switch disabled
	cfg[crossfade.KeyQuickSwitchL] = 1
	eng.OnFrameInput(c.Update(userinput.ButtonNone))
	eng.OnFrameInput(c.Update(userinput.ButtonL))
	test.ExpectEquality(t, eng.State().Active, crossfade.Remaster)
	test.ExpectEquality(t, len(r.Notices()), 2)
}

func TestApply(t *testing.T) {
	eng, _ := newEngine(config{crossfade.KeyRemasterVolume: 2})
	eng.Toggle()
	ticks(eng, 60)
	remaster, ost := eng.Volumes()

	var p host.Player
	for i := 0; i < 5; i++ {
		p.Channels[i] = &host.Channel{Volume: 1.0}
	}
	p.Channels[2] = nil

	eng.Apply(&p)

	test.ExpectEquality(t, p.Channels[0].Volume, remaster)
	test.ExpectEquality(t, p.Channels[1].Volume, ost)
	test.ExpectEquality(t, p.Channels[3].Volume, ost)
	test.ExpectEquality(t, p.Channels[4].Volume, remaster)
	test.ExpectSuccess(t, p.Channels[2] == nil)
	for _, i := range []int{0, 1, 3, 4} {
		test.ExpectSuccess(t, p.Channels[i].VolumeChanged, i)
		p.Channels[i].VolumeChanged = false
	}

	// unchanged volumes are not written
	eng.Apply(&p)
	for _, i := range []int{0, 1, 3, 4} {
		test.ExpectFailure(t, p.Channels[i].VolumeChanged, i)
	}

	// only the channels that change are marked
	p.Channels[1].Volume = 0.5
	eng.Apply(&p)
	test.ExpectFailure(t, p.Channels[0].VolumeChanged)
	test.ExpectSuccess(t, p.Channels[1].VolumeChanged)
	test.ExpectFailure(t, p.Channels[3].VolumeChanged)
}

func TestChannelString(t *testing.T) {
	test.ExpectEquality(t, crossfade.Remaster.String(), "REMASTER")
	test.ExpectEquality(t, crossfade.OriginalOST.String(), "CD OST")
	test.ExpectEquality(t, crossfade.Remaster.Other(), crossfade.OriginalOST)
	test.ExpectEquality(t, crossfade.OriginalOST.Other(), crossfade.Remaster)
}
