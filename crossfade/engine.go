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

package crossfade

import (
	"fmt"

	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/logger"
	"github.com/dualtrack/dualtrack/notifications"
	"github.com/dualtrack/dualtrack/userinput"
)

// Parts of the notification sent when the active channel changes. The third
// part is the name of the channel.
const (
	NotificationPrefix = "Ben's RST"
	NotificationMsg    = "Active:"
)

// State of the Engine.
type State struct {
	// the channel being faded in, or that has been faded in
	Active Channel

	// the number of ticks left in the current fade. zero if there is no fade
	FadeTimer int

	RemasterCeiling float32
	OSTCeiling      float32

	// the volumes as of the most recent tick
	RemasterVolume float32
	OSTVolume      float32
}

func (s State) String() string {
	return fmt.Sprintf("%s [%3d] remaster=%.3f ost=%.3f", s.Active, s.FadeTimer, s.RemasterVolume, s.OSTVolume)
}

// Settled returns true if there is no fade in progress.
func (s State) Settled() bool {
	return s.FadeTimer == 0
}

// Engine decides the volumes of the two channels.
type Engine struct {
	cfg  Config
	sink notifications.Sink

	state State
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The volume ceiling of the remaster and the active channel are taken from
// the config. No fade is in progress and no notification is sent.
func NewEngine(cfg Config, sink notifications.Sink) *Engine {
	eng := &Engine{
		cfg:  cfg,
		sink: sink,
	}
	eng.state.OSTCeiling = OSTCeiling
	eng.Startup()
	return eng
}

// Startup applies the configuration and sets the active channel to the
// default channel, without a fade.
func (eng *Engine) Startup() {
	eng.ApplyConfig()
	eng.state.Active = DefaultChannel(eng.cfg)
	eng.state.FadeTimer = 0
}

// ApplyConfig reads the volume ceiling of the remaster from the
// configuration.
func (eng *Engine) ApplyConfig() {
	eng.state.RemasterCeiling = RemasterCeiling(eng.cfg)
}

// State returns a copy of the engine's state.
func (eng *Engine) State() State {
	return eng.state
}

// Volumes returns the volumes of the two channels as of the most recent tick.
func (eng *Engine) Volumes() (remaster float32, ost float32) {
	return eng.state.RemasterVolume, eng.state.OSTVolume
}

// OnSceneLoad should be called whenever a new scene is loaded. The
// configuration is applied again and, if KeyResetOnSceneChange is set, the
// default channel is made active.
func (eng *Engine) OnSceneLoad() {
	eng.ApplyConfig()
	if eng.cfg.Uint32(KeyResetOnSceneChange) == 0 {
		return
	}
	if eng.SwitchTo(DefaultChannel(eng.cfg)) {
		logger.Logf(logger.Allow, "crossfade", "scene load: reset to %s", eng.state.Active)
	}
}

// OnFrameInput should be called once per frame with the controller state. A
// press of the L button toggles the active channel unless KeyQuickSwitchL is
// set.
func (eng *Engine) OnFrameInput(input userinput.Snapshot) {
	if eng.cfg.Uint32(KeyQuickSwitchL) != 0 {
		return
	}
	if input.Pressed(userinput.ButtonL) {
		eng.Toggle()
	}
}

// Toggle makes the other channel active and starts a new fade.
func (eng *Engine) Toggle() {
	eng.activate(eng.state.Active.Other())
	logger.Logf(logger.Allow, "crossfade", "toggle: %s", eng.state.Active)
}

// SwitchTo makes ch the active channel and starts a new fade. Nothing changes
// if ch is already the active channel. Returns true if the channel changed.
func (eng *Engine) SwitchTo(ch Channel) bool {
	if ch == eng.state.Active {
		return false
	}
	eng.activate(ch)
	return true
}

func (eng *Engine) activate(ch Channel) {
	eng.state.Active = ch
	eng.state.FadeTimer = Duration
	if eng.sink != nil {
		eng.sink.Emit(NotificationPrefix, NotificationMsg, ch.String())
	}
}

// Tick should be called once per audio tick, before Apply() is called for
// any player in the same tick.
func (eng *Engine) Tick() {
	var fadeIn, fadeOut float32

	if eng.state.FadeTimer > 0 {
		t := Duration - eng.state.FadeTimer
		fadeIn = rising[t]
		fadeOut = falling[t]
		eng.state.FadeTimer--
	} else {
		fadeIn = 1.0
		fadeOut = 0.0
	}

	if eng.state.Active == Remaster {
		eng.state.RemasterVolume = fadeIn * eng.state.RemasterCeiling
		eng.state.OSTVolume = fadeOut * eng.state.OSTCeiling
	} else {
		eng.state.RemasterVolume = fadeOut * eng.state.RemasterCeiling
		eng.state.OSTVolume = fadeIn * eng.state.OSTCeiling
	}
}

// Apply writes the volumes to the sub-channels of the player. Even numbered
// sub-channels take the remaster volume and odd numbered sub-channels take
// the original soundtrack volume. A sub-channel is only written to, and
// marked as changed, if its volume is different.
func (eng *Engine) Apply(p *host.Player) {
	for i, c := range p.Channels {
		if c == nil {
			continue
		}

		v := eng.state.RemasterVolume
		if i%2 == 1 {
			v = eng.state.OSTVolume
		}

		if c.Volume != v {
			c.Volume = v
			c.VolumeChanged = true
		}
	}
}
