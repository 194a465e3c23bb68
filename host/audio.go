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

package host

import (
	"github.com/dualtrack/dualtrack/curated"
	"github.com/dualtrack/dualtrack/userinput"
)

// TicksPerFrame is the number of audio ticks for every video frame. At sixty
// frames per second there are 180 audio ticks per second.
const TicksPerFrame = 3

// FramesPerSecond is the frame rate of the host.
const FramesPerSecond = 60

// Hooks are the callbacks a mod registers with the host.
type Hooks interface {
	// called once after the audio system has been initialised and before
	// any other hook
	OnStartup() error

	// called whenever a new scene is loaded
	OnSceneLoad()

	// called once per frame with the state of the controller
	OnFrameInput(input userinput.Snapshot)

	// called once per audio tick before any sequence player is processed
	OnAudioTick()

	// called once per audio tick for every enabled sequence player
	OnSequencePlayerTick(player *Player)
}

// Audio is the host's audio system.
type Audio struct {
	Sequences *SequenceTable
	Fonts     *FontTable

	players [NumPlayers]Player

	// the number of ticks processed since creation
	ticks int

	// the number of sub-channel volume changes seen by the mixer
	mixed int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	a := &Audio{
		Sequences: newSequenceTable(),
		Fonts:     newFontTable(),
	}
	for i := range a.players {
		a.players[i].ID = PlayerID(i)
		a.players[i].stop()
	}
	return a
}

// Init calls the OnStartup() hook.
func (a *Audio) Init(hooks Hooks) error {
	return hooks.OnStartup()
}

// LoadScene calls the OnSceneLoad() hook.
func (a *Audio) LoadScene(hooks Hooks) {
	hooks.OnSceneLoad()
}

// ReplaceSequence makes key play the sequence identified by handle.
func (a *Audio) ReplaceSequence(key SeqID, handle int) error {
	return a.Sequences.Replace(key, SeqID(handle))
}

// ReplaceSequenceFont changes the font at index for the key sequence.
func (a *Audio) ReplaceSequenceFont(key SeqID, index int, font int) error {
	return a.Fonts.Replace(key, index, font)
}

// SequenceFont returns the font at index for the key sequence. Returns -1 if
// there is no such font.
func (a *Audio) SequenceFont(key SeqID, index int) int {
	return a.Fonts.Font(key, index)
}

// Play the sequence on the player. Any sequence already playing on the player
// is stopped.
func (a *Audio) Play(player PlayerID, id SeqID) error {
	if player < 0 || player >= NumPlayers {
		return curated.Errorf("host: unknown player (%d)", player)
	}
	e, ok := a.Sequences.Entry(id)
	if !ok {
		return curated.Errorf(UnknownSequence, id)
	}
	a.players[player].start(id, e.Channels)
	return nil
}

// Stop the player.
func (a *Audio) Stop(player PlayerID) {
	if player < 0 || player >= NumPlayers {
		return
	}
	a.players[player].stop()
}

// Player returns the player with the ID. The returned pointer should not be
// retained.
func (a *Audio) Player(player PlayerID) *Player {
	if player < 0 || player >= NumPlayers {
		return nil
	}
	return &a.players[player]
}

// Frame runs one frame of the audio system.
func (a *Audio) Frame(hooks Hooks, input userinput.Snapshot) {
	hooks.OnFrameInput(input)
	for i := 0; i < TicksPerFrame; i++ {
		a.Tick(hooks)
	}
}

// Tick runs one audio tick. The OnAudioTick() hook is always called before
// the OnSequencePlayerTick() hook.
func (a *Audio) Tick(hooks Hooks) {
	hooks.OnAudioTick()
	for i := range a.players {
		p := &a.players[i]
		if !p.Enabled {
			continue
		}
		hooks.OnSequencePlayerTick(p)
		a.mix(p)
	}
	a.ticks++
}

// consume volume changes
func (a *Audio) mix(p *Player) {
	for _, c := range p.Channels {
		if c != nil && c.VolumeChanged {
			c.VolumeChanged = false
			a.mixed++
		}
	}
}

// Ticks returns the number of audio ticks processed.
func (a *Audio) Ticks() int {
	return a.ticks
}

// Mixed returns the number of sub-channel volume changes that have reached
// the mixer.
func (a *Audio) Mixed() int {
	return a.mixed
}
