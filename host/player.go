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

// PlayerID identifies one of the host's sequence players.
type PlayerID int

// List of sequence players.
const (
	PlayerBGMMain PlayerID = iota
	PlayerFanfare
	PlayerSFX
	PlayerBGMSub
	NumPlayers
)

func (id PlayerID) String() string {
	switch id {
	case PlayerBGMMain:
		return "BGM main"
	case PlayerFanfare:
		return "fanfare"
	case PlayerSFX:
		return "SFX"
	case PlayerBGMSub:
		return "BGM sub"
	}
	return "unknown player"
}

// Channel is a single sub-channel of a sequence player.
type Channel struct {
	Volume float32

	// set when Volume has been written and the mixer has yet to see the new
	// value
	VolumeChanged bool
}

// Player is a sequence player. Sub-channels that are not used by the current
// sequence are nil.
type Player struct {
	ID       PlayerID
	SeqID    SeqID
	Enabled  bool
	Channels [ChannelsPerSequence]*Channel
}

func (p *Player) start(id SeqID, channels int) {
	p.SeqID = id
	p.Enabled = true
	for i := range p.Channels {
		if i < channels {
			p.Channels[i] = &Channel{Volume: 1.0}
		} else {
			p.Channels[i] = nil
		}
	}
}

func (p *Player) stop() {
	p.SeqID = NoSequence
	p.Enabled = false
	for i := range p.Channels {
		p.Channels[i] = nil
	}
}
