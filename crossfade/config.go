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

// Config is the source of configuration values. Keys that are not known to
// the Config should return zero.
type Config interface {
	Uint32(key string) uint32
}

// List of configuration keys.
const (
	// index into RemasterGain
	KeyRemasterVolume = "remaster_volume"

	// zero for the remaster, anything else for the original soundtrack
	KeyDefaultSoundtrack = "default_soundtrack"

	// zero for off, anything else for on
	KeyResetOnSceneChange = "reset_on_scene_change"

	// zero for enabled, anything else for disabled
	KeyQuickSwitchL = "quick_switch_l"
)

// RemasterGain is the list of volume ceilings for the remastered soundtrack.
// -3dB, 0dB and +3dB.
var RemasterGain = [...]float32{0.707, 1.0, 1.413}

// DefaultGainIndex is used for values of KeyRemasterVolume that are out of
// range.
const DefaultGainIndex = 1

// OSTCeiling is the volume ceiling for the original soundtrack.
const OSTCeiling float32 = 1.0

// RemasterCeiling returns the volume ceiling for the remastered soundtrack as
// described by the config.
func RemasterCeiling(cfg Config) float32 {
	idx := cfg.Uint32(KeyRemasterVolume)
	if idx >= uint32(len(RemasterGain)) {
		idx = DefaultGainIndex
	}
	return RemasterGain[idx]
}

// DefaultChannel returns the default channel described by the config.
func DefaultChannel(cfg Config) Channel {
	if cfg.Uint32(KeyDefaultSoundtrack) != 0 {
		return OriginalOST
	}
	return Remaster
}
