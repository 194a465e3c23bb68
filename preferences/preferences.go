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

// Package preferences collates the preference values of the soundtrack mod
// and implements the crossfade.Config interface over them.
package preferences

import (
	"fmt"

	"github.com/dualtrack/dualtrack/crossfade"
	"github.com/dualtrack/dualtrack/curated"
	"github.com/dualtrack/dualtrack/logger"
	"github.com/dualtrack/dualtrack/paths"
	"github.com/dualtrack/dualtrack/prefs"
)

// Preferences defines and collates all the preference values used by the
// soundtrack mod.
type Preferences struct {
	dsk *prefs.Disk

	// index into the remaster gain table. 0 is -3dB, 1 is 0dB, 2 is +3dB
	RemasterVolume prefs.Int

	// 0 for the remaster, anything else for the original soundtrack
	DefaultSoundtrack prefs.Int

	// 0 is off
	ResetOnSceneChange prefs.Int

	// 0 is on. the sense of this value is inverted
	QuickSwitchL prefs.Int

	// settings of the command line tool. they are not part of the
	// crossfade.Config interface
	DesktopNotify prefs.Bool
	EchoLog       prefs.Bool
	AssetDir      prefs.String
}

// Keys of the command line tool settings.
const (
	KeyDesktopNotify = "desktop_notify"
	KeyEchoLog       = "echo_log"
	KeyAssetDir      = "asset_dir"
)

// the methods common to every prefs type used by Preferences
type value interface {
	fmt.Stringer
	Set(v prefs.Value) error
	Get() prefs.Value
	Reset() error
	SetHookPost(f func(v prefs.Value) error)
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the default prefs file in the
// resource directory.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	if path == "" {
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		key string
		p   value
	}{
		{key: crossfade.KeyRemasterVolume, p: &p.RemasterVolume},
		{key: crossfade.KeyDefaultSoundtrack, p: &p.DefaultSoundtrack},
		{key: crossfade.KeyResetOnSceneChange, p: &p.ResetOnSceneChange},
		{key: crossfade.KeyQuickSwitchL, p: &p.QuickSwitchL},
		{key: KeyDesktopNotify, p: &p.DesktopNotify},
		{key: KeyEchoLog, p: &p.EchoLog},
		{key: KeyAssetDir, p: &p.AssetDir},
	} {
		key := v.key
		v.p.SetHookPost(func(value prefs.Value) error {
			logger.Logf(logger.Allow, "prefs", "%s: %v", key, value)
			return nil
		})
		err = p.dsk.Add(key, v.p)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.RemasterVolume.Set(crossfade.DefaultGainIndex)
	_ = p.DefaultSoundtrack.Set(0)
	_ = p.ResetOnSceneChange.Set(0)
	_ = p.QuickSwitchL.Set(0)
	_ = p.DesktopNotify.Set(false)
	_ = p.EchoLog.Set(false)
	_ = p.AssetDir.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Uint32 implements the crossfade.Config interface. Unknown keys return zero.
// Negative values are returned as large positive values, which the crossfade
// engine treats as out of range.
func (p *Preferences) Uint32(key string) uint32 {
	var v *prefs.Int

	switch key {
	case crossfade.KeyRemasterVolume:
		v = &p.RemasterVolume
	case crossfade.KeyDefaultSoundtrack:
		v = &p.DefaultSoundtrack
	case crossfade.KeyResetOnSceneChange:
		v = &p.ResetOnSceneChange
	case crossfade.KeyQuickSwitchL:
		v = &p.QuickSwitchL
	default:
		return 0
	}

	return uint32(v.Get().(int))
}
