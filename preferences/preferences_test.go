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

package preferences_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dualtrack/dualtrack/crossfade"
	"github.com/dualtrack/dualtrack/preferences"
	"github.com/dualtrack/dualtrack/prefs"
	"github.com/dualtrack/dualtrack/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Uint32(crossfade.KeyRemasterVolume), uint32(1))
	test.ExpectEquality(t, p.Uint32(crossfade.KeyDefaultSoundtrack), uint32(0))
	test.ExpectEquality(t, p.Uint32(crossfade.KeyResetOnSceneChange), uint32(0))
	test.ExpectEquality(t, p.Uint32(crossfade.KeyQuickSwitchL), uint32(0))
	test.ExpectEquality(t, p.Uint32("unknown"), uint32(0))

	// missing file was created
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestLoadFromDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	content := fmt.Sprintf("%s\ndefault_soundtrack :: 1\nremaster_volume :: 5\nreset_on_scene_change :: 1\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Uint32(crossfade.KeyDefaultSoundtrack), uint32(1))
	test.ExpectEquality(t, p.Uint32(crossfade.KeyResetOnSceneChange), uint32(1))

	// out of range values are stored as they are and clamped by the engine
	test.ExpectEquality(t, p.Uint32(crossfade.KeyRemasterVolume), uint32(5))
	test.ExpectEquality(t, crossfade.RemasterCeiling(p), crossfade.RemasterGain[crossfade.DefaultGainIndex])
	test.ExpectEquality(t, crossfade.DefaultChannel(p), crossfade.OriginalOST)

	// negative values are out of range too
	test.ExpectSuccess(t, p.RemasterVolume.Set(-1))
	test.ExpectEquality(t, crossfade.RemasterCeiling(p), crossfade.RemasterGain[crossfade.DefaultGainIndex])
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("quick_switch_l::1; remaster_volume::0")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Uint32(crossfade.KeyQuickSwitchL), uint32(1))
	test.ExpectEquality(t, crossfade.RemasterCeiling(p), float32(0.707))
}

func TestSaveAndReload(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.RemasterVolume.Set(2))
	test.ExpectSuccess(t, p.Save())

	p.SetDefaults()
	test.ExpectEquality(t, p.Uint32(crossfade.KeyRemasterVolume), uint32(1))
	test.ExpectSuccess(t, p.Load())
	test.ExpectEquality(t, p.Uint32(crossfade.KeyRemasterVolume), uint32(2))
}

func TestToolSettings(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	content := fmt.Sprintf("%s\ndesktop_notify :: TRUE\nasset_dir :: /srv/audio\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	prefs.PushCommandLineStack("echo_log::true")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.DesktopNotify.Get().(bool))
	test.ExpectSuccess(t, p.EchoLog.Get().(bool))
	test.ExpectEquality(t, p.AssetDir.String(), "/srv/audio")

	// not part of the crossfade configuration
	test.ExpectEquality(t, p.Uint32(preferences.KeyDesktopNotify), uint32(0))

	// saved alongside the crossfade values
	test.ExpectSuccess(t, p.AssetDir.Set("/srv/other"))
	test.ExpectSuccess(t, p.Save())
	p.SetDefaults()
	test.ExpectEquality(t, p.AssetDir.String(), "")
	test.ExpectFailure(t, p.DesktopNotify.Get().(bool))
	test.ExpectSuccess(t, p.Load())
	test.ExpectEquality(t, p.AssetDir.String(), "/srv/other")
	test.ExpectSuccess(t, p.DesktopNotify.Get().(bool))
}
