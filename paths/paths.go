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

// Package paths locates the resource directory used by dualtrack. The
// resource directory holds the prefs file and, by default, the directory of
// replacement audio assets.
//
// A ".dualtrack" directory in the current working directory takes precedence
// over the directory in the user's configuration directory. This makes it easy
// to run a development copy alongside an installed copy.
package paths

import (
	"os"
	"path/filepath"
)

const localResourceDir = ".dualtrack"
const configResourceDir = "dualtrack"

// AssetDir is the name of the sub-directory of the resource directory that
// holds the replacement audio files.
const AssetDir = "assets"

// ResourcePath returns the path to a file in a sub-directory of the resource
// directory. The sub-directory is created if it does not exist. Both subPth
// and file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", err
		}
	}

	return filepath.Join(pth, file), nil
}

func basePath() (string, error) {
	if _, err := os.Stat(localResourceDir); err == nil {
		return localResourceDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourceDir), nil
}
