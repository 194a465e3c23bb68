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

package userinput

import (
	"github.com/dualtrack/dualtrack/curated"
	"github.com/pkg/term"
)

// DefaultTerminal is the device opened by OpenTerminal().
const DefaultTerminal = "/dev/tty"

// TerminalError is the error pattern for problems with the terminal device.
const TerminalError = "terminal: %v"

// Terminal is the controlling terminal put into cbreak mode, so that keys are
// available to be read as soon as they are typed.
type Terminal struct {
	t *term.Term
}

// OpenTerminal opens the controlling terminal in cbreak mode.
func OpenTerminal(dev string) (*Terminal, error) {
	if dev == "" {
		dev = DefaultTerminal
	}
	t, err := term.Open(dev, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return &Terminal{t: t}, nil
}

// Read implements the io.Reader interface.
func (trm *Terminal) Read(b []byte) (int, error) {
	return trm.t.Read(b)
}

// Close restores the terminal to the mode it was in when it was opened and
// closes the device.
func (trm *Terminal) Close() error {
	if err := trm.t.Restore(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := trm.t.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
