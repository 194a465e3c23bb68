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

// Package modalflag wraps the flag package in the Go standard library. It
// handles program modes, each mode having its own set of flags.
//
// Arguments are given to NewArgs() and each layer of arguments is parsed with
// a call to Parse(). Flags for the layer are added before the call to Parse()
// and modes that can follow the flags are added with AddSubModes():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "RENDER", "TABLE", "STATE")
//	assets := md.AddString("assets", "", "directory of replacement assets")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default and is used when the first argument after
// the flags is not one of the listed modes. Mode names are compared without
// regard to case and are returned in upper case by Mode().
//
// The flags for the selected mode are then added after a call to NewMode()
// and the next layer of arguments is parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		ticks := md.AddInt("ticks", 360, "number of ticks to render")
//		_, _ = md.Parse()
//		render(*ticks, md.GetArg(0))
//	}
//
// Help is printed automatically when the -help flag is seen. Path() returns
// the modes selected so far, separated by a slash, and is used in the help
// banner.
package modalflag
