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

package notifications

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/dualtrack/dualtrack/logger"
	"github.com/gen2brain/beeep"
)

// Notice is a three part message. For example:
//
//	"Ben's RST", "Active:", "REMASTER"
type Notice struct {
	Prefix string
	Msg    string
	Suffix string
}

func (n Notice) String() string {
	return fmt.Sprintf("%s: %s %s", n.Prefix, n.Msg, n.Suffix)
}

// Sink is the destination of a Notice. Emit must not block for long and
// must not fail.
type Sink interface {
	Emit(prefix string, msg string, suffix string)
}

// Log writes every notice to the central logger.
type Log struct{}

// Emit implements the Sink interface.
func (Log) Emit(prefix string, msg string, suffix string) {
	logger.Log(logger.Allow, "notification", Notice{Prefix: prefix, Msg: msg, Suffix: suffix})
}

// Desktop shows every notice as a desktop notification.
type Desktop struct{}

// Emit implements the Sink interface. The notice is dropped if there is no
// display to show it on. Errors from the notification service are logged.
func (Desktop) Emit(prefix string, msg string, suffix string) {
	if !DesktopAvailable() {
		return
	}
	if err := beeep.Notify(prefix, fmt.Sprintf("%s %s", msg, suffix), ""); err != nil {
		logger.Log(logger.Allow, "notification", err)
	}
}

// DesktopAvailable returns false if desktop notifications can not be shown.
// This is the case on Linux when there is no X11 or Wayland display.
func DesktopAvailable() bool {
	if runtime.GOOS == "linux" {
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

// Multi sends every notice to all the sinks in the list.
type Multi []Sink

// Emit implements the Sink interface.
func (m Multi) Emit(prefix string, msg string, suffix string) {
	for _, s := range m {
		s.Emit(prefix, msg, suffix)
	}
}

// Recent keeps the most recent notices. The zero value keeps nothing, use
// NewRecent().
type Recent struct {
	crit    sync.Mutex
	notices []Notice
	max     int
}

// NewRecent is the preferred method of initialisation for the Recent type.
func NewRecent(max int) *Recent {
	return &Recent{max: max}
}

// Emit implements the Sink interface.
func (r *Recent) Emit(prefix string, msg string, suffix string) {
	r.crit.Lock()
	defer r.crit.Unlock()
	if r.max <= 0 {
		return
	}
	r.notices = append(r.notices, Notice{Prefix: prefix, Msg: msg, Suffix: suffix})
	if len(r.notices) > r.max {
		r.notices = r.notices[len(r.notices)-r.max:]
	}
}

// Notices returns a copy of the kept notices, oldest first.
func (r *Recent) Notices() []Notice {
	r.crit.Lock()
	defer r.crit.Unlock()
	return append([]Notice{}, r.notices...)
}

// Last returns the most recent notice.
func (r *Recent) Last() (Notice, bool) {
	r.crit.Lock()
	defer r.crit.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}
