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

package notifications_test

import (
	"testing"

	"github.com/dualtrack/dualtrack/logger"
	"github.com/dualtrack/dualtrack/notifications"
	"github.com/dualtrack/dualtrack/test"
)

func TestRecent(t *testing.T) {
	r := notifications.NewRecent(2)
	_, ok := r.Last()
	test.ExpectFailure(t, ok)

	r.Emit("Ben's RST", "Active:", "CD OST")
	r.Emit("Ben's RST", "Active:", "REMASTER")
	r.Emit("Ben's RST", "Active:", "CD OST")

	n := r.Notices()
	test.ExpectEquality(t, len(n), 2)
	test.ExpectEquality(t, n[0].Suffix, "REMASTER")

	l, ok := r.Last()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l.String(), "Ben's RST: Active: CD OST")
}

func TestMultiAndLog(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	r := notifications.NewRecent(10)
	m := notifications.Multi{notifications.Log{}, r}
	m.Emit("Ben's RST", "Active:", "REMASTER")

	test.ExpectEquality(t, len(r.Notices()), 1)

	w := &test.Writer{}
	logger.Tail(w, 1)
	test.ExpectSuccess(t, w.Compare("notification: Ben's RST: Active: REMASTER\n"))
}
