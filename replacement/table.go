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

package replacement

import (
	"fmt"

	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/logger"
	"github.com/dualtrack/dualtrack/streaming"
)

// Lane is the kind of playback a replacement uses.
type Lane int

// List of Lanes.
const (
	// looping background music
	LaneBGM Lane = iota

	// a short piece that plays once
	LaneFanfare
)

func (l Lane) String() string {
	switch l {
	case LaneBGM:
		return "bgm"
	case LaneFanfare:
		return "fanfare"
	}
	return "unknown"
}

// Entry is a single replacement in the table.
type Entry struct {
	OriginalID host.SeqID
	AssetName  string
	Lane       Lane
	IOProfile  streaming.IOProfile

	bound bool
}

// Bound returns true if the entry has been successfully bound.
func (e *Entry) Bound() bool {
	return e.bound
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s -> %s (%s)", e.OriginalID, e.AssetName, e.Lane)
}

// Host is the part of the host audio system that the binder writes to.
type Host interface {
	ReplaceSequence(key host.SeqID, handle int) error
	ReplaceSequenceFont(key host.SeqID, index int, font int) error

	// the font currently at index for the sequence
	SequenceFont(key host.SeqID, index int) int
}

// BindReport summarises the result of Table.Bind().
type BindReport struct {
	Bound  int
	Failed int
}

func (r BindReport) String() string {
	return fmt.Sprintf("%d bound, %d failed", r.Bound, r.Failed)
}

// Table of replacement entries.
type Table struct {
	entries []Entry

	done   bool
	report BindReport
}

// NewTable creates a table from the list of entries. The bound flag of the
// entries is ignored.
func NewTable(entries []Entry) *Table {
	tab := &Table{
		entries: make([]Entry, len(entries)),
	}
	copy(tab.entries, entries)
	for i := range tab.entries {
		tab.entries[i].bound = false
	}
	return tab
}

// Entries returns a copy of the entries in the table.
func (tab *Table) Entries() []Entry {
	e := make([]Entry, len(tab.entries))
	copy(e, tab.entries)
	return e
}

// Assets returns the asset names used by the table, in table order. Asset
// names shared by more than one entry are listed once.
func (tab *Table) Assets() []string {
	seen := make(map[string]bool)
	a := make([]string, 0, len(tab.entries))
	for _, e := range tab.entries {
		if !seen[e.AssetName] {
			seen[e.AssetName] = true
			a = append(a, e.AssetName)
		}
	}
	return a
}

// Bind every entry in the table. Entries are bound in table order. Bind only
// has an effect the first time it is called. Later calls return the report of
// the first call.
func (tab *Table) Bind(basePath string, sub streaming.Subsystem, hst Host) BindReport {
	if tab.done {
		return tab.report
	}
	tab.done = true

	for i := range tab.entries {
		if tab.bind(&tab.entries[i], basePath, sub, hst) {
			tab.report.Bound++
		} else {
			tab.report.Failed++
		}
	}

	logger.Logf(logger.Allow, "replacement", "bind: %s", tab.report)

	return tab.report
}

func (tab *Table) bind(e *Entry, basePath string, sub streaming.Subsystem, hst Host) bool {
	var handle int
	switch e.Lane {
	case LaneFanfare:
		handle = sub.CreateStreamedFanfare(basePath, e.AssetName, e.IOProfile)
	default:
		handle = sub.CreateStreamedBGM(basePath, e.AssetName, e.IOProfile)
	}

	if handle < 0 {
		return false
	}

	font := sub.SequenceFont(handle, 0)
	if font < 0 {
		logger.Logf(logger.Allow, "replacement", "%s: no font for %s", e.OriginalID, e.AssetName)
		return false
	}

	// the host tables are left as they were if either replacement fails
	prev := hst.SequenceFont(e.OriginalID, 0)
	if err := hst.ReplaceSequenceFont(e.OriginalID, 0, font); err != nil {
		logger.Logf(logger.Allow, "replacement", "%s: %v", e.OriginalID, err)
		return false
	}
	if err := hst.ReplaceSequence(e.OriginalID, handle); err != nil {
		_ = hst.ReplaceSequenceFont(e.OriginalID, 0, prev)
		logger.Logf(logger.Allow, "replacement", "%s: %v", e.OriginalID, err)
		return false
	}

	e.bound = true
	return true
}

// Lookup returns the first bound entry for the sequence.
func (tab *Table) Lookup(id host.SeqID) (*Entry, bool) {
	for i := range tab.entries {
		if tab.entries[i].bound && tab.entries[i].OriginalID == id {
			return &tab.entries[i], true
		}
	}
	return nil, false
}
