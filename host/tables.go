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

import (
	"github.com/dualtrack/dualtrack/curated"
)

// Sentinal error patterns.
const (
	UnknownSequence = "host: unknown sequence (%v)"
	UnknownFont     = "host: unknown font index (%d) for sequence (%v)"
)

// ChannelsPerSequence is the number of sub-channels used by the original
// sequences. Streamed sequences use fewer.
const ChannelsPerSequence = 16

// SequenceEntry describes the data behind a SeqID.
type SequenceEntry struct {
	// name of the sequence or the streamed asset
	Name string

	// the number of sub-channels the sequence occupies when played
	Channels int

	// streamed sequences are backed by an asset file rather than sequence
	// data. a fanfare is a streamed sequence that plays once
	Streamed bool
	Fanfare  bool

	// the io profile of a streamed sequence. the host does not interpret it
	Profile string
}

// SequenceTable maps SeqIDs to sequence data. The table is created with the
// original sequences and grows as streamed sequences are added.
type SequenceTable struct {
	entries []SequenceEntry
}

func newSequenceTable() *SequenceTable {
	tab := &SequenceTable{
		entries: make([]SequenceEntry, NumOriginalSequences),
	}
	for i := range tab.entries {
		tab.entries[i] = SequenceEntry{
			Name:     SeqID(i).String(),
			Channels: ChannelsPerSequence,
		}
	}
	return tab
}

// Len returns the number of entries in the table.
func (tab *SequenceTable) Len() int {
	return len(tab.entries)
}

// Add a new entry to the table and return its SeqID.
func (tab *SequenceTable) Add(e SequenceEntry) SeqID {
	tab.entries = append(tab.entries, e)
	return SeqID(len(tab.entries) - 1)
}

// Entry returns the entry for the SeqID.
func (tab *SequenceTable) Entry(id SeqID) (SequenceEntry, bool) {
	if id < 0 || int(id) >= len(tab.entries) {
		return SequenceEntry{}, false
	}
	return tab.entries[id], true
}

// Replace the entry for key with a copy of the entry for handle.
func (tab *SequenceTable) Replace(key SeqID, handle SeqID) error {
	if key < 0 || int(key) >= len(tab.entries) {
		return curated.Errorf(UnknownSequence, key)
	}
	if handle < 0 || int(handle) >= len(tab.entries) {
		return curated.Errorf(UnknownSequence, handle)
	}
	tab.entries[key] = tab.entries[handle]
	return nil
}

// FontTable lists the sound fonts used by each sequence. Original sequences
// use the font with the same number as the sequence.
type FontTable struct {
	fonts map[SeqID][]int
}

func newFontTable() *FontTable {
	tab := &FontTable{
		fonts: make(map[SeqID][]int),
	}
	for i := SeqID(0); i < NumOriginalSequences; i++ {
		tab.fonts[i] = []int{int(i)}
	}
	return tab
}

// Set the fonts for a sequence.
func (tab *FontTable) Set(id SeqID, fonts ...int) {
	tab.fonts[id] = append([]int{}, fonts...)
}

// Font returns the font at index for the sequence. Returns -1 if there is no
// such font.
func (tab *FontTable) Font(id SeqID, index int) int {
	f, ok := tab.fonts[id]
	if !ok || index < 0 || index >= len(f) {
		return -1
	}
	return f[index]
}

// Replace the font at index for key.
func (tab *FontTable) Replace(key SeqID, index int, font int) error {
	f, ok := tab.fonts[key]
	if !ok {
		return curated.Errorf(UnknownSequence, key)
	}
	if index < 0 || index >= len(f) {
		return curated.Errorf(UnknownFont, index, key)
	}
	f[index] = font
	return nil
}
