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
	"io"
	"sync"
	"time"
	"unicode"

	"golang.org/x/time/rate"
)

// KeyRepeatInterval is the minimum time between two key events for the same
// key. Terminals repeat held keys and without a limit a held key would toggle
// the soundtrack many times a second.
const KeyRepeatInterval = 250 * time.Millisecond

// DefaultKeyMap maps keys to controller buttons.
var DefaultKeyMap = map[rune]Button{
	'l': ButtonL,
	'r': ButtonR,
	'z': ButtonZ,
	'a': ButtonA,
	'b': ButtonB,
	' ': ButtonStart,
}

// Keyboard reads keys from an io.Reader and maps them to controller buttons.
// Keys that do not map to a button are returned as runes by Poll().
type Keyboard struct {
	keyMap map[rune]Button

	// key events are sent from the reading goroutine
	keys chan rune

	// one limiter per key
	limiters map[rune]*rate.Limiter

	crit sync.Mutex
	err  error
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
// Keys are read from r in a new goroutine until r returns an error.
func NewKeyboard(r io.Reader, keyMap map[rune]Button) *Keyboard {
	if keyMap == nil {
		keyMap = DefaultKeyMap
	}

	kb := &Keyboard{
		keyMap:   keyMap,
		keys:     make(chan rune, 64),
		limiters: make(map[rune]*rate.Limiter),
	}

	go func() {
		b := make([]byte, 16)
		for {
			n, err := r.Read(b)
			for _, c := range b[:n] {
				kb.keys <- unicode.ToLower(rune(c))
			}
			if err != nil {
				kb.crit.Lock()
				kb.err = err
				kb.crit.Unlock()
				close(kb.keys)
				return
			}
		}
	}()

	return kb
}

// Err returns the error that stopped the reading goroutine. Returns nil if
// the goroutine is still running.
func (kb *Keyboard) Err() error {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	return kb.err
}

func (kb *Keyboard) allow(key rune, now time.Time) bool {
	lim, ok := kb.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(KeyRepeatInterval), 1)
		kb.limiters[key] = lim
	}
	return lim.AllowN(now, 1)
}

// Poll drains the keys read since the last call to Poll(). Keys that map to a
// button are combined into the returned Button value. Other keys are returned
// in the order in which they were read.
//
// Poll does not block.
func (kb *Keyboard) Poll() (Button, []rune) {
	return kb.poll(time.Now())
}

func (kb *Keyboard) poll(now time.Time) (Button, []rune) {
	var down Button
	var other []rune

	for {
		select {
		case k, ok := <-kb.keys:
			if !ok {
				return down, other
			}
			if !kb.allow(k, now) {
				continue
			}
			if b, ok := kb.keyMap[k]; ok {
				down |= b
			} else {
				other = append(other, k)
			}
		default:
			return down, other
		}
	}
}
