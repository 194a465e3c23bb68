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
	"context"
	"errors"

	"github.com/dualtrack/dualtrack/userinput"
)

// Pacer stalls the loop between frames. The limiter.FpsLimiter type satisfies
// this interface.
type Pacer interface {
	Wait(ctx context.Context) error
}

// InputFunc returns the controller state for the next frame. Returning false
// ends the loop.
type InputFunc func() (userinput.Snapshot, bool)

// Run frames until the input function returns false or the context is done.
// A nil pacer runs the frames as quickly as possible. Cancellation of the
// context is not treated as an error.
func (a *Audio) Run(ctx context.Context, hooks Hooks, pace Pacer, input InputFunc) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if pace != nil {
			if err := pace.Wait(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		in, ok := input()
		if !ok {
			return nil
		}
		a.Frame(hooks, in)
	}
}
