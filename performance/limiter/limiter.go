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

// Package limiter paces events to a fixed rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait(ctx)
//		runFrame()
//	}
package limiter

import (
	"context"
	"time"

	"github.com/dualtrack/dualtrack/curated"
	"golang.org/x/time/rate"
)

// InvalidLimit is returned when the requested rate is not positive.
const InvalidLimit = "limiter: invalid frames per second (%d)"

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	lim             *rate.Limiter
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		lim: rate.NewLimiter(rate.Inf, 1),
	}
	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidLimit, framesPerSecond)
	}
	lim.framesPerSecond = framesPerSecond
	lim.lim.SetLimit(rate.Every(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Limit returns the current frames per second.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until trigger or until the context is done.
func (lim *FpsLimiter) Wait(ctx context.Context) error {
	return lim.lim.Wait(ctx)
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen. A true result consumes the trigger.
func (lim *FpsLimiter) HasWaited() bool {
	return lim.lim.Allow()
}
