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

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/dualtrack/dualtrack/curated"
	"github.com/dualtrack/dualtrack/performance/limiter"
	"github.com/dualtrack/dualtrack/test"
)

func TestInvalidLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidLimit))

	lim, err := limiter.NewFPSLimiter(60)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectEquality(t, lim.Limit(), 60)
}

func TestHasWaited(t *testing.T) {
	// a very slow rate so that the second check is never due
	lim, err := limiter.NewFPSLimiter(1)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, lim.HasWaited())
	test.ExpectFailure(t, lim.HasWaited())
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(1000)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, lim.Wait(ctx))
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)

	// a cancelled context ends the wait with an error
	test.ExpectSuccess(t, lim.SetLimit(1))
	lim.HasWaited()
	cancel()
	test.ExpectFailure(t, lim.Wait(ctx))
}
