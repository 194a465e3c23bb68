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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dualtrack/dualtrack/curated"
	"github.com/dualtrack/dualtrack/host"
	"github.com/dualtrack/dualtrack/userinput"
	"github.com/hako/durafmt"
)

// Check the performance of the host loop with the supplied hooks. The loop
// runs uncapped for the specified duration and the result is written to
// output. The duration string is in the format accepted by
// time.ParseDuration().
func Check(output io.Writer, profile Profile, audio *host.Audio, hooks host.Hooks, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if dur <= 0 {
		return curated.Errorf("performance: duration must be positive (%s)", duration)
	}

	var numFrames int
	startTicks := audio.Ticks()

	runner := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), dur)
		defer cancel()
		return audio.Run(ctx, hooks, nil, func() (userinput.Snapshot, bool) {
			numFrames++
			return userinput.Snapshot{}, true
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames, %d ticks in %s) %.1f%%\n", fps, numFrames,
		audio.Ticks()-startTicks, durafmt.Parse(dur).LimitFirstN(2), accuracy)

	return nil
}

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of the
// host frame rate.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / host.FramesPerSecond
	return fps, accuracy
}
