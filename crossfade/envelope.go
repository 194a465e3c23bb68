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

package crossfade

import "math"

// Duration is the length of a crossfade in audio ticks. There are 180 audio
// ticks in a second.
const Duration = 180

// the fade curves are created once and never change. the sum of the squares
// of rising[i] and falling[i] is always one
var rising [Duration]float32
var falling [Duration]float32

func init() {
	for i := 0; i < Duration; i++ {
		a := float64(i) / Duration * math.Pi * 0.5
		rising[i] = float32(math.Sin(a))
		falling[i] = float32(math.Cos(a))
	}
}

// Rising returns the value of the fade-in curve at tick t of a fade. Values of
// t outside the range of the fade are clamped.
func Rising(t int) float32 {
	return rising[clampTick(t)]
}

// Falling returns the value of the fade-out curve at tick t of a fade. Values
// of t outside the range of the fade are clamped.
func Falling(t int) float32 {
	return falling[clampTick(t)]
}

func clampTick(t int) int {
	if t < 0 {
		return 0
	}
	if t >= Duration {
		return Duration - 1
	}
	return t
}
