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

// Package test contains helper functions that remove common boilerplate from
// the test files of the other packages.
//
// The Expect functions report a failure and let the test continue. The
// Demand functions stop the test. Both accept optional tags which are printed
// with the failure message, useful when testing inside a loop.
//
// ExpectSuccess and ExpectFailure interpret bool and error values. Note that
// nil is considered a success, because that is how errors work.
//
// Volumes and envelope values are float32 and are compared with
// ExpectApproximate (fractional tolerance) or ExpectWithin (absolute
// tolerance, for values expected to be zero).
//
// The Writer type implements io.Writer and is used to capture output.
package test
