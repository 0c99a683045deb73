// Package stopwatch measures wall-clock intervals in milliseconds.
//
// A Stopwatch is started with Start and read with Stop, which returns the
// elapsed time since the matching Start and disarms the watch. Calling Stop
// on a watch that is not running returns ErrNotStarted.
//
// Readings come from the monotonic clock carried by time.Time, so they are
// immune to wall-clock adjustments.
package stopwatch
