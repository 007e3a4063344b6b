// Package playback drives a fixed-cadence, optionally looping walk over a
// decoded time series.
//
// A [Player] is the only source of time during a run. It delivers frames to
// a callback one at a time and waits a fixed interval after each callback
// returns, so a slow renderer stretches the cadence instead of overlapping
// draws. Stopping is cooperative: cancel the context passed to [Player.Run]
// and it returns before the next frame.
package playback
