// Package series decodes and holds the body time series produced by an
// external n-body simulation.
//
// The stream format is line oriented:
//
//	<num_bodies> <seconds>
//	<x> <y> <z> <radius>    // num_bodies * seconds lines, frame by frame
//
// [Decode] builds a read-only [Store] eagerly; nothing is streamed during
// playback. [Encode] writes a store back in the same format.
//
// Radii are taken from the first num_bodies records only. Radius fields of
// later frames are validated and then dropped, which assumes bodies keep
// the same order in every frame.
package series
