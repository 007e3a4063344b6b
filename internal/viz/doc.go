// Package viz renders body frames for the live terminal view and for
// exported animations.
//
// Both renderers share a [Scene]: a fixed bounding cube, a fixed [Camera]
// (elevation and azimuth in degrees) and a [Theme]. The scene is built once
// per run and never changes while frames are presented.
//
//   - [Terminal]: Bubble Tea program drawing a Braille [Canvas], one color
//     per body, with a spread chart beside it
//   - [Recorder]: captures each frame as a paletted image and writes a
//     looping GIF on Finalize
//
// # Key Bindings
//
//	q, esc, ctrl+c - Quit (stops playback)
//	?              - Toggle help
package viz
