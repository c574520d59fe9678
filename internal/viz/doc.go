// Package viz draws frames in the terminal.
//
//   - [Preview]: truecolor half-block rendering of a frame
//   - [Watch]: Bubble Tea program that regenerates the output file on a
//     fixed interval, the way the lock screen polls it
//
// # Key Bindings
//
//	Space - Pause/Resume regeneration
//	Q     - Quit
package viz
