// Package rain computes one frame of the falling-glyph field.
//
// Every column hosts several independent streams (layers). A stream is not
// stored anywhere; its speed, phase, tail length and head position are pure
// functions of (column, layer, height, now):
//
//	seed  = col + layer*7919
//	speed = 3.5 + Hash(seed)*7
//	phase = Hash(seed+1) * H * 3
//	tail  = 12 + Hash(seed+2)*20
//	head  = (speed*now + phase) mod (H + tail)
//
// [Hash] is the GLSL fract(sin(n)*43758.5453123) idiom evaluated with a
// correctly rounded sine ([Sin]), so stream parameters agree with a C libm
// or shader rendering of the same effect.
//
// # Thread Safety
//
// A [Field] is read-only after construction. [Synthesize] splits rows across
// goroutines; the result does not depend on evaluation order.
package rain
