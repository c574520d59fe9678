// Package raster holds the RGB frame type and a minimal PNG writer.
//
// The writer emits exactly one pixel format: 8-bit RGB, no alpha, no
// interlacing, a single IDAT chunk of unfiltered scanlines and no ancillary
// chunks. Chunk framing ([WriteChunk]) is independent of the pixel data so it
// can be checked against hand-built byte sequences.
//
// [ReadChunks] parses such a stream back and verifies every CRC.
package raster
