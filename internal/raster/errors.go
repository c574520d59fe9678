package raster

import "errors"

// Encoding and decoding errors.
var (
	// ErrChunkTag indicates a chunk type that is not four ASCII letters.
	ErrChunkTag = errors.New("raster: chunk tag must be 4 ASCII letters")

	// ErrFrameSize indicates a pixel buffer that does not match its dimensions.
	ErrFrameSize = errors.New("raster: pixel buffer does not match frame size")

	// ErrSignature indicates a byte stream without the PNG file signature.
	ErrSignature = errors.New("raster: missing PNG signature")

	// ErrChecksum indicates a chunk whose trailing CRC does not match.
	ErrChecksum = errors.New("raster: chunk checksum mismatch")

	// ErrTruncated indicates a byte stream that ends inside a chunk.
	ErrTruncated = errors.New("raster: truncated chunk")
)
