package raster

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

const (
	colorTypeRGB = 2
	filterNone   = 0
)

// Encode writes f as an 8-bit RGB, non-interlaced PNG with a single IDAT
// chunk and no ancillary chunks. Scanlines are stored unfiltered.
func Encode(w io.Writer, f *Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}

	idat, err := compressScanlines(f)
	if err != nil {
		return err
	}

	hdr := Header{
		Width:     uint32(f.Width),
		Height:    uint32(f.Height),
		BitDepth:  8,
		ColorType: colorTypeRGB,
	}

	if _, err := w.Write(Signature); err != nil {
		return err
	}
	if err := WriteChunk(w, "IHDR", hdr.bytes()); err != nil {
		return err
	}
	if err := WriteChunk(w, "IDAT", idat); err != nil {
		return err
	}
	return WriteChunk(w, "IEND", nil)
}

// EncodeBytes returns the encoded PNG as a byte slice.
func EncodeBytes(f *Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compressScanlines(f *Frame) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	if err != nil {
		return nil, err
	}

	filter := []byte{filterNone}
	for y := 0; y < f.Height; y++ {
		if _, err := zw.Write(filter); err != nil {
			return nil, fmt.Errorf("raster: compress row %d: %w", y, err)
		}
		if _, err := zw.Write(f.Row(y)); err != nil {
			return nil, fmt.Errorf("raster: compress row %d: %w", y, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scanlines inflates the concatenated IDAT payloads of a chunk list,
// returning the raw filtered rows.
func Scanlines(chunks []Chunk) ([]byte, error) {
	var idat bytes.Buffer
	for _, c := range chunks {
		if c.Tag == "IDAT" {
			idat.Write(c.Data)
		}
	}
	zr, err := zlib.NewReader(&idat)
	if err != nil {
		return nil, fmt.Errorf("raster: inflate: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
