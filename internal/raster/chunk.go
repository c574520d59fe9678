package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

// Signature is the fixed 8-byte PNG file signature.
var Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// maxChunkLength is the largest chunk length PNG allows (2^31-1).
const maxChunkLength = 1<<31 - 1

// Chunk is one length/tag/payload/CRC block of a PNG stream.
type Chunk struct {
	Tag    string
	Data   []byte
	CRC    uint32
	Valid  bool
	Offset int64
}

func checksum(tag string, payload []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write([]byte(tag))
	h.Write(payload)
	return h.Sum32()
}

func validTag(tag string) bool {
	if len(tag) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		c := tag[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// WriteChunk frames payload as a PNG chunk: big-endian length, tag,
// payload, CRC-32 over tag+payload.
func WriteChunk(w io.Writer, tag string, payload []byte) error {
	if !validTag(tag) {
		return fmt.Errorf("%w: %q", ErrChunkTag, tag)
	}

	var head [8]byte
	binary.BigEndian.PutUint32(head[:4], uint32(len(payload)))
	copy(head[4:], tag)
	if _, err := w.Write(head[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], checksum(tag, payload))
	_, err := w.Write(tail[:])
	return err
}

// ReadChunks parses a PNG byte stream up to and including IEND. Chunks with
// a bad CRC are returned with Valid=false alongside ErrChecksum.
func ReadChunks(r io.Reader) ([]Chunk, error) {
	sig := make([]byte, len(Signature))
	if _, err := io.ReadFull(r, sig); err != nil || !bytes.Equal(sig, Signature) {
		return nil, ErrSignature
	}

	var (
		chunks []Chunk
		bad    error
		offset = int64(len(Signature))
	)
	for {
		var head [8]byte
		if _, err := io.ReadFull(r, head[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return chunks, fmt.Errorf("%w at offset %d", ErrTruncated, offset)
		}

		length := binary.BigEndian.Uint32(head[:4])
		tag := string(head[4:])
		if length > maxChunkLength {
			return chunks, fmt.Errorf("%w: %s declares %d bytes at offset %d", ErrTruncated, tag, length, offset)
		}
		var payload bytes.Buffer
		if _, err := io.CopyN(&payload, r, int64(length)); err != nil {
			return chunks, fmt.Errorf("%w: %s payload at offset %d", ErrTruncated, tag, offset)
		}
		data := payload.Bytes()
		var tail [4]byte
		if _, err := io.ReadFull(r, tail[:]); err != nil {
			return chunks, fmt.Errorf("%w: %s checksum at offset %d", ErrTruncated, tag, offset)
		}

		crc := binary.BigEndian.Uint32(tail[:])
		c := Chunk{
			Tag:    tag,
			Data:   data,
			CRC:    crc,
			Valid:  crc == checksum(tag, data),
			Offset: offset,
		}
		if !c.Valid && bad == nil {
			bad = fmt.Errorf("%w: %s at offset %d", ErrChecksum, tag, offset)
		}
		chunks = append(chunks, c)
		offset += int64(12 + length)

		if tag == "IEND" {
			break
		}
	}

	return chunks, bad
}

// Header is the decoded IHDR payload.
type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

const headerSize = 13

func (h Header) bytes() []byte {
	b := make([]byte, headerSize)
	binary.BigEndian.PutUint32(b[0:4], h.Width)
	binary.BigEndian.PutUint32(b[4:8], h.Height)
	b[8] = h.BitDepth
	b[9] = h.ColorType
	b[10] = h.Compression
	b[11] = h.Filter
	b[12] = h.Interlace
	return b
}

// ParseHeader decodes an IHDR chunk.
func ParseHeader(c Chunk) (Header, error) {
	if c.Tag != "IHDR" || len(c.Data) != headerSize {
		return Header{}, fmt.Errorf("raster: not an IHDR chunk (%s, %d bytes)", c.Tag, len(c.Data))
	}
	d := c.Data
	return Header{
		Width:       binary.BigEndian.Uint32(d[0:4]),
		Height:      binary.BigEndian.Uint32(d[4:8]),
		BitDepth:    d[8],
		ColorType:   d[9],
		Compression: d[10],
		Filter:      d[11],
		Interlace:   d[12],
	}, nil
}
