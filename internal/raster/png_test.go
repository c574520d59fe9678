package raster_test

import (
	"bytes"
	"image/png"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/matrixbg/internal/raster"
)

func gradient(w, h int) *raster.Frame {
	f := raster.NewFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, uint8(x*37), uint8(y*53), uint8((x+y)*11))
		}
	}
	return f
}

var _ = Describe("Encode", func() {
	It("writes signature, IHDR, one IDAT and IEND only", func() {
		data, err := raster.EncodeBytes(gradient(5, 3))
		Expect(err).NotTo(HaveOccurred())
		Expect(data[:8]).To(Equal(raster.Signature))

		chunks, err := raster.ReadChunks(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())

		tags := make([]string, len(chunks))
		for i, c := range chunks {
			tags[i] = c.Tag
			Expect(c.Valid).To(BeTrue(), "chunk %s checksum", c.Tag)
		}
		Expect(tags).To(Equal([]string{"IHDR", "IDAT", "IEND"}))
		Expect(chunks[2].Data).To(BeEmpty())
	})

	It("declares 8-bit RGB without interlacing", func() {
		data, err := raster.EncodeBytes(gradient(7, 4))
		Expect(err).NotTo(HaveOccurred())

		chunks, err := raster.ReadChunks(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		hdr, err := raster.ParseHeader(chunks[0])
		Expect(err).NotTo(HaveOccurred())

		Expect(hdr).To(Equal(raster.Header{Width: 7, Height: 4, BitDepth: 8, ColorType: 2}))
	})

	It("round-trips through the standard PNG decoder", func() {
		src := gradient(9, 6)
		data, err := raster.EncodeBytes(src)
		Expect(err).NotTo(HaveOccurred())

		img, err := png.Decode(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(Equal(9))
		Expect(img.Bounds().Dy()).To(Equal(6))

		got := raster.FromImage(img)
		Expect(got.Pix).To(Equal(src.Pix))
	})

	It("stores an all-black 2x2 frame as zero scanlines", func() {
		data, err := raster.EncodeBytes(raster.NewFrame(2, 2))
		Expect(err).NotTo(HaveOccurred())

		chunks, err := raster.ReadChunks(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		hdr, err := raster.ParseHeader(chunks[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(hdr.Width).To(BeEquivalentTo(2))
		Expect(hdr.Height).To(BeEquivalentTo(2))

		raw, err := raster.Scanlines(chunks)
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(HaveLen(14))

		var pixels []byte
		for row := 0; row < 2; row++ {
			line := raw[row*7 : (row+1)*7]
			Expect(line[0]).To(BeZero(), "filter byte")
			pixels = append(pixels, line[1:]...)
		}
		Expect(pixels).To(Equal(make([]byte, 12)))
	})

	It("rejects a frame whose buffer does not match its size", func() {
		f := &raster.Frame{Width: 2, Height: 2, Pix: make([]uint8, 5)}
		_, err := raster.EncodeBytes(f)
		Expect(err).To(MatchError(raster.ErrFrameSize))
	})
})

var _ = Describe("Frame", func() {
	It("converts to an opaque RGBA image", func() {
		f := raster.NewFrame(2, 1)
		f.Set(1, 0, 10, 20, 30)

		img := f.Image()
		c := img.RGBAAt(1, 0)
		Expect([]uint8{c.R, c.G, c.B, c.A}).To(Equal([]uint8{10, 20, 30, 255}))
		Expect(img.RGBAAt(0, 0).A).To(BeEquivalentTo(255))
	})
})
