package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Frame is a row-major 8-bit RGB pixel grid, 3 bytes per pixel.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

func (f *Frame) Set(x, y int, r, g, b uint8) {
	i := f.offset(x, y)
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
}

func (f *Frame) At(x, y int) (r, g, b uint8) {
	i := f.offset(x, y)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// Row returns the RGB bytes of row y without copying.
func (f *Frame) Row(y int) []uint8 {
	stride := f.Width * 3
	return f.Pix[y*stride : (y+1)*stride]
}

func (f *Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 || len(f.Pix) != f.Width*f.Height*3 {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrFrameSize, f.Width, f.Height, len(f.Pix))
	}
	return nil
}

// Image converts the frame to an opaque image.RGBA.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// FromImage copies any image into a frame, dropping alpha.
func FromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	f := NewFrame(bounds.Dx(), bounds.Dy())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			f.Set(x, y, c.R, c.G, c.B)
		}
	}
	return f
}
