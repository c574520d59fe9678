package viz

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/san-kum/matrixbg/internal/raster"
)

const halfBlock = "▀"

// Scale resizes f with nearest-neighbour sampling.
func Scale(f *raster.Frame, width, height int) *raster.Frame {
	if width <= 0 || height <= 0 {
		return raster.NewFrame(0, 0)
	}
	if width == f.Width && height == f.Height {
		return f
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), f.Image(), image.Rect(0, 0, f.Width, f.Height), draw.Src, nil)
	return raster.FromImage(dst)
}

// Fit returns the preview size for a frame shown in at most cols terminal
// columns. Aspect ratio is kept in pixels; each text row holds two pixels.
func Fit(f *raster.Frame, cols int) (width, height int) {
	if cols <= 0 || cols >= f.Width {
		return f.Width, f.Height
	}
	width = cols
	height = f.Height * cols / f.Width
	if height < 1 {
		height = 1
	}
	return width, height
}

func hex(r, g, b uint8) lipgloss.Color {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return lipgloss.Color(c.Hex())
}

// Preview renders f as rows of upper-half blocks, two pixel rows per line.
func Preview(f *raster.Frame, cols int) string {
	w, h := Fit(f, cols)
	src := Scale(f, w, h)

	var sb strings.Builder
	for y := 0; y < src.Height; y += 2 {
		for x := 0; x < src.Width; x++ {
			tr, tg, tb := src.At(x, y)
			var br, bg, bb uint8
			if y+1 < src.Height {
				br, bg, bb = src.At(x, y+1)
			}
			style := lipgloss.NewStyle().
				Foreground(hex(tr, tg, tb)).
				Background(hex(br, bg, bb))
			sb.WriteString(style.Render(halfBlock))
		}
		if y+2 < src.Height {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
