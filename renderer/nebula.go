package renderer

import (
	"image/color"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// NebulaSize is the edge length of the nebula texture in pixels.
const NebulaSize = 256

// NebulaPixels fills a size*size image with faint fractal noise tinted
// between two colours. Alpha carries the density so it blends over black.
func NebulaPixels(size int, seed int64, a, b color.RGBA) []color.RGBA {
	noise := opensimplex.NewNormalized(seed)
	pixels := make([]color.RGBA, size*size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u := float64(x) / float64(size) * 3
			v := float64(y) / float64(size) * 3

			// Three octaves, then sharpen so most of the sky stays dark
			d := 0.5*noise.Eval2(u, v) + 0.3*noise.Eval2(2*u+17, 2*v) + 0.2*noise.Eval2(4*u, 4*v+31)
			d = math.Pow(d, 3)
			tint := noise.Eval2(u*0.5+101, v*0.5)

			pixels[y*size+x] = color.RGBA{
				R: lerp8(a.R, b.R, tint),
				G: lerp8(a.G, b.G, tint),
				B: lerp8(a.B, b.B, tint),
				A: uint8(math.Round(d * 96)),
			}
		}
	}
	return pixels
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a)*(1-t) + float64(b)*t))
}
