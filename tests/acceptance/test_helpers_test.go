package acceptance_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// hardEdge draws a vertical black/white split. The hard edge gives a high
// sharpness score and a fingerprint that survives blurring.
func hardEdge(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

func ramp(width, height int, vertical bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos, span := x, width-1
			if vertical {
				pos, span = y, height-1
			}
			v := uint8(pos * 255 / span)
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func blur(src *image.RGBA, radius int) *image.RGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var rSum, gSum, bSum, count int
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					c := src.RGBAAt(nx, ny)
					rSum += int(c.R)
					gSum += int(c.G)
					bSum += int(c.B)
					count++
				}
			}
			out.Set(x, y, color.RGBA{
				R: uint8(rSum / count),
				G: uint8(gSum / count),
				B: uint8(bSum / count),
				A: 255,
			})
		}
	}
	return out
}

func savePNG(dir, relPath string, img image.Image) string {
	path := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
	return path
}
