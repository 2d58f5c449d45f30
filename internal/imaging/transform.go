package imaging

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Grayscale converts an image to 8-bit grayscale using Rec. 709 luma
// weights. The result always has its origin at (0,0).
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))

	if src, ok := img.(*image.Gray); ok {
		draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)
		return gray
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luma := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
			gray.SetGray(x, y, color.Gray{Y: uint8(luma/65535.0*255.0 + 0.5)})
		}
	}
	return gray
}

// ToRGBA flattens an image onto a white background, dropping any alpha
// channel. Palette and grayscale sources come out as plain RGBA as well.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Over)
	return out
}

// Resize scales an image to the given dimensions with Catmull-Rom
// resampling, a quality-preserving filter for downsampling.
func Resize(img image.Image, width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return out
}
