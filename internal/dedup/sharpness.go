package dedup

import (
	"image"

	"github.com/rmartins/doctools/internal/imaging"
)

// Sharpness computes a no-reference focus metric: the variance of the
// response of a discrete 3x3 Laplacian applied to the grayscale image.
// Blurred images have a flatter response map and score lower. Images
// smaller than 3x3 score 0.0.
func Sharpness(img image.Image) float64 {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 3 || h < 3 {
		return 0.0
	}

	// Valid-mode convolution with [[0,-1,0],[-1,4,-1],[0,-1,0]].
	n := (w - 2) * (h - 2)
	response := make([]float64, 0, n)
	var sum float64
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			center := float64(gray.GrayAt(x, y).Y)
			v := 4*center -
				float64(gray.GrayAt(x, y-1).Y) -
				float64(gray.GrayAt(x, y+1).Y) -
				float64(gray.GrayAt(x-1, y).Y) -
				float64(gray.GrayAt(x+1, y).Y)
			response = append(response, v)
			sum += v
		}
	}

	mean := sum / float64(n)
	var ss float64
	for _, v := range response {
		d := v - mean
		ss += d * d
	}
	return ss / float64(n)
}
