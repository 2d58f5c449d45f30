package dedup_test

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rmartins/doctools/internal/dedup"
)

var _ = Describe("Sharpness", func() {
	It("scores a blurred image strictly lower than the sharp original", func() {
		sharp := checkerboard(64, 64, 8)
		blurred := boxBlur(sharp, 2)

		sharpScore := dedup.Sharpness(sharp)
		blurredScore := dedup.Sharpness(blurred)

		Expect(sharpScore).To(BeNumerically(">", 0))
		Expect(blurredScore).To(BeNumerically("<", sharpScore))
	})

	It("scores a flat image as zero", func() {
		img := solid(32, 32, color.RGBA{128, 128, 128, 255})
		Expect(dedup.Sharpness(img)).To(BeZero())
	})

	It("returns zero for images too small for the Laplacian", func() {
		Expect(dedup.Sharpness(solid(2, 2, color.RGBA{255, 0, 0, 255}))).To(BeZero())
		Expect(dedup.Sharpness(solid(2, 10, color.RGBA{255, 0, 0, 255}))).To(BeZero())
		Expect(dedup.Sharpness(solid(10, 2, color.RGBA{255, 0, 0, 255}))).To(BeZero())
	})

	It("is deterministic for the same pixels", func() {
		img := gradient(48, 48)
		Expect(dedup.Sharpness(img)).To(Equal(dedup.Sharpness(img)))
	})

	It("never returns a negative score", func() {
		Expect(dedup.Sharpness(gradient(16, 16))).To(BeNumerically(">=", 0))
		Expect(dedup.Sharpness(checkerboard(16, 16, 2))).To(BeNumerically(">=", 0))
	})
})
