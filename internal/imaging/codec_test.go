package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rmartins/doctools/internal/imaging"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 200, 255})
		}
	}
	return img
}

var _ = Describe("StandardCodec", func() {
	var codec *imaging.StandardCodec

	BeforeEach(func() {
		codec = imaging.NewCodec()
	})

	Describe("Supports", func() {
		DescribeTable("recognizing filenames by extension",
			func(filename string, expected bool) {
				Expect(codec.Supports(filename)).To(Equal(expected))
			},
			Entry("jpeg", "photo.jpg", true),
			Entry("jpeg long form", "photo.jpeg", true),
			Entry("png", "shot.png", true),
			Entry("uppercase extension", "SCAN.PNG", true),
			Entry("gif", "anim.gif", true),
			Entry("bmp", "old.bmp", true),
			Entry("tiff", "flat.tiff", true),
			Entry("webp", "modern.webp", true),
			Entry("pdf", "doc.pdf", false),
			Entry("text", "notes.txt", false),
			Entry("no extension", "README", false),
		)
	})

	DescribeTable("encode and decode round trips",
		func(format string) {
			src := testImage(16, 16)

			var buf bytes.Buffer
			Expect(codec.Encode(&buf, src, format)).To(Succeed())

			decoded, err := codec.Decode(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.Bounds().Dx()).To(Equal(16))
			Expect(decoded.Bounds().Dy()).To(Equal(16))
		},
		Entry("png", "png"),
		Entry("jpeg", "jpeg"),
		Entry("jpg alias", "jpg"),
		Entry("gif", "gif"),
		Entry("bmp", "bmp"),
		Entry("tiff", "tiff"),
	)

	It("rejects an unknown output format", func() {
		var buf bytes.Buffer
		err := codec.Encode(&buf, testImage(4, 4), "xpm")
		Expect(err).To(MatchError(ContainSubstring("unsupported output format")))
	})

	It("reports a decode error for corrupt input", func() {
		_, err := codec.Decode(bytes.NewReader([]byte("definitely not an image")))
		Expect(err).To(MatchError(ContainSubstring("failed to decode image")))
	})

	Describe("file round trips", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "codec-test-*")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, dir)
		})

		It("writes and reads a file, deriving the format from the extension", func() {
			path := filepath.Join(dir, "out.png")
			Expect(imaging.EncodeFile(codec, path, testImage(8, 8), "")).To(Succeed())

			img, err := codec.DecodeFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds().Dx()).To(Equal(8))
		})

		It("fails cleanly on a missing file", func() {
			_, err := codec.DecodeFile(filepath.Join(dir, "nope.png"))
			Expect(err).To(MatchError(ContainSubstring("failed to open image")))
		})
	})
})
