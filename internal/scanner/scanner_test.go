package scanner_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rmartins/doctools/internal/imaging"
	"github.com/rmartins/doctools/internal/scanner"
	"github.com/rmartins/doctools/pkg/logger"
)

var _ = Describe("DirectoryScanner", func() {
	var (
		scan *scanner.DirectoryScanner
		dir  string
		ctx  context.Context
	)

	touch := func(relPath string) {
		path := filepath.Join(dir, relPath)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte("x"), 0o644)).To(Succeed())
	}

	BeforeEach(func() {
		log := logger.New(logger.WithOutput(GinkgoWriter))
		scan = scanner.New(imaging.NewCodec(), log)
		ctx = context.Background()

		var err error
		dir, err = os.MkdirTemp("", "scanner-test-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	It("finds image files across subdirectories", func() {
		touch("a.png")
		touch("nested/b.jpg")
		touch("nested/deeper/c.webp")

		images, err := scan.FindImages(ctx, dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(images).To(HaveLen(3))
	})

	It("reports paths relative to the scanned root", func() {
		touch("nested/b.jpg")

		images, err := scan.FindImages(ctx, dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(images[0].RelativePath).To(Equal(filepath.Join("nested", "b.jpg")))
		Expect(images[0].AbsolutePath).To(Equal(filepath.Join(dir, "nested", "b.jpg")))
	})

	It("skips files the codec cannot decode", func() {
		touch("photo.png")
		touch("notes.txt")
		touch("doc.pdf")

		images, err := scan.FindImages(ctx, dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(images).To(HaveLen(1))
		Expect(images[0].RelativePath).To(Equal("photo.png"))
	})

	It("returns files in lexical order", func() {
		touch("zebra.png")
		touch("apple.png")
		touch("mango.png")

		images, err := scan.FindImages(ctx, dir)
		Expect(err).NotTo(HaveOccurred())

		Expect(images[0].RelativePath).To(Equal("apple.png"))
		Expect(images[1].RelativePath).To(Equal("mango.png"))
		Expect(images[2].RelativePath).To(Equal("zebra.png"))
	})

	It("fails when the tree contains no images", func() {
		touch("readme.md")

		_, err := scan.FindImages(ctx, dir)
		Expect(err).To(MatchError(ContainSubstring("no image files found")))
	})

	It("fails on a nonexistent directory", func() {
		_, err := scan.FindImages(ctx, filepath.Join(dir, "missing"))
		Expect(err).To(HaveOccurred())
	})

	It("stops when the context is cancelled", func() {
		touch("a.png")
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := scan.FindImages(cancelled, dir)
		Expect(err).To(MatchError(context.Canceled))
	})
})
