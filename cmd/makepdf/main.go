package main

import (
	"flag"

	"github.com/rmartins/doctools/internal/imaging"
	"github.com/rmartins/doctools/internal/pdf"
	"github.com/rmartins/doctools/pkg/logger"
)

func main() {
	outFile := flag.String("out", "images.pdf", "output PDF path")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	log := logger.New(logger.WithPrefix("[makepdf] "))
	log.SetVerbose(*verbose)

	images := flag.Args()
	if len(images) == 0 {
		log.Fatal("Usage: makepdf [-out output.pdf] image1 image2 ...")
	}

	codec := imaging.NewCodec()
	for _, img := range images {
		if !codec.Supports(img) {
			log.Fatal("Unsupported image file: %s", img)
		}
	}

	if err := pdf.ImagesToPDF(images, *outFile); err != nil {
		log.Fatal("Error building PDF: %v", err)
	}

	log.Info("PDF with %d images written to %s", len(images), *outFile)
}
