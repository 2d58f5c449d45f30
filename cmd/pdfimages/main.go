package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmartins/doctools/internal/archive"
	"github.com/rmartins/doctools/internal/imaging"
	"github.com/rmartins/doctools/internal/pdf"
	"github.com/rmartins/doctools/pkg/logger"
	"github.com/rmartins/doctools/pkg/utils"
)

func main() {
	pdfPath := flag.String("file", "", "path to PDF file")
	format := flag.String("format", "png", "output image format (png or jpeg)")
	dpi := flag.Float64("dpi", 200, "render resolution")
	pagesExpr := flag.String("pages", "", "pages to render, e.g. 1-3,7 (empty = all)")
	outputDir := flag.String("output-dir", "", "directory to save page images (default: a fresh temp directory)")
	zipOutput := flag.Bool("zip", false, "also package page images into a ZIP archive")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	log := logger.New(logger.WithPrefix("[pdfimages] "))
	log.SetVerbose(*verbose)

	if *pdfPath == "" {
		log.Fatal("Please provide a PDF file path using -file flag")
	}
	if *format != "png" && *format != "jpeg" && *format != "jpg" {
		log.Fatal("Unsupported format %q: use png or jpeg", *format)
	}

	ctx := context.Background()
	converter := pdf.NewConverter(log)

	var pages []int
	if *pagesExpr != "" {
		count, err := converter.PageCount(*pdfPath)
		if err != nil {
			log.Fatal("Error reading PDF: %v", err)
		}
		pages, err = pdf.ParsePageRanges(*pagesExpr, count)
		if err != nil {
			log.Fatal("Error parsing pages: %v", err)
		}
	}

	rendered, err := converter.RenderPages(ctx, *pdfPath, pages, *dpi)
	if err != nil {
		log.Fatal("Error rendering pages: %v", err)
	}

	if *outputDir == "" {
		*outputDir = utils.GetDefaultOutputDir()
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatal("Error creating output directory: %v", err)
	}

	codec := imaging.NewCodec()
	base := strings.TrimSuffix(filepath.Base(*pdfPath), filepath.Ext(*pdfPath))

	var saved []string
	for _, page := range rendered {
		name := fmt.Sprintf("%s_page%d.%s", base, page.PageNum, *format)
		dest := filepath.Join(*outputDir, name)
		if err := imaging.EncodeFile(codec, dest, page.Image, *format); err != nil {
			log.Fatal("Error saving page %d: %v", page.PageNum, err)
		}
		log.Debug("Saved %s", dest)
		saved = append(saved, dest)
	}

	if *zipOutput {
		zipPath := filepath.Join(*outputDir, base+"_pages.zip")
		if err := archive.CreateZip(zipPath, saved); err != nil {
			log.Fatal("Error creating archive: %v", err)
		}
		log.Info("Archive written to %s", zipPath)
	}

	log.Info("Rendered %d pages to %s", len(saved), *outputDir)
}
