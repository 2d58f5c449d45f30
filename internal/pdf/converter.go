package pdf

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/rmartins/doctools/pkg/logger"
)

// PageImage is one rasterized PDF page. PageNum is 1-based, matching how
// pages are named in output files.
type PageImage struct {
	PageNum int
	Image   *image.RGBA
}

// Converter rasterizes PDF pages and extracts their text.
type Converter struct {
	logger *logger.Logger
}

func NewConverter(logger *logger.Logger) *Converter {
	return &Converter{logger: logger}
}

func (c *Converter) PageCount(pdfPath string) (int, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	return doc.NumPage(), nil
}

// RenderPages rasterizes the given 0-based pages at the requested DPI.
// A nil page list renders the whole document.
func (c *Converter) RenderPages(ctx context.Context, pdfPath string, pages []int, dpi float64) ([]PageImage, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if pages == nil {
		pages = allPages(doc.NumPage())
	}

	rendered := make([]PageImage, 0, len(pages))
	for _, pageNum := range pages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if pageNum < 0 || pageNum >= doc.NumPage() {
			return nil, fmt.Errorf("page %d out of range 1-%d", pageNum+1, doc.NumPage())
		}

		c.logger.Debug("Rendering page %d at %.0f DPI", pageNum+1, dpi)
		img, err := doc.ImageDPI(pageNum, dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", pageNum+1, err)
		}

		rendered = append(rendered, PageImage{PageNum: pageNum + 1, Image: img})
	}

	return rendered, nil
}

// ExtractText concatenates the text of the given 0-based pages, or of the
// whole document when pages is nil.
func (c *Converter) ExtractText(ctx context.Context, pdfPath string, pages []int) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if pages == nil {
		pages = allPages(doc.NumPage())
	}

	var sb strings.Builder
	for _, pageNum := range pages {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if pageNum < 0 || pageNum >= doc.NumPage() {
			return "", fmt.Errorf("page %d out of range 1-%d", pageNum+1, doc.NumPage())
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			c.logger.Warn("couldn't extract text from page %d: %v", pageNum+1, err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func allPages(count int) []int {
	pages := make([]int, count)
	for i := range pages {
		pages[i] = i
	}
	return pages
}
