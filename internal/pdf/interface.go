package pdf

import (
	"context"
)

// Renderer is the rasterization surface the tools consume; Converter is
// the go-fitz backed implementation.
type Renderer interface {
	PageCount(pdfPath string) (int, error)
	RenderPages(ctx context.Context, pdfPath string, pages []int, dpi float64) ([]PageImage, error)
	ExtractText(ctx context.Context, pdfPath string, pages []int) (string, error)
}
