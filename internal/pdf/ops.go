package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/rmartins/doctools/pkg/models"
)

// Page-level operations backed by pdfcpu. Page arguments are 0-based
// indices as produced by ParsePageRanges; nil means all pages.

func ExtractPages(inFile, outFile string, pages []int) error {
	if err := api.TrimFile(inFile, outFile, PageSelection(pages), model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("failed to extract pages: %w", err)
	}
	return nil
}

func RemovePages(inFile, outFile string, pages []int) error {
	if err := api.RemovePagesFile(inFile, outFile, PageSelection(pages), model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("failed to remove pages: %w", err)
	}
	return nil
}

// RotatePages rotates the selected pages clockwise. rotation must be a
// multiple of 90.
func RotatePages(inFile, outFile string, rotation int, pages []int) error {
	if rotation%90 != 0 {
		return fmt.Errorf("rotation must be a multiple of 90, got %d", rotation)
	}
	if err := api.RotateFile(inFile, outFile, rotation, PageSelection(pages), model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("failed to rotate pages: %w", err)
	}
	return nil
}

func MergePDFs(inFiles []string, outFile string) error {
	if len(inFiles) < 2 {
		return fmt.Errorf("merging needs at least two input files, got %d", len(inFiles))
	}
	if err := api.MergeCreateFile(inFiles, outFile, false, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("failed to merge PDFs: %w", err)
	}
	return nil
}

// SplitPDF writes every page of inFile as its own single-page PDF in
// outDir, named by pdfcpu's page-number convention.
func SplitPDF(inFile, outDir string) error {
	if err := api.SplitFile(inFile, outDir, 1, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("failed to split PDF: %w", err)
	}
	return nil
}

// InsertPDF inserts every page of srcFile into baseFile after the given
// 1-based page. Position 0 inserts at the front; positions past the end
// append.
func InsertPDF(baseFile, srcFile, outFile string, position int) error {
	if position < 0 {
		return fmt.Errorf("insert position must not be negative, got %d", position)
	}

	count, err := api.PageCountFile(baseFile)
	if err != nil {
		return fmt.Errorf("failed to read page count: %w", err)
	}
	if position > count {
		position = count
	}

	if position == 0 {
		return MergePDFs([]string{srcFile, baseFile}, outFile)
	}
	if position == count {
		return MergePDFs([]string{baseFile, srcFile}, outFile)
	}

	tmpDir, err := os.MkdirTemp("", "doctools-insert-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	head := filepath.Join(tmpDir, "head.pdf")
	tail := filepath.Join(tmpDir, "tail.pdf")
	conf := model.NewDefaultConfiguration()
	if err := api.TrimFile(baseFile, head, []string{fmt.Sprintf("1-%d", position)}, conf); err != nil {
		return fmt.Errorf("failed to extract leading pages: %w", err)
	}
	if err := api.TrimFile(baseFile, tail, []string{fmt.Sprintf("%d-%d", position+1, count)}, conf); err != nil {
		return fmt.Errorf("failed to extract trailing pages: %w", err)
	}
	return MergePDFs([]string{head, srcFile, tail}, outFile)
}

// CompressPDF rewrites inFile through pdfcpu's optimizer, pruning redundant
// objects and compressing streams.
func CompressPDF(inFile, outFile string) error {
	if err := api.OptimizeFile(inFile, outFile, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("failed to compress PDF: %w", err)
	}
	return nil
}

// ImagesToPDF builds a PDF with one page per input image, in input order.
func ImagesToPDF(imageFiles []string, outFile string) error {
	if len(imageFiles) == 0 {
		return fmt.Errorf("no input images")
	}
	if err := api.ImportImagesFile(imageFiles, outFile, nil, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("failed to import images: %w", err)
	}
	return nil
}

// PageDims returns the dimensions of every page in points.
func PageDims(pdfPath string) ([]models.PageDimensions, error) {
	dims, err := api.PageDimsFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	out := make([]models.PageDimensions, 0, len(dims))
	for _, d := range dims {
		out = append(out, models.PageDimensions{Width: d.Width, Height: d.Height})
	}
	return out, nil
}
