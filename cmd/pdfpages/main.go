package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rmartins/doctools/internal/archive"
	"github.com/rmartins/doctools/internal/pdf"
	"github.com/rmartins/doctools/pkg/logger"
	"github.com/rmartins/doctools/pkg/utils"
)

func main() {
	op := flag.String("op", "", "operation: extract, remove, rotate, merge, split, insert or compress")
	inFile := flag.String("file", "", "input PDF file")
	outFile := flag.String("out", "", "output PDF file")
	outDir := flag.String("out-dir", "", "output directory for split (default: a fresh temp directory)")
	pagesExpr := flag.String("pages", "", "pages to operate on, e.g. 1-3,7 (rotate: empty = all)")
	angle := flag.Int("angle", 90, "rotation angle: 90, 180 or 270")
	source := flag.String("source", "", "PDF whose pages get inserted (insert)")
	after := flag.Int("after", 0, "insert after this page; 0 = before the first page (insert)")
	zipOutput := flag.Bool("zip", false, "package split pages into a ZIP archive")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	log := logger.New(logger.WithPrefix("[pdfpages] "))
	log.SetVerbose(*verbose)

	switch *op {
	case "extract", "remove", "rotate", "split", "compress":
		if *inFile == "" {
			log.Fatal("Please provide a PDF file path using -file flag")
		}
	case "insert":
		if *inFile == "" || *source == "" {
			log.Fatal("Usage: pdfpages -op insert -file base.pdf -source insert.pdf -after N -out result.pdf")
		}
	case "merge":
		if len(flag.Args()) < 2 {
			log.Fatal("Usage: pdfpages -op merge -out merged.pdf a.pdf b.pdf ...")
		}
	default:
		log.Fatal("Unknown operation %q: use extract, remove, rotate, merge, split, insert or compress", *op)
	}
	if *op != "split" && *outFile == "" {
		log.Fatal("Please provide an output path using -out flag")
	}

	var pages []int
	if *pagesExpr != "" {
		converter := pdf.NewConverter(log)
		count, err := converter.PageCount(*inFile)
		if err != nil {
			log.Fatal("Error reading PDF: %v", err)
		}
		pages, err = pdf.ParsePageRanges(*pagesExpr, count)
		if err != nil {
			log.Fatal("Error parsing pages: %v", err)
		}
	}

	if *op == "split" {
		runSplit(log, *inFile, *outDir, *zipOutput)
		return
	}

	var err error
	switch *op {
	case "extract":
		if pages == nil {
			log.Fatal("Specify the pages to extract with -pages")
		}
		err = pdf.ExtractPages(*inFile, *outFile, pages)
	case "remove":
		if pages == nil {
			log.Fatal("Specify the pages to remove with -pages")
		}
		err = pdf.RemovePages(*inFile, *outFile, pages)
	case "rotate":
		err = pdf.RotatePages(*inFile, *outFile, *angle, pages)
	case "merge":
		err = pdf.MergePDFs(flag.Args(), *outFile)
	case "insert":
		err = pdf.InsertPDF(*inFile, *source, *outFile, *after)
	case "compress":
		err = pdf.CompressPDF(*inFile, *outFile)
	}
	if err != nil {
		log.Fatal("Error processing PDF: %v", err)
	}

	if *op == "compress" {
		logSizes(log, *inFile, *outFile)
	}
	log.Info("Result written to %s", *outFile)
}

func runSplit(log *logger.Logger, inFile, outDir string, zipOutput bool) {
	if outDir == "" {
		outDir = utils.GetDefaultOutputDir()
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal("Error creating output directory: %v", err)
	}

	if err := pdf.SplitPDF(inFile, outDir); err != nil {
		log.Fatal("Error splitting PDF: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		log.Fatal("Error reading output directory: %v", err)
	}

	if zipOutput {
		var files []string
		for _, entry := range entries {
			files = append(files, filepath.Join(outDir, entry.Name()))
		}
		zipPath := filepath.Join(outDir, "split_pages.zip")
		if err := archive.CreateZip(zipPath, files); err != nil {
			log.Fatal("Error creating archive: %v", err)
		}
		log.Info("Archive written to %s", zipPath)
	}

	log.Info("Split into %d pages in %s", len(entries), outDir)
}

func logSizes(log *logger.Logger, inFile, outFile string) {
	in, err := os.Stat(inFile)
	if err != nil {
		return
	}
	out, err := os.Stat(outFile)
	if err != nil {
		return
	}
	reduction := 0.0
	if in.Size() > 0 {
		reduction = float64(in.Size()-out.Size()) / float64(in.Size()) * 100
	}
	log.Info("Compressed %.2f KB to %.2f KB (%.1f%% reduction)",
		float64(in.Size())/1024, float64(out.Size())/1024, reduction)
}
