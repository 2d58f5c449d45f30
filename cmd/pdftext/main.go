package main

import (
	"context"
	"flag"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmartins/doctools/internal/pdf"
	"github.com/rmartins/doctools/pkg/logger"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Extracted text - %s</title>
    <style>
        body { font-family: Arial, sans-serif; padding: 20px; line-height: 1.6; }
        pre { white-space: pre-wrap; word-wrap: break-word; }
    </style>
</head>
<body>
    <h1>Extracted text from: %s</h1>
    <pre>%s</pre>
</body>
</html>
`

func main() {
	pdfPath := flag.String("file", "", "path to PDF file")
	format := flag.String("format", "txt", "output format (txt or html)")
	pagesExpr := flag.String("pages", "", "pages to extract, e.g. 1-3,7 (empty = all)")
	outFile := flag.String("out", "", "output file (default: <pdf name>.<format>)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	log := logger.New(logger.WithPrefix("[pdftext] "))
	log.SetVerbose(*verbose)

	if *pdfPath == "" {
		log.Fatal("Please provide a PDF file path using -file flag")
	}
	if *format != "txt" && *format != "html" {
		log.Fatal("Unsupported format %q: use txt or html", *format)
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

	text, err := converter.ExtractText(ctx, *pdfPath, pages)
	if err != nil {
		log.Fatal("Error extracting text: %v", err)
	}

	name := filepath.Base(*pdfPath)
	content := text
	if *format == "html" {
		content = fmt.Sprintf(htmlTemplate, name, name, html.EscapeString(text))
	}

	dest := *outFile
	if dest == "" {
		dest = strings.TrimSuffix(name, filepath.Ext(name)) + "." + *format
	}

	if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
		log.Fatal("Error writing output: %v", err)
	}

	log.Info("Text written to %s", dest)
}
