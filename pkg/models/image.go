package models

// ImageFile is a reference to an image discovered on disk.
type ImageFile struct {
	AbsolutePath string
	RelativePath string
}

// PageDimensions holds a PDF page size in points.
type PageDimensions struct {
	Width  float64
	Height float64
}
