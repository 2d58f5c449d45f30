package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmartins/doctools/internal/imaging"
	"github.com/rmartins/doctools/pkg/logger"
	"github.com/rmartins/doctools/pkg/models"
)

// DirectoryScanner walks a directory tree collecting image files the
// injected codec can decode. filepath.Walk visits entries in lexical
// order, so the returned list is deterministic for a given tree.
type DirectoryScanner struct {
	codec  imaging.Codec
	logger *logger.Logger
}

func New(codec imaging.Codec, logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		codec:  codec,
		logger: logger,
	}
}

func (s *DirectoryScanner) FindImages(ctx context.Context, dir string) ([]models.ImageFile, error) {
	var images []models.ImageFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Debug("Scanning directory: %s", path)
			return nil
		}

		if !s.codec.Supports(path) {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		images = append(images, models.ImageFile{
			AbsolutePath: path,
			RelativePath: relPath,
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("no image files found in %s or its subdirectories", dir)
	}

	return images, nil
}
