package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rmartins/doctools/internal/archive"
	"github.com/rmartins/doctools/internal/config"
	"github.com/rmartins/doctools/internal/dedup"
	"github.com/rmartins/doctools/internal/imaging"
	"github.com/rmartins/doctools/internal/scanner"
	"github.com/rmartins/doctools/pkg/logger"
	"github.com/rmartins/doctools/pkg/models"
	"github.com/rmartins/doctools/pkg/version"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	photoDir := flag.String("photo-dir", "", "directory containing photos (overrides config)")
	outputDir := flag.String("output-dir", "", "directory to save retained photos (overrides config)")
	threshold := flag.Float64("threshold", 0, "similarity threshold in [0.70, 1.0] (overrides config)")
	zipOutput := flag.Bool("zip", false, "also package retained photos into a ZIP archive")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[photodedup] "))
	log.SetVerbose(*verbose)
	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	cfg := loadConfig(log, *configPath)
	if *photoDir != "" {
		cfg.PhotoSourceDir = *photoDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *threshold != 0 {
		cfg.SimilarityThreshold = *threshold
	}
	if *zipOutput {
		cfg.ZipOutput = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: %v", err)
	}

	if _, err := os.Stat(cfg.PhotoSourceDir); os.IsNotExist(err) {
		log.Fatal("Photo directory does not exist: %s", cfg.PhotoSourceDir)
	}

	report := &models.ProcessingReport{StartTime: time.Now()}
	ctx := context.Background()

	codec := imaging.NewCodec()
	dirScanner := scanner.New(codec, log)

	log.Info("Scanning directory: %s", cfg.PhotoSourceDir)
	files, err := dirScanner.FindImages(ctx, cfg.PhotoSourceDir)
	if err != nil {
		log.Fatal("Error finding images: %v", err)
	}
	log.Info("Found %d images to process", len(files))

	pipeline := dedup.New(codec, log, dedup.Options{
		HashSize:  cfg.HashSize,
		Threshold: cfg.SimilarityThreshold,
	})

	result, err := pipeline.ScanFiles(ctx, files)
	if err != nil {
		log.Fatal("Error scanning photos: %v", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatal("Error creating output directory: %v", err)
	}

	// Retained photos are copied byte for byte so nothing is re-encoded.
	sources := make(map[string]string, len(files))
	for _, f := range files {
		sources[f.RelativePath] = f.AbsolutePath
	}

	saved, err := saveKept(result.Kept, sources, cfg.OutputDir)
	if err != nil {
		log.Fatal("Error saving photos: %v", err)
	}

	if cfg.ZipOutput {
		zipPath := filepath.Join(cfg.OutputDir, "deduped_photos.zip")
		if err := archive.CreateZip(zipPath, saved); err != nil {
			log.Fatal("Error creating archive: %v", err)
		}
		log.Info("Archive written to %s", zipPath)
	}

	report.EndTime = time.Now()
	report.ProcessedImages = len(result.Records)
	report.SkippedImages = len(files) - len(result.Records)
	report.DuplicateGroups = len(result.Groups)
	report.DiscardedImages = len(result.Records) - len(result.Kept)
	report.KeptImages = len(result.Kept)
	report.Print(log)
}

func loadConfig(log *logger.Logger, path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("No config file at %s, using defaults", path)
			return config.Default()
		}
		log.Fatal("Error loading config: %v", err)
	}
	return cfg
}

// saveKept copies retained photos under outputDir, preserving each photo's
// relative path. Equal base names from different source folders must not
// clobber each other.
func saveKept(kept []dedup.Photo, sources map[string]string, outputDir string) ([]string, error) {
	saved := make([]string, 0, len(kept))
	for _, photo := range kept {
		dest := filepath.Join(outputDir, photo.Name)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
		}
		if err := copyFile(sources[photo.Name], dest); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", photo.Name, err)
		}
		saved = append(saved, dest)
	}
	return saved, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
