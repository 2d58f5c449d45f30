package dedup

import (
	"context"
	"errors"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rmartins/doctools/internal/imaging"
	"github.com/rmartins/doctools/pkg/logger"
	"github.com/rmartins/doctools/pkg/models"
)

// ErrNoValidImages is returned when a scan ends up with zero successfully
// decoded images to work on.
var ErrNoValidImages = errors.New("no valid images processed")

// DefaultThreshold is the similarity above which two fingerprints are
// considered duplicates.
const DefaultThreshold = 0.85

// maxHashDim bounds the pixel data fed into fingerprinting. The hash
// reduces to a tiny grid anyway, so very large photos are downscaled first
// instead of resampled from full resolution.
const maxHashDim = 1024

// Photo is one named input image.
type Photo struct {
	Name  string
	Image image.Image
}

// Diagnostic records a per-image failure that did not stop the batch.
type Diagnostic struct {
	Name    string
	Message string
}

// Result is the complete outcome of one scan.
type Result struct {
	Records     []*Record
	Groups      []*Group
	Selection   *Selection
	Kept        []Photo
	Diagnostics []Diagnostic
}

// Options tune a Pipeline. Zero values select the defaults.
type Options struct {
	HashSize  int
	Threshold float64
	Workers   int
}

// Pipeline fingerprints and scores a batch of photos, groups near
// duplicates and keeps the sharpest shot of every group. One Pipeline may
// serve many scans; scans share no state.
type Pipeline struct {
	codec  imaging.Codec
	log    *logger.Logger
	hasher Hasher

	threshold float64
	workers   int
}

func New(codec imaging.Codec, log *logger.Logger, opts Options) *Pipeline {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{
		codec:     codec,
		log:       log,
		hasher:    NewHasher(opts.HashSize),
		threshold: threshold,
		workers:   workers,
	}
}

// Scan runs the full pipeline over an already-decoded batch. Per-image
// hashing failures become diagnostics and the image passes through
// ungrouped; they never abort the rest of the batch.
func (p *Pipeline) Scan(ctx context.Context, photos []Photo) (*Result, error) {
	if len(photos) == 0 {
		return nil, ErrNoValidImages
	}

	records := make([]*Record, len(photos))
	failures := make([]*Diagnostic, len(photos))

	// Hashing and scoring are independent per image; fan out, then
	// barrier before any grouping decision.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)
	for i := range photos {
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}

			rec := &Record{
				Name:      photos[i].Name,
				Image:     photos[i].Image,
				Sharpness: Sharpness(photos[i].Image),
			}
			hash, err := p.hasher.Hash(hashInput(photos[i].Image))
			if err != nil {
				failures[i] = &Diagnostic{
					Name:    photos[i].Name,
					Message: "fingerprinting failed: " + err.Error(),
				}
			} else {
				rec.Hash = hash
			}
			records[i] = rec
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var diags []Diagnostic
	for _, d := range failures {
		if d != nil {
			p.log.Warn("%s: %s", d.Name, d.Message)
			diags = append(diags, *d)
		}
	}

	groups := GroupDuplicates(records, p.threshold)
	selection := SelectBest(records, groups)

	kept := make([]Photo, 0, len(selection.Keep))
	for _, idx := range selection.Keep {
		kept = append(kept, photos[idx])
	}

	for _, report := range selection.Reports {
		p.log.Info("duplicate group of %d: keeping %s (sharpness %.2f), discarding %v",
			report.Size, report.Winner, report.WinnerScore, report.Discarded)
	}

	return &Result{
		Records:     records,
		Groups:      groups,
		Selection:   selection,
		Kept:        kept,
		Diagnostics: diags,
	}, nil
}

// hashInput downscales photos larger than maxHashDim on their longest side,
// preserving aspect ratio. Sharpness is always scored on the original.
func hashInput(img image.Image) image.Image {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxHashDim && h <= maxHashDim {
		return img
	}
	if w >= h {
		return imaging.Resize(img, maxHashDim, max(1, h*maxHashDim/w))
	}
	return imaging.Resize(img, max(1, w*maxHashDim/h), maxHashDim)
}

// ScanFiles decodes the given files through the injected codec and scans
// the decoded batch. A file that fails to decode is skipped with a
// diagnostic; the scan only fails when nothing decodes at all. Photos are
// named by their relative path.
func (p *Pipeline) ScanFiles(ctx context.Context, files []models.ImageFile) (*Result, error) {
	var photos []Photo
	var diags []Diagnostic

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := p.codec.DecodeFile(file.AbsolutePath)
		if err != nil {
			p.log.Warn("skipping %s: %v", file.RelativePath, err)
			diags = append(diags, Diagnostic{Name: file.RelativePath, Message: err.Error()})
			continue
		}
		photos = append(photos, Photo{Name: file.RelativePath, Image: img})
	}

	if len(photos) == 0 {
		return nil, ErrNoValidImages
	}

	result, err := p.Scan(ctx, photos)
	if err != nil {
		return nil, err
	}
	result.Diagnostics = append(diags, result.Diagnostics...)
	return result, nil
}
