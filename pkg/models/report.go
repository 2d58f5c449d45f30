package models

import (
	"time"

	"github.com/rmartins/doctools/pkg/logger"
)

// ProcessingReport summarizes one deduplication run.
type ProcessingReport struct {
	StartTime       time.Time
	EndTime         time.Time
	ProcessedImages int
	SkippedImages   int
	DuplicateGroups int
	DiscardedImages int
	KeptImages      int
}

func (r *ProcessingReport) Print(log *logger.Logger) {
	log.Info("Deduplication report:")
	log.Info("- Images processed: %d", r.ProcessedImages)
	if r.SkippedImages > 0 {
		log.Info("- Images skipped (decode failures): %d", r.SkippedImages)
	}
	log.Info("- Duplicate groups found: %d", r.DuplicateGroups)
	log.Info("- Duplicates discarded: %d", r.DiscardedImages)
	log.Info("- Images kept: %d", r.KeptImages)
	log.Info("- Elapsed: %s", r.EndTime.Sub(r.StartTime).Round(time.Millisecond))
}
