package seeder

import (
	"context"
	"log"
	"os"

	"skills-radar/internal/pipeline"
)

// BulkSkills loads the historical skills-survey export from a well-known
// static path at startup. The ingestor's isInitialized guard makes the whole
// seeder a no-op on every run after the first successful one.
type BulkSkills struct {
	path     string
	ingestor *pipeline.BulkIngestor
	logger   *log.Logger
}

func NewBulkSkills(path string, ingestor *pipeline.BulkIngestor, logger *log.Logger) *BulkSkills {
	if logger == nil {
		logger = log.Default()
	}
	return &BulkSkills{path: path, ingestor: ingestor, logger: logger}
}

func (s *BulkSkills) Name() string {
	return "bulk-skills"
}

func (s *BulkSkills) Run(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Printf("[Seed] no bulk skills file at %s, skipping", s.path)
			return nil
		}
		return err
	}

	rows, err := pipeline.ParseBulkRows(data)
	if err != nil {
		return err
	}

	sum, err := s.ingestor.Run(ctx, rows)
	if err != nil {
		return err
	}
	if sum.SkippedAlreadyInitialized {
		s.logger.Printf("[Seed] store already initialized, bulk skills skipped")
	}
	return nil
}
