package integrity

import (
	"context"
	"slices"

	"media-scraper/core/store"

	"go.uber.org/zap"
)

// Destination is a store whose content can be enumerated.
type Destination interface {
	store.Store
	store.Scanner
}

// Report lists the problems found in a destination.
type Report struct {
	Location string `json:"location"`
	// Entries is the number of <id>.json entries found.
	Entries int `json:"entries"`
	// Corrupt lists ids whose entry is not a JSON object.
	Corrupt []string `json:"corrupt"`
	// TempFiles lists leftovers of interrupted writes.
	TempFiles []string `json:"temp_files"`
	// Unknown lists files that are neither entries nor temporary files.
	Unknown []string `json:"unknown"`
}

// Healthy reports whether no corrupt entries or temporary files were found.
// Unknown files do not count as problems.
func (r *Report) Healthy() bool {
	return len(r.Corrupt) == 0 && len(r.TempFiles) == 0
}

// Service handles integrity checks.
type Service struct {
	dest   Destination
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(dest Destination, logger *zap.Logger) *Service {
	return &Service{
		dest:   dest,
		logger: logger,
	}
}

// Check reads every entry of the destination.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	ids, strays, err := s.dest.Scan(ctx)
	if err != nil {
		return nil, err
	}
	slices.Sort(ids)
	slices.Sort(strays)

	report := &Report{
		Location:  s.dest.Location(),
		Entries:   len(ids),
		Corrupt:   []string{},
		TempFiles: []string{},
		Unknown:   []string{},
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		_, corrupt, err := s.dest.Read(ctx, id)
		if err != nil {
			return nil, err
		}
		if corrupt {
			s.logger.Debug("Corrupt entry", zap.String("id", id), zap.String("file", store.Name(id)))
			report.Corrupt = append(report.Corrupt, id)
		}
	}

	for _, name := range strays {
		if store.IsTemp(name) {
			report.TempFiles = append(report.TempFiles, name)
			continue
		}
		report.Unknown = append(report.Unknown, name)
	}

	return report, nil
}

// Fix removes the temporary files listed in report and returns how many were removed.
// Corrupt entries are left for the next scrape run, which replaces them.
func (s *Service) Fix(ctx context.Context, report *Report) (int, error) {
	removed := 0
	for _, name := range report.TempFiles {
		if err := s.dest.Remove(ctx, name); err != nil {
			s.logger.Error("Failed to remove temporary file", zap.String("file", name), zap.Error(err))
			return removed, err
		}
		removed++
		s.logger.Info("Removed temporary file", zap.String("file", name))
	}
	return removed, nil
}
