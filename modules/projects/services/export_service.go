package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/projects-export/modules/projects/domain/aggregates/project"
	"github.com/iota-uz/projects-export/modules/projects/presentation/mappers"
)

type ExportService struct {
	repo   project.Repository
	logger *logrus.Entry
}

func NewExportService(repo project.Repository, logger *logrus.Entry) *ExportService {
	return &ExportService{repo: repo, logger: logger}
}

// Export reads every project and returns the complete JSON document.
// Nothing is returned unless the whole result set was read.
func (s *ExportService) Export(ctx context.Context) ([]byte, error) {
	start := time.Now()
	s.logger.Debug("querying projects")

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := mappers.ProjectsToJSON(projects)
	s.logger.WithFields(logrus.Fields{
		"projects":    len(projects),
		"bytes":       len(out),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("projects exported")
	return out, nil
}
