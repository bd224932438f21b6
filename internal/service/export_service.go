package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/internal/catalog"
	"github.com/noah-isme/alpstech-academy-api/internal/models"
	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
	"github.com/noah-isme/alpstech-academy-api/pkg/export"
)

type resultSource interface {
	StudentResults(ctx context.Context, filter catalog.ResultFilter) ([]models.Result, models.Statistics, error)
	AdminResults(filter catalog.ResultFilter) []models.AdminResult
}

// ExportService renders result listings as CSV or PDF downloads.
type ExportService struct {
	results  resultSource
	exporter *export.Exporter
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(results resultSource, exporter *export.Exporter, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exporter == nil {
		exporter = export.NewExporter()
	}
	return &ExportService{results: results, exporter: exporter, logger: logger}
}

// StudentResults exports the active session's filtered results.
func (s *ExportService) StudentResults(ctx context.Context, format export.Format, filter catalog.ResultFilter) (*export.Document, error) {
	results, stats, err := s.results.StudentResults(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{
		Title:   fmt.Sprintf("My Results (average %.1f%%, top grade %s)", stats.AverageScore, stats.TopGrade),
		Headers: []string{"Course", "Score", "Percentage", "Grade", "Date", "Feedback"},
	}
	for _, r := range results {
		pct, err := catalog.Percentage(r.Score, r.MaxScore)
		if err != nil {
			return nil, err
		}
		data.Rows = append(data.Rows, map[string]string{
			"Course":     r.CourseName,
			"Score":      fmt.Sprintf("%d/%d", r.Score, r.MaxScore),
			"Percentage": strconv.FormatFloat(pct, 'f', 1, 64) + "%",
			"Grade":      r.Grade,
			"Date":       r.Date,
			"Feedback":   r.Feedback,
		})
	}
	return s.render(format, "my-results", data)
}

// AdminResults exports the admin overlay's filtered results.
func (s *ExportService) AdminResults(format export.Format, filter catalog.ResultFilter) (*export.Document, error) {
	data := export.Dataset{
		Title:   "Student Results",
		Headers: []string{"Student ID", "Student", "Course", "Score", "Grade", "Date"},
	}
	for _, r := range s.results.AdminResults(filter) {
		data.Rows = append(data.Rows, map[string]string{
			"Student ID": r.StudentID,
			"Student":    r.StudentName,
			"Course":     r.CourseName,
			"Score":      fmt.Sprintf("%d/%d", r.Score, r.MaxScore),
			"Grade":      r.Grade,
			"Date":       r.Date,
		})
	}
	return s.render(format, "student-results", data)
}

func (s *ExportService) render(format export.Format, basename string, data export.Dataset) (*export.Document, error) {
	doc, err := s.exporter.Export(format, basename, data)
	if err != nil {
		s.logger.Error("export failed", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.logger.Info("export rendered", zap.String("file", doc.Filename), zap.Int("rows", len(data.Rows)))
	return doc, nil
}
