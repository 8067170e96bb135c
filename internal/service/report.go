package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportRepository defines the contract for report persistence and caching
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	List(ctx context.Context, userID string, page, pageSize int) ([]*models.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.Report, error)
	SetReportCache(ctx context.Context, report *models.Report) error
	InvalidateReportCache(ctx context.Context, id uuid.UUID) error
}

// ReportService defines the contract for incident report intake
type ReportService interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	ListReports(ctx context.Context, userID string, page, pageSize int) ([]*models.Report, error)
}

type reportService struct {
	repo   ReportRepository
	logger *logrus.Logger
}

func NewReportService(repo ReportRepository, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// CreateReport stores a freshly filed incident report
func (s *reportService) CreateReport(ctx context.Context, report *models.Report) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "CreateReport",
		"type":    report.Type,
	})
	log.Info("Attempting to create a new report")

	report.Status = models.ReportStatusSent
	if report.Severity == "" {
		report.Severity = "medium"
	}

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Report created successfully")
	return nil
}

// GetReport fetches one report, trying the cache first
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	cached, err := s.repo.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Report cache lookup failed, falling back to database")
	}
	if cached != nil {
		log.Debug("Report served from cache")
		return cached, nil
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}

	if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache report")
	}

	return report, nil
}

// ListReports returns reports, scoped to one user unless userID is empty
func (s *reportService) ListReports(ctx context.Context, userID string, page, pageSize int) ([]*models.Report, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      page,
		"page_size": pageSize,
	})

	reports, err := s.repo.List(ctx, userID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Reports listed successfully")
	return reports, nil
}
