package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oseikuffour/incident_dispatch_system/internal/config"
	"github.com/oseikuffour/incident_dispatch_system/internal/dispatch"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/oseikuffour/incident_dispatch_system/internal/notification"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ResponderRepository defines the contract for reading directory snapshots
type ResponderRepository interface {
	FindEligible(ctx context.Context, serviceType models.ServiceType) ([]models.Responder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Responder, error)
	List(ctx context.Context, serviceType string) ([]models.Responder, error)
}

// AssignmentRepository defines the contract for assignment persistence
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.Assignment, error)
	ListByResponder(ctx context.Context, responderID uuid.UUID) ([]*models.Assignment, error)
	UpdateLifecycle(ctx context.Context, assignment *models.Assignment) error
}

// DispatchRequest is one incident dispatch order. Latitude/Longitude override
// the report coordinates when present. ResponderID switches the engine to the
// manual path, bypassing directory lookup and selection.
type DispatchRequest struct {
	ReportID     uuid.UUID
	Latitude     *float64
	Longitude    *float64
	ServiceTypes []models.ServiceType
	AssignedBy   string
	ResponderID  *uuid.UUID
}

// DispatchResult reports what one dispatch run produced. Skipped is set when
// the incident carried no coordinates and nothing was attempted.
type DispatchResult struct {
	Created     []*models.Assignment
	Unfulfilled []models.ServiceType
	Skipped     bool
}

// DispatchService defines the contract for the dispatch engine and the
// assignment lifecycle operations hanging off it
type DispatchService interface {
	DispatchReport(ctx context.Context, req DispatchRequest) (*DispatchResult, error)
	UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status models.AssignmentStatus, notes, feedback string) (*models.Assignment, error)
	ListAssignmentsByReport(ctx context.Context, reportID uuid.UUID) ([]*models.Assignment, error)
	ListAssignmentsByResponder(ctx context.Context, responderID uuid.UUID) ([]*models.Assignment, error)
	ListResponders(ctx context.Context, serviceType string) ([]models.Responder, error)
}

type dispatchService struct {
	responders  ResponderRepository
	assignments AssignmentRepository
	reports     ReportRepository
	logger      *logrus.Logger
	cfg         *config.Config
	publisher   notification.Publisher
}

func NewDispatchService(
	responders ResponderRepository,
	assignments AssignmentRepository,
	reports ReportRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher notification.Publisher,
) DispatchService {
	return &dispatchService{
		responders:  responders,
		assignments: assignments,
		reports:     reports,
		logger:      logger,
		cfg:         cfg,
		publisher:   publisher,
	}
}

// DispatchReport assigns the nearest eligible responder for every requested
// service type. Service types are processed concurrently and independently:
// a slow or failed directory lookup for one type marks only that type
// unfulfilled. Only an assignment persistence failure fails the call.
func (s *dispatchService) DispatchReport(ctx context.Context, req DispatchRequest) (*DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "DispatchReport",
		"report_id": req.ReportID,
	})
	log.Info("Dispatching incident report")

	report, err := s.reports.GetByID(ctx, req.ReportID)
	if err != nil {
		log.WithError(err).Warn("Report not found for dispatch")
		return nil, fmt.Errorf("service: report %s: %w", req.ReportID, err)
	}

	lat, lon := req.Latitude, req.Longitude
	if lat == nil || lon == nil {
		lat, lon = report.Latitude, report.Longitude
	}
	if lat == nil || lon == nil {
		// No coordinates means no meaningful dispatch. A no-op, not an error.
		log.Warn("Report has no coordinates, skipping dispatch")
		return &DispatchResult{Skipped: true}, nil
	}
	target := dispatch.Coordinates{Latitude: *lat, Longitude: *lon}

	if req.ResponderID != nil {
		return s.dispatchManual(ctx, report, req, target)
	}

	result := &DispatchResult{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, serviceType := range req.ServiceTypes {
		g.Go(func() error {
			lookupCtx, cancel := context.WithTimeout(gctx, s.cfg.DispatchLookupTimeout)
			defer cancel()

			candidates, err := s.responders.FindEligible(lookupCtx, serviceType)
			if err != nil {
				// Lookup failure or timeout degrades to "unfulfilled" for
				// this type; the other types keep going.
				log.WithError(err).WithField("service_type", serviceType).
					Warn("Responder lookup failed, marking service type unfulfilled")
				mu.Lock()
				result.Unfulfilled = append(result.Unfulfilled, serviceType)
				mu.Unlock()
				return nil
			}

			selection, ok := dispatch.SelectResponder(target, candidates)
			if !ok {
				log.WithField("service_type", serviceType).Info("No responder available")
				mu.Lock()
				result.Unfulfilled = append(result.Unfulfilled, serviceType)
				mu.Unlock()
				return nil
			}

			assignment, err := s.createAssignment(gctx, report, selection, serviceType, models.MethodAutomatic)
			if err != nil {
				return err
			}

			mu.Lock()
			result.Created = append(result.Created, assignment)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to persist assignment")
		return nil, fmt.Errorf("service: could not dispatch report: %w", err)
	}

	log.WithFields(logrus.Fields{
		"created":     len(result.Created),
		"unfulfilled": len(result.Unfulfilled),
	}).Info("Dispatch completed")
	return result, nil
}

// dispatchManual creates one assignment for an explicitly chosen responder
func (s *dispatchService) dispatchManual(ctx context.Context, report *models.Report, req DispatchRequest, target dispatch.Coordinates) (*DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "dispatch",
		"method":       "dispatchManual",
		"report_id":    report.ID,
		"responder_id": *req.ResponderID,
	})
	log.Info("Manual dispatch to explicit responder")

	responder, err := s.responders.GetByID(ctx, *req.ResponderID)
	if err != nil {
		return nil, fmt.Errorf("service: responder %s: %w", *req.ResponderID, err)
	}

	selection := dispatch.Selection{Responder: responder}
	if responder.HasCoordinates() {
		sel, _ := dispatch.SelectResponder(target, []models.Responder{*responder})
		selection.DistanceKm = sel.DistanceKm
	}

	assignment, err := s.createAssignment(ctx, report, selection, responder.ServiceType, models.MethodManual)
	if err != nil {
		return nil, fmt.Errorf("service: could not dispatch report: %w", err)
	}
	return &DispatchResult{Created: []*models.Assignment{assignment}}, nil
}

// createAssignment persists the assignment and queues the responder
// notification. Notification failure is logged and swallowed: the committed
// assignment must never be rolled back for a delivery problem.
func (s *dispatchService) createAssignment(ctx context.Context, report *models.Report, selection dispatch.Selection, serviceType models.ServiceType, method string) (*models.Assignment, error) {
	responder := selection.Responder
	assignment := &models.Assignment{
		ReportID:      report.ID,
		ResponderID:   responder.ID,
		ResponderName: responder.Name,
		ServiceType:   serviceType,
		Method:        method,
		Status:        models.AssignmentAssigned,
		DistanceKm:    selection.DistanceKm,
	}

	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, err
	}

	event := notification.Event{
		AssignmentID:  assignment.ID,
		ResponderName: responder.Name,
		Phone:         responder.Phone,
		Email:         responder.Email,
		IncidentType:  report.Type,
		Location:      report.Location,
		Description:   report.Description,
		Severity:      report.Severity,
		Timestamp:     time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("assignment_id", assignment.ID).
			Warn("Failed to queue responder notification, assignment kept")
	}

	s.logger.WithFields(logrus.Fields{
		"assignment_id": assignment.ID,
		"responder":     responder.Name,
		"distance_km":   fmt.Sprintf("%.2f", selection.DistanceKm),
	}).Info("Assignment created")
	return assignment, nil
}

// UpdateAssignmentStatus runs one lifecycle transition. Completion also marks
// the related report resolved.
func (s *dispatchService) UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status models.AssignmentStatus, notes, feedback string) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "dispatch",
		"method":        "UpdateAssignmentStatus",
		"assignment_id": id,
		"status":        status,
	})
	log.Info("Updating assignment status")

	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Assignment not found")
		return nil, fmt.Errorf("service: assignment %s: %w", id, err)
	}

	if err := dispatch.ApplyTransition(assignment, status, notes, feedback, time.Now()); err != nil {
		log.WithError(err).Warn("Rejected assignment transition")
		return nil, err
	}

	if err := s.assignments.UpdateLifecycle(ctx, assignment); err != nil {
		log.WithError(err).Error("Failed to update assignment in repository")
		return nil, fmt.Errorf("service: could not update assignment: %w", err)
	}

	if status == models.AssignmentCompleted {
		if err := s.reports.UpdateStatus(ctx, assignment.ReportID, models.ReportStatusResolved); err != nil {
			// The transition itself is committed; resolution is best effort.
			log.WithError(err).Warn("Failed to mark related report resolved")
		}
	}

	log.Info("Assignment status updated")
	return assignment, nil
}

// ListAssignmentsByReport returns all assignments created for one report
func (s *dispatchService) ListAssignmentsByReport(ctx context.Context, reportID uuid.UUID) ([]*models.Assignment, error) {
	assignments, err := s.assignments.ListByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list assignments: %w", err)
	}
	return assignments, nil
}

// ListAssignmentsByResponder returns a responder's assignment queue
func (s *dispatchService) ListAssignmentsByResponder(ctx context.Context, responderID uuid.UUID) ([]*models.Assignment, error) {
	assignments, err := s.assignments.ListByResponder(ctx, responderID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list assignments: %w", err)
	}
	return assignments, nil
}

// ListResponders returns directory snapshots, optionally filtered by type
func (s *dispatchService) ListResponders(ctx context.Context, serviceType string) ([]models.Responder, error) {
	if serviceType != "" {
		if _, err := models.ParseServiceType(serviceType); err != nil {
			return nil, fmt.Errorf("service: %w", err)
		}
	}
	responders, err := s.responders.List(ctx, serviceType)
	if err != nil {
		return nil, fmt.Errorf("service: could not list responders: %w", err)
	}
	return responders, nil
}
