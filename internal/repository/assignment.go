package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/oseikuffour/incident_dispatch_system/internal/service"
)

const assignmentColumns = `
	a.id,
	a.report_id,
	a.responder_id,
	r.name,
	a.service_type,
	a.method,
	a.status,
	a.distance_km,
	a.assigned_at,
	a.acknowledged_at,
	a.completed_at,
	a.notes,
	a.feedback`

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) service.AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

// Create inserts a new assignment in its initial state. The insert is a
// single statement, so a failure leaves no partial assignment behind.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (report_id, responder_id, service_type, method, status, distance_km, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, assigned_at;
	`
	err := r.db.QueryRow(ctx, query,
		assignment.ReportID,
		assignment.ResponderID,
		assignment.ServiceType,
		assignment.Method,
		assignment.Status,
		assignment.DistanceKm,
		assignment.Notes,
	).Scan(&assignment.ID, &assignment.AssignedAt)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// GetByID returns an assignment by its UUID
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM assignments a
		JOIN responders r ON a.responder_id = r.id
		WHERE a.id = $1;
	`, assignmentColumns)

	assignment := &models.Assignment{}
	err := scanAssignment(r.db.QueryRow(ctx, query, id), assignment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assignment with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get assignment by id: %w", err)
	}
	return assignment, nil
}

// ListByReport returns all assignments created for one report
func (r *AssignmentRepository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM assignments a
		JOIN responders r ON a.responder_id = r.id
		WHERE a.report_id = $1
		ORDER BY a.assigned_at DESC;
	`, assignmentColumns)

	return r.list(ctx, query, reportID)
}

// ListByResponder returns all assignments handed to one responder
func (r *AssignmentRepository) ListByResponder(ctx context.Context, responderID uuid.UUID) ([]*models.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM assignments a
		JOIN responders r ON a.responder_id = r.id
		WHERE a.responder_id = $1
		ORDER BY a.assigned_at DESC;
	`, assignmentColumns)

	return r.list(ctx, query, responderID)
}

// UpdateLifecycle persists the status, timestamps, notes and feedback of one
// lifecycle transition
func (r *AssignmentRepository) UpdateLifecycle(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments SET
			status = $1,
			acknowledged_at = $2,
			completed_at = $3,
			notes = $4,
			feedback = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		assignment.Status,
		assignment.AcknowledgedAt,
		assignment.CompletedAt,
		assignment.Notes,
		assignment.Feedback,
		assignment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("assignment with id %s: %w", assignment.ID, service.ErrNotFound)
	}
	return nil
}

func (r *AssignmentRepository) list(ctx context.Context, query string, arg any) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0)
	for rows.Next() {
		assignment := &models.Assignment{}
		if err := scanAssignment(rows, assignment); err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}

func scanAssignment(row pgx.Row, assignment *models.Assignment) error {
	return row.Scan(
		&assignment.ID,
		&assignment.ReportID,
		&assignment.ResponderID,
		&assignment.ResponderName,
		&assignment.ServiceType,
		&assignment.Method,
		&assignment.Status,
		&assignment.DistanceKm,
		&assignment.AssignedAt,
		&assignment.AcknowledgedAt,
		&assignment.CompletedAt,
		&assignment.Notes,
		&assignment.Feedback,
	)
}
