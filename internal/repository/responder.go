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

const responderColumns = `
	id,
	name,
	service_type,
	contact_person,
	phone,
	email,
	address,
	latitude,
	longitude,
	available,
	approved,
	created_at`

type ResponderRepository struct {
	db *pgxpool.Pool
}

func NewResponderRepository(db *pgxpool.Pool) service.ResponderRepository {
	return &ResponderRepository{
		db: db,
	}
}

// FindEligible returns the approved and available responders for one service
// type. The registration-order sort keeps directory iteration stable, which
// the selector relies on for deterministic tie-breaking.
func (r *ResponderRepository) FindEligible(ctx context.Context, serviceType models.ServiceType) ([]models.Responder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM responders
		WHERE service_type = $1 AND approved = TRUE AND available = TRUE
		ORDER BY created_at, id;
	`, responderColumns)

	rows, err := r.db.Query(ctx, query, serviceType)
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible responders: %w", err)
	}
	defer rows.Close()

	responders := make([]models.Responder, 0)
	for rows.Next() {
		var responder models.Responder
		if err := scanResponder(rows, &responder); err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating eligible responders: %w", err)
	}
	return responders, nil
}

// GetByID returns one responder by its UUID
func (r *ResponderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Responder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM responders
		WHERE id = $1;
	`, responderColumns)

	responder := &models.Responder{}
	err := scanResponder(r.db.QueryRow(ctx, query, id), responder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("responder with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get responder by id: %w", err)
	}
	return responder, nil
}

// List returns all responders, optionally filtered by service type
func (r *ResponderRepository) List(ctx context.Context, serviceType string) ([]models.Responder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM responders
		WHERE ($1 = '' OR service_type = $1)
		ORDER BY created_at, id;
	`, responderColumns)

	rows, err := r.db.Query(ctx, query, serviceType)
	if err != nil {
		return nil, fmt.Errorf("failed to list responders: %w", err)
	}
	defer rows.Close()

	responders := make([]models.Responder, 0)
	for rows.Next() {
		var responder models.Responder
		if err := scanResponder(rows, &responder); err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responders: %w", err)
	}
	return responders, nil
}

func scanResponder(row pgx.Row, responder *models.Responder) error {
	return row.Scan(
		&responder.ID,
		&responder.Name,
		&responder.ServiceType,
		&responder.ContactPerson,
		&responder.Phone,
		&responder.Email,
		&responder.Address,
		&responder.Latitude,
		&responder.Longitude,
		&responder.Available,
		&responder.Approved,
		&responder.CreatedAt,
	)
}
