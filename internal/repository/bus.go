package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/oseikuffour/incident_dispatch_system/internal/service"
)

const busRequestColumns = `
	id,
	passenger_id,
	location,
	pickup_latitude,
	pickup_longitude,
	destination,
	passenger_count,
	is_peak_hour,
	total_capacity_accepted,
	capacity_fulfilled,
	status,
	created_at`

type BusRepository struct {
	db *pgxpool.Pool
}

func NewBusRepository(db *pgxpool.Pool) service.BusRepository {
	return &BusRepository{
		db: db,
	}
}

// CreateRequest inserts a new bus request
func (r *BusRepository) CreateRequest(ctx context.Context, request *models.BusRequest) error {
	query := `
		INSERT INTO bus_requests (passenger_id, location, pickup_latitude, pickup_longitude, destination, passenger_count, is_peak_hour, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		request.PassengerID,
		request.Location,
		request.Latitude,
		request.Longitude,
		request.Destination,
		request.PassengerCount,
		request.IsPeakHour,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bus request: %w", err)
	}
	return nil
}

// GetRequest returns a bus request by its UUID
func (r *BusRepository) GetRequest(ctx context.Context, id uuid.UUID) (*models.BusRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bus_requests
		WHERE id = $1;
	`, busRequestColumns)

	request := &models.BusRequest{}
	err := scanBusRequest(r.db.QueryRow(ctx, query, id), request)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bus request with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bus request by id: %w", err)
	}
	return request, nil
}

// ListByPassenger returns one passenger's requests, newest first
func (r *BusRepository) ListByPassenger(ctx context.Context, passengerID string) ([]*models.BusRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bus_requests
		WHERE passenger_id = $1
		ORDER BY created_at DESC;
	`, busRequestColumns)

	return r.listRequests(ctx, query, passengerID)
}

// ListPending returns the driver feed: pending requests, peak-hour demand
// first, then oldest first
func (r *BusRepository) ListPending(ctx context.Context) ([]*models.BusRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bus_requests
		WHERE status = 'pending'
		ORDER BY is_peak_hour DESC, created_at ASC;
	`, busRequestColumns)

	return r.listRequests(ctx, query)
}

// ListAll returns every bus request, newest first
func (r *BusRepository) ListAll(ctx context.Context) ([]*models.BusRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bus_requests
		ORDER BY created_at DESC;
	`, busRequestColumns)

	return r.listRequests(ctx, query)
}

// ListRecentPending returns pending requests created at or after the cutoff,
// the raw material for hot-spot clustering
func (r *BusRepository) ListRecentPending(ctx context.Context, since time.Time) ([]models.BusRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bus_requests
		WHERE status = 'pending' AND created_at >= $1
		ORDER BY created_at ASC;
	`, busRequestColumns)

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent pending bus requests: %w", err)
	}
	defer rows.Close()

	requests := make([]models.BusRequest, 0)
	for rows.Next() {
		var request models.BusRequest
		if err := scanBusRequest(rows, &request); err != nil {
			return nil, fmt.Errorf("failed to scan bus request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent pending bus requests: %w", err)
	}
	return requests, nil
}

// ListAcceptances returns the acceptance ledger of one request, oldest first
func (r *BusRepository) ListAcceptances(ctx context.Context, requestID uuid.UUID) ([]*models.BusAcceptance, error) {
	query := `
		SELECT id, request_id, driver_id, driver_name, driver_phone, bus_number, bus_capacity, accepted_at
		FROM bus_acceptances
		WHERE request_id = $1
		ORDER BY accepted_at ASC;
	`
	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bus acceptances: %w", err)
	}
	defer rows.Close()

	acceptances := make([]*models.BusAcceptance, 0)
	for rows.Next() {
		acceptance := &models.BusAcceptance{}
		err := rows.Scan(
			&acceptance.ID,
			&acceptance.RequestID,
			&acceptance.DriverID,
			&acceptance.DriverName,
			&acceptance.DriverPhone,
			&acceptance.BusNumber,
			&acceptance.BusCapacity,
			&acceptance.AcceptedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bus acceptance row: %w", err)
		}
		acceptances = append(acceptances, acceptance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bus acceptances: %w", err)
	}
	return acceptances, nil
}

// AcceptBus appends the acceptance and folds its capacity into the request
// inside one transaction. SELECT ... FOR UPDATE serializes concurrent
// acceptances per request row, so no increment is ever lost; different
// requests proceed in parallel. Returns the updated request.
func (r *BusRepository) AcceptBus(ctx context.Context, acceptance *models.BusAcceptance) (*models.BusRequest, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin acceptance transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	request := &models.BusRequest{}
	lockQuery := fmt.Sprintf(`
		SELECT %s
		FROM bus_requests
		WHERE id = $1
		FOR UPDATE;
	`, busRequestColumns)
	err = scanBusRequest(tx.QueryRow(ctx, lockQuery, acceptance.RequestID), request)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bus request with id %s: %w", acceptance.RequestID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock bus request: %w", err)
	}

	if request.Status == models.BusRequestCompleted {
		return nil, fmt.Errorf("bus request with id %s: %w", request.ID, service.ErrRequestClosed)
	}

	insertQuery := `
		INSERT INTO bus_acceptances (request_id, driver_id, driver_name, driver_phone, bus_number, bus_capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, accepted_at;
	`
	err = tx.QueryRow(ctx, insertQuery,
		acceptance.RequestID,
		acceptance.DriverID,
		acceptance.DriverName,
		acceptance.DriverPhone,
		acceptance.BusNumber,
		acceptance.BusCapacity,
	).Scan(&acceptance.ID, &acceptance.AcceptedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bus acceptance: %w", err)
	}

	request.TotalCapacityAccepted += acceptance.BusCapacity
	request.CapacityFulfilled = request.TotalCapacityAccepted >= request.PassengerCount
	if request.CapacityFulfilled && request.Status == models.BusRequestPending {
		request.Status = models.BusRequestAccepted
	}

	updateQuery := `
		UPDATE bus_requests SET
			total_capacity_accepted = $1,
			capacity_fulfilled = $2,
			status = $3
		WHERE id = $4;
	`
	_, err = tx.Exec(ctx, updateQuery,
		request.TotalCapacityAccepted,
		request.CapacityFulfilled,
		request.Status,
		request.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update bus request capacity: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit acceptance transaction: %w", err)
	}
	return request, nil
}

func (r *BusRepository) listRequests(ctx context.Context, query string, args ...any) ([]*models.BusRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bus requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.BusRequest, 0)
	for rows.Next() {
		request := &models.BusRequest{}
		if err := scanBusRequest(rows, request); err != nil {
			return nil, fmt.Errorf("failed to scan bus request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bus requests: %w", err)
	}
	return requests, nil
}

func scanBusRequest(row pgx.Row, request *models.BusRequest) error {
	return row.Scan(
		&request.ID,
		&request.PassengerID,
		&request.Location,
		&request.Latitude,
		&request.Longitude,
		&request.Destination,
		&request.PassengerCount,
		&request.IsPeakHour,
		&request.TotalCapacityAccepted,
		&request.CapacityFulfilled,
		&request.Status,
		&request.CreatedAt,
	)
}
