package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/oseikuffour/incident_dispatch_system/internal/service"
	"github.com/redis/go-redis/v9"
)

const reportCacheTTL = 5 * time.Minute

const reportColumns = `
	id,
	user_id,
	type,
	title,
	description,
	location,
	latitude,
	longitude,
	severity,
	driver_license_number,
	vehicle_number,
	bus_number,
	request_towing,
	request_emergency,
	image_url,
	status,
	created_at`

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create inserts a new incident report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (
			user_id, type, title, description, location, latitude, longitude,
			severity, driver_license_number, vehicle_number, bus_number,
			request_towing, request_emergency, image_url, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.UserID,
		report.Type,
		report.Title,
		report.Description,
		report.Location,
		report.Latitude,
		report.Longitude,
		report.Severity,
		report.DriverLicenseNumber,
		report.VehicleNumber,
		report.BusNumber,
		report.RequestTowing,
		report.RequestEmergency,
		report.ImageURL,
		report.Status,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID returns a report by its UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reports
		WHERE id = $1;
	`, reportColumns)

	report := &models.Report{}
	err := scanReport(r.db.QueryRow(ctx, query, id), report)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// List returns reports with pagination, scoped to a user when userID is set
func (r *ReportRepository) List(ctx context.Context, userID string, page, pageSize int) ([]*models.Report, error) {
	offset := (page - 1) * pageSize

	query := fmt.Sprintf(`
		SELECT %s
		FROM reports
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`, reportColumns)

	rows, err := r.db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		if err := scanReport(rows, report); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}
	return reports, nil
}

// UpdateStatus moves a report to a new status
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE reports SET
			status = $1
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s: %w", id, service.ErrNotFound)
	}

	// The cached copy is stale now
	if err := r.InvalidateReportCache(ctx, id); err != nil {
		return fmt.Errorf("failed to invalidate report cache after status update: %w", err)
	}
	return nil
}

// GetReportFromCache tries to fetch a report from Redis
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	key := fmt.Sprintf("report:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache stores a report in Redis
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.Report) error {
	key := fmt.Sprintf("report:%s", report.ID.String())
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, reportCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}

// InvalidateReportCache removes a report from the Redis cache
func (r *ReportRepository) InvalidateReportCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("report:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}

func scanReport(row pgx.Row, report *models.Report) error {
	return row.Scan(
		&report.ID,
		&report.UserID,
		&report.Type,
		&report.Title,
		&report.Description,
		&report.Location,
		&report.Latitude,
		&report.Longitude,
		&report.Severity,
		&report.DriverLicenseNumber,
		&report.VehicleNumber,
		&report.BusNumber,
		&report.RequestTowing,
		&report.RequestEmergency,
		&report.ImageURL,
		&report.Status,
		&report.CreatedAt,
	)
}
