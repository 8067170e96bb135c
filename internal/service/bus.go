package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oseikuffour/incident_dispatch_system/internal/config"
	"github.com/oseikuffour/incident_dispatch_system/internal/dispatch"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// BusRepository defines the contract for bus request persistence.
//
// AcceptBus must append the acceptance and fold its capacity into the request
// inside a single transaction holding the request row lock, so that two
// drivers accepting concurrently never lose an increment.
type BusRepository interface {
	CreateRequest(ctx context.Context, request *models.BusRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*models.BusRequest, error)
	ListByPassenger(ctx context.Context, passengerID string) ([]*models.BusRequest, error)
	ListPending(ctx context.Context) ([]*models.BusRequest, error)
	ListAll(ctx context.Context) ([]*models.BusRequest, error)
	ListRecentPending(ctx context.Context, since time.Time) ([]models.BusRequest, error)
	ListAcceptances(ctx context.Context, requestID uuid.UUID) ([]*models.BusAcceptance, error)
	AcceptBus(ctx context.Context, acceptance *models.BusAcceptance) (*models.BusRequest, error)
}

// AcceptResult reports the ledger state after one acceptance, so the caller
// can show "X/Y accepted".
type AcceptResult struct {
	TotalAccepted int
	Required      int
	Fulfilled     bool
}

// BusService defines the contract for bus request intake, the capacity
// ledger and hot-spot reporting
type BusService interface {
	CreateRequest(ctx context.Context, request *models.BusRequest) (isHotSpot bool, err error)
	AcceptBus(ctx context.Context, acceptance *models.BusAcceptance) (*AcceptResult, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.BusRequest, error)
	ListRequests(ctx context.Context, passengerID string, pendingOnly bool) ([]*models.BusRequest, error)
	ListAcceptances(ctx context.Context, requestID uuid.UUID) ([]*models.BusAcceptance, error)
	ListHotSpots(ctx context.Context, withinMinutes int) ([]models.HotSpot, error)
}

type busService struct {
	repo   BusRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewBusService(repo BusRepository, logger *logrus.Logger, cfg *config.Config) BusService {
	return &busService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// CreateRequest stores a new bus request, stamping the peak-hour flag from
// the current wall-clock hour, and reports whether the pickup area already
// qualifies as a hot spot.
func (s *busService) CreateRequest(ctx context.Context, request *models.BusRequest) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "bus",
		"method":       "CreateRequest",
		"passenger_id": request.PassengerID,
	})
	log.Info("Creating bus request")

	if request.PassengerCount < 1 {
		request.PassengerCount = 1
	}
	request.Status = models.BusRequestPending
	request.IsPeakHour = s.cfg.IsPeakHour(s.now().Hour())

	if err := s.repo.CreateRequest(ctx, request); err != nil {
		log.WithError(err).Error("Failed to create bus request in repository")
		return false, fmt.Errorf("service: could not create bus request: %w", err)
	}

	// Off-peak requests never form hot spots, skip the scan entirely.
	if !request.IsPeakHour {
		log.WithField("request_id", request.ID).Info("Bus request created")
		return false, nil
	}

	hotSpots, err := s.ListHotSpots(ctx, s.cfg.HotSpotWindowMinutes)
	if err != nil {
		log.WithError(err).Warn("Hot spot evaluation failed, request kept")
		return false, nil
	}

	tolerance := s.cfg.HotSpotToleranceDeg
	for _, spot := range hotSpots {
		if absFloat(spot.Latitude-request.Latitude) < tolerance &&
			absFloat(spot.Longitude-request.Longitude) < tolerance {
			log.WithField("request_id", request.ID).Info("Bus request created inside a hot spot")
			return true, nil
		}
	}

	log.WithField("request_id", request.ID).Info("Bus request created")
	return false, nil
}

// AcceptBus records one driver's pledge against a request and returns the
// updated ledger totals. Over-capacity acceptances are recorded, not
// rejected; availability wins over strict capacity enforcement here.
func (s *busService) AcceptBus(ctx context.Context, acceptance *models.BusAcceptance) (*AcceptResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "bus",
		"method":     "AcceptBus",
		"request_id": acceptance.RequestID,
		"driver_id":  acceptance.DriverID,
	})
	log.Info("Recording bus acceptance")

	if acceptance.BusCapacity <= 0 {
		return nil, fmt.Errorf("service: bus capacity must be positive, got %d", acceptance.BusCapacity)
	}

	request, err := s.repo.AcceptBus(ctx, acceptance)
	if err != nil {
		log.WithError(err).Error("Failed to record bus acceptance")
		return nil, fmt.Errorf("service: could not accept bus request: %w", err)
	}

	log.WithFields(logrus.Fields{
		"total_accepted": request.TotalCapacityAccepted,
		"required":       request.PassengerCount,
		"fulfilled":      request.CapacityFulfilled,
	}).Info("Bus acceptance recorded")

	return &AcceptResult{
		TotalAccepted: request.TotalCapacityAccepted,
		Required:      request.PassengerCount,
		Fulfilled:     request.CapacityFulfilled,
	}, nil
}

// GetRequest fetches one bus request
func (s *busService) GetRequest(ctx context.Context, id uuid.UUID) (*models.BusRequest, error) {
	request, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get bus request: %w", err)
	}
	return request, nil
}

// ListRequests returns bus requests for one passenger, the pending feed for
// drivers (peak-hour first, oldest first), or everything for the admin view
func (s *busService) ListRequests(ctx context.Context, passengerID string, pendingOnly bool) ([]*models.BusRequest, error) {
	var (
		requests []*models.BusRequest
		err      error
	)
	switch {
	case passengerID != "":
		requests, err = s.repo.ListByPassenger(ctx, passengerID)
	case pendingOnly:
		requests, err = s.repo.ListPending(ctx)
	default:
		requests, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("service: could not list bus requests: %w", err)
	}
	return requests, nil
}

// ListAcceptances returns the acceptance ledger of one request
func (s *busService) ListAcceptances(ctx context.Context, requestID uuid.UUID) ([]*models.BusAcceptance, error) {
	acceptances, err := s.repo.ListAcceptances(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list acceptances: %w", err)
	}
	return acceptances, nil
}

// ListHotSpots clusters recent pending peak-hour demand into hot spots
func (s *busService) ListHotSpots(ctx context.Context, withinMinutes int) ([]models.HotSpot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "bus",
		"method":  "ListHotSpots",
	})

	if withinMinutes <= 0 {
		withinMinutes = s.cfg.HotSpotWindowMinutes
	}
	window := time.Duration(withinMinutes) * time.Minute
	now := s.now()

	requests, err := s.repo.ListRecentPending(ctx, now.Add(-window))
	if err != nil {
		log.WithError(err).Error("Failed to list recent pending requests")
		return nil, fmt.Errorf("service: could not list hot spots: %w", err)
	}

	hotSpots := dispatch.DetectHotSpots(requests, dispatch.HotSpotConfig{
		Threshold:    s.cfg.HotSpotThreshold,
		ToleranceDeg: s.cfg.HotSpotToleranceDeg,
		Window:       window,
	}, now)

	log.WithField("count", len(hotSpots)).Info("Hot spots evaluated")
	return hotSpots, nil
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
