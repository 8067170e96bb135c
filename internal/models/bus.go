package models

import (
	"time"

	"github.com/google/uuid"
)

// BusRequest statuses
const (
	BusRequestPending   = "pending"
	BusRequestAccepted  = "accepted"
	BusRequestCompleted = "completed"
)

// BusRequest is an ad-hoc transport request. The peak-hour flag is computed
// once at creation from the wall clock and never recomputed afterwards.
type BusRequest struct {
	ID                    uuid.UUID `json:"id"`
	PassengerID           string    `json:"passenger_id"`
	Location              string    `json:"location"`
	Latitude              float64   `json:"latitude"`
	Longitude             float64   `json:"longitude"`
	Destination           string    `json:"destination,omitempty"`
	PassengerCount        int       `json:"passenger_count"`
	IsPeakHour            bool      `json:"is_peak_hour"`
	TotalCapacityAccepted int       `json:"total_capacity_accepted"`
	CapacityFulfilled     bool      `json:"capacity_fulfilled"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
}

// BusAcceptance is one driver's pledge against a bus request. Append-only;
// the set of acceptances for a request forms its capacity ledger.
type BusAcceptance struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"request_id"`
	DriverID    string    `json:"driver_id"`
	DriverName  string    `json:"driver_name"`
	DriverPhone string    `json:"driver_phone"`
	BusNumber   string    `json:"bus_number"`
	BusCapacity int       `json:"bus_capacity"`
	AcceptedAt  time.Time `json:"accepted_at"`
}

// HotSpot is a cluster of unmet peak-hour bus demand.
type HotSpot struct {
	Location     string  `json:"location"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RequestCount int     `json:"request_count"`
}
