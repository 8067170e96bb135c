package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses
const (
	ReportStatusSent        = "sent"
	ReportStatusUnderReview = "under_review"
	ReportStatusResolved    = "resolved"
	ReportStatusDismissed   = "dismissed"
)

// Report is an incident filed by a citizen or driver. Coordinates are
// optional: reports without them are never auto-dispatched.
type Report struct {
	ID                  uuid.UUID `json:"id"`
	UserID              string    `json:"user_id"`
	Type                string    `json:"type"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Location            string    `json:"location"`
	Latitude            *float64  `json:"latitude,omitempty"`
	Longitude           *float64  `json:"longitude,omitempty"`
	Severity            string    `json:"severity"`
	DriverLicenseNumber string    `json:"driver_license_number,omitempty"`
	VehicleNumber       string    `json:"vehicle_number,omitempty"`
	BusNumber           string    `json:"bus_number,omitempty"`
	RequestTowing       bool      `json:"request_towing"`
	RequestEmergency    bool      `json:"request_emergency"`
	ImageURL            string    `json:"image_url,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

// HasCoordinates reports whether the incident carries a usable position
func (r *Report) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// RequiredServices derives the service types an incident needs from its
// type, severity and explicit requester flags. This is the thin rule table
// the dispatch engine consumes; unknown incident types yield only whatever
// the flags request.
func RequiredServices(r *Report) []ServiceType {
	seen := make(map[ServiceType]bool)
	var types []ServiceType
	add := func(t ServiceType) {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	switch r.Type {
	case "accident":
		add(ServicePolice)
		add(ServiceAmbulance)
	case "fire":
		add(ServiceFire)
		add(ServiceAmbulance)
	case "medical":
		add(ServiceAmbulance)
	case "crime", "theft":
		add(ServicePolice)
	case "breakdown":
		add(ServiceTowing)
	}

	if r.RequestTowing {
		add(ServiceTowing)
	}
	if r.RequestEmergency {
		add(ServicePolice)
		add(ServiceAmbulance)
	}
	if r.Severity == "critical" {
		add(ServiceRescue)
	}

	return types
}
