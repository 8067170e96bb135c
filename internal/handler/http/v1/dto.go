package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest is the incident report intake DTO
// @Description Incident report creation request
type CreateReportRequest struct {
	UserID              string   `json:"user_id" validate:"required"`
	Type                string   `json:"type" validate:"required,min=2,max=64"`
	Title               string   `json:"title" validate:"required,min=2,max=255"`
	Description         string   `json:"description" validate:"required"`
	Location            string   `json:"location" validate:"required"`
	Latitude            *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude           *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Severity            string   `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	DriverLicenseNumber string   `json:"driver_license_number,omitempty"`
	VehicleNumber       string   `json:"vehicle_number,omitempty"`
	BusNumber           string   `json:"bus_number,omitempty"`
	RequestTowing       bool     `json:"request_towing"`
	RequestEmergency    bool     `json:"request_emergency"`
	ImageURL            string   `json:"image_url,omitempty"`
}

// ReportResponse is the incident report response DTO
// @Description Incident report response
type ReportResponse struct {
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

// DispatchRequestDTO orders a dispatch run for a report
// @Description Dispatch request
type DispatchRequestDTO struct {
	ReportID     string   `json:"report_id" validate:"required,uuid"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	ServiceTypes []string `json:"service_types" validate:"required_without=ResponderID,omitempty,min=1,dive,oneof=police ambulance fire towing rescue"`
	AssignedBy   string   `json:"assigned_by,omitempty"`
	ResponderID  *string  `json:"responder_id,omitempty" validate:"omitempty,uuid"`
}

// DispatchResponse reports the outcome of one dispatch run
// @Description Dispatch response
type DispatchResponse struct {
	Assignments []*AssignmentResponse `json:"assignments"`
	Unfulfilled []string              `json:"unfulfilled"`
	Skipped     bool                  `json:"skipped"`
}

// AssignmentResponse is the assignment response DTO
// @Description Assignment response
type AssignmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	ReportID       uuid.UUID  `json:"report_id"`
	ResponderID    uuid.UUID  `json:"responder_id"`
	ResponderName  string     `json:"responder_name,omitempty"`
	ServiceType    string     `json:"service_type"`
	Method         string     `json:"method"`
	Status         string     `json:"status"`
	DistanceKm     float64    `json:"distance_km"`
	AssignedAt     time.Time  `json:"assigned_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Feedback       string     `json:"feedback,omitempty"`
}

// UpdateAssignmentStatusRequest is one lifecycle transition order
// @Description Assignment status update request
type UpdateAssignmentStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=acknowledged in_progress completed cancelled"`
	Notes    string `json:"notes,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// CreateBusRequestRequest is the bus request intake DTO
// @Description Bus request creation request
type CreateBusRequestRequest struct {
	PassengerID    string  `json:"passenger_id" validate:"required"`
	Location       string  `json:"location" validate:"required"`
	Latitude       float64 `json:"latitude" validate:"required,latitude"`
	Longitude      float64 `json:"longitude" validate:"required,longitude"`
	Destination    string  `json:"destination,omitempty"`
	PassengerCount int     `json:"passenger_count,omitempty" validate:"omitempty,gt=0"`
}

// BusRequestResponse is the bus request response DTO
// @Description Bus request response
type BusRequestResponse struct {
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

// CreateBusRequestResponse answers a new bus request with a hot-spot hint
// @Description Bus request creation response
type CreateBusRequestResponse struct {
	Request   *BusRequestResponse `json:"request"`
	IsHotSpot bool                `json:"is_hot_spot"`
	Message   string              `json:"message"`
}

// AcceptBusRequest is one driver's acceptance DTO
// @Description Bus acceptance request
type AcceptBusRequest struct {
	DriverID    string `json:"driver_id" validate:"required"`
	DriverName  string `json:"driver_name" validate:"required"`
	DriverPhone string `json:"driver_phone" validate:"required"`
	BusNumber   string `json:"bus_number" validate:"required"`
	BusCapacity int    `json:"bus_capacity" validate:"required,gt=0"`
}

// AcceptBusResponse reports the ledger state after an acceptance
// @Description Bus acceptance response
type AcceptBusResponse struct {
	TotalAccepted int    `json:"total_accepted"`
	Required      int    `json:"required"`
	Fulfilled     bool   `json:"fulfilled"`
	Message       string `json:"message"`
}

// BusAcceptanceResponse is one ledger entry
// @Description Bus acceptance ledger entry
type BusAcceptanceResponse struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"request_id"`
	DriverID    string    `json:"driver_id"`
	DriverName  string    `json:"driver_name"`
	DriverPhone string    `json:"driver_phone"`
	BusNumber   string    `json:"bus_number"`
	BusCapacity int       `json:"bus_capacity"`
	AcceptedAt  time.Time `json:"accepted_at"`
}

// HotSpotResponse is one demand cluster
// @Description Hot spot response
type HotSpotResponse struct {
	Location     string  `json:"location"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RequestCount int     `json:"request_count"`
}

// ResponderResponse is a directory snapshot DTO
// @Description Responder response
type ResponderResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ServiceType   string    `json:"service_type"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	Available     bool      `json:"available"`
	Approved      bool      `json:"approved"`
}
