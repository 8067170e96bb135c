package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus is a node in the assignment lifecycle graph.
type AssignmentStatus string

const (
	AssignmentAssigned     AssignmentStatus = "assigned"
	AssignmentAcknowledged AssignmentStatus = "acknowledged"
	AssignmentInProgress   AssignmentStatus = "in_progress"
	AssignmentCompleted    AssignmentStatus = "completed"
	AssignmentCancelled    AssignmentStatus = "cancelled"
)

// ParseAssignmentStatus validates a raw status string
func ParseAssignmentStatus(s string) (AssignmentStatus, error) {
	switch AssignmentStatus(s) {
	case AssignmentAssigned, AssignmentAcknowledged, AssignmentInProgress,
		AssignmentCompleted, AssignmentCancelled:
		return AssignmentStatus(s), nil
	}
	return "", &UnknownStatusError{Raw: s}
}

// Terminal reports whether no further transition is allowed from the status
func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentCompleted || s == AssignmentCancelled
}

// UnknownStatusError marks a status string outside the lifecycle vocabulary
type UnknownStatusError struct {
	Raw string
}

func (e *UnknownStatusError) Error() string {
	return "unknown assignment status \"" + e.Raw + "\""
}

// Assignment binds one responder to one report for one service type.
// Rows are never deleted, only transitioned to a terminal status.
type Assignment struct {
	ID             uuid.UUID        `json:"id"`
	ReportID       uuid.UUID        `json:"report_id"`
	ResponderID    uuid.UUID        `json:"responder_id"`
	ResponderName  string           `json:"responder_name,omitempty"`
	ServiceType    ServiceType      `json:"service_type"`
	Method         string           `json:"method"` // automatic | manual
	Status         AssignmentStatus `json:"status"`
	DistanceKm     float64          `json:"distance_km"`
	AssignedAt     time.Time        `json:"assigned_at"`
	AcknowledgedAt *time.Time       `json:"acknowledged_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	Feedback       string           `json:"feedback,omitempty"`
}

// Assignment methods
const (
	MethodAutomatic = "automatic"
	MethodManual    = "manual"
)
