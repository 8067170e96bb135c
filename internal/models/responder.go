package models

import (
	"time"

	"github.com/google/uuid"
)

// Responder is a directory snapshot of an emergency or towing service.
// Latitude/Longitude are nil for services registered without coordinates.
type Responder struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	ServiceType   ServiceType `json:"service_type"`
	ContactPerson string      `json:"contact_person,omitempty"`
	Phone         string      `json:"phone"`
	Email         string      `json:"email"`
	Address       string      `json:"address,omitempty"`
	Latitude      *float64    `json:"latitude,omitempty"`
	Longitude     *float64    `json:"longitude,omitempty"`
	Available     bool        `json:"available"`
	Approved      bool        `json:"approved"`
	CreatedAt     time.Time   `json:"created_at"`
}

// HasCoordinates reports whether the responder carries a usable position
func (r *Responder) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
