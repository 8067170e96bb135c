package models

import "fmt"

// ServiceType identifies the kind of responder an incident needs.
type ServiceType string

const (
	ServicePolice    ServiceType = "police"
	ServiceAmbulance ServiceType = "ambulance"
	ServiceFire      ServiceType = "fire"
	ServiceTowing    ServiceType = "towing"
	ServiceRescue    ServiceType = "rescue"
)

// ParseServiceType validates a raw service type string
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case ServicePolice, ServiceAmbulance, ServiceFire, ServiceTowing, ServiceRescue:
		return ServiceType(s), nil
	}
	return "", fmt.Errorf("unknown service type %q", s)
}

// LocationAgnostic reports whether proximity ranking is meaningless for the
// type. Towing companies are dispatched regardless of stored coordinates.
func (t ServiceType) LocationAgnostic() bool {
	return t == ServiceTowing
}
