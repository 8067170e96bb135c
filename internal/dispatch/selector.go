package dispatch

import (
	"math"

	"github.com/oseikuffour/incident_dispatch_system/internal/geo"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
)

// Coordinates is a target position in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Selection is the outcome of picking one responder for one service type.
type Selection struct {
	Responder  *models.Responder
	DistanceKm float64
}

// SelectResponder picks the responder nearest to the target among the
// candidates, which the directory has already filtered to approved and
// available ones. The second return value is false when the candidate set is
// empty; that is a normal "none available" outcome, not an error.
//
// A candidate without coordinates is location-agnostic and wins immediately
// with distance zero, since no geographic comparison is possible. Ties on
// distance go to the first-seen candidate, so directory iteration order is
// the deterministic tie-break.
func SelectResponder(target Coordinates, candidates []models.Responder) (Selection, bool) {
	if len(candidates) == 0 {
		return Selection{}, false
	}

	var nearest *models.Responder
	minDistance := math.Inf(1)

	for i := range candidates {
		c := &candidates[i]
		if !c.HasCoordinates() {
			return Selection{Responder: c, DistanceKm: 0}, true
		}

		distance := geo.Distance(target.Latitude, target.Longitude, *c.Latitude, *c.Longitude)
		if distance < minDistance {
			minDistance = distance
			nearest = c
		}
	}

	return Selection{Responder: nearest, DistanceKm: roundKm(minDistance)}, true
}

// roundKm rounds a distance to the two decimals surfaced to callers
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
