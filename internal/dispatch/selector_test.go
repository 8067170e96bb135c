package dispatch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responderAt(name string, lat, lon float64) models.Responder {
	return models.Responder{
		ID:        uuid.New(),
		Name:      name,
		Latitude:  &lat,
		Longitude: &lon,
		Available: true,
		Approved:  true,
	}
}

func responderWithoutCoords(name string) models.Responder {
	return models.Responder{
		ID:        uuid.New(),
		Name:      name,
		Available: true,
		Approved:  true,
	}
}

func TestSelectResponder_EmptyCandidates(t *testing.T) {
	_, ok := SelectResponder(Coordinates{Latitude: 5.5560, Longitude: -0.1969}, nil)
	assert.False(t, ok)
}

func TestSelectResponder_PicksNearest(t *testing.T) {
	target := Coordinates{Latitude: 5.5560, Longitude: -0.1969}
	candidates := []models.Responder{
		responderAt("far station", 6.6666, -1.6163),
		responderAt("near station", 5.6037, -0.1870),
		responderAt("mid station", 5.9000, -0.5000),
	}

	selection, ok := SelectResponder(target, candidates)

	require.True(t, ok)
	assert.Equal(t, "near station", selection.Responder.Name)
	assert.Greater(t, selection.DistanceKm, 0.0)
	assert.Less(t, selection.DistanceKm, 10.0)
}

func TestSelectResponder_TieGoesToFirstSeen(t *testing.T) {
	// Both candidates sit one degree of longitude away on the equator, an
	// exactly symmetric pair.
	target := Coordinates{Latitude: 0, Longitude: 0}
	candidates := []models.Responder{
		responderAt("east", 0, 1),
		responderAt("west", 0, -1),
	}

	selection, ok := SelectResponder(target, candidates)

	require.True(t, ok)
	assert.Equal(t, "east", selection.Responder.Name)
}

func TestSelectResponder_LocationAgnosticWinsImmediately(t *testing.T) {
	target := Coordinates{Latitude: 5.5560, Longitude: -0.1969}
	candidates := []models.Responder{
		responderAt("next door", 5.5561, -0.1969),
		responderWithoutCoords("towing yard"),
		responderAt("also close", 5.5562, -0.1969),
	}

	selection, ok := SelectResponder(target, candidates)

	require.True(t, ok)
	assert.Equal(t, "towing yard", selection.Responder.Name)
	assert.Equal(t, 0.0, selection.DistanceKm)
}

func TestSelectResponder_DistanceRoundedToTwoDecimals(t *testing.T) {
	target := Coordinates{Latitude: 0, Longitude: 0}
	candidates := []models.Responder{
		responderAt("station", 0, 0.5),
	}

	selection, ok := SelectResponder(target, candidates)

	require.True(t, ok)
	assert.Equal(t, 55.6, selection.DistanceKm)
}

func TestSelectResponder_SingleCandidate(t *testing.T) {
	target := Coordinates{Latitude: 5.5560, Longitude: -0.1969}
	candidates := []models.Responder{
		responderAt("only option", 6.6666, -1.6163),
	}

	selection, ok := SelectResponder(target, candidates)

	require.True(t, ok)
	assert.Equal(t, "only option", selection.Responder.Name)
}
