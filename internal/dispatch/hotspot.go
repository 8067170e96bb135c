package dispatch

import (
	"math"
	"time"

	"github.com/oseikuffour/incident_dispatch_system/internal/models"
)

// HotSpotConfig tunes the demand clustering.
type HotSpotConfig struct {
	// Threshold is the minimum cluster size that qualifies as a hot spot.
	Threshold int
	// ToleranceDeg is the grid cell size in degrees (~1 km at 0.01).
	ToleranceDeg float64
	// Window bounds how old a request may be to count.
	Window time.Duration
}

type gridCell struct {
	latIdx int64
	lonIdx int64
}

// DetectHotSpots buckets pending peak-hour requests created within the
// window onto a fixed-precision grid and returns every cell whose member
// count reaches the threshold. Grouping by grid cell instead of raw
// coordinate equality keeps float jitter from splitting a cluster. The first
// member of a cell supplies the representative location. Input requests are
// not mutated.
func DetectHotSpots(requests []models.BusRequest, cfg HotSpotConfig, now time.Time) []models.HotSpot {
	if cfg.Threshold <= 0 || cfg.ToleranceDeg <= 0 {
		return nil
	}

	cutoff := now.Add(-cfg.Window)
	cells := make(map[gridCell]*models.HotSpot)
	var order []gridCell

	for i := range requests {
		r := &requests[i]
		if r.Status != models.BusRequestPending || !r.IsPeakHour {
			continue
		}
		if r.CreatedAt.Before(cutoff) {
			continue
		}

		cell := gridCell{
			latIdx: int64(math.Floor(r.Latitude / cfg.ToleranceDeg)),
			lonIdx: int64(math.Floor(r.Longitude / cfg.ToleranceDeg)),
		}
		spot, ok := cells[cell]
		if !ok {
			spot = &models.HotSpot{
				Location:  r.Location,
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
			}
			cells[cell] = spot
			order = append(order, cell)
		}
		spot.RequestCount++
	}

	hotSpots := make([]models.HotSpot, 0)
	for _, cell := range order {
		if spot := cells[cell]; spot.RequestCount >= cfg.Threshold {
			hotSpots = append(hotSpots, *spot)
		}
	}
	return hotSpots
}
