package services

import (
	"math"
	"sort"

	"github.com/wael7705/movo-project/internal/core/domain/model/captain"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/errs"
)

const (
	// candidatePoolFactor bounds how many captains are evaluated per request,
	// as a multiple of the requested candidate count.
	candidatePoolFactor = 3

	// averageSpeedKmh is the assumed captain travel speed for ETA estimates.
	averageSpeedKmh = 25.0
	// pickupBufferSeconds is the fixed pickup overhead added to every ETA.
	pickupBufferSeconds = 60

	// proximityWeight, ratingWeight and experienceWeight are the score
	// contributions of distance, captain rating and delivery history.
	proximityWeight  = 0.4
	ratingWeight     = 0.3
	experienceWeight = 0.2
	// availabilityBonus is a flat addition for captains with no active load.
	availabilityBonus = 0.5

	// experienceSaturation is the delivered-orders count at which the
	// experience contribution maxes out.
	experienceSaturation = 100.0
)

// Candidate is a ranked dispatch suggestion for a single captain.
// DistanceKm is rounded to 2 decimal places and Score to 3; callers can
// render them directly.
type Candidate struct {
	CaptainID       kernel.UUID
	Name            string
	Position        kernel.GeoPoint
	ActiveOrders    int
	DistanceKm      float64
	EtaSeconds      int
	Score           float64
	OrdersDelivered int
}

// DispatchScorer is a domain service that ranks captains as assignment
// candidates for an order picked up at a given point.
//
// Ranking rules:
//   - Only captains within the search radius are candidates
//   - Captains without telemetry get a synthetic position jittered around
//     the pickup point, so they are never excluded outright
//   - Score combines proximity, rating and delivery history, plus a flat
//     bonus for captains with no active load; the score is an open-ended
//     ranking weight, not a probability
//   - Candidates are ordered by score descending, distance ascending
//
// The scorer is pure: it never mutates the captains and performs no I/O.
type DispatchScorer struct{}

// NewDispatchScorer creates a new DispatchScorer instance.
func NewDispatchScorer() DispatchScorer {
	return DispatchScorer{}
}

// RankCandidates evaluates the given captains against a pickup point and
// returns at most maxCandidates ranked suggestions.
//
// radiusKm and maxCandidates must be positive. At most
// candidatePoolFactor*maxCandidates captains are evaluated; the caller is
// expected to pre-sort captains by rating so the pool keeps the strongest
// ones. An empty result is not an error: it means no captain is in range.
func (s DispatchScorer) RankCandidates(
	pickup kernel.GeoPoint,
	captains []*captain.Captain,
	radiusKm float64,
	maxCandidates int,
) ([]Candidate, error) {
	if err := pickup.Validate(); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, math.Inf(1))
	}
	if maxCandidates <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("maxCandidates", maxCandidates, 1, math.MaxInt)
	}

	pool := captains
	if limit := candidatePoolFactor * maxCandidates; len(pool) > limit {
		pool = pool[:limit]
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		position, err := s.resolvePosition(pickup, c)
		if err != nil {
			return nil, err
		}

		distanceKm, err := pickup.DistanceKm(position)
		if err != nil {
			return nil, err
		}

		if distanceKm > radiusKm {
			continue
		}

		candidates = append(candidates, Candidate{
			CaptainID:       c.ID(),
			Name:            c.Name(),
			Position:        position,
			ActiveOrders:    0,
			DistanceKm:      round(distanceKm, 2),
			EtaSeconds:      etaSeconds(distanceKm),
			Score:           round(s.score(c, distanceKm, radiusKm), 3),
			OrdersDelivered: c.OrdersDelivered(),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return candidates, nil
}

// resolvePosition returns the captain's reported position, or a synthetic
// one jittered around the pickup point when no telemetry exists.
func (s DispatchScorer) resolvePosition(pickup kernel.GeoPoint, c *captain.Captain) (kernel.GeoPoint, error) {
	if position := c.Position(); position != nil {
		return *position, nil
	}

	return kernel.NewJitteredGeoPoint(pickup)
}

// score computes the ranking weight of a captain at the given distance.
func (s DispatchScorer) score(c *captain.Captain, distanceKm float64, radiusKm float64) float64 {
	proximity := math.Max(0, 1-distanceKm/radiusKm)
	rating := c.Performance() / captain.PerformanceMax
	experience := math.Min(1, float64(c.OrdersDelivered())/experienceSaturation)

	return proximityWeight*proximity +
		ratingWeight*rating +
		experienceWeight*experience +
		availabilityBonus
}

// etaSeconds estimates arrival time from distance at the assumed average
// speed plus the fixed pickup buffer.
func etaSeconds(distanceKm float64) int {
	return int(distanceKm/averageSpeedKmh*3600) + pickupBufferSeconds
}

// round truncates a value to the given number of decimal places, rounding
// half away from zero.
func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
