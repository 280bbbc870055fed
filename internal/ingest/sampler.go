package ingest

import (
	"context"
	"math/rand"
	"time"

	"aquamon-api/internal/metrics"
	"aquamon-api/internal/model"
)

// Sampler produces one day of measurements for a district. Production
// deployments plug in a telemetry-backed implementation; the simulated
// sampler below serves development and demo environments.
type Sampler interface {
	Sample(ctx context.Context, district model.District, date time.Time) (metrics.UpsertInput, error)
}

type simSampler struct {
	rng *rand.Rand
}

// NewSimSampler returns a sampler generating plausible random readings.
func NewSimSampler(seed int64) Sampler {
	return &simSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *simSampler) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *simSampler) Sample(_ context.Context, district model.District, date time.Time) (metrics.UpsertInput, error) {
	return metrics.UpsertInput{
		DistrictID:   district.ID,
		Date:         date,
		WaterQuality: s.between(60, 100),
		Pressure:     s.between(30, 80),
		WaterVolume:  s.between(1_200_000, 2_800_000),
		Efficiency:   s.between(70, 99),
	}, nil
}
