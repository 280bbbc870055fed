package ingest

import (
	"context"
	"fmt"
	"time"

	"aquamon-api/internal/district"
	"aquamon-api/internal/metrics"
	"aquamon-api/internal/model"
	pkgLog "aquamon-api/pkg/log"
)

// Job runs the daily ingestion pass: sample every registered district
// and upsert the day's record. One failing district never blocks the
// others.
type Job struct {
	l          pkgLog.Logger
	districtUC district.UseCase
	metricsUC  metrics.UseCase
	sampler    Sampler

	runAt string // wall-clock trigger, "15:04"
	loc   *time.Location
	clock func() time.Time
}

func NewJob(l pkgLog.Logger, districtUC district.UseCase, metricsUC metrics.UseCase, sampler Sampler, runAt string, loc *time.Location) *Job {
	return &Job{
		l:          l,
		districtUC: districtUC,
		metricsUC:  metricsUC,
		sampler:    sampler,
		runAt:      runAt,
		loc:        loc,
		clock:      time.Now,
	}
}

// NextRun returns the next trigger instant after now, interpreted in the
// configured zone.
func (j *Job) NextRun(now time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", j.runAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid run time %q: %w", j.runAt, err)
	}

	local := now.In(j.loc)
	todayRun := time.Date(local.Year(), local.Month(), local.Day(), t.Hour(), t.Minute(), 0, 0, j.loc)
	if !todayRun.After(now) {
		return todayRun.AddDate(0, 0, 1), nil
	}
	return todayRun, nil
}

// Start blocks, running the job at each trigger until ctx is cancelled.
func (j *Job) Start(ctx context.Context) error {
	for {
		nextRun, err := j.NextRun(j.clock())
		if err != nil {
			return err
		}
		j.l.Infof(ctx, "internal.ingest.Job.Start: next run at %s", nextRun.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(nextRun))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		j.RunOnce(ctx)
	}
}

// RunOnce performs a single ingestion pass for the current day.
func (j *Job) RunOnce(ctx context.Context) {
	date := j.clock().In(j.loc)

	districts, err := j.districtUC.List(ctx, model.Scope{})
	if err != nil {
		j.l.Errorf(ctx, "internal.ingest.Job.RunOnce.List: %v", err)
		return
	}

	var failed int
	for _, d := range districts {
		if err := j.ingestDistrict(ctx, d, date); err != nil {
			failed++
			j.l.Errorf(ctx, "internal.ingest.Job.RunOnce.ingestDistrict: district %s: %v", d.ID, err)
		}
	}

	j.l.Infof(ctx, "internal.ingest.Job.RunOnce: %d districts ingested, %d failed", len(districts)-failed, failed)
}

func (j *Job) ingestDistrict(ctx context.Context, d model.District, date time.Time) error {
	ip, err := j.sampler.Sample(ctx, d, date)
	if err != nil {
		return err
	}

	_, err = j.metricsUC.UpsertDaily(ctx, model.Scope{}, ip)
	return err
}
