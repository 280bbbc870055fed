package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"aquamon-api/internal/district"
	"aquamon-api/internal/metrics"
	"aquamon-api/internal/model"
	pkgLog "aquamon-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: "development", Encoding: "console"})
}

type fakeDistrictUC struct {
	districts []model.District
	listErr   error
}

func (f *fakeDistrictUC) Create(context.Context, model.Scope, district.CreateInput) (district.DistrictOutput, error) {
	return district.DistrictOutput{}, nil
}
func (f *fakeDistrictUC) Update(context.Context, model.Scope, district.UpdateInput) (district.DistrictOutput, error) {
	return district.DistrictOutput{}, nil
}
func (f *fakeDistrictUC) Detail(context.Context, model.Scope, string) (district.DistrictOutput, error) {
	return district.DistrictOutput{}, nil
}
func (f *fakeDistrictUC) List(context.Context, model.Scope) ([]model.District, error) {
	return f.districts, f.listErr
}

type fakeMetricsUC struct {
	upserts []metrics.UpsertInput
	failFor map[string]error
}

func (f *fakeMetricsUC) UpsertDaily(_ context.Context, _ model.Scope, ip metrics.UpsertInput) (metrics.MetricOutput, error) {
	if err, ok := f.failFor[ip.DistrictID]; ok {
		return metrics.MetricOutput{}, err
	}
	f.upserts = append(f.upserts, ip)
	return metrics.MetricOutput{}, nil
}
func (f *fakeMetricsUC) GetDaily(context.Context, model.Scope, metrics.GetDailyInput) (metrics.MetricOutput, error) {
	return metrics.MetricOutput{}, nil
}
func (f *fakeMetricsUC) Series(context.Context, model.Scope, metrics.SeriesInput) ([]model.DistrictSeries, error) {
	return nil, nil
}

type failingSampler struct {
	inner   Sampler
	failFor string
}

func (s *failingSampler) Sample(ctx context.Context, d model.District, date time.Time) (metrics.UpsertInput, error) {
	if d.ID == s.failFor {
		return metrics.UpsertInput{}, errors.New("sensor offline")
	}
	return s.inner.Sample(ctx, d, date)
}

func TestJob_NextRun(t *testing.T) {
	loc := time.UTC
	job := NewJob(testLogger(), &fakeDistrictUC{}, &fakeMetricsUC{}, NewSimSampler(1), "06:00", loc)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before trigger runs today",
			now:  time.Date(2024, 3, 1, 4, 0, 0, 0, loc),
			want: time.Date(2024, 3, 1, 6, 0, 0, 0, loc),
		},
		{
			name: "after trigger runs tomorrow",
			now:  time.Date(2024, 3, 1, 9, 30, 0, 0, loc),
			want: time.Date(2024, 3, 2, 6, 0, 0, 0, loc),
		},
		{
			name: "exactly at trigger runs tomorrow",
			now:  time.Date(2024, 3, 1, 6, 0, 0, 0, loc),
			want: time.Date(2024, 3, 2, 6, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := job.NextRun(tt.now)
			if err != nil {
				t.Fatalf("NextRun() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextRun(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestJob_NextRun_InZone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("zone database unavailable: %v", err)
	}
	job := NewJob(testLogger(), &fakeDistrictUC{}, &fakeMetricsUC{}, NewSimSampler(1), "06:00", loc)

	// 22:00 UTC is 05:00 the next day in UTC+7, one hour before trigger.
	now := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	got, err := job.NextRun(now)
	if err != nil {
		t.Fatalf("NextRun() error = %v", err)
	}

	want := time.Date(2024, 3, 2, 6, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("NextRun(%v) = %v, want %v", now, got, want)
	}
}

func TestJob_RunOnce_IsolatesFailingDistrict(t *testing.T) {
	districts := []model.District{
		{ID: "d1", Name: "North"},
		{ID: "d2", Name: "Central"},
		{ID: "d3", Name: "South"},
	}
	metUC := &fakeMetricsUC{}
	sampler := &failingSampler{inner: NewSimSampler(1), failFor: "d2"}
	job := NewJob(testLogger(), &fakeDistrictUC{districts: districts}, metUC, sampler, "06:00", time.UTC)

	job.RunOnce(context.Background())

	if len(metUC.upserts) != 2 {
		t.Fatalf("districts ingested = %d, want 2", len(metUC.upserts))
	}
	ingested := map[string]bool{}
	for _, ip := range metUC.upserts {
		ingested[ip.DistrictID] = true
	}
	if !ingested["d1"] || !ingested["d3"] {
		t.Errorf("ingested = %v, want d1 and d3", ingested)
	}
}

func TestSimSampler_ValuesInRange(t *testing.T) {
	sampler := NewSimSampler(42)
	d := model.District{ID: "d1"}

	for i := 0; i < 50; i++ {
		ip, err := sampler.Sample(context.Background(), d, time.Now())
		if err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		if ip.WaterQuality < 60 || ip.WaterQuality > 100 {
			t.Errorf("WaterQuality = %v, want within [60, 100]", ip.WaterQuality)
		}
		if ip.Pressure < 30 || ip.Pressure > 80 {
			t.Errorf("Pressure = %v, want within [30, 80]", ip.Pressure)
		}
		if ip.WaterVolume < 1_200_000 || ip.WaterVolume > 2_800_000 {
			t.Errorf("WaterVolume = %v, want within [1200000, 2800000]", ip.WaterVolume)
		}
		if ip.Efficiency < 70 || ip.Efficiency > 99 {
			t.Errorf("Efficiency = %v, want within [70, 99]", ip.Efficiency)
		}
	}
}
