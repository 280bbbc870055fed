package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"aquamon-api/internal/alertlog"
	"aquamon-api/internal/metrics"
	"aquamon-api/internal/metrics/repository"
	"aquamon-api/internal/model"
	"aquamon-api/internal/threshold"
	pkgLog "aquamon-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: "development", Encoding: "console"})
}

type fakeMetricRepo struct {
	prev      model.DailyMetric
	prevErr   error
	upserted  *model.DailyMetric
	upsertErr error
	flat      []model.DailyMetric
	rangeOpts repository.RangeOptions
}

func (r *fakeMetricRepo) Upsert(_ context.Context, opts repository.UpsertOptions) (model.DailyMetric, error) {
	if r.upsertErr != nil {
		return model.DailyMetric{}, r.upsertErr
	}
	m := opts.Metric
	m.ID = "metric-1"
	r.upserted = &m
	return m, nil
}

func (r *fakeMetricRepo) GetOne(_ context.Context, _ repository.GetOneOptions) (model.DailyMetric, error) {
	if r.upserted == nil {
		return model.DailyMetric{}, repository.ErrNotFound
	}
	return *r.upserted, nil
}

func (r *fakeMetricRepo) LatestBefore(_ context.Context, _ repository.LatestBeforeOptions) (model.DailyMetric, error) {
	if r.prevErr != nil {
		return model.DailyMetric{}, r.prevErr
	}
	return r.prev, nil
}

func (r *fakeMetricRepo) QueryRange(_ context.Context, opts repository.RangeOptions) ([]model.DailyMetric, error) {
	r.rangeOpts = opts
	return r.flat, nil
}

type fakeThresholdUC struct {
	severities map[string]model.Severity
}

func (f *fakeThresholdUC) Create(context.Context, model.Scope, threshold.CreateInput) (threshold.SettingOutput, error) {
	return threshold.SettingOutput{}, nil
}
func (f *fakeThresholdUC) Update(context.Context, model.Scope, threshold.UpdateInput) (threshold.SettingOutput, error) {
	return threshold.SettingOutput{}, nil
}
func (f *fakeThresholdUC) Delete(context.Context, model.Scope, string) error { return nil }
func (f *fakeThresholdUC) Detail(context.Context, model.Scope, string) (threshold.SettingOutput, error) {
	return threshold.SettingOutput{}, nil
}
func (f *fakeThresholdUC) List(context.Context, model.Scope) ([]model.ThresholdSetting, error) {
	return nil, nil
}
func (f *fakeThresholdUC) Classify(_ context.Context, metricName string, _ float64) (model.Severity, error) {
	if s, ok := f.severities[metricName]; ok {
		return s, nil
	}
	return model.SeverityGood, nil
}

type fakeAlertUC struct {
	created []alertlog.CreateAlertInput
}

func (f *fakeAlertUC) CreateAlert(_ context.Context, _ model.Scope, ip alertlog.CreateAlertInput) (alertlog.EntryOutput, error) {
	f.created = append(f.created, ip)
	return alertlog.EntryOutput{}, nil
}
func (f *fakeAlertUC) CreateReport(context.Context, model.Scope, alertlog.CreateReportInput) (alertlog.EntryOutput, error) {
	return alertlog.EntryOutput{}, nil
}
func (f *fakeAlertUC) SetResolution(context.Context, model.Scope, alertlog.SetResolutionInput) (alertlog.EntryOutput, error) {
	return alertlog.EntryOutput{}, nil
}
func (f *fakeAlertUC) Detail(context.Context, model.Scope, model.LogKind, string) (alertlog.EntryOutput, error) {
	return alertlog.EntryOutput{}, nil
}
func (f *fakeAlertUC) Get(context.Context, model.Scope, alertlog.GetInput) (alertlog.GetOutput, error) {
	return alertlog.GetOutput{}, nil
}
func (f *fakeAlertUC) AttachmentURL(context.Context, model.Scope, string) (string, error) {
	return "", nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsertDaily_TrendsAgainstPreviousRecord(t *testing.T) {
	repo := &fakeMetricRepo{
		prev: model.DailyMetric{
			DistrictID:   "d1",
			Date:         day(2024, 3, 1),
			WaterQuality: 90,
			Pressure:     50,
			WaterVolume:  300,
			Efficiency:   40,
		},
	}
	uc := New(testLogger(), repo, nil, nil, nil)

	out, err := uc.UpsertDaily(context.Background(), model.Scope{}, metrics.UpsertInput{
		DistrictID:   "d1",
		Date:         day(2024, 3, 2),
		WaterQuality: 92,
		Pressure:     45,
		WaterVolume:  300,
		Efficiency:   55,
	})
	if err != nil {
		t.Fatalf("UpsertDaily() error = %v", err)
	}

	m := out.Metric
	if m.WaterQualityTrend != 2 {
		t.Errorf("WaterQualityTrend = %v, want 2", m.WaterQualityTrend)
	}
	if m.PressureTrend != -5 {
		t.Errorf("PressureTrend = %v, want -5", m.PressureTrend)
	}
	if m.WaterVolumeTrend != 0 {
		t.Errorf("WaterVolumeTrend = %v, want 0", m.WaterVolumeTrend)
	}
	if m.EfficiencyTrend != 15 {
		t.Errorf("EfficiencyTrend = %v, want 15", m.EfficiencyTrend)
	}
}

func TestUpsertDaily_FirstRecordHasZeroTrends(t *testing.T) {
	repo := &fakeMetricRepo{prevErr: repository.ErrNotFound}
	uc := New(testLogger(), repo, nil, nil, nil)

	out, err := uc.UpsertDaily(context.Background(), model.Scope{}, metrics.UpsertInput{
		DistrictID:   "d1",
		Date:         day(2024, 3, 1),
		WaterQuality: 90,
		Pressure:     50,
		WaterVolume:  300,
		Efficiency:   40,
	})
	if err != nil {
		t.Fatalf("UpsertDaily() error = %v", err)
	}

	m := out.Metric
	if m.WaterQualityTrend != 0 || m.PressureTrend != 0 || m.WaterVolumeTrend != 0 || m.EfficiencyTrend != 0 {
		t.Errorf("first record trends = (%v, %v, %v, %v), want all zero",
			m.WaterQualityTrend, m.PressureTrend, m.WaterVolumeTrend, m.EfficiencyTrend)
	}
}

func TestUpsertDaily_TruncatesDateToDay(t *testing.T) {
	repo := &fakeMetricRepo{prevErr: repository.ErrNotFound}
	uc := New(testLogger(), repo, nil, nil, nil)

	out, err := uc.UpsertDaily(context.Background(), model.Scope{}, metrics.UpsertInput{
		DistrictID:   "d1",
		Date:         time.Date(2024, 3, 2, 14, 37, 9, 0, time.UTC),
		WaterQuality: 90,
		Pressure:     50,
		WaterVolume:  300,
		Efficiency:   40,
	})
	if err != nil {
		t.Fatalf("UpsertDaily() error = %v", err)
	}

	if got, want := out.Metric.Date, day(2024, 3, 2); !got.Equal(want) {
		t.Errorf("Date = %v, want %v", got, want)
	}
}

func TestUpsertDaily_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ip      metrics.UpsertInput
		wantErr error
	}{
		{
			name:    "missing date",
			ip:      metrics.UpsertInput{DistrictID: "d1", WaterQuality: 90, Pressure: 50, WaterVolume: 300, Efficiency: 40},
			wantErr: metrics.ErrMissingDate,
		},
		{
			name:    "NaN value",
			ip:      metrics.UpsertInput{DistrictID: "d1", Date: day(2024, 3, 1), WaterQuality: math.NaN(), Pressure: 50, WaterVolume: 300, Efficiency: 40},
			wantErr: metrics.ErrInvalidValue,
		},
		{
			name:    "infinite value",
			ip:      metrics.UpsertInput{DistrictID: "d1", Date: day(2024, 3, 1), WaterQuality: 90, Pressure: math.Inf(1), WaterVolume: 300, Efficiency: 40},
			wantErr: metrics.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(testLogger(), &fakeMetricRepo{prevErr: repository.ErrNotFound}, nil, nil, nil)
			_, err := uc.UpsertDaily(context.Background(), model.Scope{}, tt.ip)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpsertDaily() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpsertDaily_UnknownDistrict(t *testing.T) {
	repo := &fakeMetricRepo{
		prevErr:   repository.ErrNotFound,
		upsertErr: repository.ErrDistrictViolation,
	}
	uc := New(testLogger(), repo, nil, nil, nil)

	_, err := uc.UpsertDaily(context.Background(), model.Scope{}, metrics.UpsertInput{
		DistrictID:   "missing",
		Date:         day(2024, 3, 1),
		WaterQuality: 90,
		Pressure:     50,
		WaterVolume:  300,
		Efficiency:   40,
	})
	if !errors.Is(err, metrics.ErrDistrictNotFound) {
		t.Errorf("UpsertDaily() error = %v, want %v", err, metrics.ErrDistrictNotFound)
	}
}

func TestUpsertDaily_RaisesAlertsForBreachedBands(t *testing.T) {
	repo := &fakeMetricRepo{prevErr: repository.ErrNotFound}
	thrUC := &fakeThresholdUC{severities: map[string]model.Severity{
		model.MetricPressure:     model.SeverityCritical,
		model.MetricWaterQuality: model.SeverityWarning,
		model.MetricWaterVolume:  model.SeverityGood,
		model.MetricEfficiency:   model.SeverityUnknown,
	}}
	alertUC := &fakeAlertUC{}
	uc := New(testLogger(), repo, thrUC, alertUC, nil)

	_, err := uc.UpsertDaily(context.Background(), model.Scope{}, metrics.UpsertInput{
		DistrictID:   "d1",
		Date:         day(2024, 3, 1),
		WaterQuality: 20,
		Pressure:     95,
		WaterVolume:  300,
		Efficiency:   40,
	})
	if err != nil {
		t.Fatalf("UpsertDaily() error = %v", err)
	}

	if len(alertUC.created) != 2 {
		t.Fatalf("alerts raised = %d, want 2", len(alertUC.created))
	}
	bySeverity := map[model.Severity]string{}
	for _, a := range alertUC.created {
		bySeverity[a.Severity] = a.MetricName
	}
	if bySeverity[model.SeverityWarning] != model.MetricWaterQuality {
		t.Errorf("warning alert metric = %q, want %q", bySeverity[model.SeverityWarning], model.MetricWaterQuality)
	}
	if bySeverity[model.SeverityCritical] != model.MetricPressure {
		t.Errorf("critical alert metric = %q, want %q", bySeverity[model.SeverityCritical], model.MetricPressure)
	}
}

func TestGetDaily_NotFound(t *testing.T) {
	uc := New(testLogger(), &fakeMetricRepo{}, nil, nil, nil)

	_, err := uc.GetDaily(context.Background(), model.Scope{}, metrics.GetDailyInput{
		DistrictID: "d1",
		Date:       day(2024, 3, 1),
	})
	if !errors.Is(err, metrics.ErrMetricNotFound) {
		t.Errorf("GetDaily() error = %v, want %v", err, metrics.ErrMetricNotFound)
	}
}
