package usecase

import (
	"context"
	"errors"
	"testing"

	"aquamon-api/internal/model"
	"aquamon-api/internal/threshold"
	"aquamon-api/internal/threshold/repository"
	pkgLog "aquamon-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: "development", Encoding: "console"})
}

func f(v float64) *float64 { return &v }

type fakeSettingRepo struct {
	settings  map[string]model.ThresholdSetting // by metric name
	createErr error
	getCalls  int
}

func (r *fakeSettingRepo) Create(_ context.Context, _ model.Scope, opts repository.CreateOptions) (model.ThresholdSetting, error) {
	if r.createErr != nil {
		return model.ThresholdSetting{}, r.createErr
	}
	s := opts.Setting
	s.ID = "setting-1"
	if r.settings == nil {
		r.settings = map[string]model.ThresholdSetting{}
	}
	r.settings[s.MetricName] = s
	return s, nil
}

func (r *fakeSettingRepo) Update(_ context.Context, _ model.Scope, opts repository.UpdateOptions) (model.ThresholdSetting, error) {
	r.settings[opts.Setting.MetricName] = opts.Setting
	return opts.Setting, nil
}

func (r *fakeSettingRepo) Delete(_ context.Context, _ model.Scope, id string) error {
	for name, s := range r.settings {
		if s.ID == id {
			delete(r.settings, name)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeSettingRepo) Detail(_ context.Context, _ model.Scope, id string) (model.ThresholdSetting, error) {
	for _, s := range r.settings {
		if s.ID == id {
			return s, nil
		}
	}
	return model.ThresholdSetting{}, repository.ErrNotFound
}

func (r *fakeSettingRepo) GetOne(_ context.Context, _ model.Scope, opts repository.GetOneOptions) (model.ThresholdSetting, error) {
	r.getCalls++
	s, ok := r.settings[opts.MetricName]
	if !ok {
		return model.ThresholdSetting{}, repository.ErrNotFound
	}
	return s, nil
}

func (r *fakeSettingRepo) List(_ context.Context, _ model.Scope) ([]model.ThresholdSetting, error) {
	var out []model.ThresholdSetting
	for _, s := range r.settings {
		out = append(out, s)
	}
	return out, nil
}

type fakeCache struct {
	entries map[string]model.ThresholdSetting
	getErr  error
	deleted []string
}

func (c *fakeCache) GetSetting(_ context.Context, metricName string) (model.ThresholdSetting, error) {
	if c.getErr != nil {
		return model.ThresholdSetting{}, c.getErr
	}
	s, ok := c.entries[metricName]
	if !ok {
		return model.ThresholdSetting{}, repository.ErrCacheMiss
	}
	return s, nil
}

func (c *fakeCache) SetSetting(_ context.Context, setting model.ThresholdSetting) error {
	if c.entries == nil {
		c.entries = map[string]model.ThresholdSetting{}
	}
	c.entries[setting.MetricName] = setting
	return nil
}

func (c *fakeCache) DeleteSetting(_ context.Context, metricName string) error {
	delete(c.entries, metricName)
	c.deleted = append(c.deleted, metricName)
	return nil
}

func pressureSetting() model.ThresholdSetting {
	return model.ThresholdSetting{
		ID:          "setting-1",
		MetricName:  model.MetricPressure,
		CriticalMin: f(80),
		CriticalMax: f(200),
		WarningMin:  f(60),
		WarningMax:  f(80),
		GoodMin:     f(0),
		GoodMax:     f(60),
		IsEnabled:   true,
	}
}

func TestClassify_NoSettingReturnsUnknown(t *testing.T) {
	uc := New(testLogger(), &fakeSettingRepo{}, nil)

	got, err := uc.Classify(context.Background(), model.MetricPressure, 50)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got != model.SeverityUnknown {
		t.Errorf("Classify() = %v, want %v", got, model.SeverityUnknown)
	}
}

func TestClassify_ServedFromCache(t *testing.T) {
	repo := &fakeSettingRepo{}
	cache := &fakeCache{entries: map[string]model.ThresholdSetting{
		model.MetricPressure: pressureSetting(),
	}}
	uc := New(testLogger(), repo, cache)

	got, err := uc.Classify(context.Background(), model.MetricPressure, 90)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got != model.SeverityCritical {
		t.Errorf("Classify() = %v, want %v", got, model.SeverityCritical)
	}
	if repo.getCalls != 0 {
		t.Errorf("repo reads = %d, want 0 on cache hit", repo.getCalls)
	}
}

func TestClassify_CacheMissRepopulates(t *testing.T) {
	repo := &fakeSettingRepo{settings: map[string]model.ThresholdSetting{
		model.MetricPressure: pressureSetting(),
	}}
	cache := &fakeCache{}
	uc := New(testLogger(), repo, cache)

	got, err := uc.Classify(context.Background(), model.MetricPressure, 70)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got != model.SeverityWarning {
		t.Errorf("Classify() = %v, want %v", got, model.SeverityWarning)
	}
	if _, ok := cache.entries[model.MetricPressure]; !ok {
		t.Error("cache not repopulated after miss")
	}
}

func TestClassify_CacheFailureFallsBackToRepo(t *testing.T) {
	repo := &fakeSettingRepo{settings: map[string]model.ThresholdSetting{
		model.MetricPressure: pressureSetting(),
	}}
	cache := &fakeCache{getErr: errors.New("connection refused")}
	uc := New(testLogger(), repo, cache)

	got, err := uc.Classify(context.Background(), model.MetricPressure, 50)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got != model.SeverityGood {
		t.Errorf("Classify() = %v, want %v", got, model.SeverityGood)
	}
	if repo.getCalls != 1 {
		t.Errorf("repo reads = %d, want 1", repo.getCalls)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ip      threshold.CreateInput
		wantErr error
	}{
		{
			name:    "unknown metric name",
			ip:      threshold.CreateInput{MetricName: "turbidity"},
			wantErr: threshold.ErrInvalidMetricName,
		},
		{
			name: "inverted band",
			ip: threshold.CreateInput{
				MetricName:  model.MetricPressure,
				CriticalMin: f(100),
				CriticalMax: f(80),
			},
			wantErr: threshold.ErrInvalidBand,
		},
		{
			name: "valid setting",
			ip: threshold.CreateInput{
				MetricName:  model.MetricPressure,
				CriticalMin: f(80),
				CriticalMax: f(200),
				IsEnabled:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(testLogger(), &fakeSettingRepo{}, nil)
			_, err := uc.Create(context.Background(), model.Scope{}, tt.ip)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreate_DuplicateMetricName(t *testing.T) {
	uc := New(testLogger(), &fakeSettingRepo{createErr: repository.ErrDuplicate}, nil)

	_, err := uc.Create(context.Background(), model.Scope{}, threshold.CreateInput{
		MetricName: model.MetricPressure,
	})
	if !errors.Is(err, threshold.ErrMetricNameExists) {
		t.Errorf("Create() error = %v, want %v", err, threshold.ErrMetricNameExists)
	}
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	setting := pressureSetting()
	repo := &fakeSettingRepo{settings: map[string]model.ThresholdSetting{
		model.MetricPressure: setting,
	}}
	cache := &fakeCache{entries: map[string]model.ThresholdSetting{
		model.MetricPressure: setting,
	}}
	uc := New(testLogger(), repo, cache)

	_, err := uc.Update(context.Background(), model.Scope{}, threshold.UpdateInput{
		ID:          setting.ID,
		CriticalMin: f(90),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(cache.deleted) != 1 || cache.deleted[0] != model.MetricPressure {
		t.Errorf("cache invalidations = %v, want [%s]", cache.deleted, model.MetricPressure)
	}
}
