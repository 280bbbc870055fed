package model

import (
	"testing"
)

func f(v float64) *float64 { return &v }

func TestThresholdSetting_Classify(t *testing.T) {
	setting := ThresholdSetting{
		MetricName:  MetricWaterQuality,
		CriticalMin: f(0),
		CriticalMax: f(3),
		WarningMin:  f(3),
		WarningMax:  f(6),
		GoodMin:     f(6),
		GoodMax:     f(10),
		IsEnabled:   true,
	}

	tests := []struct {
		name  string
		value float64
		want  Severity
	}{
		{name: "inside critical band", value: 1.5, want: SeverityCritical},
		{name: "critical lower bound is inclusive", value: 0, want: SeverityCritical},
		{name: "shared boundary resolves to more severe band", value: 3, want: SeverityCritical},
		{name: "inside warning band", value: 4.2, want: SeverityWarning},
		{name: "warning/good boundary resolves to warning", value: 6, want: SeverityWarning},
		{name: "inside good band", value: 8, want: SeverityGood},
		{name: "good upper bound is inclusive", value: 10, want: SeverityGood},
		{name: "above every band", value: 10.01, want: SeverityUnknown},
		{name: "below every band", value: -0.5, want: SeverityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := setting.Classify(tt.value); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestThresholdSetting_Classify_Disabled(t *testing.T) {
	setting := ThresholdSetting{
		CriticalMin: f(0),
		CriticalMax: f(100),
		IsEnabled:   false,
	}

	if got := setting.Classify(50); got != SeverityUnknown {
		t.Errorf("Classify on disabled setting = %v, want %v", got, SeverityUnknown)
	}
}

func TestThresholdSetting_Classify_PartialBands(t *testing.T) {
	// Only the warning band configured; bands with both bounds absent
	// are not configured and never match.
	setting := ThresholdSetting{
		WarningMin: f(30),
		WarningMax: f(60),
		IsEnabled:  true,
	}

	tests := []struct {
		name  string
		value float64
		want  Severity
	}{
		{name: "inside configured band", value: 45, want: SeverityWarning},
		{name: "outside configured band", value: 70, want: SeverityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := setting.Classify(tt.value); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestThresholdSetting_Classify_OpenEndedBands(t *testing.T) {
	// A band missing one bound is unbounded on that side: critical is
	// [80, +inf), good is (-inf, 60].
	setting := ThresholdSetting{
		CriticalMin: f(80),
		WarningMin:  f(60),
		WarningMax:  f(80),
		GoodMax:     f(60),
		IsEnabled:   true,
	}

	tests := []struct {
		name  string
		value float64
		want  Severity
	}{
		{name: "far above open critical min", value: 5000, want: SeverityCritical},
		{name: "at open critical min", value: 80, want: SeverityCritical},
		{name: "inside warning band", value: 70, want: SeverityWarning},
		{name: "warning/good boundary resolves to warning", value: 60, want: SeverityWarning},
		{name: "far below open good max", value: -40, want: SeverityGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := setting.Classify(tt.value); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestThresholdSetting_Classify_MinOnlyCritical(t *testing.T) {
	setting := ThresholdSetting{
		CriticalMin: f(0),
		IsEnabled:   true,
	}

	if got := setting.Classify(5); got != SeverityCritical {
		t.Errorf("Classify(5) with critical [0, +inf) = %v, want %v", got, SeverityCritical)
	}
}
