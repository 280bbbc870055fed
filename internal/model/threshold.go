package model

import "time"

// Severity is the band a metric value falls into when classified
// against a threshold setting.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityGood     Severity = "good"
	// SeverityUnknown is returned when the value falls outside every
	// configured band, or when no enabled setting exists for the metric.
	SeverityUnknown Severity = "unknown"
)

// ThresholdSetting defines the classification bands for one metric.
// Each band is an inclusive [min, max] range; a nil bound leaves the
// band unbounded on that side, and a band with both bounds nil is not
// configured. Bands may overlap, in which case the more severe band
// wins.
type ThresholdSetting struct {
	ID          string    `json:"id"`
	MetricName  string    `json:"metric_name"`
	CriticalMin *float64  `json:"min_critical"`
	CriticalMax *float64  `json:"max_critical"`
	WarningMin  *float64  `json:"min_warning"`
	WarningMax  *float64  `json:"max_warning"`
	GoodMin     *float64  `json:"min_good"`
	GoodMax     *float64  `json:"max_good"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Classify places value into a severity band. Bands are checked from
// most to least severe so a value on a shared boundary resolves to the
// more severe band. A disabled setting classifies everything as unknown.
func (t ThresholdSetting) Classify(value float64) Severity {
	if !t.IsEnabled {
		return SeverityUnknown
	}
	if inBand(value, t.CriticalMin, t.CriticalMax) {
		return SeverityCritical
	}
	if inBand(value, t.WarningMin, t.WarningMax) {
		return SeverityWarning
	}
	if inBand(value, t.GoodMin, t.GoodMax) {
		return SeverityGood
	}
	return SeverityUnknown
}

func inBand(value float64, min, max *float64) bool {
	if min == nil && max == nil {
		return false
	}
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}
