package http

import (
	"encoding/json"
	"testing"
)

func TestCreateReq_ToInput_IsEnabledDefault(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "omitted defaults to enabled",
			body: `{"metric_name":"water_quality","min_good":0,"max_good":100}`,
			want: true,
		},
		{
			name: "explicit false kept",
			body: `{"metric_name":"water_quality","is_enabled":false}`,
			want: false,
		},
		{
			name: "explicit true kept",
			body: `{"metric_name":"water_quality","is_enabled":true}`,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createReq
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := req.toInput().IsEnabled; got != tt.want {
				t.Errorf("toInput().IsEnabled = %v, want %v", got, tt.want)
			}
		})
	}
}
