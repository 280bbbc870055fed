package http

import (
	"testing"
	"time"
)

func TestUpsertReq_ToInput_DateDefaultsToToday(t *testing.T) {
	req := upsertReq{DistrictID: "d1", WaterQuality: 90}

	ip, err := req.toInput()
	if err != nil {
		t.Fatalf("toInput() error = %v", err)
	}

	now := time.Now()
	gy, gm, gd := ip.Date.Date()
	wy, wm, wd := now.Date()
	if gy != wy || gm != wm || gd != wd {
		t.Errorf("Date = %v, want today (%v)", ip.Date, now)
	}
}

func TestUpsertReq_ToInput_ExplicitDateParsed(t *testing.T) {
	req := upsertReq{DistrictID: "d1", Date: "2024-03-02"}

	ip, err := req.toInput()
	if err != nil {
		t.Fatalf("toInput() error = %v", err)
	}

	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if !ip.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", ip.Date, want)
	}
}

func TestUpsertReq_ToInput_MalformedDateRejected(t *testing.T) {
	req := upsertReq{DistrictID: "d1", Date: "02/03/2024"}

	if _, err := req.toInput(); err == nil {
		t.Error("toInput() error = nil, want parse error")
	}
}
