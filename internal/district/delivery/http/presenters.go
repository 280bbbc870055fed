package http

import (
	"time"

	"aquamon-api/internal/district"
	"aquamon-api/internal/model"
)

type createReq struct {
	Name     string `json:"name" binding:"required"`
	Province string `json:"province" binding:"required"`
	Region   string `json:"region"`
	Status   string `json:"status"`
}

func (r createReq) toInput() district.CreateInput {
	return district.CreateInput{
		Name:     r.Name,
		Province: r.Province,
		Region:   r.Region,
		Status:   r.Status,
	}
}

type updateReq struct {
	Name     *string `json:"name"`
	Province *string `json:"province"`
	Region   *string `json:"region"`
	Status   *string `json:"status"`
}

func (r updateReq) toInput(id string) district.UpdateInput {
	return district.UpdateInput{
		ID:       id,
		Name:     r.Name,
		Province: r.Province,
		Region:   r.Region,
		Status:   r.Status,
	}
}

type districtResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Province  string    `json:"province"`
	Region    string    `json:"region"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDistrictResp(d model.District) districtResp {
	return districtResp{
		ID:        d.ID,
		Name:      d.Name,
		Province:  d.Province,
		Region:    d.Region,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func newListResp(districts []model.District) []districtResp {
	res := make([]districtResp, len(districts))
	for i, d := range districts {
		res[i] = newDistrictResp(d)
	}
	return res
}
