package district

import "aquamon-api/internal/model"

type CreateInput struct {
	Name     string
	Province string
	Region   string
	Status   string
}

type UpdateInput struct {
	ID       string
	Name     *string
	Province *string
	Region   *string
	Status   *string
}

type DistrictOutput struct {
	District model.District
}
