package usecase

import (
	"context"

	"aquamon-api/internal/district"
	"aquamon-api/internal/district/repository"
	"aquamon-api/internal/model"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip district.CreateInput) (district.DistrictOutput, error) {
	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		District: model.District{
			Name:     ip.Name,
			Province: ip.Province,
			Region:   ip.Region,
			Status:   ip.Status,
		},
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return district.DistrictOutput{}, district.ErrDistrictExists
		}
		uc.l.Errorf(ctx, "internal.district.usecase.Create: %v", err)
		return district.DistrictOutput{}, err
	}

	return district.DistrictOutput{District: created}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip district.UpdateInput) (district.DistrictOutput, error) {
	d, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return district.DistrictOutput{}, district.ErrDistrictNotFound
		}
		uc.l.Errorf(ctx, "internal.district.usecase.Update.Detail: %v", err)
		return district.DistrictOutput{}, err
	}

	if ip.Name != nil {
		d.Name = *ip.Name
	}
	if ip.Province != nil {
		d.Province = *ip.Province
	}
	if ip.Region != nil {
		d.Region = *ip.Region
	}
	if ip.Status != nil {
		d.Status = *ip.Status
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{District: d})
	if err != nil {
		if err == repository.ErrNotFound {
			return district.DistrictOutput{}, district.ErrDistrictNotFound
		}
		if err == repository.ErrDuplicate {
			return district.DistrictOutput{}, district.ErrDistrictExists
		}
		uc.l.Errorf(ctx, "internal.district.usecase.Update: %v", err)
		return district.DistrictOutput{}, err
	}

	return district.DistrictOutput{District: updated}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (district.DistrictOutput, error) {
	d, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return district.DistrictOutput{}, district.ErrDistrictNotFound
		}
		uc.l.Errorf(ctx, "internal.district.usecase.Detail: %v", err)
		return district.DistrictOutput{}, err
	}

	return district.DistrictOutput{District: d}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.District, error) {
	districts, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.district.usecase.List: %v", err)
		return nil, err
	}

	return districts, nil
}
