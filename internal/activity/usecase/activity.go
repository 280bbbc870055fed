package usecase

import (
	"context"

	"aquamon-api/internal/activity"
	"aquamon-api/internal/activity/repository"
	"aquamon-api/internal/model"
)

// FallbackActor is recorded when no authenticated principal is available,
// such as entries written by the ingestion job.
const FallbackActor = "Admin User"

func (uc *usecase) Record(ctx context.Context, ip activity.RecordInput) error {
	actor := ip.Actor
	if actor == "" {
		actor = FallbackActor
	}

	_, err := uc.repo.Create(ctx, repository.CreateOptions{
		Activity: model.Activity{
			Actor:      actor,
			Action:     ip.Action,
			TargetType: ip.TargetType,
			TargetID:   ip.TargetID,
			Detail:     ip.Detail,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.activity.usecase.Record: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip activity.GetInput) (activity.GetOutput, error) {
	acts, pag, err := uc.repo.Get(ctx, repository.GetOptions{
		Filter: repository.Filter{
			Actor:      ip.Filter.Actor,
			TargetType: ip.Filter.TargetType,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.activity.usecase.Get: %v", err)
		return activity.GetOutput{}, err
	}

	return activity.GetOutput{
		Activities: acts,
		Paginator:  pag,
	}, nil
}
