package usecase

import (
	"context"
	"testing"

	"aquamon-api/internal/activity"
	"aquamon-api/internal/activity/repository"
	"aquamon-api/internal/model"
	pkgLog "aquamon-api/pkg/log"
	"aquamon-api/pkg/paginator"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: "development", Encoding: "console"})
}

type fakeActivityRepo struct {
	created []model.Activity
}

func (r *fakeActivityRepo) Create(_ context.Context, opts repository.CreateOptions) (model.Activity, error) {
	a := opts.Activity
	a.ID = "act-1"
	r.created = append(r.created, a)
	return a, nil
}

func (r *fakeActivityRepo) Get(_ context.Context, _ repository.GetOptions) ([]model.Activity, paginator.Paginator, error) {
	return r.created, paginator.Paginator{Total: int64(len(r.created))}, nil
}

func TestRecord_Actor(t *testing.T) {
	tests := []struct {
		name      string
		actor     string
		wantActor string
	}{
		{name: "authenticated actor kept", actor: "operator1", wantActor: "operator1"},
		{name: "empty actor falls back", actor: "", wantActor: FallbackActor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeActivityRepo{}
			uc := New(testLogger(), repo)

			err := uc.Record(context.Background(), activity.RecordInput{
				Actor:      tt.actor,
				Action:     "alert.resolved",
				TargetType: "alert",
				TargetID:   "entry-1",
			})
			if err != nil {
				t.Fatalf("Record() error = %v", err)
			}

			if len(repo.created) != 1 {
				t.Fatalf("entries created = %d, want 1", len(repo.created))
			}
			if repo.created[0].Actor != tt.wantActor {
				t.Errorf("Actor = %q, want %q", repo.created[0].Actor, tt.wantActor)
			}
		})
	}
}
