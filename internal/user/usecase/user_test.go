package usecase

import (
	"context"
	"errors"
	"testing"

	"aquamon-api/internal/model"
	"aquamon-api/internal/user"
	"aquamon-api/internal/user/repository"
	pkgLog "aquamon-api/pkg/log"
	"aquamon-api/pkg/scope"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: "development", Encoding: "console"})
}

type fakeUserRepo struct {
	users map[string]model.User // by username
}

func (r *fakeUserRepo) Create(_ context.Context, opts repository.CreateOptions) (model.User, error) {
	if r.users == nil {
		r.users = map[string]model.User{}
	}
	if _, ok := r.users[opts.User.Username]; ok {
		return model.User{}, repository.ErrDuplicate
	}
	u := opts.User
	u.ID = "user-1"
	r.users[u.Username] = u
	return u, nil
}

func (r *fakeUserRepo) GetOne(_ context.Context, opts repository.GetOneOptions) (model.User, error) {
	for _, u := range r.users {
		if (opts.Username != "" && u.Username == opts.Username) || (opts.ID != "" && u.ID == opts.ID) {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		ip       user.RegisterInput
		wantRole string
		wantErr  error
	}{
		{
			name:     "defaults to operator role",
			ip:       user.RegisterInput{Username: "op1", Password: "password123", FullName: "Operator One"},
			wantRole: scope.RoleOperator,
		},
		{
			name:     "admin role accepted",
			ip:       user.RegisterInput{Username: "admin1", Password: "password123", Role: scope.RoleAdmin},
			wantRole: scope.RoleAdmin,
		},
		{
			name:    "unknown role rejected",
			ip:      user.RegisterInput{Username: "x", Password: "password123", Role: "superuser"},
			wantErr: user.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(testLogger(), &fakeUserRepo{}, scope.New(testSecret))
			out, err := uc.Register(context.Background(), tt.ip)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if out.User.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", out.User.Role, tt.wantRole)
			}
			if out.User.Password == tt.ip.Password {
				t.Error("stored password not hashed")
			}
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := New(testLogger(), repo, scope.New(testSecret))

	ip := user.RegisterInput{Username: "op1", Password: "password123"}
	if _, err := uc.Register(context.Background(), ip); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := uc.Register(context.Background(), ip)
	if !errors.Is(err, user.ErrUserExists) {
		t.Errorf("second Register() error = %v, want %v", err, user.ErrUserExists)
	}
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	repo := &fakeUserRepo{}
	mgr := scope.New(testSecret)
	uc := New(testLogger(), repo, mgr)

	if _, err := uc.Register(context.Background(), user.RegisterInput{
		Username: "op1",
		Password: "password123",
		FullName: "Operator One",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	out, err := uc.Login(context.Background(), user.LoginInput{Username: "op1", Password: "password123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if out.Token == "" {
		t.Fatal("Login() returned empty token")
	}

	payload, err := mgr.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if payload.Username != "op1" {
		t.Errorf("payload.Username = %q, want op1", payload.Username)
	}
	if payload.Role != scope.RoleOperator {
		t.Errorf("payload.Role = %q, want %q", payload.Role, scope.RoleOperator)
	}
	if payload.UserID != out.User.ID {
		t.Errorf("payload.UserID = %q, want %q", payload.UserID, out.User.ID)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := New(testLogger(), repo, scope.New(testSecret))

	if _, err := uc.Register(context.Background(), user.RegisterInput{
		Username: "op1",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		ip   user.LoginInput
	}{
		{name: "wrong password", ip: user.LoginInput{Username: "op1", Password: "wrong"}},
		{name: "unknown user", ip: user.LoginInput{Username: "ghost", Password: "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), tt.ip)
			if !errors.Is(err, user.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want %v", err, user.ErrInvalidCredentials)
			}
		})
	}
}

func TestDetailMe(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := New(testLogger(), repo, scope.New(testSecret))

	reg, err := uc.Register(context.Background(), user.RegisterInput{
		Username: "op1",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	out, err := uc.DetailMe(context.Background(), model.Scope{UserID: reg.User.ID})
	if err != nil {
		t.Fatalf("DetailMe() error = %v", err)
	}
	if out.User.Username != "op1" {
		t.Errorf("Username = %q, want op1", out.User.Username)
	}

	if _, err := uc.DetailMe(context.Background(), model.Scope{UserID: "missing"}); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("DetailMe() error = %v, want %v", err, user.ErrUserNotFound)
	}
}
