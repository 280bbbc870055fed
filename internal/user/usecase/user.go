package usecase

import (
	"context"

	"aquamon-api/internal/model"
	"aquamon-api/internal/user"
	"aquamon-api/internal/user/repository"
	"aquamon-api/pkg/encrypter"
	"aquamon-api/pkg/scope"
)

func (uc *usecase) Register(ctx context.Context, ip user.RegisterInput) (user.UserOutput, error) {
	role := ip.Role
	if role == "" {
		role = scope.RoleOperator
	}
	if role != scope.RoleAdmin && role != scope.RoleOperator {
		return user.UserOutput{}, user.ErrInvalidRole
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.HashPassword: %v", err)
		return user.UserOutput{}, err
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		User: model.User{
			Username: ip.Username,
			FullName: ip.FullName,
			Password: hash,
			Role:     role,
		},
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return user.UserOutput{}, user.ErrUserExists
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Register: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: created}, nil
}

func (uc *usecase) Login(ctx context.Context, ip user.LoginInput) (user.LoginOutput, error) {
	usr, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Username: ip.Username})
	if err != nil {
		if err == repository.ErrNotFound {
			return user.LoginOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Login.GetOne: %v", err)
		return user.LoginOutput{}, err
	}

	if !encrypter.CheckPasswordHash(ip.Password, usr.Password) {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{
		UserID:   usr.ID,
		Username: usr.Username,
		Role:     usr.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Login.CreateToken: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{
		User:  usr,
		Token: token,
	}, nil
}

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	usr, err := uc.repo.GetOne(ctx, repository.GetOneOptions{ID: sc.UserID})
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}
