package user

import "aquamon-api/internal/model"

type RegisterInput struct {
	Username string
	Password string
	FullName string
	Role     string
}

type LoginInput struct {
	Username string
	Password string
}

type UserOutput struct {
	User model.User
}

type LoginOutput struct {
	User  model.User
	Token string
}
