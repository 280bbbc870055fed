package http

import (
	"time"

	"aquamon-api/internal/model"
	"aquamon-api/internal/user"
)

type registerReq struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Role:     r.Role,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResp struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
