package auth

import (
	"errors"

	"github.com/sman1gebog/web-core/internal/models"
)

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

type loginUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toLoginUser(u *models.User) loginUser {
	return loginUser{ID: u.ID, Username: u.Username, Role: u.Role}
}

// errInvalidCredentials covers both unknown usernames and wrong passwords so
// the response does not reveal which one failed.
var errInvalidCredentials = errors.New("invalid credentials")
