package dto

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	return firstError(
		required(r.Username, "username"),
		required(r.Password, "password"),
		required(r.Name, "name"),
		required(r.Email, "email"),
	)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
