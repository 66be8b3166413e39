package request

import (
	"glisten-lounge/internal/domain/user"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Pin   string `json:"pin" binding:"required,min=4"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Pin)
}
