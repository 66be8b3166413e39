package response

import (
	"time"

	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromAuthorizedUser(rm *readmodel.AuthorizedUserRM) UserResponse {
	return UserResponse{
		ID:        rm.ID,
		Email:     rm.Email,
		Role:      rm.Role,
		LastLogin: rm.LastLogin,
	}
}
