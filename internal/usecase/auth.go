package usecase

import (
	"context"
	"errors"

	"glisten-lounge/internal/domain/user"
	"glisten-lounge/internal/pkg/jwt"
	"glisten-lounge/internal/pkg/password"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or pin")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, u.ID()); err != nil {
		return "", nil, err
	}

	return token, toAuthorizedUserRM(u), nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return userRM, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*user.User, error) {
	u, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePin(u.PinHash(), credentials.Pin()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func toAuthorizedUserRM(u *user.User) *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		LastLogin: u.LastLogin(),
		IsActive:  u.IsActive(),
	}
}
