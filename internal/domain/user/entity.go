package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard account. Customers never sign in; auth exists only to
// gate the admin surface. Accounts are provisioned directly in the store, so
// the entity is only ever reconstructed from a persisted row.
type User struct {
	id        uuid.UUID
	email     Email
	pinHash   string
	role      Role
	lastLogin *time.Time
	isActive  bool
}

func Reconstruct(
	id uuid.UUID,
	email Email,
	pinHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
) *User {
	return &User{
		id:        id,
		email:     email,
		pinHash:   pinHash,
		role:      role,
		lastLogin: lastLogin,
		isActive:  isActive,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PinHash() string       { return u.pinHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
