package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
	ErrPinTooShort  = errors.New("pin must be at least 4 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// Credentials is a sign-in attempt: the dashboard email plus the numeric PIN
// used as a password.
type Credentials struct {
	email Email
	pin   string
}

func NewCredentials(email string, pin string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if len(pin) < 4 {
		return Credentials{}, ErrPinTooShort
	}
	return Credentials{email: e, pin: pin}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Pin() string {
	return c.pin
}
