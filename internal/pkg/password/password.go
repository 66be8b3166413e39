package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("pin hashing failed")
	ErrComparisonFailed = errors.New("pin comparison failed")
	ErrInvalidPin       = errors.New("invalid pin")
)

const DefaultCost = bcrypt.DefaultCost

// The admin dashboard authenticates with an email plus a numeric PIN.
// The PIN is treated exactly like a password: bcrypt-hashed at rest.

func HashPin(pin string) (string, error) {
	if pin == "" {
		return "", ErrInvalidPin
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePin(hashedPin, pin string) error {
	if hashedPin == "" || pin == "" {
		return ErrInvalidPin
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPin), []byte(pin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
