package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID        uuid.UUID
	Email     string
	Role      string
	LastLogin *time.Time
	IsActive  bool
}
