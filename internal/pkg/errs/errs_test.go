//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"glisten-lounge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("item not found")

	t.Run("marked error matches the sentinel with errors.Is", func(t *testing.T) {
		cause := errs.New("row scan failed")
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("marked error keeps the original cause in the chain", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Mark(errs.Wrap(cause, "query failed"), sentinel)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}
