package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark joins markErr onto err so the sentinel and the original cause both
// answer errors.Is. Joining matters here: cr.Mark is only visible to
// cockroachdb's own Is, and the handlers match with the standard library.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Join(markErr, err)
}
