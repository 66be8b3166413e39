package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// BusinessClock reports time in the venue's fixed operating zone regardless
// of where the process (or the visitor) runs.
type BusinessClock struct {
	inner Clock
	loc   *time.Location
}

func NewBusinessClock(inner Clock, tz string) (*BusinessClock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &BusinessClock{inner: inner, loc: loc}, nil
}

func (c *BusinessClock) Now() time.Time {
	return c.inner.Now().In(c.loc)
}

func (c *BusinessClock) Location() *time.Location {
	return c.loc
}

// Today returns business-local midnight of the current day.
func (c *BusinessClock) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
