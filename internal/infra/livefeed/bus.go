package livefeed

import (
	evbus "github.com/asaskevich/EventBus"
)

const topicBookingsChanged = "bookings:changed"

// Feed carries change signals from the booking write path to live dashboard
// streams. Signals are fire-and-forget: a subscriber that is not draining its
// channel misses ticks instead of blocking the publisher.
type Feed struct {
	bus evbus.Bus
}

func New() *Feed {
	return &Feed{bus: evbus.New()}
}

func (f *Feed) BookingsChanged() {
	f.bus.Publish(topicBookingsChanged)
}

// Subscribe returns a channel that receives a tick for every change signal,
// plus a cancel func that must be called when the stream closes.
func (f *Feed) Subscribe() (<-chan struct{}, func(), error) {
	ch := make(chan struct{}, 1)
	handler := func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	if err := f.bus.SubscribeAsync(topicBookingsChanged, handler, false); err != nil {
		return nil, nil, err
	}
	cancel := func() {
		_ = f.bus.Unsubscribe(topicBookingsChanged, handler)
	}
	return ch, cancel, nil
}
