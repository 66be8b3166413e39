//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"glisten-lounge/internal/domain/bag"
	"glisten-lounge/internal/domain/booking"
	"glisten-lounge/internal/domain/schedule"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/pkg/clock"
	"glisten-lounge/internal/usecase"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBagStore struct {
	items    map[string]bag.Items
	itemsErr error
	clearErr error
	cleared  []string
}

func newFakeBagStore() *fakeBagStore {
	return &fakeBagStore{items: map[string]bag.Items{}}
}

func (f *fakeBagStore) Items(sessionID string) (bag.Items, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items[sessionID], nil
}

func (f *fakeBagStore) Put(sessionID string, items bag.Items) error {
	f.items[sessionID] = items
	return nil
}

func (f *fakeBagStore) Clear(sessionID string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	delete(f.items, sessionID)
	f.cleared = append(f.cleared, sessionID)
	return nil
}

type fakeBookingRepo struct {
	createErr error
	created   []*booking.Booking
	stored    map[uuid.UUID]*readmodel.BookingRM
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{stored: map[uuid.UUID]*readmodel.BookingRM{}}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, b)
	rm := &readmodel.BookingRM{
		ID:           b.ID(),
		CustomerName: b.CustomerName(),
		Phone:        b.Phone(),
		Date:         b.Date(),
		TimeSlot:     b.TimeSlot(),
		Branch:       b.Branch(),
		TotalPrice:   b.TotalPrice(),
		Notes:        b.Notes(),
		Status:       b.Status().String(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
	f.stored[b.ID()] = rm
	return rm, nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, ok := f.stored[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return rm, nil
}

func (f *fakeBookingRepo) List(_ context.Context) ([]*readmodel.BookingRM, error) {
	out := make([]*readmodel.BookingRM, 0, len(f.stored))
	for _, rm := range f.stored {
		out = append(out, rm)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error) {
	rm, ok := f.stored[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	rm.Status = status.String()
	return rm, nil
}

type fakeNotifier struct {
	err      error
	messages []string
}

func (f *fakeNotifier) Notify(_ context.Context, message string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

type fakeFeed struct {
	changes int
}

func (f *fakeFeed) BookingsChanged() { f.changes++ }

type bookingFixture struct {
	uc       usecase.BookingUseCase
	store    *fakeBagStore
	repo     *fakeBookingRepo
	notifier *fakeNotifier
	feed     *fakeFeed
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	mock := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	businessClock, err := clock.NewBusinessClock(mock, "UTC")
	require.NoError(t, err)

	f := &bookingFixture{
		store:    newFakeBagStore(),
		repo:     newFakeBookingRepo(),
		notifier: &fakeNotifier{},
		feed:     &fakeFeed{},
	}
	f.uc = usecase.NewBookingUseCase(
		f.repo, f.store, f.notifier, f.feed,
		schedule.NewDay(7, 21), businessClock,
		"Phnom Penh", slog.Default(),
	)
	return f
}

func validParams() usecase.SubmitBookingParams {
	return usecase.SubmitBookingParams{
		CustomerName: "Sokha Chan",
		Phone:        "+855 12 345 678",
		Date:         "2026-10-05",
		TimeSlot:     "10:30",
		Notes:        "first visit",
	}
}

func TestSubmit(t *testing.T) {
	const sessionID = "session-1"

	seed := bag.Items{
		{ID: "a", Name: "Classic Manicure", Price: "$24.00"},
		{ID: "b", Name: "Aroma Massage", Price: "$35.00"},
	}

	t.Run("happy path stores, notifies, signals, clears", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.items[sessionID] = seed

		rm, err := f.uc.Submit(context.Background(), sessionID, validParams())
		require.NoError(t, err)

		assert.Equal(t, "pending", rm.Status)
		assert.InDelta(t, 59.0, rm.TotalPrice, 0.0001)
		assert.Len(t, f.repo.created, 1)
		assert.Len(t, f.notifier.messages, 1)
		assert.Equal(t, 1, f.feed.changes)
		assert.Equal(t, []string{sessionID}, f.store.cleared)
	})

	t.Run("alert message carries the booking details", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.items[sessionID] = seed

		_, err := f.uc.Submit(context.Background(), sessionID, validParams())
		require.NoError(t, err)

		msg := f.notifier.messages[0]
		assert.Contains(t, msg, "NEW BOOKING REQUEST")
		assert.Contains(t, msg, "Sokha Chan")
		assert.Contains(t, msg, "- Classic Manicure ($24.00)")
		assert.Contains(t, msg, "Mon Oct 5 2026")
		assert.Contains(t, msg, "$59.00")
	})

	t.Run("empty bag fails before any side effect", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.uc.Submit(context.Background(), sessionID, validParams())
		assert.ErrorIs(t, err, booking.ErrEmptyBag)
		assert.Empty(t, f.repo.created)
		assert.Empty(t, f.notifier.messages)
		assert.Equal(t, 0, f.feed.changes)
	})

	t.Run("store failure surfaces and keeps the bag", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.items[sessionID] = seed
		f.repo.createErr = errors.New("connection refused")

		_, err := f.uc.Submit(context.Background(), sessionID, validParams())
		assert.ErrorIs(t, err, usecase.ErrBookingStorage)
		assert.Empty(t, f.store.cleared)
		assert.Empty(t, f.notifier.messages)
	})

	t.Run("notification failure does not fail the booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.items[sessionID] = seed
		f.notifier.err = errors.New("chat unreachable")

		rm, err := f.uc.Submit(context.Background(), sessionID, validParams())
		require.NoError(t, err)
		assert.Equal(t, "pending", rm.Status)
		assert.Equal(t, 1, f.feed.changes)
		assert.Equal(t, []string{sessionID}, f.store.cleared)
	})

	t.Run("bag clear failure does not fail the booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.items[sessionID] = seed
		f.store.clearErr = errors.New("disk full")

		_, err := f.uc.Submit(context.Background(), sessionID, validParams())
		assert.NoError(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	const sessionID = "session-1"

	submit := func(t *testing.T, f *bookingFixture) uuid.UUID {
		t.Helper()
		f.store.items[sessionID] = bag.Items{{ID: "a", Price: "$24.00"}}
		rm, err := f.uc.Submit(context.Background(), sessionID, validParams())
		require.NoError(t, err)
		return rm.ID
	}

	t.Run("pending to confirmed", func(t *testing.T) {
		f := newBookingFixture(t)
		id := submit(t, f)

		rm, err := f.uc.UpdateStatus(context.Background(), id, "confirmed")
		require.NoError(t, err)
		assert.Equal(t, "confirmed", rm.Status)
		assert.Equal(t, 2, f.feed.changes)
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		id := submit(t, f)

		_, err := f.uc.UpdateStatus(context.Background(), id, "completed")
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		id := submit(t, f)

		_, err := f.uc.UpdateStatus(context.Background(), id, "cancelled")
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("missing booking maps to not found", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.uc.UpdateStatus(context.Background(), uuid.New(), "confirmed")
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}
