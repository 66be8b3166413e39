package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"glisten-lounge/internal/domain/bag"
	"glisten-lounge/internal/domain/booking"
	"glisten-lounge/internal/domain/schedule"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/pkg/clock"
	"glisten-lounge/internal/pkg/errs"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingStorage  = errors.New("booking storage failed")
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	List(ctx context.Context) ([]*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error)
}

// Notifier delivers a human-readable alert about a new request. Delivery is
// best-effort: the booking is authoritative once the store write succeeds,
// a lost alert is merely inconvenient.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// FeedPublisher fans a change signal out to live dashboard subscribers.
type FeedPublisher interface {
	BookingsChanged()
}

type SubmitBookingParams struct {
	CustomerName string
	Phone        string
	Date         string
	TimeSlot     string
	Notes        string
}

type BookingUseCase interface {
	Submit(ctx context.Context, sessionID string, params SubmitBookingParams) (*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	ListBookings(ctx context.Context) ([]*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	bagStore    BagStore
	notifier    Notifier
	feed        FeedPublisher
	day         schedule.Day
	clock       *clock.BusinessClock
	branch      string
	logger      *slog.Logger
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	bagStore BagStore,
	notifier Notifier,
	feed FeedPublisher,
	day schedule.Day,
	businessClock *clock.BusinessClock,
	branch string,
	logger *slog.Logger,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		bagStore:    bagStore,
		notifier:    notifier,
		feed:        feed,
		day:         day,
		clock:       businessClock,
		branch:      branch,
		logger:      logger,
	}
}

// Submit turns the current bag plus form state into a pending booking.
//
// Ordering is deliberate: the store write comes first and is the only step
// allowed to fail the submission. The notification is fire-and-forget, and
// the bag is cleared only after the record is durable. A failed submission
// leaves the bag intact so the customer can simply retry.
func (u *bookingUseCaseImpl) Submit(ctx context.Context, sessionID string, params SubmitBookingParams) (*readmodel.BookingRM, error) {
	items, err := u.bagStore.Items(sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrBagStorage)
	}

	b, err := booking.New(booking.Spec{
		CustomerName: params.CustomerName,
		Phone:        params.Phone,
		Date:         params.Date,
		TimeSlot:     params.TimeSlot,
		Branch:       u.branch,
		Items:        items,
		Notes:        params.Notes,
	}, u.day, u.clock.Now())
	if err != nil {
		return nil, err
	}

	rm, err := u.bookingRepo.Create(ctx, b)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingStorage)
	}

	if err := u.notifier.Notify(ctx, buildAlertMessage(b)); err != nil {
		u.logger.Warn("booking alert delivery failed",
			"booking_id", b.ID(),
			"error", err)
	}

	u.feed.BookingsChanged()

	if err := u.bagStore.Clear(sessionID); err != nil {
		u.logger.Warn("failed to clear bag after booking",
			"session_id", sessionID,
			"error", err)
	}

	return rm, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, markBookingErr(err)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*readmodel.BookingRM, error) {
	rms, err := u.bookingRepo.List(ctx)
	if err != nil {
		return nil, markBookingErr(err)
	}
	return rms, nil
}

// UpdateStatus reconstructs the stored booking and lets the entity decide
// whether the move is legal before the new status is written back.
func (u *bookingUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*readmodel.BookingRM, error) {
	current, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, markBookingErr(err)
	}

	b := bookingFromRM(current)
	if err := b.Transition(booking.Status(status)); err != nil {
		return nil, err
	}

	rm, err := u.bookingRepo.UpdateStatus(ctx, id, b.Status())
	if err != nil {
		return nil, markBookingErr(err)
	}

	u.feed.BookingsChanged()
	return rm, nil
}

func bookingFromRM(rm *readmodel.BookingRM) *booking.Booking {
	items := make(bag.Items, 0, len(rm.Items))
	for _, it := range rm.Items {
		items = append(items, bag.Item(it))
	}
	return booking.Reconstruct(
		rm.ID, rm.CustomerName, rm.Phone, rm.Date, rm.TimeSlot, rm.Branch,
		items, rm.TotalPrice, rm.Notes, booking.Status(rm.Status),
		rm.CreatedAt, rm.UpdatedAt,
	)
}

func markBookingErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrBookingNotFound)
	}
	return errs.Mark(err, ErrBookingStorage)
}

// buildAlertMessage renders the concierge alert in the Markdown layout the
// chat channel expects.
func buildAlertMessage(b *booking.Booking) string {
	var lines []string
	for _, it := range b.Items() {
		lines = append(lines, fmt.Sprintf("- %s (%s)", it.Name, it.Price))
	}

	displayDate := b.Date()
	if d, err := time.Parse("2006-01-02", b.Date()); err == nil {
		displayDate = d.Format("Mon Jan 2 2006")
	}

	notes := b.Notes()
	if notes == "" {
		notes = "None"
	}

	return fmt.Sprintf(`🛎 *NEW BOOKING REQUEST* 🛎

👤 *Customer:* %s
📞 *Phone:* %s
📅 *Date:* %s
⏰ *Time:* %s
📍 *Location:* %s

🛒 *Services Requested:*
%s

📝 *Notes:* %s
💵 *Est. Total:* $%.2f`,
		b.CustomerName(),
		b.Phone(),
		displayDate,
		b.TimeSlot(),
		b.Branch(),
		strings.Join(lines, "\n"),
		notes,
		b.TotalPrice(),
	)
}
