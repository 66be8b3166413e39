package repository

import (
	"context"
	"encoding/json"
	"errors"

	"glisten-lounge/internal/domain/booking"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, customer_name, phone, date, time_slot, branch, items,
	total_price, notes, status, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	itemsJSON, err := json.Marshal(b.Items())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode booking items", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO bookings (`+bookingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+bookingColumns,
		b.ID(), b.CustomerName(), b.Phone(), b.Date(), b.TimeSlot(), b.Branch(),
		itemsJSON, b.TotalPrice(), b.Notes(), b.Status().String(),
		b.CreatedAt(), b.UpdatedAt())

	rm, err := scanBookingRM(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return rm, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	rm, err := scanBookingRM(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return rm, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*readmodel.BookingRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBookingRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1
		 RETURNING `+bookingColumns,
		id, status.String())

	rm, err := scanBookingRM(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}
	return rm, nil
}

func scanBookingRM(row pgx.Row) (*readmodel.BookingRM, error) {
	var (
		rm       readmodel.BookingRM
		rawItems []byte
	)
	err := row.Scan(
		&rm.ID, &rm.CustomerName, &rm.Phone, &rm.Date, &rm.TimeSlot, &rm.Branch,
		&rawItems, &rm.TotalPrice, &rm.Notes, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.Items = normalizeLineItems(rawItems)
	return &rm, nil
}

// normalizeLineItems decodes the stored line-item array into typed items.
// Early records stored plain name strings instead of item objects; those are
// normalized here, once, at the storage boundary, so nothing downstream ever
// inspects element shapes. Elements that decode as neither are skipped.
func normalizeLineItems(raw []byte) []readmodel.LineItemRM {
	items := []readmodel.LineItemRM{}
	if len(raw) == 0 {
		return items
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return items
	}

	for _, el := range elements {
		var obj struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Price    string `json:"price"`
			Category string `json:"category"`
			Duration string `json:"duration"`
			Image    string `json:"image"`
		}
		if err := json.Unmarshal(el, &obj); err == nil {
			items = append(items, readmodel.LineItemRM(obj))
			continue
		}

		var name string
		if err := json.Unmarshal(el, &name); err == nil {
			items = append(items, readmodel.LineItemRM{Name: name})
		}
	}
	return items
}
