package repository

import (
	"context"
	"errors"

	"glisten-lounge/internal/domain/catalog"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const catalogColumns = `id, kind, name, price, category, duration, size, image, description,
	is_monthly_promo, is_signature, discount_value, discount_type, promo_price, created_at`

func (r *CatalogRepository) List(ctx context.Context, kind catalog.Kind, filter usecase.ListFilter) ([]*catalog.Item, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE kind = $1`
	args := []any{kind.String()}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += ` AND category = $2`
	}
	if filter.PromoOnly {
		query += ` AND is_monthly_promo = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog items", err)
	}
	defer rows.Close()

	var items []*catalog.Item
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog rows", err)
	}
	return items, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*catalog.Item, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+catalogColumns+` FROM catalog_items WHERE kind = $1 AND id = $2`,
		kind.String(), id)

	item, err := scanCatalogItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("catalog item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find catalog item", err)
	}
	return item, nil
}

func (r *CatalogRepository) Create(ctx context.Context, item *catalog.Item) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO catalog_items (`+catalogColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())`,
		item.ID, item.Kind.String(), item.Name, item.Price, item.Category,
		item.Duration, item.Size, item.Image, item.Description,
		item.IsMonthlyPromo, item.IsSignature, item.DiscountValue,
		string(item.DiscountType), item.PromoPrice)
	if err != nil {
		return infra.WrapRepoErr("failed to create catalog item", err)
	}
	return nil
}

// Update applies a partial patch. COALESCE keeps columns whose patch field is
// nil, so a single-flag toggle from the dashboard touches only that flag.
func (r *CatalogRepository) Update(ctx context.Context, kind catalog.Kind, id uuid.UUID, patch usecase.UpdateItemParams) (*catalog.Item, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE catalog_items SET
			name             = COALESCE($3, name),
			price            = COALESCE($4, price),
			category         = COALESCE($5, category),
			duration         = COALESCE($6, duration),
			size             = COALESCE($7, size),
			image            = COALESCE($8, image),
			description      = COALESCE($9, description),
			is_monthly_promo = COALESCE($10, is_monthly_promo),
			is_signature     = COALESCE($11, is_signature),
			discount_value   = COALESCE($12, discount_value),
			discount_type    = COALESCE($13, discount_type)
		 WHERE kind = $1 AND id = $2
		 RETURNING `+catalogColumns,
		kind.String(), id,
		patch.Name, patch.Price, patch.Category, patch.Duration, patch.Size,
		patch.Image, patch.Description, patch.IsMonthlyPromo, patch.IsSignature,
		patch.DiscountValue, patch.DiscountType)

	item, err := scanCatalogItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("catalog item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update catalog item", err)
	}
	return item, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, kind catalog.Kind, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM catalog_items WHERE kind = $1 AND id = $2`,
		kind.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete catalog item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("catalog item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanCatalogItem(row pgx.Row) (*catalog.Item, error) {
	var (
		item         catalog.Item
		kind         string
		discountType string
	)
	err := row.Scan(
		&item.ID, &kind, &item.Name, &item.Price, &item.Category,
		&item.Duration, &item.Size, &item.Image, &item.Description,
		&item.IsMonthlyPromo, &item.IsSignature, &item.DiscountValue,
		&discountType, &item.PromoPrice, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Kind = catalog.Kind(kind)
	item.DiscountType = catalog.DiscountType(discountType)
	return &item, nil
}
