package variant

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-commerce/model"
)

type SQL struct {
	conn *sqlx.DB
}

type VariantRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.VariantEntity, error)
	GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.VariantEntity, error)
	ExistsActiveTx(ctx context.Context, tx *sqlx.Tx, productID uint64, size, color string) (bool, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.VariantEntity) (uint64, error)
	UpdateQuantitiesTx(ctx context.Context, tx *sqlx.Tx, id uint64, stock, reserved int64) error
	SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	List(ctx context.Context, filter *model.VariantFilter) ([]model.VariantEntity, error)
}

func NewVariantRepository(conn *sqlx.DB) VariantRepository {
	return &SQL{conn: conn}
}

const (
	variantColumns = `id, product_id, size, color, color_code, sku_variant, stock_quantity, reserved_quantity, is_active, created_at, updated_at`

	getVariantQuery = `SELECT ` + variantColumns + ` FROM product_variant WHERE id = ?`

	insertVariantQuery = `INSERT INTO product_variant (product_id, size, color, color_code, sku_variant, stock_quantity, reserved_quantity, is_active, created_at)
VALUES (?, ?, ?, ?, ?, ?, 0, true, NOW())`

	listVariantsBase = `SELECT ` + variantColumns + ` FROM product_variant WHERE product_id = ?`
)

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.VariantEntity, error) {
	var entity model.VariantEntity
	if err := s.conn.QueryRowxContext(ctx, getVariantQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByIDForUpdateTx reads the variant row under a row-level lock so that the
// caller's check-then-update runs serialized against concurrent mutations of
// the same variant.
func (s *SQL) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.VariantEntity, error) {
	var entity model.VariantEntity
	if err := tx.QueryRowxContext(ctx, getVariantQuery+" FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// ExistsActiveTx checks the active (product, size, color) uniqueness rule.
// Locks matching rows so two concurrent creates of the same combination
// serialize within their transactions.
func (s *SQL) ExistsActiveTx(ctx context.Context, tx *sqlx.Tx, productID uint64, size, color string) (bool, error) {
	var id uint64
	q := `SELECT id FROM product_variant WHERE product_id = ? AND size = ? AND color = ? AND is_active = true LIMIT 1 FOR UPDATE`
	if err := tx.GetContext(ctx, &id, q, productID, size, color); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.VariantEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertVariantQuery,
		data.ProductID, data.Size, data.Color, data.ColorCode, data.SKUVariant, data.StockQuantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) UpdateQuantitiesTx(ctx context.Context, tx *sqlx.Tx, id uint64, stock, reserved int64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE product_variant SET stock_quantity = ?, reserved_quantity = ?, updated_at = NOW() WHERE id = ?",
		stock, reserved, id)
	return err
}

func (s *SQL) SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE product_variant SET is_active = false, updated_at = NOW() WHERE id = ?", id)
	return err
}

func (s *SQL) List(ctx context.Context, filter *model.VariantFilter) ([]model.VariantEntity, error) {
	query := listVariantsBase
	if !filter.IncludeInactive {
		query += " AND is_active = true"
	}
	query += " ORDER BY id"

	rows, err := s.conn.QueryxContext(ctx, query, filter.ProductID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.VariantEntity, 0)
	for rows.Next() {
		var it model.VariantEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
