package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minhtridev/edustore-backend/pkg/db/models"
)

// Repository manages persistent cart rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Upsert inserts a quantity-1 row for (user, product) or atomically bumps the
// existing row's quantity by one. The conflict target is the unique
// (user_id, product_id) index, so concurrent adds never lose updates.
func (r *Repository) Upsert(ctx context.Context, userID uuid.UUID, productID string) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + 1"),
			}),
		}).
		Create(&item).Error
}

// SetQuantity overwrites the quantity for an existing row. Rows that do not
// exist are left untouched; the affected count reports whether one matched.
func (r *Repository) SetQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

// Delete removes the (user, product) row if present.
func (r *Repository) Delete(ctx context.Context, userID uuid.UUID, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

// DeleteAllForUser empties the user's cart.
func (r *Repository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

// ListForUser returns the user's cart rows in insertion order.
func (r *Repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByIDs removes specific cart rows. Used when pruning rows whose
// product id no longer resolves against the catalog.
func (r *Repository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&models.CartItem{}).Error
}

// DeleteWhereProductNotIn removes every cart row across all users whose
// product id is not in the provided set. The cron sweep uses this.
func (r *Repository) DeleteWhereProductNotIn(ctx context.Context, productIDs []string) (int64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("product_id NOT IN ?", productIDs).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
