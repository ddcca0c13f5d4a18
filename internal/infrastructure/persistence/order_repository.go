package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/trade"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)

// ListOrderNumbers returns every migrated legacy order number
func (r *GormOrderRepository) ListOrderNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Pluck("legacy_order_number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

// Create inserts the order together with its items in one transaction.
// Orders are insert-only; the caller skips order numbers that already exist.
func (r *GormOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	model := models.OrderModelFromDomain(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
}
