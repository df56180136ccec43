package orderrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// GormOrderStore implements ports.OrderStore using GORM.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// Add persists a new order for a user. Used by seeding and tests; the
// pipeline itself only fetches and updates.
func (s *GormOrderStore) Add(ctx context.Context, userID int64, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(userID, aggregate)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}

	return nil
}

// GetOrdersByUser retrieves the full batch of orders for a user, sorted by id.
func (s *GormOrderStore) GetOrdersByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := s.db.WithContext(ctx).Order("id").Find(&dtos, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateOrderStates persists status and priority for the staged updates.
// Rows that do not exist are reported in the returned failed-id list; a
// database error aborts the bulk operation wholesale.
func (s *GormOrderStore) UpdateOrderStates(
	ctx context.Context,
	updates []order.PendingUpdate,
) ([]int64, error) {
	failedIDs := make([]int64, 0)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&OrderDTO{}).
				Where("id = ?", update.OrderID).
				Updates(map[string]any{
					"status":   update.Status.String(),
					"priority": update.Priority.String(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, update.OrderID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}

	return failedIDs, nil
}
