// Package orderrepo provides the GORM-backed order store, handling the
// conversion between the order aggregate and its database representation.
package orderrepo

import (
	"github.com/shopspring/decimal"

	"orderflow/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// Status and priority are stored under their string names so the rows stay
// readable and match the exported CSV vocabulary.
type OrderDTO struct {
	ID       int64           `gorm:"primaryKey"`
	UserID   int64           `gorm:"index"`
	Type     string          `gorm:"type:varchar(16)"`
	Amount   decimal.Decimal `gorm:"type:numeric"`
	Flag     bool
	Status   string `gorm:"type:varchar(32)"`
	Priority string `gorm:"type:varchar(8)"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(userID int64, o *order.Order) OrderDTO {
	return OrderDTO{
		ID:       o.ID(),
		UserID:   userID,
		Type:     o.Type().String(),
		Amount:   o.Amount(),
		Flag:     o.Flag(),
		Status:   o.Status().String(),
		Priority: o.Priority().String(),
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := order.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, order.ParseType(dto.Type), dto.Amount, dto.Flag, status, priority)
}
