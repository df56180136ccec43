package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserOrdersQueryResponse is the flat read model of one persisted order.
type GetUserOrdersQueryResponse struct {
	ID       int64           `json:"id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Flag     bool            `json:"flag"`
	Status   string          `json:"status"`
	Priority string          `json:"priority"`
}

// GetUserOrdersQueryHandler reads a user's orders straight from the database.
//
// Example:
//
//	handler := queries.NewGetUserOrdersQueryHandler(db)
//	query, _ := queries.NewGetUserOrdersQuery(42)
//	orders, err := handler.Handle(ctx, query)
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler using the given GORM connection.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle returns the persisted orders of the user, sorted by id for
// consistent output. A user without orders yields an empty slice.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			amount,
			flag,
			status,
			priority
		FROM orders
		WHERE user_id = ?
		ORDER BY id`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetUserOrdersQueryResponse
		if err := rows.Scan(&row.ID, &row.Type, &row.Amount, &row.Flag, &row.Status, &row.Priority); err != nil {
			return nil, err
		}
		orders = append(orders, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
