// Package queries contains read-only operations over the persisted order
// state. Queries bypass the domain model and read directly from the
// database, returning flat response structs.
package queries

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery requests the current persisted state of one user's
// orders, e.g. to inspect the outcome of a batch run.
type GetUserOrdersQuery struct {
	userID int64
	guard  guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for the given user.
// The user id must be positive.
func NewGetUserOrdersQuery(userID int64) (GetUserOrdersQuery, error) {
	if userID <= 0 {
		return GetUserOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("userID is invalid",
			fmt.Errorf("%d is not greater than 0", userID))
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the user whose orders are requested.
func (q GetUserOrdersQuery) UserID() int64 {
	return q.userID
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}
