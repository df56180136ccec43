package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrProcessOrdersCommandIsNotConstructed = errors.New(
	"ProcessOrdersCommand must be created via NewProcessOrdersCommand constructor",
)

// ProcessOrdersCommand triggers one batch run of the order processing
// pipeline for a single user: classify every fetched order, run the export
// side effect, persist the changed states, and report the outcome.
//
// Example:
//
//	cmd, err := commands.NewProcessOrdersCommand(42)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ProcessOrdersCommand struct {
	userID int64
	guard  guard.ConstructorGuard
}

// NewProcessOrdersCommand creates a command for the given user.
// The user id must be positive.
func NewProcessOrdersCommand(userID int64) (ProcessOrdersCommand, error) {
	if userID <= 0 {
		return ProcessOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("userID is invalid",
			fmt.Errorf("%d is not greater than 0", userID))
	}

	return ProcessOrdersCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the user whose batch is processed.
func (c ProcessOrdersCommand) UserID() int64 {
	return c.userID
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
}
