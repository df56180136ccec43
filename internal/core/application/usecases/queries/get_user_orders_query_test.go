package queries_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserOrdersQuery(t *testing.T) {
	t.Run("should create valid query with positive user id", func(t *testing.T) {
		query, err := queries.NewGetUserOrdersQuery(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), query.UserID())
		require.NoError(t, query.Validate())
	})

	t.Run("should fail with non-positive user id", func(t *testing.T) {
		for _, userID := range []int64{0, -1} {
			_, err := queries.NewGetUserOrdersQuery(userID)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "userID is invalid")
		}
	})
}

func TestGetUserOrdersQuery_Validate(t *testing.T) {
	t.Run("should reject zero value query", func(t *testing.T) {
		var query queries.GetUserOrdersQuery

		err := query.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrGetUserOrdersQueryIsNotConstructed)
	})
}
