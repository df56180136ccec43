package order_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestType_String(t *testing.T) {
	t.Run("should return persisted names", func(t *testing.T) {
		testCases := []struct {
			orderType order.Type
			expected  string
		}{
			{order.TypeUnknown, "unknown"},
			{order.TypeExport, "export"},
			{order.TypeLookup, "lookup"},
			{order.TypeFlag, "flag"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.orderType)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.orderType.String())
			})
		}
	})

	t.Run("should return unknown for out-of-range values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Type(-1).String())
		assert.Equal(t, "unknown", order.Type(100).String())
	})
}

func TestParseType(t *testing.T) {
	t.Run("should round-trip every defined type", func(t *testing.T) {
		types := []order.Type{
			order.TypeUnknown,
			order.TypeExport,
			order.TypeLookup,
			order.TypeFlag,
		}

		for _, orderType := range types {
			t.Run(fmt.Sprintf("should parse %s", orderType.String()), func(t *testing.T) {
				assert.Equal(t, orderType, order.ParseType(orderType.String()))
			})
		}
	})

	t.Run("should map unrecognized names to unknown", func(t *testing.T) {
		unrecognized := []string{"", "EXPORT", "type_c", "shipment"}

		for _, name := range unrecognized {
			t.Run(fmt.Sprintf("should map %q to unknown", name), func(t *testing.T) {
				assert.Equal(t, order.TypeUnknown, order.ParseType(name))
			})
		}
	})
}
