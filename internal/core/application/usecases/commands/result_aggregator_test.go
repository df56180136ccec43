package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultAggregator(t *testing.T) {
	t.Run("should start empty with a non-nil failure list", func(t *testing.T) {
		aggregator := commands.NewResultAggregator()

		assert.False(t, aggregator.HasFailures())
		assert.Equal(t, 0, aggregator.Count())
		require.NotNil(t, aggregator.Failures())
		assert.Empty(t, aggregator.Failures())
	})

	t.Run("should preserve insertion order", func(t *testing.T) {
		aggregator := commands.NewResultAggregator()

		aggregator.Record(3, "third order failed")
		aggregator.Record(1, "first order failed")
		aggregator.Record(2, "second order failed")

		failures := aggregator.Failures()
		require.Len(t, failures, 3)
		assert.Equal(t, int64(3), failures[0].OrderID)
		assert.Equal(t, int64(1), failures[1].OrderID)
		assert.Equal(t, int64(2), failures[2].OrderID)
	})

	t.Run("should keep the first reason for a duplicated order", func(t *testing.T) {
		aggregator := commands.NewResultAggregator()

		aggregator.Record(5, "export failed")
		aggregator.Record(5, "persistence failed")

		failures := aggregator.Failures()
		require.Len(t, failures, 1)
		assert.Equal(t, int64(5), failures[0].OrderID)
		assert.Equal(t, "export failed", failures[0].Reason)
		assert.Equal(t, 1, aggregator.Count())
	})

	t.Run("should count distinct orders only", func(t *testing.T) {
		aggregator := commands.NewResultAggregator()

		aggregator.Record(1, "a")
		aggregator.Record(1, "b")
		aggregator.Record(2, "c")

		assert.Equal(t, 2, aggregator.Count())
		assert.True(t, aggregator.HasFailures())
	})
}
