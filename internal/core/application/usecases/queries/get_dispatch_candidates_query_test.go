package queries_test

import (
	"testing"

	"github.com/wael7705/movo-project/internal/core/application/usecases/queries"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDispatchCandidatesQuery(t *testing.T) {
	t.Run("creates_valid_query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetDispatchCandidatesQuery(orderID, 5, 5)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, orderID, query.OrderID())
		assert.InDelta(t, 5.0, query.RadiusKm(), 1e-9)
		assert.Equal(t, 5, query.MaxCandidates())
	})

	t.Run("rejects_invalid_order_id", func(t *testing.T) {
		_, err := queries.NewGetDispatchCandidatesQuery(kernel.UUID{}, 5, 5)

		require.Error(t, err)
	})

	t.Run("rejects_non_positive_radius", func(t *testing.T) {
		_, err := queries.NewGetDispatchCandidatesQuery(kernel.NewUUID(), 0, 5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_non_positive_max_candidates", func(t *testing.T) {
		_, err := queries.NewGetDispatchCandidatesQuery(kernel.NewUUID(), 5, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.GetDispatchCandidatesQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetDispatchCandidatesQueryIsNotConstructed)
	})
}
