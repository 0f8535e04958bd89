package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/internal/core/application/usecases/queries"
)

func TestNewGetAllDriversQuery(t *testing.T) {
	t.Run("constructed query is valid", func(t *testing.T) {
		query := queries.NewGetAllDriversQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetAllDriversQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetAllDriversQueryIsNotConstructed)
	})
}
