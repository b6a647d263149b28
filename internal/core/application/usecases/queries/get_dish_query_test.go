package queries_test

import (
	"testing"

	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDishQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetDishQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.DishID().IsEqual(id))
}

func TestNewGetDishQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetDishQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetDishQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDishQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDishQueryIsNotConstructed)
}
