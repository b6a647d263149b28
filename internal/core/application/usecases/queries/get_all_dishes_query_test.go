package queries_test

import (
	"testing"

	"comanda/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllDishesQuery_Valid(t *testing.T) {
	query := queries.NewGetAllDishesQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllDishesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllDishesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllDishesQueryIsNotConstructed)
}
