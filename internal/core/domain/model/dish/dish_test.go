package dish_test

import (
	"testing"

	"comanda/internal/core/domain/model/dish"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDish(t *testing.T) {
	t.Run("creates_available_dish", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := dish.NewDish(id, "Pizza Margherita", kernel.MustMoney("35.00"),
			"Molho de tomate, mussarela e manjericão", "", "Pizzas")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Pizza Margherita", d.Name())
		assert.True(t, d.Price().IsEqual(kernel.MustMoney("35")))
		assert.Equal(t, "Pizzas", d.Category())
		assert.True(t, d.Available())
	})

	t.Run("optional_fields_may_be_empty", func(t *testing.T) {
		d, err := dish.NewDish(kernel.NewUUID(), "Suco de Laranja", kernel.MustMoney("8"), "", "", "")
		require.NoError(t, err)
		assert.Empty(t, d.Description())
		assert.Empty(t, d.Image())
		assert.Empty(t, d.Category())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := dish.NewDish(kernel.NewUUID(), "", kernel.MustMoney("10"), "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		var id kernel.UUID
		_, err := dish.NewDish(id, "Pizza", kernel.MustMoney("10"), "", "", "")
		require.Error(t, err)
	})
}

func TestRestoreDish(t *testing.T) {
	t.Run("restores_unavailable_dish", func(t *testing.T) {
		d, err := dish.RestoreDish(kernel.NewUUID(), "Feijoada", kernel.MustMoney("42"),
			"", "", "Pratos Principais", false)

		require.NoError(t, err)
		assert.False(t, d.Available())
	})
}

func TestDish_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var d dish.Dish
		require.ErrorIs(t, d.Validate(), dish.ErrDishIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var d *dish.Dish
		require.ErrorIs(t, d.Validate(), dish.ErrDishIsNotConstructed)
	})
}

func TestDish_Edits(t *testing.T) {
	newDish := func(t *testing.T) *dish.Dish {
		t.Helper()
		d, err := dish.NewDish(kernel.NewUUID(), "Salada Caesar", kernel.MustMoney("22"), "", "", "Saladas")
		require.NoError(t, err)
		return d
	}

	t.Run("rename_rejects_empty", func(t *testing.T) {
		d := newDish(t)
		require.ErrorIs(t, d.Rename(""), errs.ErrValueIsRequired)
		assert.Equal(t, "Salada Caesar", d.Name())
	})

	t.Run("change_price", func(t *testing.T) {
		d := newDish(t)
		d.ChangePrice(kernel.MustMoney("24.50"))
		assert.True(t, d.Price().IsEqual(kernel.MustMoney("24.50")))
	})

	t.Run("clear_optional_fields", func(t *testing.T) {
		d := newDish(t)
		d.SetCategory("")
		d.SetDescription("")
		assert.Empty(t, d.Category())
		assert.Empty(t, d.Description())
	})

	t.Run("toggle_availability", func(t *testing.T) {
		d := newDish(t)
		d.SetAvailable(false)
		assert.False(t, d.Available())
	})
}
