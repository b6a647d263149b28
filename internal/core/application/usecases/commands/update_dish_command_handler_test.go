package commands_test

import (
	"testing"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDishCommand(t *testing.T) {
	t.Run("all fields omitted is a valid no-op command", func(t *testing.T) {
		cmd, err := commands.NewUpdateDishCommand(
			adminActor(t), kernel.NewUUID(), nil, nil, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, cmd.Name())
		assert.Nil(t, cmd.Price())
		assert.Nil(t, cmd.Available())
	})

	t.Run("present empty name fails", func(t *testing.T) {
		name := ""
		_, err := commands.NewUpdateDishCommand(
			adminActor(t), kernel.NewUUID(), &name, nil, nil, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateDishCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := sampleDish(t, "Moqueca", "58.00")
	name := "Moqueca Baiana"
	price := kernel.MustMoney("62.00")
	available := false
	cmd, err := commands.NewUpdateDishCommand(
		adminActor(t), d.ID(), &name, &price, nil, nil, nil, &available)
	require.NoError(t, err)

	repo := new(MockDishRepository)
	uow := new(MockDishUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		repo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDishUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "Moqueca Baiana", d.Name())
	assert.True(t, d.Price().IsEqual(price))
	assert.False(t, d.Available())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDishCommandHandler_Handle_OmittedFieldsUntouched(t *testing.T) {
	ctx := t.Context()
	d := sampleDish(t, "Moqueca", "58.00")
	d.SetDescription("fish stew")
	available := false
	cmd, err := commands.NewUpdateDishCommand(
		adminActor(t), d.ID(), nil, nil, nil, nil, nil, &available)
	require.NoError(t, err)

	repo := new(MockDishRepository)
	uow := new(MockDishUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		repo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDishUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDishCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "Moqueca", d.Name())
	assert.Equal(t, "fish stew", d.Description())
	assert.False(t, d.Available())
}

func TestUpdateDishCommandHandler_Handle_GarcomForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateDishCommand(
		garcomActor(t), kernel.NewUUID(), nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	factory := new(MockDishUoWFactory)
	h := commands.NewUpdateDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateDishCommandHandler_Handle_DishNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateDishCommand(
		adminActor(t), id, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockDishRepository)
	uow := new(MockDishUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("dish", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDishUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
