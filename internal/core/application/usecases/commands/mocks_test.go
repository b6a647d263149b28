package commands_test

import (
	"context"
	"testing"
	"time"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/dish"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/core/domain/model/summary"
	"comanda/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dish.Dish), args.Error(1)
}
func (m *MockDishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) NextNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepository) GetAllCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) DeleteByIDs(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockSummaryRepository struct{ mock.Mock }

func (m *MockSummaryRepository) Upsert(ctx context.Context, s *summary.DailySummary) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSummaryRepository) GetByDate(ctx context.Context, date time.Time) (*summary.DailySummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*summary.DailySummary), args.Error(1)
}

type MockDishUoW struct{ mock.Mock }

func (m *MockDishUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDishUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDishUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDishUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

type MockDishUoWFactory struct{ mock.Mock }

func (m *MockDishUoWFactory) Create() commands.DishUoW {
	args := m.Called()
	return args.Get(0).(commands.DishUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderingUoW struct{ mock.Mock }

func (m *MockOrderingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderingUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}
func (m *MockOrderingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderingUoWFactory struct{ mock.Mock }

func (m *MockOrderingUoWFactory) Create() commands.OrderingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderingUoW)
}

type MockShiftUoW struct{ mock.Mock }

func (m *MockShiftUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShiftUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShiftUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShiftUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockShiftUoW) SummaryRepository() ports.SummaryRepository {
	args := m.Called()
	return args.Get(0).(ports.SummaryRepository)
}

type MockShiftUoWFactory struct{ mock.Mock }

func (m *MockShiftUoWFactory) Create() commands.ShiftUoW {
	args := m.Called()
	return args.Get(0).(commands.ShiftUoW)
}

func adminActor(t *testing.T) staff.Actor {
	t.Helper()
	actor, err := staff.NewActor(kernel.NewUUID(), staff.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func garcomActor(t *testing.T) staff.Actor {
	t.Helper()
	actor, err := staff.NewActor(kernel.NewUUID(), staff.RoleGarcom)
	require.NoError(t, err)
	return actor
}

func sampleDish(t *testing.T, name, price string) *dish.Dish {
	t.Helper()
	d, err := dish.NewDish(kernel.NewUUID(), name, kernel.MustMoney(price), "", "", "")
	require.NoError(t, err)
	return d
}

func sampleMesaOrder(t *testing.T, actor staff.Actor, price string, quantity int) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), quantity, kernel.MustMoney(price), "")
	require.NoError(t, err)
	number, err := order.NumberFromSequence(1)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), number, order.TypeMesa,
		order.Details{TableNumber: 4},
		[]order.Item{item},
		actor.ID(), time.Now(),
	)
	require.NoError(t, err)
	return o
}
