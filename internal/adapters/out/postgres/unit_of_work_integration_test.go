package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "comanda/internal/adapters/out/postgres"
	"comanda/internal/adapters/out/postgres/dishrepo"
	"comanda/internal/adapters/out/postgres/orderrepo"
	"comanda/internal/adapters/out/postgres/summaryrepo"
	"comanda/internal/core/domain/model/dish"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/summary"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// then migrates the schema and creates the order number sequence.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&dishrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&summaryrepo.SummaryDTO{},
	)
	suite.Require().NoError(err)

	err = db.Exec("CREATE SEQUENCE IF NOT EXISTS order_numbers").Error
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, dishes, daily_summaries").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) addDish(name, price string) *dish.Dish {
	d, err := dish.NewDish(kernel.NewUUID(), name, kernel.MustMoney(price), "", "", "")
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DishRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) addOrder(
	d *dish.Dish,
	orderType order.Type,
	createdAt time.Time,
) *order.Order {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.OrderRepository()
	seq, err := repo.NextNumber(ctx)
	suite.Require().NoError(err)
	number, err := order.NumberFromSequence(seq)
	suite.Require().NoError(err)

	item, err := order.NewItem(d.ID(), 2, d.Price(), "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, orderType,
		order.Details{TableNumber: 5},
		[]order.Item{item}, kernel.NewUUID(), createdAt,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated
// instances that expose all three repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.DishRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.SummaryRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit/rollback without an
// active transaction fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_RollbackDiscardsChanges verifies nothing lands after a
// rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	d, err := dish.NewDish(kernel.NewUUID(), "Moqueca", kernel.MustMoney("58.00"), "", "", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DishRepository().Add(ctx, d))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().DishRepository().Get(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestOrderRepository_AddAndGet verifies the order round trip including
// items, captured prices and the computed total.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_AddAndGet() {
	ctx := context.Background()
	d := suite.addDish("Moqueca", "58.00")
	o := suite.addOrder(d, order.TypeMesa, time.Now())

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(loaded.Number().IsEqual(o.Number()))
	suite.Equal(order.TypeMesa, loaded.Type())
	suite.Equal(order.StatusAberto, loaded.Status())
	suite.Equal(5, loaded.Details().TableNumber)
	suite.Require().Len(loaded.Items(), 1)
	suite.True(loaded.Items()[0].Price().IsEqual(kernel.MustMoney("58.00")))
	suite.True(loaded.Total().IsEqual(kernel.MustMoney("116.00")))
}

// TestOrderRepository_NextNumber verifies the sequence hands out strictly
// increasing values.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_NextNumber() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	first, err := repo.NextNumber(ctx)
	suite.Require().NoError(err)
	second, err := repo.NextNumber(ctx)
	suite.Require().NoError(err)

	suite.Greater(second, first)
}

// TestOrderRepository_UpdateKeepsItems verifies updates touch status and
// details only.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_UpdateKeepsItems() {
	ctx := context.Background()
	d := suite.addDish("Moqueca", "58.00")
	o := suite.addOrder(d, order.TypeMesa, time.Now())

	suite.Require().NoError(o.Close())
	o.SetCustomerName("Ana")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusFechado, loaded.Status())
	suite.Equal("Ana", loaded.Details().CustomerName)
	suite.Require().Len(loaded.Items(), 1)
	suite.True(loaded.Total().IsEqual(kernel.MustMoney("116.00")))
}

// TestDishRepository_PriceChangeLeavesCapturedPrices verifies that editing
// a dish after an order was placed does not touch the prices captured on
// the order's items.
func (suite *UnitOfWorkIntegrationTestSuite) TestDishRepository_PriceChangeLeavesCapturedPrices() {
	ctx := context.Background()
	d := suite.addDish("Moqueca", "58.00")
	o := suite.addOrder(d, order.TypeMesa, time.Now())

	d.ChangePrice(kernel.MustMoney("72.00"))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DishRepository().Update(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Items(), 1)
	suite.True(loaded.Items()[0].Price().IsEqual(kernel.MustMoney("58.00")))
	suite.True(loaded.Total().IsEqual(kernel.MustMoney("116.00")))
}

// TestDishRepository_DeleteReferencedDishBlocked verifies the RESTRICT
// foreign key from order items to dishes.
func (suite *UnitOfWorkIntegrationTestSuite) TestDishRepository_DeleteReferencedDishBlocked() {
	ctx := context.Background()
	d := suite.addDish("Moqueca", "58.00")
	suite.addOrder(d, order.TypeMesa, time.Now())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.DishRepository().Delete(ctx, d.ID())
	suite.Require().Error(err, "Deleting a dish on an open order must fail")
	suite.Require().NoError(uow.Rollback(ctx))

	// The dish must survive
	_, err = suite.factory.Create().DishRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
}

// TestShiftClose_Atomicity verifies the read-aggregate-purge sequence in
// one unit of work: summary written and orders deleted together.
func (suite *UnitOfWorkIntegrationTestSuite) TestShiftClose_Atomicity() {
	ctx := context.Background()
	d := suite.addDish("Moqueca", "58.00")
	now := time.Now()
	o1 := suite.addOrder(d, order.TypeMesa, now)
	o2 := suite.addOrder(d, order.TypeDelivery, now)

	suite.Require().NoError(o1.Close())
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o1))
	suite.Require().NoError(uow.Commit(ctx))

	day := summary.Day(now)
	closedBy := kernel.NewUUID()

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	orders, err := uow.OrderRepository().GetAllCreatedBetween(ctx, day, day.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	s, err := summary.BuildDailySummary(day, orders, closedBy, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.SummaryRepository().Upsert(ctx, s))

	ids := []kernel.UUID{o1.ID(), o2.ID()}
	suite.Require().NoError(uow.OrderRepository().DeleteByIDs(ctx, ids))
	suite.Require().NoError(uow.Commit(ctx))

	// Orders and their items are gone
	_, err = suite.factory.Create().OrderRepository().Get(ctx, o1.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	suite.Require().NoError(suite.db.Table("order_items").Count(&itemCount).Error)
	suite.Equal(int64(0), itemCount, "Cascade should remove order items")

	// Summary landed with both orders counted
	loaded, err := suite.factory.Create().SummaryRepository().GetByDate(ctx, day)
	suite.Require().NoError(err)
	suite.Equal(2, loaded.Totals().TotalOrders)
	suite.True(loaded.Totals().TotalRevenue.IsEqual(kernel.MustMoney("232.00")))
	suite.True(loaded.ClosedBy().IsEqual(closedBy))
}

// TestSummaryRepository_UpsertReplaces verifies the day's row is replaced,
// not duplicated, on a second upsert.
func (suite *UnitOfWorkIntegrationTestSuite) TestSummaryRepository_UpsertReplaces() {
	ctx := context.Background()
	day := summary.Day(time.Now())
	closedBy := kernel.NewUUID()

	first, err := summary.BuildDailySummary(day, nil, closedBy, time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SummaryRepository().Upsert(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	d := suite.addDish("Moqueca", "58.00")
	o := suite.addOrder(d, order.TypeDelivery, time.Now())

	second, err := summary.BuildDailySummary(day, []*order.Order{o}, closedBy, time.Now())
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SummaryRepository().Upsert(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	var count int64
	suite.Require().NoError(suite.db.Table("daily_summaries").Count(&count).Error)
	suite.Equal(int64(1), count)

	loaded, err := suite.factory.Create().SummaryRepository().GetByDate(ctx, day)
	suite.Require().NoError(err)
	suite.Equal(1, loaded.Totals().TotalOrders)
	suite.True(loaded.Totals().DeliveryRevenue.IsEqual(kernel.MustMoney("116.00")))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
