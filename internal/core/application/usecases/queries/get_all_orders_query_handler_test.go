package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"comanda/internal/adapters/out/postgres/dishrepo"
	"comanda/internal/adapters/out/postgres/orderrepo"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	seq       int
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&dishrepo.DishDTO{}, &orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, dishes").Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) insertDish(name, price string) uuid.UUID {
	id := uuid.New()
	err := suite.db.Exec(`
		INSERT INTO dishes (id, name, description, price, image, category, available)
		VALUES (?, ?, '', ?, '', '', true)
	`, id, name, price).Error
	suite.Require().NoError(err)
	return id
}

func (suite *GetAllOrdersQueryHandlerTestSuite) insertOrder(
	total string,
	createdAt time.Time,
) uuid.UUID {
	suite.seq++
	id := uuid.New()
	err := suite.db.Exec(`
		INSERT INTO orders (id, number, type, status, customer_name, customer_phone,
			table_number, delivery_address, total, created_by, created_at)
		VALUES (?, ?, 'MESA', 'ABERTO', '', '', 1, '', ?, ?, ?)
	`, id, fmt.Sprintf("ORD-%06d", suite.seq), total, uuid.New(), createdAt).Error
	suite.Require().NoError(err)
	return id
}

func (suite *GetAllOrdersQueryHandlerTestSuite) insertItem(
	orderID, dishID uuid.UUID,
	quantity int,
	price, note string,
) {
	err := suite.db.Exec(`
		INSERT INTO order_items (order_id, dish_id, quantity, price, note)
		VALUES (?, ?, ?, ?, ?)
	`, orderID, dishID, quantity, price, note).Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_NewestFirstWithItems() {
	dishID := suite.insertDish("Moqueca", "58.00")

	older := suite.insertOrder("58.00", time.Now().Add(-time.Hour))
	newer := suite.insertOrder("116.00", time.Now())
	suite.insertItem(older, dishID, 1, "58.00", "")
	suite.insertItem(newer, dishID, 2, "58.00", "no coriander")

	query := queries.NewGetAllOrdersQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].Total.IsEqual(kernel.MustMoney("116.00")), "Newest order first")
	suite.Require().Len(result[0].Items, 1)
	suite.Equal("Moqueca", result[0].Items[0].DishName)
	suite.Equal(2, result[0].Items[0].Quantity)
	suite.Equal("no coriander", result[0].Items[0].Note)
	suite.True(result[0].Items[0].Subtotal.IsEqual(kernel.MustMoney("116.00")))

	suite.Require().Len(result[1].Items, 1)
	suite.Equal(1, result[1].Items[0].Quantity)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestGetOrderHandle_ReturnsOrderWithItems() {
	dishID := suite.insertDish("Caldinho", "12.00")
	orderID := suite.insertOrder("24.00", time.Now())
	suite.insertItem(orderID, dishID, 2, "12.00", "")

	id, err := kernel.UUIDFromBytes(orderID[:])
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("MESA", result.Type)
	suite.Equal("ABERTO", result.Status)
	suite.Require().Len(result.Items, 1)
	suite.Equal("Caldinho", result.Items[0].DishName)
	suite.True(result.Total.IsEqual(kernel.MustMoney("24.00")))
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestGetOrderHandle_UnknownID_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
