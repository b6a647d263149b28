package http

import (
	"net/http"
	"time"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/summary"
	"comanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server handles the HTTP surface of the service. It translates requests
// into commands and queries, runs them and renders the results; every
// failure goes through the shared error mapping.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	deleteDishHandler  commands.DeleteDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	closeOrderHandler  commands.CloseOrderCommandHandler
	closeShiftHandler  commands.CloseShiftCommandHandler

	// Query handlers
	getAllDishesHandler  queries.GetAllDishesQueryHandler
	getDishHandler       queries.GetDishQueryHandler
	getAllOrdersHandler  queries.GetAllOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	cashierReportHandler queries.CashierReportQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createDishHandler commands.CreateDishCommandHandler,
	updateDishHandler commands.UpdateDishCommandHandler,
	deleteDishHandler commands.DeleteDishCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	closeOrderHandler commands.CloseOrderCommandHandler,
	closeShiftHandler commands.CloseShiftCommandHandler,
	getAllDishesHandler queries.GetAllDishesQueryHandler,
	getDishHandler queries.GetDishQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	cashierReportHandler queries.CashierReportQueryHandler,
) *Server {
	return &Server{
		createDishHandler:    createDishHandler,
		updateDishHandler:    updateDishHandler,
		deleteDishHandler:    deleteDishHandler,
		createOrderHandler:   createOrderHandler,
		updateOrderHandler:   updateOrderHandler,
		closeOrderHandler:    closeOrderHandler,
		closeShiftHandler:    closeShiftHandler,
		getAllDishesHandler:  getAllDishesHandler,
		getDishHandler:       getDishHandler,
		getAllOrdersHandler:  getAllOrdersHandler,
		getOrderHandler:      getOrderHandler,
		cashierReportHandler: cashierReportHandler,
	}
}

// RegisterRoutes wires every route onto the echo instance. The health probe
// and the API document stay outside the authenticated group.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	validation, err := RequestValidationMiddleware()
	if err != nil {
		return err
	}

	e.GET("/health", s.Health)
	e.GET("/openapi.yaml", s.OpenAPIDocument)

	api := e.Group("/api/v1", ActorMiddleware(), validation)
	api.GET("/dishes", s.GetDishes)
	api.POST("/dishes", s.CreateDish)
	api.GET("/dishes/:id", s.GetDish)
	api.PATCH("/dishes/:id", s.UpdateDish)
	api.DELETE("/dishes/:id", s.DeleteDish)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/close", s.CloseOrder)
	api.POST("/shift/close", s.CloseShift)
	api.GET("/cashier/report", s.CashierReport)

	return nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// OpenAPIDocument handles GET /openapi.yaml - serves the API document.
func (s *Server) OpenAPIDocument(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", OpenAPISpec())
}

// GetDishes handles GET /api/v1/dishes - retrieves the menu.
func (s *Server) GetDishes(ctx echo.Context) error {
	query := queries.NewGetAllDishesQuery()

	dishes, err := s.getAllDishesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Dish, len(dishes))
	for i, d := range dishes {
		response[i] = Dish{
			ID:          d.ID.String(),
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price.String(),
			Image:       d.Image,
			Category:    d.Category,
			Available:   d.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDish handles POST /api/v1/dishes - adds a dish to the menu.
func (s *Server) CreateDish(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewDish
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("price", err))
	}

	dishID := kernel.NewUUID()
	cmd, err := commands.NewCreateDishCommand(
		actor, dishID, body.Name, price, body.Description, body.Image, body.Category,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Dish{
		ID:          dishID.String(),
		Name:        body.Name,
		Description: body.Description,
		Price:       price.String(),
		Image:       body.Image,
		Category:    body.Category,
		Available:   true,
	})
}

// GetDish handles GET /api/v1/dishes/:id.
func (s *Server) GetDish(ctx echo.Context) error {
	dishID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetDishQuery(dishID)
	if err != nil {
		return writeError(ctx, err)
	}

	d, err := s.getDishHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Dish{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price.String(),
		Image:       d.Image,
		Category:    d.Category,
		Available:   d.Available,
	})
}

// UpdateDish handles PATCH /api/v1/dishes/:id - edits the present fields.
func (s *Server) UpdateDish(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	dishID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var body DishPatch
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	var price *kernel.Money
	if body.Price != nil {
		parsed, err := kernel.NewMoneyFromString(*body.Price)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("price", err))
		}
		price = &parsed
	}

	cmd, err := commands.NewUpdateDishCommand(
		actor, dishID,
		body.Name, price, body.Description, body.Image, body.Category, body.Available,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDish handles DELETE /api/v1/dishes/:id.
func (s *Server) DeleteDish(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	dishID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteDishCommand(actor, dishID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves the board, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:              o.ID.String(),
			Number:          o.Number,
			Type:            o.Type,
			Status:          o.Status,
			CustomerName:    o.CustomerName,
			CustomerPhone:   o.CustomerPhone,
			TableNumber:     o.TableNumber,
			DeliveryAddress: o.DeliveryAddress,
			Total:           o.Total.String(),
			Items:           itemsResponse(o.Items),
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderType, err := order.ParseType(body.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.ItemSpec, len(body.Items))
	for i, item := range body.Items {
		dishID, err := kernel.UUIDFromString(item.DishID)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("items", err))
		}
		items[i] = commands.ItemSpec{
			DishID:   dishID,
			Quantity: item.Quantity,
			Note:     item.Note,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor,
		kernel.NewUUID(),
		orderType,
		order.Details{
			CustomerName:    body.CustomerName,
			CustomerPhone:   body.CustomerPhone,
			TableNumber:     body.TableNumber,
			DeliveryAddress: body.DeliveryAddress,
		},
		items,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderAggregateResponse(o))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:              o.ID.String(),
		Number:          o.Number,
		Type:            o.Type,
		Status:          o.Status,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		TableNumber:     o.TableNumber,
		DeliveryAddress: o.DeliveryAddress,
		Total:           o.Total.String(),
		Items:           itemsResponse(o.Items),
		CreatedAt:       o.CreatedAt,
	})
}

// UpdateOrder handles PATCH /api/v1/orders/:id - moves the status and/or
// edits the customer details.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var body OrderPatch
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	var status *order.Status
	if body.Status != nil {
		parsed, err := order.ParseStatus(*body.Status)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(
		actor, orderID, status,
		body.CustomerName, body.CustomerPhone, body.TableNumber, body.DeliveryAddress,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseOrder handles POST /api/v1/orders/:id/close - settles a table bill.
func (s *Server) CloseOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewCloseOrderCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.closeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderAggregateResponse(o))
}

// CloseShift handles POST /api/v1/shift/close - aggregates and purges the
// day's orders. Without a date in the body the current day is closed.
func (s *Server) CloseShift(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body CloseShift
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	at := time.Now()
	if body.Date != nil {
		at = body.Date.Time
	}

	cmd, err := commands.NewCloseShiftCommand(actor, at)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.closeShiftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summaryResponse(result))
}

// CashierReport handles GET /api/v1/cashier/report - revenue figures for the
// calendar window containing now.
func (s *Server) CashierReport(ctx echo.Context) error {
	period, err := queries.ParsePeriod(ctx.QueryParam("period"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewCashierReportQuery(period, time.Now())
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.cashierReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CashierReport{
		Period:          report.Period,
		From:            openapi_types.Date{Time: report.From},
		To:              openapi_types.Date{Time: report.To},
		TotalOrders:     report.TotalOrders,
		TotalRevenue:    report.TotalRevenue.String(),
		MesaOrders:      report.MesaOrders,
		MesaRevenue:     report.MesaRevenue.String(),
		DeliveryOrders:  report.DeliveryOrders,
		DeliveryRevenue: report.DeliveryRevenue.String(),
		AverageTicket:   report.AverageTicket.String(),
	})
}

func itemsResponse(items []queries.OrderItemResponse) []OrderItem {
	response := make([]OrderItem, len(items))
	for i, item := range items {
		response[i] = OrderItem{
			DishID:   item.DishID.String(),
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price.String(),
			Subtotal: item.Subtotal.String(),
			Note:     item.Note,
		}
	}
	return response
}

// orderAggregateResponse renders an order straight from the aggregate, as
// returned by the create and close commands. Dish names are a read model
// concern and stay empty here.
func orderAggregateResponse(o *order.Order) Order {
	items := make([]OrderItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItem{
			DishID:   item.DishID().String(),
			Quantity: item.Quantity(),
			Price:    item.Price().String(),
			Subtotal: item.Subtotal().String(),
			Note:     item.Note(),
		}
	}

	details := o.Details()
	return Order{
		ID:              o.ID().String(),
		Number:          o.Number().String(),
		Type:            o.Type().String(),
		Status:          o.Status().String(),
		CustomerName:    details.CustomerName,
		CustomerPhone:   details.CustomerPhone,
		TableNumber:     details.TableNumber,
		DeliveryAddress: details.DeliveryAddress,
		Total:           o.Total().String(),
		Items:           items,
		CreatedAt:       o.CreatedAt(),
	}
}

func summaryResponse(s *summary.DailySummary) DailySummary {
	totals := s.Totals()
	return DailySummary{
		Date:            openapi_types.Date{Time: s.Date()},
		TotalOrders:     totals.TotalOrders,
		TotalRevenue:    totals.TotalRevenue.String(),
		MesaOrders:      totals.MesaOrders,
		MesaRevenue:     totals.MesaRevenue.String(),
		DeliveryOrders:  totals.DeliveryOrders,
		DeliveryRevenue: totals.DeliveryRevenue.String(),
		AverageTicket:   totals.AverageTicket.String(),
		ClosedBy:        s.ClosedBy().String(),
		ClosedAt:        s.ClosedAt(),
	}
}
