// Package http exposes the order-management use cases over a REST API.
// It coordinates between HTTP handlers and application use cases: request
// bodies are canonicalized at this boundary, errors are mapped onto the
// HTTP taxonomy and authentication is resolved by middleware before any
// handler runs.
package http

import (
	"io"
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the REST routes to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	addOpinionHandler        commands.AddOpinionCommandHandler

	// Query handlers
	getOrderHandler    queries.GetOrderQueryHandler
	getOrdersHandler   queries.GetOrdersQueryHandler
	getStatusesHandler queries.GetStatusesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	addOpinionHandler commands.AddOpinionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getStatusesHandler queries.GetStatusesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		addOpinionHandler:        addOpinionHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersHandler:         getOrdersHandler,
		getStatusesHandler:       getStatusesHandler,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.GET("/statuses", s.GetStatuses)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/user/:userID", s.GetOrdersByUser)
	api.GET("/orders/status/:status", s.GetOrdersByStatus)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id", s.ChangeOrderStatus)
	api.POST("/orders/:id/opinions", s.AddOpinion)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetStatuses handles GET /api/statuses - retrieves the status vocabulary.
func (s *Server) GetStatuses(ctx echo.Context) error {
	statuses, err := s.getStatusesHandler.Handle(ctx.Request().Context(), queries.NewGetStatusesQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, statuses)
}

// GetOrders handles GET /api/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id", "order ID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, order)
}

// GetOrdersByUser handles GET /api/orders/user/:userID - retrieves one
// user's orders.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	userID, err := pathID(ctx, "userID", "user ID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery().ForUser(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrdersByStatus handles GET /api/orders/status/:status - retrieves
// orders in the given status, referenced by id or name.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery().WithStatus(status.ParseIdentifier(ctx.Param("status")))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders - creates an order for the
// authenticated user and returns the full order view.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID := authenticatedUserID(ctx)
	if userID == 0 {
		return writeError(ctx, errs.NewForbiddenError("authentication required to create an order"))
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCreateOrderCommand(userID, request.toItemInputs())
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// ChangeOrderStatus handles PUT /api/orders/:id - transitions an order and
// returns the updated order view.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id", "order ID")
	if err != nil {
		return writeError(ctx, err)
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	target, err := extractStatusRef(body)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// AddOpinion handles POST /api/orders/:id/opinions - records an opinion for
// the authenticated owner of a completed or cancelled order.
func (s *Server) AddOpinion(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id", "order ID")
	if err != nil {
		return writeError(ctx, err)
	}

	var request AddOpinionRequest
	if err = ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewAddOpinionCommand(orderID, authenticatedUserID(ctx), request.Rating, request.Content)
	if err != nil {
		return writeError(ctx, err)
	}

	opinion, err := s.addOpinionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, queries.OpinionResponse{
		ID:        opinion.ID,
		Rating:    opinion.Rating,
		Content:   opinion.Content,
		CreatedAt: opinion.CreatedAt,
	})
}

// respondWithOrder materializes an order through the read side after a
// successful write, so the client sees the same shape everywhere.
func (s *Server) respondWithOrder(ctx echo.Context, orderID int, code int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(code, order)
}

// pathID parses a positive integer path parameter.
func pathID(ctx echo.Context, param string, name string) (int, error) {
	value, err := strconv.Atoi(ctx.Param(param))
	if err != nil || value <= 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return value, nil
}
