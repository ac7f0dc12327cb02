// Package http exposes the order management REST API on Echo.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wael7705/movo-project/internal/core/application/usecases/commands"
	"github.com/wael7705/movo-project/internal/core/application/usecases/queries"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/order"
	"github.com/wael7705/movo-project/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultCandidateRadiusKm = 5.0
	defaultMaxCandidates     = 5
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderView is the JSON representation of an order returned by write endpoints.
type OrderView struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	RestaurantID  string     `json:"restaurant_id"`
	CaptainID     *string    `json:"captain_id,omitempty"`
	Status        string     `json:"status"`
	Substage      string     `json:"substage,omitempty"`
	IsDeferred    bool       `json:"is_deferred"`
	IsScheduled   bool       `json:"is_scheduled"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDemoOrderHandler commands.CreateDemoOrderCommandHandler
	advanceOrderHandler    commands.AdvanceOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	setOrderStatusHandler  commands.SetOrderStatusCommandHandler
	assignCaptainHandler   commands.AssignCaptainCommandHandler

	// Query handlers
	getOrderCardsHandler         queries.GetOrderCardsQueryHandler
	getOrderCountsHandler        queries.GetOrderCountsQueryHandler
	getDispatchCandidatesHandler queries.GetDispatchCandidatesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDemoOrderHandler commands.CreateDemoOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	assignCaptainHandler commands.AssignCaptainCommandHandler,
	getOrderCardsHandler queries.GetOrderCardsQueryHandler,
	getOrderCountsHandler queries.GetOrderCountsQueryHandler,
	getDispatchCandidatesHandler queries.GetDispatchCandidatesQueryHandler,
) *Server {
	return &Server{
		createDemoOrderHandler:       createDemoOrderHandler,
		advanceOrderHandler:          advanceOrderHandler,
		cancelOrderHandler:           cancelOrderHandler,
		setOrderStatusHandler:        setOrderStatusHandler,
		assignCaptainHandler:         assignCaptainHandler,
		getOrderCardsHandler:         getOrderCardsHandler,
		getOrderCountsHandler:        getOrderCountsHandler,
		getDispatchCandidatesHandler: getDispatchCandidatesHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/demo", s.CreateDemoOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/counts", s.GetOrderCounts)
	api.PATCH("/orders/:order_id/next", s.AdvanceOrder)
	api.PATCH("/orders/:order_id/cancel", s.CancelOrder)
	api.PATCH("/orders/:order_id/status", s.SetOrderStatus)
	api.GET("/assign/orders/:order_id/candidates", s.GetDispatchCandidates)
	api.POST("/assign/orders/:order_id/assign", s.AssignCaptain)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDemoOrder handles POST /api/v1/orders/demo - creates a demo order
// from the first seeded customer and restaurant.
func (s *Server) CreateDemoOrder(ctx echo.Context) error {
	cmd := commands.NewCreateDemoOrderCommand()

	created, err := s.createDemoOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNoSeedData) {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "No seed customer or restaurant available",
			})
		}
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderView(created))
}

// GetOrders handles GET /api/v1/orders - retrieves dashboard order cards.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrderCardsQuery()

	cards, err := s.getOrderCardsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cards)
}

// GetOrderCounts handles GET /api/v1/orders/counts - per-status totals.
func (s *Server) GetOrderCounts(ctx echo.Context) error {
	query := queries.NewGetOrderCountsQuery()

	counts, err := s.getOrderCountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, counts)
}

// AdvanceOrder handles PATCH /api/v1/orders/:order_id/next - moves the order
// one step along its lifecycle.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.invalidOrderID(ctx)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	updated, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderView(updated))
}

// CancelOrder handles PATCH /api/v1/orders/:order_id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.invalidOrderID(ctx)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	updated, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderView(updated))
}

// SetOrderStatus handles PATCH /api/v1/orders/:order_id/status - operator
// override to a canonical status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.invalidOrderID(ctx)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, body.Status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	updated, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderView(updated))
}

// GetDispatchCandidates handles GET /api/v1/assign/orders/:order_id/candidates.
// Accepts radius_km and max_candidates query parameters.
func (s *Server) GetDispatchCandidates(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.invalidOrderID(ctx)
	}

	radiusKm := defaultCandidateRadiusKm
	if raw := ctx.QueryParam("radius_km"); raw != "" {
		if radiusKm, err = strconv.ParseFloat(raw, 64); err != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "radius_km must be a number",
			})
		}
	}

	maxCandidates := defaultMaxCandidates
	if raw := ctx.QueryParam("max_candidates"); raw != "" {
		if maxCandidates, err = strconv.Atoi(raw); err != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "max_candidates must be an integer",
			})
		}
	}

	query, err := queries.NewGetDispatchCandidatesQuery(orderID, radiusKm, maxCandidates)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	candidates, err := s.getDispatchCandidatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, candidates)
}

// AssignCaptain handles POST /api/v1/assign/orders/:order_id/assign.
// An Idempotency-Key header makes retries safe.
func (s *Server) AssignCaptain(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.invalidOrderID(ctx)
	}

	var body struct {
		CaptainID string `json:"captain_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	captainID, err := kernel.UUIDFromString(body.CaptainID)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "captain_id must be a valid UUID",
		})
	}

	idempotencyKey := ctx.Request().Header.Get("Idempotency-Key")

	cmd, err := commands.NewAssignCaptainCommand(orderID, captainID, idempotencyKey)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.assignCaptainHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if result.Duplicate {
		return ctx.JSON(http.StatusOK, map[string]any{"duplicate": true})
	}

	return ctx.JSON(http.StatusOK, orderView(result.Order))
}

// orderIDParam parses the order_id path parameter.
func (s *Server) orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("order_id"))
}

func (s *Server) invalidOrderID(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnprocessableEntity, Error{
		Code:    http.StatusUnprocessableEntity,
		Message: "order_id must be a valid UUID",
	})
}

// errorResponse maps domain and application errors to HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// orderView maps an order aggregate to its response shape.
func orderView(o *order.Order) OrderView {
	var captainID *string
	if id := o.Captain(); id != nil {
		value := id.String()
		captainID = &value
	}

	return OrderView{
		ID:            o.ID().String(),
		CustomerID:    o.CustomerID().String(),
		RestaurantID:  o.RestaurantID().String(),
		CaptainID:     captainID,
		Status:        o.CurrentStatus().String(),
		Substage:      o.Substage().String(),
		IsDeferred:    o.IsDeferred(),
		IsScheduled:   o.IsScheduled(),
		ScheduledTime: o.ScheduledTime(),
		CreatedAt:     o.CreatedAt(),
	}
}
