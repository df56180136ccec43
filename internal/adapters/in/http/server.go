// Package http exposes the processing pipeline and the order read model over
// an echo HTTP server.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	processOrdersHandler commands.ProcessOrdersCommandHandler
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
) *Server {
	return &Server{
		processOrdersHandler: processOrdersHandler,
		getUserOrdersHandler: getUserOrdersHandler,
	}
}

// Error is the JSON error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRoutes mounts all routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/users/:userID/orders/process", s.ProcessOrders)
	api.GET("/users/:userID/orders", s.GetUserOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ProcessOrders handles POST /api/v1/users/:userID/orders/process - runs one
// batch for the user and returns the consolidated BatchResult. Degraded runs
// still answer 200; callers inspect success and failed_orders.
func (s *Server) ProcessOrders(ctx echo.Context) error {
	userID, err := parseUserID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "userID must be a positive integer",
		})
	}

	cmd, err := commands.NewProcessOrdersCommand(userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "userID must be a positive integer",
		})
	}

	result, err := s.processOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process orders",
		})
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetUserOrders handles GET /api/v1/users/:userID/orders - returns the
// persisted state of the user's orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := parseUserID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "userID must be a positive integer",
		})
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "userID must be a positive integer",
		})
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

func parseUserID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("userID"), 10, 64)
}
