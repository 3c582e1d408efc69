// Package http is the HTTP gateway to the ledger. POST, PUT and DELETE
// requests submit commands; GET requests evaluate queries and never write.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"assettransfer/internal/adapters/in/apierr"
	"assettransfer/internal/core/application/usecases"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server adapts HTTP requests to the application use cases.
type Server struct {
	handlers usecases.Handlers
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

type Option func(*Server)

// WithGatherer sets the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates a server over the given handlers.
func NewServer(handlers usecases.Handlers, opts ...Option) *Server {
	s := &Server{handlers: handlers}
	for _, opt := range opts {
		opt(s)
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Router builds the echo instance with every route registered.
func (s *Server) Router(ctx context.Context) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validateRequest, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.LogAttrs(c.Request().Context(), slog.LevelDebug, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validateRequest)

	api.GET("/assets", s.GetAllAssets)
	api.POST("/assets", s.CreateAsset)
	api.GET("/assets/:id", s.ReadAsset)
	api.PUT("/assets/:id", s.UpdateAsset)

	api.GET("/orders", s.GetAllOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/overdue", s.GetOverdueOrders)
	api.GET("/orders/:id", s.ReadOrder)
	api.PUT("/orders/:id", s.UpdateOrder)

	api.GET("/distributions", s.GetAllDistributions)
	api.POST("/distributions", s.CreateDistribution)
	api.GET("/distributions/:id", s.ReadDistribution)
	api.PUT("/distributions/:id", s.UpdateDistribution)
	api.POST("/distributions/:id/reroute", s.RerouteDistribution)

	api.GET("/sales", s.GetAllSales)
	api.POST("/sales", s.CreateSale)
	api.GET("/sales/:id", s.ReadSale)
	api.PUT("/sales/:id", s.UpdateSale)

	for _, kind := range routeKinds() {
		api.DELETE("/"+kind.path+"/:id", s.deleteRecord(kind.kind))
		api.GET("/"+kind.path+"/:id/exists", s.recordExists(kind.kind))
		api.POST("/"+kind.path+"/:id/transfer", s.transferRecord(kind.kind))
	}

	return e, nil
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		problem apierr.Problem
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &problem):
	case errors.As(err, &httpErr):
		problem = apierr.Problem{
			Status:  httpErr.Code,
			Code:    statusCode(httpErr.Code),
			Message: fmt.Sprint(httpErr.Message),
		}
	default:
		problem = apierr.FromError(err)
	}

	if problem.Status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(problem.Status)
		return
	}
	_ = c.JSON(problem.Status, problem)
}

// statusCode turns an HTTP status into an error code, e.g. 404 into NOT_FOUND.
func statusCode(status int) string {
	if status == http.StatusBadRequest {
		return apierr.CodeInvalidArgument
	}
	text := http.StatusText(status)
	if text == "" {
		return apierr.CodeInternal
	}
	return strings.ReplaceAll(strings.ToUpper(text), " ", "_")
}
