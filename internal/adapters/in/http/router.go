// Package http is the inbound HTTP adapter: an echo server exposing the use cases under
// /api/v1 together with health, metrics and API documentation endpoints.
package http

import (
	"fmt"
	"net/http"
	"sync"

	"delivery-api/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

var registerSwaggerOnce sync.Once

// RouterConfig carries the ambient dependencies of the router.
type RouterConfig struct {
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// NewRouter builds the echo instance serving server and the operational endpoints.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "http"))

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	metrics, err := NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	doc, err := openAPIDocument()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.ERROR)
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewProblemHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(metrics.Middleware())

	servers.RegisterHandlersWithBaseURL(e, server, servers.BaseURL)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// openAPIDocument renders the embedded document as JSON and publishes it to swag for the UI.
func openAPIDocument() ([]byte, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	doc, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          swagger.Info.Version,
			Title:            swagger.Info.Title,
			Description:      swagger.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(doc),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})

	return doc, nil
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
