package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mergington/activities/docs"
	httpHandlers "github.com/mergington/activities/internal/adapters/http"
	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/application/services"
	"github.com/mergington/activities/internal/infrastructure/config"
	"github.com/mergington/activities/internal/infrastructure/logger"
	"github.com/mergington/activities/internal/infrastructure/storage"
)

// Server represents the HTTP server
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	logger  *logger.Logger
	store   *storage.Store
	service *services.ActivityService
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, store *storage.Store, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	activityRepo := repository.NewActivityRepository(store)
	activityService := services.NewActivityService(activityRepo, appLogger)
	activityHandler := httpHandlers.NewActivityHandler(activityService, appLogger)

	server := &Server{
		echo:    e,
		config:  cfg,
		logger:  appLogger,
		store:   store,
		service: activityService,
	}

	server.setupMiddleware()
	server.setupRoutes(activityHandler)

	if cfg.Metrics.Enabled {
		server.setupMetrics()
	}

	return server, nil
}

// Service returns the activity service, used for startup seeding
func (s *Server) Service() *services.ActivityService {
	return s.service
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(activityHandler *httpHandlers.ActivityHandler) {
	// Front-end entry point and assets
	s.echo.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
	s.echo.Static("/static", s.config.Storage.StaticDir)

	// Activity routes
	s.echo.GET("/activities", activityHandler.GetActivities)
	s.echo.POST("/activities/:name/signup", activityHandler.Signup)
	s.echo.POST("/activities/:name/unregister", activityHandler.Unregister)

	// Health check routes
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "ok"
	checks := make(map[string]interface{})

	if err := s.store.HealthCheck(); err != nil {
		status = "error"
		checks["storage"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		checks["storage"] = map[string]interface{}{
			"status": "ok",
			"file":   s.store.Path(),
		}
	}

	response := map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
		"version": map[string]string{
			"app": s.config.App.Version,
		},
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	if err := s.store.HealthCheck(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "storage_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Infow("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler handles HTTP errors
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		var msg interface{}

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if text, ok := he.Message.(string); ok {
				msg = map[string]string{"message": text}
			} else {
				msg = he.Message
			}
		} else {
			msg = map[string]string{"message": http.StatusText(code)}
		}

		if code == http.StatusInternalServerError {
			logger.Errorw("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, msg)
			}
			if err != nil {
				logger.Errorw("Error sending response", "error", err)
			}
		}
	}
}
