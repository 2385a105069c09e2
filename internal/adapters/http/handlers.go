package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/domain/entities"
	"github.com/mergington/activities/internal/infrastructure/logger"
	"github.com/mergington/activities/internal/ports"
)

// MessageResponse is the confirmation body returned by roster changes
type MessageResponse struct {
	Message string `json:"message"`
}

// RosterRequest carries the student email for signup and unregister
type RosterRequest struct {
	Email string `query:"email" validate:"required"`
}

// ActivityHandler handles activity-related requests
type ActivityHandler struct {
	service ports.ActivityService
	logger  *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service ports.ActivityService, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger,
	}
}

// GetActivities returns the full catalog keyed by activity name
func (h *ActivityHandler) GetActivities(c echo.Context) error {
	activities, err := h.service.List(c.Request().Context())
	if err != nil {
		h.logger.Errorw("List activities failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load activities")
	}

	return c.JSON(http.StatusOK, activities)
}

// Signup adds a student to an activity
func (h *ActivityHandler) Signup(c echo.Context) error {
	name := activityName(c)

	req, err := bindRosterRequest(c)
	if err != nil {
		return err
	}

	message, err := h.service.Signup(c.Request().Context(), name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrActivityNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		case errors.Is(err, entities.ErrAlreadySignedUp):
			return echo.NewHTTPError(http.StatusBadRequest, "Student is already signed up")
		default:
			h.logger.Errorw("Signup failed", "error", err, "activity", name, "email", req.Email)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to sign up student")
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Unregister removes a student from an activity
func (h *ActivityHandler) Unregister(c echo.Context) error {
	name := activityName(c)

	req, err := bindRosterRequest(c)
	if err != nil {
		return err
	}

	message, err := h.service.Unregister(c.Request().Context(), name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrActivityNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		case errors.Is(err, entities.ErrNotSignedUp):
			return echo.NewHTTPError(http.StatusBadRequest, "Student is not signed up for this activity")
		default:
			h.logger.Errorw("Unregister failed", "error", err, "activity", name, "email", req.Email)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to unregister student")
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// activityName returns the unescaped :name path parameter
func activityName(c echo.Context) string {
	raw := c.Param("name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

func bindRosterRequest(c echo.Context) (RosterRequest, error) {
	var req RosterRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	return req, nil
}
