package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medilog/internal/errors"
	"medilog/internal/model"
	"medilog/internal/service"
)

// MoodHandler handles mood logging and history endpoints.
type MoodHandler struct {
	svc service.MoodService
}

// NewMoodHandler creates a new mood handler.
func NewMoodHandler(svc service.MoodService) *MoodHandler {
	return &MoodHandler{svc: svc}
}

// LogMoodRequest represents a mood log request.
type LogMoodRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Mood   string `json:"mood" validate:"required"`
	Notes  string `json:"notes"`
}

// MoodHistoryResponse represents a mood history response.
type MoodHistoryResponse struct {
	Logs []model.MoodLog `json:"logs"`
}

// Log godoc
// @Summary Record a mood entry
// @Tags mood
// @Accept json
// @Produce json
// @Param request body LogMoodRequest true "Mood log data"
// @Success 200 {object} LogResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mood/log [post]
func (h *MoodHandler) Log(c echo.Context) error {
	var req LogMoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	logID, err := h.svc.Log(c.Request().Context(), req.UserID, req.Mood, req.Notes)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LogResponse{
		Message: "Mood logged",
		LogID:   logID,
	})
}

// History godoc
// @Summary Retrieve mood history for a user
// @Tags mood
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} MoodHistoryResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mood/history/{user_id} [get]
func (h *MoodHandler) History(c echo.Context) error {
	logs, err := h.svc.History(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MoodHistoryResponse{Logs: logs})
}
