package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medilog/internal/errors"
	"medilog/internal/service"
)

// TipsHandler handles the condition precautions endpoint.
type TipsHandler struct {
	svc service.TipsService
}

// NewTipsHandler creates a new tips handler.
func NewTipsHandler(svc service.TipsService) *TipsHandler {
	return &TipsHandler{svc: svc}
}

// TipsResponse represents a tips response.
type TipsResponse struct {
	Tips []string `json:"tips"`
}

// Tips godoc
// @Summary Get precautions for the user's condition
// @Tags tips
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} TipsResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tips/{user_id} [get]
func (h *TipsHandler) Tips(c echo.Context) error {
	tips, err := h.svc.ForUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, TipsResponse{Tips: tips})
}
