package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medilog/internal/errors"
	"medilog/internal/model"
	"medilog/internal/service"
)

// MedicationHandler handles medication logging and history endpoints.
type MedicationHandler struct {
	svc service.MedicationService
}

// NewMedicationHandler creates a new medication handler.
func NewMedicationHandler(svc service.MedicationService) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

// LogMedicationRequest represents a medication log request.
type LogMedicationRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	MedicationName string `json:"medication_name" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
}

// LogResponse represents a log append response.
type LogResponse struct {
	Message string `json:"message"`
	LogID   string `json:"log_id"`
}

// MedicationHistoryResponse represents a medication history response.
type MedicationHistoryResponse struct {
	Logs []model.MedicationLog `json:"logs"`
}

// Log godoc
// @Summary Record a medication intake
// @Tags medication
// @Accept json
// @Produce json
// @Param request body LogMedicationRequest true "Medication log data"
// @Success 200 {object} LogResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /medication/log [post]
func (h *MedicationHandler) Log(c echo.Context) error {
	var req LogMedicationRequest
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

	logID, err := h.svc.Log(c.Request().Context(), req.UserID, req.MedicationName, req.Dosage)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LogResponse{
		Message: "Medication logged successfully",
		LogID:   logID,
	})
}

// History godoc
// @Summary Retrieve medication history for a user
// @Tags medication
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} MedicationHistoryResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /medication/history/{user_id} [get]
func (h *MedicationHandler) History(c echo.Context) error {
	logs, err := h.svc.History(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MedicationHistoryResponse{Logs: logs})
}
