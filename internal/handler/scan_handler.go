package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"medilog/internal/errors"
	"medilog/internal/service"
)

// ScanHandler handles the drug photo scanning endpoint.
type ScanHandler struct {
	svc service.ScanService
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(svc service.ScanService) *ScanHandler {
	return &ScanHandler{svc: svc}
}

// ScanResponse represents a scan response.
type ScanResponse struct {
	Message string `json:"message"`
	Result  string `json:"result"`
	Details string `json:"details"`
}

// ScanDrug godoc
// @Summary Extract text from a medicine photo
// @Tags scan
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Medicine photo"
// @Success 200 {object} ScanResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /scan/drug [post]
func (h *ScanHandler) ScanDrug(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "image file is required",
			Code:  "VALIDATION_ERROR",
		})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "could not open uploaded file",
			Code:  "VALIDATION_ERROR",
		})
	}
	defer f.Close()
	image, err := io.ReadAll(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "could not read uploaded file",
			Code:  "VALIDATION_ERROR",
		})
	}

	result, err := h.svc.ExtractText(c.Request().Context(), image)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if !result.Found {
		return c.JSON(http.StatusOK, ScanResponse{
			Message: "No text could be identified",
			Result:  "No text found",
			Details: result.Text,
		})
	}
	return c.JSON(http.StatusOK, ScanResponse{
		Message: "Text identified from the image",
		Result:  "Prescription text",
		Details: result.Text,
	})
}
