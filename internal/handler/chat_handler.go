package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medilog/internal/chat"
	"medilog/internal/errors"
)

// ChatHandler handles the keyword chatbot endpoint.
type ChatHandler struct {
	matcher *chat.Matcher
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(matcher *chat.Matcher) *ChatHandler {
	return &ChatHandler{matcher: matcher}
}

// ChatRequest represents a chat request.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse represents a chat response.
type ChatResponse struct {
	Response string `json:"response"`
}

// Chat godoc
// @Summary Get a health assistant reply
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat message"
// @Success 200 {object} ChatResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /ai/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req ChatRequest
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
	return c.JSON(http.StatusOK, ChatResponse{Response: h.matcher.Reply(req.Message)})
}
