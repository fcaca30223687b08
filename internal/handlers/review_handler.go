package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spendlens/internal/dto"
	"spendlens/internal/errors"
	"spendlens/internal/services"
)

// ReviewHandler handles user story review requests
type ReviewHandler struct {
	reviewService services.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService services.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Review runs a story through the model reviewer. The response is
// always 200 with the report shape; provider failures surface inside
// the report's error block rather than as an HTTP error.
func (h *ReviewHandler) Review(c echo.Context) error {
	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	report := h.reviewService.Review(c.Request().Context(), req)
	return c.JSON(http.StatusOK, report)
}
