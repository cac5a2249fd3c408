package api

import (
	"errors"
	"net/http"

	reqdto "tutorlink/internal/handler/dto/request"
	"tutorlink/internal/handler/httperr"
	"tutorlink/internal/handler/middleware"
	"tutorlink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
}

func NewReviewHandler(reviewCommands commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{reviewCommands: reviewCommands}
}

// @Summary Create review
// @Description Review a completed order; one review per order
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	learnerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.reviewCommands.CreateReview(c.Request.Context(), learnerID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, commands.ErrNotOrderLearner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrOrderNotCompleted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order is not completed", nil)
		case errors.Is(err, commands.ErrReviewExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order already reviewed", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review data", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}
