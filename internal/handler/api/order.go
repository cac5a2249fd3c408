package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "tutorlink/internal/handler/dto/request"
	resdto "tutorlink/internal/handler/dto/response"
	"tutorlink/internal/handler/httperr"
	"tutorlink/internal/handler/middleware"
	"tutorlink/internal/infra"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Create order
// @Description Request a session on a tutory; the instant must be inside the expanded availability
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	learnerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.orderCommands.CreateOrder(c.Request.Context(), learnerID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTutoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tutory not found", nil)
		case errors.Is(err, commands.ErrTutoryDisabled):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Tutory is not accepting orders", nil)
		case errors.Is(err, commands.ErrTutorNotAvailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed",
				gin.H{"session_time": "Tutor is not available at this time"})
		case errors.Is(err, commands.ErrSessionInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed",
				gin.H{"session_time": "Session time must be in the future"})
		case errors.Is(err, commands.ErrOrderOperationFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create order", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order data", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		OrderID: result.OrderID,
		Price:   result.Price,
	})
}

// @Summary My orders
// @Description List orders for the caller, learner or tutor side per role
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, scheduled or completed"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Router /orders/me [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var filter *queries.StatusFilter
	if s := c.Query("status"); s != "" {
		parsed, err := queries.ParseStatusFilter(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status filter", nil)
			return
		}
		filter = &parsed
	}

	views, err := h.orderQueries.ListMine(c.Request.Context(), userID, role.String(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load orders", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Order detail
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotAccessible):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Accept order
// @Description Schedule the order and decline colliding pending orders on the same tutory
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/accept [post]
func (h *OrderHandler) Accept(c *gin.Context) {
	h.transition(c, h.orderCommands.AcceptOrder)
}

// @Summary Decline order
// @Description Reject a pending order; declining twice is a no-op
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/decline [post]
func (h *OrderHandler) Decline(c *gin.Context) {
	h.transition(c, h.orderCommands.DeclineOrder)
}

// @Summary Cancel order
// @Description Withdraw an order; either party may cancel
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.orderCommands.CancelOrder)
}

func (h *OrderHandler) transition(c *gin.Context, op func(ctx context.Context, actorID, orderID uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := op(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, commands.ErrNotTutoryOwner), errors.Is(err, commands.ErrNotOrderParticipant):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrOrderNotActionable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order is not in an actionable state", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Order operation failed", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
