package api

import (
	"errors"
	"net/http"

	reqdto "tutorlink/internal/handler/dto/request"
	resdto "tutorlink/internal/handler/dto/response"
	"tutorlink/internal/handler/httperr"
	"tutorlink/internal/handler/middleware"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
	deviceCommands       commands.DeviceCommands
	notificationQueries  queries.NotificationQueries
}

func NewNotificationHandler(
	notificationCommands commands.NotificationCommands,
	deviceCommands commands.DeviceCommands,
	notificationQueries queries.NotificationQueries,
) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
		deviceCommands:       deviceCommands,
		notificationQueries:  notificationQueries,
	}
}

// @Summary My notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} resdto.NotificationResponse
// @Router /notifications/me [get]
func (h *NotificationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	unreadOnly := c.Query("unread") == "true"

	views, err := h.notificationQueries.ListMine(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load notifications", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Unread count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	count, err := h.notificationQueries.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count notifications", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Count: count})
}

// @Summary Mark notification read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
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

	if err := h.notificationCommands.MarkRead(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, commands.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark notification read", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Register device
// @Description Register an Expo push token for the caller
// @Tags devices
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.RegisterDeviceRequest true "Device request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /devices [post]
func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	var req reqdto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err := h.deviceCommands.RegisterDevice(c.Request.Context(), userID, commands.RegisterDeviceInput{
		Token:      req.Token,
		DeviceName: req.DeviceName,
	})
	if err != nil {
		if errors.Is(err, commands.ErrInvalidPushToken) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid push token", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to register device", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Unregister device
// @Tags devices
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UnregisterDeviceRequest true "Device request"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /devices [delete]
func (h *NotificationHandler) UnregisterDevice(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	var req reqdto.UnregisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.deviceCommands.UnregisterDevice(c.Request.Context(), userID, req.Token); err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Device not found", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
