package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "gestao_cortinas/internal/adapter/http/dto/response"
	"gestao_cortinas/internal/usecase"
	"gestao_cortinas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLimit = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter limit must be a positive integer", http.StatusBadRequest)

// NotificationHandler serves the caller's own inbox.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// @Summary Caller's notifications, newest first
// @Tags Notificacoes
// @Produce json
// @Security Bearer
// @Param limit query int false "Max items"
// @Success 200 {array} response.NotificationResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /notificacoes [get]
func (h *NotificationHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(c, errInvalidLimit)
			return
		}
		limit = n
	}

	list, err := h.usecase.ListMine(c.Request.Context(), actor, limit)
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

// @Summary Unread notification count
// @Tags Notificacoes
// @Produce json
// @Security Bearer
// @Success 200 {object} response.UnreadCountResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /notificacoes/nao-lidas [get]
func (h *NotificationHandler) CountUnread(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	total, err := h.usecase.CountUnread(c.Request.Context(), actor)
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.UnreadCountResponse{NaoLidas: total})
}

// @Summary Mark a notification as read
// @Tags Notificacoes
// @Produce json
// @Security Bearer
// @Param id path string true "Notification ID"
// @Success 200 {object} response.NotificationResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /notificacoes/{id}/lida [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	n, err := h.usecase.MarkRead(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

// @Summary Mark all notifications as read
// @Tags Notificacoes
// @Produce json
// @Security Bearer
// @Success 200 {object} response.MarkAllReadResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /notificacoes/lidas [patch]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	updated, err := h.usecase.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.MarkAllReadResponse{Atualizadas: updated})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
