package routes

import (
	"gestao_cortinas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathNotificacoes = "/notificacoes"

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notificacoes := rg.Group(PathNotificacoes)
	{
		notificacoes.GET("", notificationHandler.ListMine)
		notificacoes.GET("/nao-lidas", notificationHandler.CountUnread)
		notificacoes.PATCH("/lidas", notificationHandler.MarkAllRead)
		notificacoes.PATCH("/:id/lida", notificationHandler.MarkRead)
	}
}
