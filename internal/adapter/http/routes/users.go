package routes

import (
	"gestao_cortinas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathUsuarios = "/usuarios"

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, managerOnly gin.HandlerFunc) {
	usuarios := rg.Group(PathUsuarios)
	{
		usuarios.POST("", managerOnly, userHandler.CreateUser)
		usuarios.GET("", userHandler.ListUsers)
		usuarios.PATCH("/:id/ativo", managerOnly, userHandler.SetAtivo)
	}
}
