package routes

import (
	"gestao_cortinas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathMontagens = "/montagens"

func addMountingRoutes(rg *gin.RouterGroup, mountingHandler *handlers.MountingOptionHandler, managerOnly gin.HandlerFunc) {
	montagens := rg.Group(PathMontagens)
	{
		montagens.GET("", mountingHandler.ListOptions)
		montagens.POST("", managerOnly, mountingHandler.CreateOption)
		montagens.DELETE("/:id", managerOnly, mountingHandler.DeleteOption)
		montagens.GET("/tipos", mountingHandler.ListArchetypes)
		montagens.GET("/tipos/:tipo/pecas", mountingHandler.ArchetypePieces)
	}
}
