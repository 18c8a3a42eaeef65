package routes

import (
	"gestao_cortinas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStatus    = "/status"
	PathAmbientes = "/ambientes"
	PathObras     = "/obras"
)

func addWorkflowRoutes(rg *gin.RouterGroup, ambienteHandler *handlers.AmbienteHandler, obraHandler *handlers.ObraHandler, managerOnly gin.HandlerFunc) {
	rg.GET(PathStatus, ambienteHandler.ListStatuses)

	ambientes := rg.Group(PathAmbientes)
	{
		ambientes.POST("", ambienteHandler.CreateAmbiente)
		ambientes.GET("", ambienteHandler.ListAmbientesByStatus)
		ambientes.GET("/:id", ambienteHandler.GetAmbiente)
		// Status changes go through PATCH; the transition validator decides per role.
		ambientes.PATCH("/:id", ambienteHandler.UpdateAmbiente)
		ambientes.DELETE("/:id", managerOnly, ambienteHandler.DeleteAmbiente)
		ambientes.GET("/:id/transicoes", ambienteHandler.AllowedTransitions)
		ambientes.GET("/:id/pecas", ambienteHandler.Pieces)
	}

	obras := rg.Group(PathObras)
	{
		obras.POST("", managerOnly, obraHandler.CreateObra)
		obras.GET("", obraHandler.ListObras)
		obras.GET("/:id", obraHandler.GetObra)
		obras.GET("/:id/ambientes", ambienteHandler.ListAmbientesByObra)
		obras.POST("/:id/responsaveis", managerOnly, obraHandler.AddResponsaveis)
	}
}
