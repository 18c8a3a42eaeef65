package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "gestao_cortinas/internal/adapter/http/dto/request"
	response "gestao_cortinas/internal/adapter/http/dto/response"
	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/domain/mounting"
	"gestao_cortinas/internal/usecase"
	"gestao_cortinas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAmbientePayload = pkg.NewDomainErrorSimple("INVALID_AMBIENTE_INPUT", "Invalid ambiente payload", http.StatusBadRequest)
	errMissingStatusFilter    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter status is required", http.StatusBadRequest)
)

// AmbienteHandler exposes the ambiente workflow: registration, measurement updates,
// status changes and the derived views (allowed transitions, mounting pieces).
type AmbienteHandler struct {
	usecase usecase.IAmbienteUseCase
}

func NewAmbienteHandler(uc usecase.IAmbienteUseCase) *AmbienteHandler {
	return &AmbienteHandler{usecase: uc}
}

// @Summary Status taxonomy
// @Tags Ambientes
// @Produce json
// @Security Bearer
// @Success 200 {array} response.StatusResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /status [get]
func (h *AmbienteHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStatuses(entities.AllAmbienteStatuses))
}

// @Summary Create ambiente
// @Tags Ambientes
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.CreateAmbienteRequest true "Ambiente"
// @Success 201 {object} response.AmbienteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /ambientes [post]
func (h *AmbienteHandler) CreateAmbiente(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateAmbienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidAmbientePayload)
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		writeError(c, mapAmbienteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAmbiente(a))
}

// @Summary Get ambiente
// @Tags Ambientes
// @Produce json
// @Security Bearer
// @Param id path string true "Ambiente ID"
// @Success 200 {object} response.AmbienteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /ambientes/{id} [get]
func (h *AmbienteHandler) GetAmbiente(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAmbienteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAmbiente(a))
}

// UpdateAmbiente applies a partial update. A status change goes through the
// transition validator for the caller's role.
//
// @Summary Update ambiente fields or status
// @Tags Ambientes
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Ambiente ID"
// @Param payload body request.UpdateAmbienteRequest true "Changes"
// @Success 200 {object} response.AmbienteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /ambientes/{id} [patch]
func (h *AmbienteHandler) UpdateAmbiente(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.UpdateAmbienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidAmbientePayload)
		return
	}

	a, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapAmbienteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAmbiente(a))
}

// @Summary Delete ambiente
// @Tags Ambientes
// @Produce json
// @Security Bearer
// @Param id path string true "Ambiente ID"
// @Success 204
// @Failure 400 {object} pkg.HTTPError
// @Router /ambientes/{id} [delete]
func (h *AmbienteHandler) DeleteAmbiente(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, mapAmbienteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List ambientes by status
// @Tags Ambientes
// @Produce json
// @Security Bearer
// @Param status query string true "Status"
// @Success 200 {array} response.AmbienteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /ambientes [get]
func (h *AmbienteHandler) ListAmbientesByStatus(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	if status == "" {
		writeError(c, errMissingStatusFilter)
		return
	}
	list, err := h.usecase.ListByStatus(c.Request.Context(), entities.AmbienteStatus(status))
	if err != nil {
		writeError(c, mapAmbienteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAmbientes(list))
}

// @Summary List ambientes of an obra
// @Tags Obras
// @Produce json
// @Security Bearer
// @Param id path string true "Obra ID"
// @Success 200 {array} response.AmbienteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /obras/{id}/ambientes [get]
func (h *AmbienteHandler) ListAmbientesByObra(c *gin.Context) {
	list, err := h.usecase.ListByObra(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAmbienteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAmbientes(list))
}

// @Summary Allowed next statuses for the caller
// @Tags Ambientes
// @Produce json
// @Security Bearer
// @Param id path string true "Ambiente ID"
// @Success 200 {object} response.TransitionsResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /ambientes/{id}/transicoes [get]
func (h *AmbienteHandler) AllowedTransitions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	a, allowed, err := h.usecase.AllowedTransitions(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, mapAmbienteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransitions(a, allowed))
}

// @Summary Mounting pieces of an ambiente
// @Tags Ambientes
// @Produce json
// @Security Bearer
// @Param id path string true "Ambiente ID"
// @Success 200 {object} response.PiecesResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /ambientes/{id}/pecas [get]
func (h *AmbienteHandler) Pieces(c *gin.Context) {
	pieces, err := h.usecase.Pieces(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAmbienteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPieces("", pieces))
}

func mapAmbienteError(err error) *pkg.AppError {
	var te *usecase.TransitionError
	switch {
	case errors.As(err, &te):
		return pkg.NewDomainError("INVALID_TRANSITION", te.Message, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidAmbienteID),
		errors.Is(err, usecase.ErrInvalidObraID),
		errors.Is(err, usecase.ErrInvalidSala),
		errors.Is(err, usecase.ErrInvalidAmbienteStatus),
		errors.Is(err, usecase.ErrInvalidInstallationType),
		errors.Is(err, usecase.ErrInvalidMeasurement),
		errors.Is(err, usecase.ErrObservacaoWithoutStatus):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, mounting.ErrUnknownArchetype):
		return pkg.NewDomainError("UNKNOWN_ARCHETYPE", "Unknown mounting type", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingWidth), errors.Is(err, usecase.ErrMissingMountingType):
		return pkg.NewDomainError("AMBIENTE_INCOMPLETE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this role", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAmbienteConflict):
		return pkg.NewDomainErrorSimple("AMBIENTE_CONFLICT", "Ambiente was modified by another request", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmbienteNotFound):
		return pkg.NewDomainErrorSimple("AMBIENTE_NOT_FOUND", "Ambiente not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrObraNotFound):
		return pkg.NewDomainErrorSimple("OBRA_NOT_FOUND", "Obra not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
