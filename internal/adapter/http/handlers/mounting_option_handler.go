package handlers

import (
	"errors"
	"net/http"

	request "gestao_cortinas/internal/adapter/http/dto/request"
	response "gestao_cortinas/internal/adapter/http/dto/response"
	"gestao_cortinas/internal/domain/mounting"
	"gestao_cortinas/internal/usecase"
	"gestao_cortinas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMountingPayload = pkg.NewDomainErrorSimple("INVALID_MONTAGEM_INPUT", "Invalid mounting option payload", http.StatusBadRequest)
	errInvalidPiecesQuery     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter largura is required", http.StatusBadRequest)
)

type MountingOptionHandler struct {
	usecase usecase.IMountingOptionUseCase
}

func NewMountingOptionHandler(uc usecase.IMountingOptionUseCase) *MountingOptionHandler {
	return &MountingOptionHandler{usecase: uc}
}

// @Summary List mounting options
// @Tags Montagens
// @Produce json
// @Security Bearer
// @Success 200 {array} response.MountingOptionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /montagens [get]
func (h *MountingOptionHandler) ListOptions(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapMountingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMountingOptions(list))
}

// @Summary Create mounting option
// @Tags Montagens
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.CreateMountingOptionRequest true "Option"
// @Success 201 {object} response.MountingOptionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /montagens [post]
func (h *MountingOptionHandler) CreateOption(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateMountingOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidMountingPayload)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		writeError(c, mapMountingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMountingOption(o))
}

// @Summary Delete mounting option
// @Tags Montagens
// @Produce json
// @Security Bearer
// @Param id path string true "Option ID"
// @Success 204
// @Failure 400 {object} pkg.HTTPError
// @Router /montagens/{id} [delete]
func (h *MountingOptionHandler) DeleteOption(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, mapMountingError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mounting archetypes
// @Tags Montagens
// @Produce json
// @Security Bearer
// @Success 200 {array} response.ArchetypeResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /montagens/tipos [get]
func (h *MountingOptionHandler) ListArchetypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromArchetypes(h.usecase.Archetypes()))
}

// ArchetypePieces computes the pieces of an archetype for ?largura= and ?desconto=.
//
// @Summary Pieces of an archetype for a width
// @Tags Montagens
// @Produce json
// @Security Bearer
// @Param tipo path string true "Archetype"
// @Param largura query number true "Width (cm)"
// @Param desconto query number false "Rail discount (cm)"
// @Success 200 {object} response.PiecesResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /montagens/tipos/{tipo}/pecas [get]
func (h *MountingOptionHandler) ArchetypePieces(c *gin.Context) {
	var q request.PiecesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPiecesQuery)
		return
	}

	tipo := c.Param("tipo")
	pieces, err := h.usecase.Pieces(tipo, q.Largura, q.Desconto)
	if err != nil {
		writeError(c, mapMountingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPieces(tipo, pieces))
}

func mapMountingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, mounting.ErrUnknownArchetype):
		return pkg.NewDomainError("UNKNOWN_ARCHETYPE", "Unknown mounting type", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMountingOption),
		errors.Is(err, usecase.ErrInvalidWidth),
		errors.Is(err, usecase.ErrInvalidMeasurement):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMountingOptionNotFound):
		return pkg.NewDomainErrorSimple("MONTAGEM_NOT_FOUND", "Mounting option not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
