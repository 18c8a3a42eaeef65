package handlers

import (
	"errors"
	"net/http"

	request "gestao_cortinas/internal/adapter/http/dto/request"
	response "gestao_cortinas/internal/adapter/http/dto/response"
	"gestao_cortinas/internal/usecase"
	"gestao_cortinas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidObraPayload = pkg.NewDomainErrorSimple("INVALID_OBRA_INPUT", "Invalid obra payload", http.StatusBadRequest)

type ObraHandler struct {
	usecase usecase.IObraUseCase
}

func NewObraHandler(uc usecase.IObraUseCase) *ObraHandler {
	return &ObraHandler{usecase: uc}
}

// @Summary Create obra
// @Tags Obras
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.CreateObraRequest true "Obra"
// @Success 201 {object} response.ObraResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /obras [post]
func (h *ObraHandler) CreateObra(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateObraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidObraPayload)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromObra(o))
}

// @Summary List obras
// @Tags Obras
// @Produce json
// @Security Bearer
// @Success 200 {array} response.ObraResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /obras [get]
func (h *ObraHandler) ListObras(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObras(list))
}

// @Summary Get obra
// @Tags Obras
// @Produce json
// @Security Bearer
// @Param id path string true "Obra ID"
// @Success 200 {object} response.ObraResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /obras/{id} [get]
func (h *ObraHandler) GetObra(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObra(o))
}

// AddResponsaveis assigns users to the obra. Newly assigned users are notified.
//
// @Summary Assign users to an obra
// @Tags Obras
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Obra ID"
// @Param payload body request.AddResponsaveisRequest true "Users"
// @Success 200 {object} response.ObraResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /obras/{id}/responsaveis [post]
func (h *ObraHandler) AddResponsaveis(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.AddResponsaveisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidObraPayload)
		return
	}

	o, err := h.usecase.AddResponsaveis(c.Request.Context(), actor, c.Param("id"), payload.IDs())
	if err != nil {
		writeError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObra(o))
}

func mapObraError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidObraID), errors.Is(err, usecase.ErrInvalidObraNome), errors.Is(err, usecase.ErrNoResponsaveis):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResponsavelUnknown):
		return pkg.NewDomainError("UNKNOWN_USER", "Responsavel references an unknown user", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrObraNotFound):
		return pkg.NewDomainErrorSimple("OBRA_NOT_FOUND", "Obra not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
