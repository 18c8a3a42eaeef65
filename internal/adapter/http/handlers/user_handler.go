package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "gestao_cortinas/internal/adapter/http/dto/request"
	response "gestao_cortinas/internal/adapter/http/dto/response"
	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase"
	"gestao_cortinas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// @Summary Create user
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.CreateUserRequest true "User"
// @Success 201 {object} response.UserResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /usuarios [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidUserPayload)
		return
	}

	u, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(u))
}

// ListUsers returns the directory, optionally filtered by ?role=.
//
// @Summary List users
// @Tags Usuarios
// @Produce json
// @Security Bearer
// @Param role query string false "Role"
// @Success 200 {array} response.UserResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /usuarios [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	role := entities.Role(strings.TrimSpace(c.Query("role")))
	list, err := h.usecase.List(c.Request.Context(), role)
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(list))
}

// @Summary Activate or deactivate a user
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param payload body request.SetAtivoRequest true "Flag"
// @Success 200 {object} response.UserResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /usuarios/{id}/ativo [patch]
func (h *UserHandler) SetAtivo(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.SetAtivoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidUserPayload)
		return
	}

	u, err := h.usecase.SetAtivo(c.Request.Context(), actor, c.Param("id"), *payload.Ativo)
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidUserNome),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
