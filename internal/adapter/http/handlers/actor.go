package handlers

import (
	"net/http"

	"gestao_cortinas/internal/adapter/http/middleware"
	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingActor = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)

// requireActor returns the authenticated caller or writes 401.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}

// writeError renders appErr. Server errors with a cause are attached to the
// context so the request logger records it.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
