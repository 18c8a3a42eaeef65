package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"gestao_cortinas/internal/adapter/http/handlers/mocks"
	"gestao_cortinas/internal/adapter/http/middleware"
	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteError_LogsInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAmbienteUseCase(ctrl)
	h := NewAmbienteHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "amb-1").Return(entities.Ambiente{}, errors.New("dynamodb: ProvisionedThroughputExceeded"))

	core, logs := observer.New(zap.DebugLevel)
	r := gin.New()
	r.Use(middleware.RequestLogger(&logger.Logger{SugaredLogger: zap.New(core).Sugar()}))
	r.GET("/v1/ambientes/:id", h.GetAmbiente)

	w := serve(r, http.MethodGet, "/v1/ambientes/amb-1", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body := decodeError(t, w); body["code"] != "INTERNAL_ERROR" || body["message"] != "An internal error occurred" {
		t.Fatalf("cause must not leak to the client: %v", body)
	}

	entries := logs.FilterMessage("[http] request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	cause, _ := entries[0].ContextMap()["error"].(string)
	if cause == "" || !containsAll(cause, "INTERNAL_ERROR", "ProvisionedThroughputExceeded") {
		t.Fatalf("expected logged cause, got %q", cause)
	}
}

func TestWriteError_ClientErrorsAreNotAttached(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAmbienteUseCase(ctrl)
	h := NewAmbienteHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "amb-1").Return(entities.Ambiente{}, usecase.ErrAmbienteNotFound)

	var attached int
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		attached = len(c.Errors)
	})
	r.GET("/v1/ambientes/:id", h.GetAmbiente)

	if w := serve(r, http.MethodGet, "/v1/ambientes/amb-1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if attached != 0 {
		t.Fatalf("expected no attached errors, got %d", attached)
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
