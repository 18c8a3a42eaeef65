package handlers

import (
	"net/http"
	"testing"

	"gestao_cortinas/internal/adapter/http/handlers/mocks"
	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestObraHandler_CreateObra(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewObraHandler(mocks.NewMockIObraUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/obras", withActor(gerente), h.CreateObra)

		if w := serve(r, http.MethodPost, "/v1/obras", `{"cliente":"ACME"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIObraUseCase(ctrl)
		h := NewObraHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gerente, usecase.CreateObraInput{
			Nome:         "Residencial Aurora",
			Responsaveis: []string{"u-1"},
		}).Return(entities.Obra{ID: "obra-1", Nome: "Residencial Aurora", Responsaveis: []string{"u-1"}}, nil)

		r := gin.New()
		r.POST("/v1/obras", withActor(gerente), h.CreateObra)

		w := serve(r, http.MethodPost, "/v1/obras", `{"nome":" Residencial Aurora ","responsaveis":["u-1"," "]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestObraHandler_AddResponsaveis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"assigned", nil, http.StatusOK},
		{"unknown user", usecase.ErrResponsavelUnknown, http.StatusUnprocessableEntity},
		{"unknown obra", usecase.ErrObraNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIObraUseCase(ctrl)
			h := NewObraHandler(uc)

			uc.EXPECT().AddResponsaveis(gomock.Any(), gerente, "obra-1", []string{"u-2", "u-3"}).
				Return(entities.Obra{ID: "obra-1"}, tc.err)

			r := gin.New()
			r.POST("/v1/obras/:id/responsaveis", withActor(gerente), h.AddResponsaveis)

			w := serve(r, http.MethodPost, "/v1/obras/obra-1/responsaveis", `{"usuario_ids":["u-2","u-3"]}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewObraHandler(mocks.NewMockIObraUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/obras/:id/responsaveis", withActor(gerente), h.AddResponsaveis)

		if w := serve(r, http.MethodPost, "/v1/obras/obra-1/responsaveis", `{"usuario_ids":[]}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestObraHandler_GetObra_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIObraUseCase(ctrl)
	h := NewObraHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "obra-x").Return(entities.Obra{}, usecase.ErrObraNotFound)

	r := gin.New()
	r.GET("/v1/obras/:id", h.GetObra)

	if w := serve(r, http.MethodGet, "/v1/obras/obra-x", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
