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

func TestUserHandler_CreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrInvalidRole)

		r := gin.New()
		r.POST("/v1/usuarios", h.CreateUser)

		w := serve(r, http.MethodPost, "/v1/usuarios", `{"nome":"Ana","email":"ana@example.com","role":"admin"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateUserInput{Nome: "Ana", Email: "ana@example.com", Role: entities.RoleInstalador}).
			Return(entities.User{ID: "u-1", Nome: "Ana", Role: entities.RoleInstalador, Ativo: true}, nil)

		r := gin.New()
		r.POST("/v1/usuarios", h.CreateUser)

		w := serve(r, http.MethodPost, "/v1/usuarios", `{"nome":"Ana","email":"ana@example.com","role":"instalador"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestUserHandler_SetAtivo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewUserHandler(mocks.NewMockIUserUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/usuarios/:id/ativo", withActor(gerente), h.SetAtivo)

		if w := serve(r, http.MethodPatch, "/v1/usuarios/u-1/ativo", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		uc.EXPECT().SetAtivo(gomock.Any(), gerente, "u-1", false).Return(entities.User{ID: "u-1", Ativo: false}, nil)

		r := gin.New()
		r.PATCH("/v1/usuarios/:id/ativo", withActor(gerente), h.SetAtivo)

		if w := serve(r, http.MethodPatch, "/v1/usuarios/u-1/ativo", `{"ativo":false}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		uc.EXPECT().SetAtivo(gomock.Any(), gerente, "u-9", true).Return(entities.User{}, usecase.ErrUserNotFound)

		r := gin.New()
		r.PATCH("/v1/usuarios/:id/ativo", withActor(gerente), h.SetAtivo)

		if w := serve(r, http.MethodPatch, "/v1/usuarios/u-9/ativo", `{"ativo":true}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestUserHandler_ListUsers_ByRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	uc.EXPECT().List(gomock.Any(), entities.RoleInstalador).Return([]entities.User{{ID: "u-1"}}, nil)

	r := gin.New()
	r.GET("/v1/usuarios", h.ListUsers)

	if w := serve(r, http.MethodGet, "/v1/usuarios?role=instalador", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
