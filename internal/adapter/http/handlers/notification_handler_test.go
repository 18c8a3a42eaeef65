package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gestao_cortinas/internal/adapter/http/handlers/mocks"
	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewNotificationHandler(mocks.NewMockINotificationUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/notificacoes", withActor(medidor), h.ListMine)

		if w := serve(r, http.MethodGet, "/v1/notificacoes?limit=-3", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().ListMine(gomock.Any(), medidor, 10).Return([]entities.Notification{
			{ID: "n-1", UsuarioID: medidor.ID, Tipo: entities.NotificationTypeObraAtribuida, CreatedAt: time.Now()},
		}, nil)

		r := gin.New()
		r.GET("/v1/notificacoes", withActor(medidor), h.ListMine)

		if w := serve(r, http.MethodGet, "/v1/notificacoes?limit=10", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_CountUnread(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	uc.EXPECT().CountUnread(gomock.Any(), medidor).Return(4, nil)

	r := gin.New()
	r.GET("/v1/notificacoes/nao-lidas", withActor(medidor), h.CountUnread)

	w := serve(r, http.MethodGet, "/v1/notificacoes/nao-lidas", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"nao_lidas":4}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"marked", nil, http.StatusOK},
		{"someone else's", usecase.ErrNotificationNotFound, http.StatusNotFound},
		{"storage failure", errors.New("throttled"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockINotificationUseCase(ctrl)
			h := NewNotificationHandler(uc)

			now := time.Now()
			uc.EXPECT().MarkRead(gomock.Any(), medidor, "n-1").Return(entities.Notification{ID: "n-1", ReadAt: &now}, tc.err)

			r := gin.New()
			r.PATCH("/v1/notificacoes/:id/lida", withActor(medidor), h.MarkRead)

			if w := serve(r, http.MethodPatch, "/v1/notificacoes/n-1/lida", ""); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	uc.EXPECT().MarkAllRead(gomock.Any(), medidor).Return(3, nil)

	r := gin.New()
	r.PATCH("/v1/notificacoes/lidas", withActor(medidor), h.MarkAllRead)

	w := serve(r, http.MethodPatch, "/v1/notificacoes/lidas", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"atualizadas":3}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
