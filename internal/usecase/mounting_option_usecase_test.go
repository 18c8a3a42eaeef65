package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/domain/mounting"
	mock_interfaces "gestao_cortinas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMountingOptionUseCase_ListIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMountingOptionRepository(ctrl)
	uc := NewMountingOptionUseCase(repo, time.Minute, nil)
	gerente := entities.Actor{ID: "g-1", Role: entities.RoleGerente}

	repo.EXPECT().List(gomock.Any()).Return([]entities.MountingOption{{ID: "2", Nome: "Wave"}, {ID: "1", Nome: "dupla sala"}}, nil).Times(2)

	for i := 0; i < 3; i++ {
		list, err := uc.List(context.Background())
		if err != nil || len(list) != 2 || list[0].ID != "1" {
			t.Fatalf("unexpected list %+v %v", list, err)
		}
	}

	// editing the catalog drops the cached list
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.MountingOption) (entities.MountingOption, error) { return o, nil },
	)
	if _, err := uc.Create(context.Background(), gerente, CreateMountingOptionInput{Nome: "Motor", TipoBase: mounting.ArchetypeMotorizado}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMountingOptionUseCase_Create(t *testing.T) {
	gerente := entities.Actor{ID: "g-1", Role: entities.RoleGerente}

	uc := NewMountingOptionUseCase(nil, 0, nil)
	if _, err := uc.Create(context.Background(), gerente, CreateMountingOptionInput{Nome: " ", TipoBase: mounting.ArchetypeWave}); !errors.Is(err, ErrInvalidMountingOption) {
		t.Fatalf("expected ErrInvalidMountingOption, got %v", err)
	}
	if _, err := uc.Create(context.Background(), gerente, CreateMountingOptionInput{Nome: "X", TipoBase: "trilho_magico"}); !errors.Is(err, mounting.ErrUnknownArchetype) {
		t.Fatalf("expected ErrUnknownArchetype, got %v", err)
	}
}

func TestMountingOptionUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMountingOptionRepository(ctrl)
	uc := NewMountingOptionUseCase(repo, time.Minute, nil)
	gerente := entities.Actor{ID: "g-1", Role: entities.RoleGerente}

	repo.EXPECT().Delete(gomock.Any(), "o-1").Return(false, nil)
	if err := uc.Delete(context.Background(), gerente, "o-1"); !errors.Is(err, ErrMountingOptionNotFound) {
		t.Fatalf("expected ErrMountingOptionNotFound, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "o-2").Return(true, nil)
	if err := uc.Delete(context.Background(), gerente, "o-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMountingOptionUseCase_ArchetypesAndPieces(t *testing.T) {
	uc := NewMountingOptionUseCase(nil, 0, nil)

	summaries := uc.Archetypes()
	if len(summaries) != 8 {
		t.Fatalf("expected 8 archetypes, got %d", len(summaries))
	}
	counts := map[string]int{}
	for _, s := range summaries {
		counts[s.ID] = s.TotalPecas
	}
	if counts[mounting.ArchetypeDuplaCruzada] != 3 || counts[mounting.ArchetypeSistemaQuadruplo] != 4 {
		t.Fatalf("unexpected piece counts: %v", counts)
	}

	pieces, err := uc.Pieces(mounting.ArchetypePainelFixoMovel, 10, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pieces) != 3 || pieces[0].Largura != 30 || pieces[1].Largura != 0 {
		t.Fatalf("expected clamped moving centre, got %+v", pieces)
	}

	if _, err := uc.Pieces("nope", 100, 0); !errors.Is(err, mounting.ErrUnknownArchetype) {
		t.Fatalf("expected ErrUnknownArchetype, got %v", err)
	}
	if _, err := uc.Pieces(mounting.ArchetypeSimples, 0, 0); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
}

func TestMountingOptionUseCase_PiecesRejectsNonFiniteInput(t *testing.T) {
	uc := NewMountingOptionUseCase(nil, 0, nil)

	tests := []struct {
		name     string
		largura  float64
		desconto float64
		want     error
	}{
		{"NaN width", math.NaN(), 0, ErrInvalidWidth},
		{"infinite width", math.Inf(1), 0, ErrInvalidWidth},
		{"negative infinite width", math.Inf(-1), 0, ErrInvalidWidth},
		{"NaN discount", 200, math.NaN(), ErrInvalidMeasurement},
		{"infinite discount", 200, math.Inf(1), ErrInvalidMeasurement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Pieces(mounting.ArchetypeSimples, tt.largura, tt.desconto); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
