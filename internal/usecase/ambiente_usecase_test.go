package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/domain/mounting"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/usecase/interfaces"
	mock_interfaces "gestao_cortinas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func f64(v float64) *float64 { return &v }

type ambienteDeps struct {
	dispatcherDeps
	repo    *mock_interfaces.MockIAmbienteRepository
	options *mock_interfaces.MockIMountingOptionRepository
}

func newTestAmbienteUseCase(ctrl *gomock.Controller) (*AmbienteUseCase, ambienteDeps) {
	d, dd := newTestDispatcher(ctrl)
	deps := ambienteDeps{
		dispatcherDeps: dd,
		repo:           mock_interfaces.NewMockIAmbienteRepository(ctrl),
		options:        mock_interfaces.NewMockIMountingOptionRepository(ctrl),
	}
	resolver := NewMountingOptionUseCase(deps.options, time.Minute, logger.NewNop())
	uc := NewAmbienteUseCase(deps.repo, dd.obras, d, resolver, dd.metrics, logger.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }
	return uc, deps
}

func TestAmbienteUseCase_Create(t *testing.T) {
	gerente := entities.Actor{ID: "g-1", Nome: "Gerente", Role: entities.RoleGerente}

	t.Run("invalid obra id", func(t *testing.T) {
		uc := NewAmbienteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), gerente, CreateAmbienteInput{ObraID: "  ", Sala: "SALA"})
		if !errors.Is(err, ErrInvalidObraID) {
			t.Fatalf("expected ErrInvalidObraID, got %v", err)
		}
	})

	t.Run("negative measurement", func(t *testing.T) {
		uc := NewAmbienteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), gerente, CreateAmbienteInput{
			ObraID: "obra-1", Sala: "SALA", Medidas: entities.Medidas{Largura: f64(-1)},
		})
		if !errors.Is(err, ErrInvalidMeasurement) {
			t.Fatalf("expected ErrInvalidMeasurement, got %v", err)
		}
	})

	t.Run("obra not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)

		deps.obras.EXPECT().GetByID(gomock.Any(), "obra-1").Return(entities.Obra{}, nil)

		_, err := uc.Create(context.Background(), gerente, CreateAmbienteInput{ObraID: "obra-1", Sala: "SALA"})
		if !errors.Is(err, ErrObraNotFound) {
			t.Fatalf("expected ErrObraNotFound, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)

		deps.obras.EXPECT().GetByID(gomock.Any(), "obra-1").Return(entities.Obra{ID: "obra-1"}, nil)
		deps.repo.EXPECT().ListByObra(gomock.Any(), "obra-1").Return([]entities.Ambiente{
			{ID: "a", Prefixo: "APTO101", Sala: "SALA", Sequencia: 1},
			{ID: "b", Prefixo: "APTO101", Sala: "SALA", Sequencia: 2},
			{ID: "c", Prefixo: "APTO101", Sala: "QUARTO", Sequencia: 5},
		}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Ambiente{})).DoAndReturn(
			func(_ context.Context, a entities.Ambiente) (entities.Ambiente, error) {
				if a.ID == "" || a.Codigo != "APTO101SALA-3" || a.Sequencia != 3 {
					t.Fatalf("unexpected identity: %+v", a)
				}
				if a.Status != entities.AmbienteStatusMedicaoPendente || a.Version != 1 {
					t.Fatalf("unexpected initial state: %+v", a)
				}
				if a.Calculado.LarguraTrilho == nil || *a.Calculado.LarguraTrilho != 198.9 {
					t.Fatalf("expected derived width 198.9, got %v", a.Calculado.LarguraTrilho)
				}
				if a.Calculado.AlturaVoil != nil || a.Calculado.AlturaBlackout != nil {
					t.Fatalf("expected no derived heights without altura")
				}
				if len(a.Logs) != 1 || a.Logs[0].Status != entities.AmbienteStatusMedicaoPendente || a.Logs[0].UsuarioID != "g-1" {
					t.Fatalf("unexpected initial log: %+v", a.Logs)
				}
				return a, nil
			},
		)

		res, err := uc.Create(context.Background(), gerente, CreateAmbienteInput{
			ObraID:  " obra-1 ",
			Prefixo: "APTO101",
			Sala:    "SALA",
			Medidas: entities.Medidas{Largura: f64(200.37), TipoInstalacao: entities.InstallationTypeTeto},
			Variaveis: entities.Variaveis{
				TipoMontagem: mounting.ArchetypeDupla,
				Regras:       entities.DiscountRules{DescontoTrilho: f64(1.5)},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CreatedBy != "g-1" || res.ObraID != "obra-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestAmbienteUseCase_Update(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	inCalha := func() entities.Ambiente {
		return entities.Ambiente{
			ID:      "amb-1",
			ObraID:  "obra-1",
			Codigo:  "APTO101SALA-1",
			Status:  entities.AmbienteStatusProducaoCalha,
			Version: 4,
			Medidas: entities.Medidas{Largura: f64(250), Altura: f64(260.05)},
			Variaveis: entities.Variaveis{Regras: entities.DiscountRules{
				DescontoTrilho: f64(2), DescontoVoil: f64(0), DescontoBlackout: f64(3),
			}},
			Logs: []entities.AmbienteLog{
				{Status: entities.AmbienteStatusMedicaoPendente, Timestamp: t0, UsuarioID: "m-1"},
				{Status: entities.AmbienteStatusProducaoCalha, Timestamp: t0.Add(time.Hour), UsuarioID: "g-1"},
			},
		}
	}

	t.Run("manager correction appends a log entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		gerente := entities.Actor{ID: "g-2", Nome: "Gerente Dois", Role: entities.RoleGerente}
		target := entities.AmbienteStatusEmProducao

		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(inCalha(), nil)
		deps.metrics.EXPECT().TransitionObserved(entities.AmbienteStatusProducaoCalha, entities.AmbienteStatusEmProducao, true)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
			func(_ context.Context, a entities.Ambiente, _ int64) (entities.Ambiente, error) {
				if a.Status != entities.AmbienteStatusEmProducao || a.Version != 5 || a.UpdatedBy != "g-2" {
					t.Fatalf("unexpected saved state: %+v", a)
				}
				if len(a.Logs) != 3 {
					t.Fatalf("expected 3 log entries, got %d", len(a.Logs))
				}
				if a.Logs[0].UsuarioID != "m-1" || a.Logs[1].Status != entities.AmbienteStatusProducaoCalha {
					t.Fatalf("previous entries changed: %+v", a.Logs)
				}
				last := a.Logs[2]
				if last.Status != entities.AmbienteStatusEmProducao || last.UsuarioID != "g-2" || last.UsuarioNome != "Gerente Dois" || last.Observacao != "calha refeita" {
					t.Fatalf("unexpected new entry: %+v", last)
				}
				if *a.Calculado.LarguraTrilho != 248 || *a.Calculado.AlturaVoil != 260.1 || *a.Calculado.AlturaBlackout != 257.1 {
					t.Fatalf("unexpected derived values: %+v", a.Calculado)
				}
				return a, nil
			},
		)

		res, err := uc.Update(context.Background(), gerente, "amb-1", UpdateAmbienteInput{Status: &target, Observacao: "calha refeita"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.AmbienteStatusEmProducao {
			t.Fatalf("unexpected status %q", res.Status)
		}
	})

	t.Run("standard role cannot move backwards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		operador := entities.Actor{ID: "c-1", Role: entities.RoleProducaoCalha}
		target := entities.AmbienteStatusEmProducao

		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(inCalha(), nil)
		deps.metrics.EXPECT().TransitionObserved(entities.AmbienteStatusProducaoCalha, entities.AmbienteStatusEmProducao, false)

		_, err := uc.Update(context.Background(), operador, "amb-1", UpdateAmbienteInput{Status: &target})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		var terr *TransitionError
		if !errors.As(err, &terr) || !strings.Contains(terr.Message, "gerente") {
			t.Fatalf("expected TransitionError mentioning a manager, got %v", err)
		}
	})

	t.Run("same status is a no-op transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		operador := entities.Actor{ID: "c-1", Role: entities.RoleProducaoCalha}
		same := entities.AmbienteStatusProducaoCalha
		medidas := entities.Medidas{Largura: f64(300), Altura: f64(250)}

		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(inCalha(), nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
			func(_ context.Context, a entities.Ambiente, _ int64) (entities.Ambiente, error) {
				if len(a.Logs) != 2 {
					t.Fatalf("expected no new log entry, got %d", len(a.Logs))
				}
				if *a.Calculado.LarguraTrilho != 298 {
					t.Fatalf("expected recalculated width, got %v", *a.Calculado.LarguraTrilho)
				}
				return a, nil
			},
		)

		if _, err := uc.Update(context.Background(), operador, "amb-1", UpdateAmbienteInput{Status: &same, Medidas: &medidas}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("entering installation notifies active installers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		expedicao := entities.Actor{ID: "e-1", Role: entities.RoleExpedicao}
		target := entities.AmbienteStatusAguardandoInstalacao

		current := inCalha()
		current.Status = entities.AmbienteStatusEmTransito
		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(current, nil)
		deps.metrics.EXPECT().TransitionObserved(entities.AmbienteStatusEmTransito, target, true)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
			func(_ context.Context, a entities.Ambiente, _ int64) (entities.Ambiente, error) {
				if a.Workflow.InicioInstalacao == nil {
					t.Fatalf("expected InicioInstalacao stamp")
				}
				return a, nil
			},
		)
		deps.users.EXPECT().ListByRoles(gomock.Any(), []entities.Role{entities.RoleInstalador}).Return([]entities.User{
			{ID: "i-1", Ativo: true}, {ID: "i-2", Ativo: true}, {ID: "i-3", Ativo: false},
			{ID: "i-4", Ativo: true}, {ID: "i-5", Ativo: false},
		}, nil)
		deps.obras.EXPECT().GetByID(gomock.Any(), "obra-1").Return(entities.Obra{ID: "obra-1", Nome: "Aurora"}, nil)
		rec := &recorder{}
		deps.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(rec.create).Times(3)
		deps.metrics.EXPECT().NotificationCreated(entities.NotificationTypeInstalacao).Times(3)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		deps.ops.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Update(context.Background(), expedicao, "amb-1", UpdateAmbienteInput{Status: &target}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, n := range rec.sorted() {
			if n.Link != "/instalacao" || n.AmbienteCodigo != "APTO101SALA-1" {
				t.Fatalf("unexpected notification: %+v", n)
			}
		}
	})

	t.Run("stale client version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		stale := int64(3)

		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(inCalha(), nil)

		_, err := uc.Update(context.Background(), entities.Actor{ID: "g-1", Role: entities.RoleGerente}, "amb-1", UpdateAmbienteInput{Version: &stale})
		if !errors.Is(err, ErrAmbienteConflict) {
			t.Fatalf("expected ErrAmbienteConflict, got %v", err)
		}
	})

	t.Run("lost race on save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)

		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(inCalha(), nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).Return(entities.Ambiente{}, interfaces.ErrVersionConflict)

		_, err := uc.Update(context.Background(), entities.Actor{ID: "g-1", Role: entities.RoleGerente}, "amb-1", UpdateAmbienteInput{})
		if !errors.Is(err, ErrAmbienteConflict) {
			t.Fatalf("expected ErrAmbienteConflict, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)

		deps.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Ambiente{}, nil)

		_, err := uc.Update(context.Background(), entities.Actor{ID: "g-1"}, "missing", UpdateAmbienteInput{})
		if !errors.Is(err, ErrAmbienteNotFound) {
			t.Fatalf("expected ErrAmbienteNotFound, got %v", err)
		}
	})

	t.Run("observacao without status is rejected", func(t *testing.T) {
		uc := NewAmbienteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Update(context.Background(), entities.Actor{ID: "m-1", Role: entities.RoleMedidor}, "amb-1",
			UpdateAmbienteInput{Observacao: "cliente pediu ajuste"})
		if !errors.Is(err, ErrObservacaoWithoutStatus) {
			t.Fatalf("expected ErrObservacaoWithoutStatus, got %v", err)
		}
	})
}

func TestAmbienteUseCase_Delete(t *testing.T) {
	t.Run("requires manager", func(t *testing.T) {
		uc := NewAmbienteUseCase(nil, nil, nil, nil, nil, nil)
		err := uc.Delete(context.Background(), entities.Actor{ID: "m-1", Role: entities.RoleMedidor}, "amb-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		deps.repo.EXPECT().Delete(gomock.Any(), "amb-1").Return(false, nil)

		err := uc.Delete(context.Background(), entities.Actor{ID: "g-1", Role: entities.RoleGerente}, "amb-1")
		if !errors.Is(err, ErrAmbienteNotFound) {
			t.Fatalf("expected ErrAmbienteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		deps.repo.EXPECT().Delete(gomock.Any(), "amb-1").Return(true, nil)

		if err := uc.Delete(context.Background(), entities.Actor{ID: "g-1", Role: entities.RoleGerente}, "amb-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAmbienteUseCase_AllowedTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, deps := newTestAmbienteUseCase(ctrl)

	deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(entities.Ambiente{ID: "amb-1", Status: entities.AmbienteStatusInstalado}, nil).Times(2)

	_, next, err := uc.AllowedTransitions(context.Background(), entities.Actor{Role: entities.RoleInstalador}, "amb-1")
	if err != nil || len(next) != 0 {
		t.Fatalf("expected no transitions for installer, got %v %v", next, err)
	}
	_, next, err = uc.AllowedTransitions(context.Background(), entities.Actor{Role: entities.RoleGerente}, "amb-1")
	if err != nil || len(next) != 1 || next[0] != entities.AmbienteStatusAguardandoInstalacao {
		t.Fatalf("expected manager reopen, got %v %v", next, err)
	}
}

func TestAmbienteUseCase_Pieces(t *testing.T) {
	withMounting := func(tipo string) entities.Ambiente {
		return entities.Ambiente{
			ID:      "amb-1",
			Medidas: entities.Medidas{Largura: f64(300)},
			Variaveis: entities.Variaveis{
				TipoMontagem: tipo,
				Regras:       entities.DiscountRules{DescontoTrilho: f64(4)},
			},
		}
	}

	t.Run("archetype id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(withMounting(mounting.ArchetypeDuplaCruzada), nil)

		pieces, err := uc.Pieces(context.Background(), "amb-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pieces) != 3 || pieces[0].Largura != 296 || pieces[1].Largura != 163 || pieces[2].Largura != 163 {
			t.Fatalf("unexpected pieces: %+v", pieces)
		}
	})

	t.Run("option name resolves through catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(withMounting("Wave Sala"), nil)
		deps.options.EXPECT().List(gomock.Any()).Return([]entities.MountingOption{
			{ID: "o-1", Nome: "wave sala", TipoBase: mounting.ArchetypeWave},
		}, nil)

		pieces, err := uc.Pieces(context.Background(), "amb-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pieces) != 1 || pieces[0].Largura != 325.6 {
			t.Fatalf("unexpected pieces: %+v", pieces)
		}
	})

	t.Run("unknown mounting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(withMounting("Persiana X"), nil)
		deps.options.EXPECT().List(gomock.Any()).Return(nil, nil)

		_, err := uc.Pieces(context.Background(), "amb-1")
		if !errors.Is(err, mounting.ErrUnknownArchetype) {
			t.Fatalf("expected ErrUnknownArchetype, got %v", err)
		}
	})

	t.Run("missing width", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, deps := newTestAmbienteUseCase(ctrl)
		a := withMounting(mounting.ArchetypeSimples)
		a.Medidas.Largura = nil
		deps.repo.EXPECT().GetByID(gomock.Any(), "amb-1").Return(a, nil)

		_, err := uc.Pieces(context.Background(), "amb-1")
		if !errors.Is(err, ErrMissingWidth) {
			t.Fatalf("expected ErrMissingWidth, got %v", err)
		}
	})
}

func TestAmbienteUseCase_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, deps := newTestAmbienteUseCase(ctrl)

	if _, err := uc.ListByStatus(context.Background(), "pronto"); !errors.Is(err, ErrInvalidAmbienteStatus) {
		t.Fatalf("expected ErrInvalidAmbienteStatus, got %v", err)
	}

	deps.repo.EXPECT().ListByObra(gomock.Any(), "obra-1").Return([]entities.Ambiente{
		{ID: "c", Prefixo: "A", Sala: "SALA", Sequencia: 10},
		{ID: "a", Prefixo: "A", Sala: "QUARTO", Sequencia: 1},
		{ID: "b", Prefixo: "A", Sala: "SALA", Sequencia: 2},
	}, nil)
	list, err := uc.ListByObra(context.Background(), "obra-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list[0].ID != "a" || list[1].ID != "b" || list[2].ID != "c" {
		t.Fatalf("unexpected order: %s %s %s", list[0].ID, list[1].ID, list[2].ID)
	}
}
