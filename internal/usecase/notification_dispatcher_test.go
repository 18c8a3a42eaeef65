package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/infrastructure/logger"
	mock_interfaces "gestao_cortinas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type dispatcherDeps struct {
	users         *mock_interfaces.MockIUserRepository
	obras         *mock_interfaces.MockIObraRepository
	notifications *mock_interfaces.MockINotificationRepository
	metrics       *mock_interfaces.MockIWorkflowMetrics
	publisher     *mock_interfaces.MockINotificationPublisher
	ops           *mock_interfaces.MockIOpsNotifier
}

func newTestDispatcher(ctrl *gomock.Controller) (*NotificationDispatcher, dispatcherDeps) {
	deps := dispatcherDeps{
		users:         mock_interfaces.NewMockIUserRepository(ctrl),
		obras:         mock_interfaces.NewMockIObraRepository(ctrl),
		notifications: mock_interfaces.NewMockINotificationRepository(ctrl),
		metrics:       mock_interfaces.NewMockIWorkflowMetrics(ctrl),
		publisher:     mock_interfaces.NewMockINotificationPublisher(ctrl),
		ops:           mock_interfaces.NewMockIOpsNotifier(ctrl),
	}
	fixed := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	d := NewNotificationDispatcher(deps.users, deps.obras, deps.notifications, deps.metrics, logger.NewNop(),
		WithPublishers(deps.publisher),
		WithOpsNotifier(deps.ops),
		WithFanoutLimit(2),
		withClock(func() time.Time { return fixed }),
	)
	return d, deps
}

// recorder collects notifications passed to concurrent Create calls.
type recorder struct {
	mu    sync.Mutex
	items []entities.Notification
}

func (r *recorder) create(_ context.Context, n entities.Notification) (entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	return n, nil
}

func (r *recorder) sorted() []entities.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]entities.Notification(nil), r.items...)
	sort.Slice(out, func(i, j int) bool { return out[i].UsuarioID < out[j].UsuarioID })
	return out
}

func TestStatusNotificationRules_CoverEveryStatus(t *testing.T) {
	for _, s := range entities.AllAmbienteStatuses {
		if _, ok := statusNotificationRules[s]; !ok {
			t.Fatalf("status %q has no notification decision", s)
		}
	}
	if len(statusNotificationRules) != len(entities.AllAmbienteStatuses) {
		t.Fatalf("rule set has entries for unknown statuses")
	}

	cases := map[entities.AmbienteStatus]struct {
		role entities.Role
		tipo entities.NotificationType
		link string
	}{
		entities.AmbienteStatusAguardandoValidacao:  {entities.RoleGerente, entities.NotificationTypeValidacao, "/validacao"},
		entities.AmbienteStatusProducaoCalha:        {entities.RoleProducaoCalha, entities.NotificationTypeProducaoCalha, "/producao/calhas"},
		entities.AmbienteStatusProducaoCortina:      {entities.RoleProducaoCortina, entities.NotificationTypeProducaoCortina, "/producao/cortinas"},
		entities.AmbienteStatusAguardandoInstalacao: {entities.RoleInstalador, entities.NotificationTypeInstalacao, "/instalacao"},
	}
	for status, want := range cases {
		rule := RuleFor(status)
		if rule == nil {
			t.Fatalf("expected rule for %q", status)
		}
		if len(rule.Roles) != 1 || rule.Roles[0] != want.role || rule.Tipo != want.tipo || rule.Link != want.link {
			t.Fatalf("unexpected rule for %q: %+v", status, rule)
		}
	}
}

func TestNotificationDispatcher_DispatchStatus(t *testing.T) {
	ambiente := entities.Ambiente{ID: "amb-1", ObraID: "obra-1", Codigo: "APTO101SALA-1"}

	t.Run("fans out to active installers only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d, deps := newTestDispatcher(ctrl)

		deps.users.EXPECT().ListByRoles(gomock.Any(), []entities.Role{entities.RoleInstalador}).Return([]entities.User{
			{ID: "u-1", Role: entities.RoleInstalador, Ativo: true},
			{ID: "u-2", Role: entities.RoleInstalador, Ativo: false},
			{ID: "u-3", Role: entities.RoleInstalador, Ativo: true},
			{ID: "u-4", Role: entities.RoleInstalador, Ativo: false},
			{ID: "u-5", Role: entities.RoleInstalador, Ativo: true},
		}, nil)
		deps.obras.EXPECT().GetByID(gomock.Any(), "obra-1").Return(entities.Obra{ID: "obra-1", Nome: "Residencial Aurora"}, nil)

		rec := &recorder{}
		deps.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(rec.create).Times(3)
		deps.metrics.EXPECT().NotificationCreated(entities.NotificationTypeInstalacao).Times(3)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		deps.ops.EXPECT().Notify(gomock.Any(), "APTO101SALA-1: Aguardando instalação", gomock.Any()).Return(nil)

		created := d.DispatchStatus(context.Background(), ambiente, entities.AmbienteStatusAguardandoInstalacao)
		if created != 3 {
			t.Fatalf("expected 3 notifications, got %d", created)
		}

		got := rec.sorted()
		wantUsers := []string{"u-1", "u-3", "u-5"}
		for i, n := range got {
			if n.UsuarioID != wantUsers[i] {
				t.Fatalf("unexpected recipient %q at %d", n.UsuarioID, i)
			}
			if n.Link != "/instalacao" || n.AmbienteCodigo != "APTO101SALA-1" || n.Tipo != entities.NotificationTypeInstalacao {
				t.Fatalf("unexpected notification: %+v", n)
			}
			if n.ObraNome != "Residencial Aurora" || n.ObraID != "obra-1" || n.AmbienteID != "amb-1" {
				t.Fatalf("expected obra snapshot, got %+v", n)
			}
			if n.Status != entities.AmbienteStatusAguardandoInstalacao || n.ReadAt != nil || n.ID == "" {
				t.Fatalf("unexpected notification state: %+v", n)
			}
		}
	})

	t.Run("silent status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d, _ := newTestDispatcher(ctrl)

		if created := d.DispatchStatus(context.Background(), ambiente, entities.AmbienteStatusEmProducao); created != 0 {
			t.Fatalf("expected 0, got %d", created)
		}
	})

	t.Run("insert failures are counted and swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d, deps := newTestDispatcher(ctrl)

		deps.users.EXPECT().ListByRoles(gomock.Any(), gomock.Any()).Return([]entities.User{
			{ID: "g-1", Role: entities.RoleGerente, Ativo: true},
			{ID: "g-2", Role: entities.RoleGerente, Ativo: true},
		}, nil)
		deps.obras.EXPECT().GetByID(gomock.Any(), "obra-1").Return(entities.Obra{}, errors.New("db"))
		deps.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UsuarioID == "g-1" {
					return entities.Notification{}, errors.New("throttled")
				}
				return n, nil
			},
		).Times(2)
		deps.metrics.EXPECT().NotificationFailed(entities.NotificationTypeValidacao)
		deps.metrics.EXPECT().NotificationCreated(entities.NotificationTypeValidacao)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		deps.metrics.EXPECT().PublishFailed("realtime")
		deps.ops.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("telegram down"))
		deps.metrics.EXPECT().PublishFailed("push")

		if created := d.DispatchStatus(context.Background(), ambiente, entities.AmbienteStatusAguardandoValidacao); created != 1 {
			t.Fatalf("expected 1, got %d", created)
		}
	})

	t.Run("recipient lookup failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d, deps := newTestDispatcher(ctrl)

		deps.users.EXPECT().ListByRoles(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		if created := d.DispatchStatus(context.Background(), ambiente, entities.AmbienteStatusProducaoCalha); created != 0 {
			t.Fatalf("expected 0, got %d", created)
		}
	})

	t.Run("no active recipients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d, deps := newTestDispatcher(ctrl)

		deps.users.EXPECT().ListByRoles(gomock.Any(), gomock.Any()).Return([]entities.User{{ID: "c-1", Ativo: false}}, nil)
		deps.obras.EXPECT().GetByID(gomock.Any(), "obra-1").Return(entities.Obra{ID: "obra-1"}, nil)

		if created := d.DispatchStatus(context.Background(), ambiente, entities.AmbienteStatusProducaoCortina); created != 0 {
			t.Fatalf("expected 0, got %d", created)
		}
	})
}

func TestNotificationDispatcher_OpsPushIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, deps := newTestDispatcher(ctrl)

	deps.users.EXPECT().ListByRoles(gomock.Any(), gomock.Any()).Return([]entities.User{{ID: "i-1", Ativo: true}}, nil)
	deps.obras.EXPECT().GetByID(gomock.Any(), "obra-1").Return(entities.Obra{ID: "obra-1"}, nil)
	deps.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entities.Notification) (entities.Notification, error) { return n, nil },
	)
	deps.metrics.EXPECT().NotificationCreated(entities.NotificationTypeInstalacao)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	deps.ops.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ string) error {
			deadline, ok := ctx.Deadline()
			if !ok || time.Until(deadline) > opsPushTimeout {
				t.Fatalf("expected ops push deadline within %s, got %v (set=%v)", opsPushTimeout, deadline, ok)
			}
			return nil
		},
	)

	a := entities.Ambiente{ID: "amb-1", ObraID: "obra-1", Codigo: "APTO101SALA-1"}
	if created := d.DispatchStatus(context.Background(), a, entities.AmbienteStatusAguardandoInstalacao); created != 1 {
		t.Fatalf("expected 1, got %d", created)
	}
}

func TestNotificationDispatcher_NotifyProjectAssignment(t *testing.T) {
	obra := entities.Obra{ID: "obra-9", Nome: "Edifício Horizonte"}

	t.Run("notifies active new users", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d, deps := newTestDispatcher(ctrl)

		deps.users.EXPECT().GetByIDs(gomock.Any(), []string{"u-1", "u-2"}).Return([]entities.User{
			{ID: "u-1", Ativo: true},
			{ID: "u-2", Ativo: false},
		}, nil)
		rec := &recorder{}
		deps.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(rec.create)
		deps.metrics.EXPECT().NotificationCreated(entities.NotificationTypeObraAtribuida)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		if created := d.NotifyProjectAssignment(context.Background(), obra, []string{"u-1", "u-2"}); created != 1 {
			t.Fatalf("expected 1, got %d", created)
		}
		n := rec.sorted()[0]
		if n.UsuarioID != "u-1" || n.Link != "/obras/obra-9" || n.Tipo != entities.NotificationTypeObraAtribuida || n.ObraNome != "Edifício Horizonte" {
			t.Fatalf("unexpected notification: %+v", n)
		}
		if n.Status != "" || n.AmbienteID != "" {
			t.Fatalf("assignment notification must not reference an ambiente: %+v", n)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d, _ := newTestDispatcher(ctrl)
		if created := d.NotifyProjectAssignment(context.Background(), obra, nil); created != 0 {
			t.Fatalf("expected 0, got %d", created)
		}
	})
}
