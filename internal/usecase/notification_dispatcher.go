package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFanoutLimit = 4
	// opsPushTimeout bounds the ops push, which runs inside the triggering request.
	opsPushTimeout = 3 * time.Second
)

// NotificationRule says who is told when an ambiente enters a status.
type NotificationRule struct {
	Roles  []entities.Role
	Tipo   entities.NotificationType
	Titulo string
	// Mensagem is formatted with the ambiente description ("APTO101SALA-1 (Obra X)").
	Mensagem string
	Link     string
}

// statusNotificationRules has an entry for every status. A nil rule means the
// status is silent.
var statusNotificationRules = map[entities.AmbienteStatus]*NotificationRule{
	entities.AmbienteStatusMedicaoPendente: nil,
	entities.AmbienteStatusAguardandoValidacao: {
		Roles:    []entities.Role{entities.RoleGerente},
		Tipo:     entities.NotificationTypeValidacao,
		Titulo:   "Ambiente aguardando validação",
		Mensagem: "O ambiente %s está aguardando validação das medidas.",
		Link:     "/validacao",
	},
	entities.AmbienteStatusEmProducao: nil,
	entities.AmbienteStatusProducaoCalha: {
		Roles:    []entities.Role{entities.RoleProducaoCalha},
		Tipo:     entities.NotificationTypeProducaoCalha,
		Titulo:   "Nova calha para produção",
		Mensagem: "O ambiente %s foi liberado para produção de calha.",
		Link:     "/producao/calhas",
	},
	entities.AmbienteStatusProducaoCortina: {
		Roles:    []entities.Role{entities.RoleProducaoCortina},
		Tipo:     entities.NotificationTypeProducaoCortina,
		Titulo:   "Nova cortina para produção",
		Mensagem: "O ambiente %s foi liberado para produção de cortina.",
		Link:     "/producao/cortinas",
	},
	entities.AmbienteStatusEstoqueDeposito: nil,
	entities.AmbienteStatusEmTransito:      nil,
	entities.AmbienteStatusAguardandoInstalacao: {
		Roles:    []entities.Role{entities.RoleInstalador},
		Tipo:     entities.NotificationTypeInstalacao,
		Titulo:   "Ambiente pronto para instalação",
		Mensagem: "O ambiente %s está aguardando instalação.",
		Link:     "/instalacao",
	},
	entities.AmbienteStatusInstalado: nil,
}

// RuleFor returns the notification rule for status, or nil when the status is silent.
func RuleFor(status entities.AmbienteStatus) *NotificationRule {
	return statusNotificationRules[status]
}

// INotificationDispatcher creates notifications for workflow events.
//
// Dispatch never fails the caller: recipient lookup and insert errors are
// logged and counted, and the number of notifications actually created is returned.
type INotificationDispatcher interface {
	DispatchStatus(ctx context.Context, a entities.Ambiente, newStatus entities.AmbienteStatus) int
	NotifyProjectAssignment(ctx context.Context, obra entities.Obra, newUserIDs []string) int
}

type NotificationDispatcher struct {
	users         interfaces.IUserRepository
	obras         interfaces.IObraRepository
	notifications interfaces.INotificationRepository
	metrics       interfaces.IWorkflowMetrics
	log           *logger.Logger

	publishers  []interfaces.INotificationPublisher
	ops         interfaces.IOpsNotifier
	fanoutLimit int
	now         func() time.Time
}

var _ INotificationDispatcher = (*NotificationDispatcher)(nil)

type DispatcherOption func(*NotificationDispatcher)

// WithPublishers hands every created notification to the given live channels.
func WithPublishers(p ...interfaces.INotificationPublisher) DispatcherOption {
	return func(d *NotificationDispatcher) {
		for _, pub := range p {
			if pub != nil {
				d.publishers = append(d.publishers, pub)
			}
		}
	}
}

func WithOpsNotifier(n interfaces.IOpsNotifier) DispatcherOption {
	return func(d *NotificationDispatcher) { d.ops = n }
}

func WithFanoutLimit(limit int) DispatcherOption {
	return func(d *NotificationDispatcher) {
		if limit > 0 {
			d.fanoutLimit = limit
		}
	}
}

func withClock(now func() time.Time) DispatcherOption {
	return func(d *NotificationDispatcher) { d.now = now }
}

func NewNotificationDispatcher(
	users interfaces.IUserRepository,
	obras interfaces.IObraRepository,
	notifications interfaces.INotificationRepository,
	metrics interfaces.IWorkflowMetrics,
	log *logger.Logger,
	opts ...DispatcherOption,
) *NotificationDispatcher {
	if log == nil {
		log = logger.NewNop()
	}
	d := &NotificationDispatcher{
		users:         users,
		obras:         obras,
		notifications: notifications,
		metrics:       metrics,
		log:           log.With("component", "NotificationDispatcher"),
		fanoutLimit:   defaultFanoutLimit,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *NotificationDispatcher) DispatchStatus(ctx context.Context, a entities.Ambiente, newStatus entities.AmbienteStatus) int {
	rule := RuleFor(newStatus)
	if rule == nil {
		return 0
	}

	users, err := d.users.ListByRoles(ctx, rule.Roles)
	if err != nil {
		d.log.Error("[notification][dispatch] recipient lookup failed", "ambiente_id", a.ID, "status", newStatus, "error", err)
		return 0
	}

	obraNome := d.obraNome(ctx, a.ObraID)
	mensagem := fmt.Sprintf(rule.Mensagem, describeAmbiente(a.Codigo, obraNome))
	now := d.now()

	var batch []entities.Notification
	for _, u := range activeUsers(users) {
		batch = append(batch, entities.Notification{
			ID:             uuid.NewString(),
			UsuarioID:      u.ID,
			Tipo:           rule.Tipo,
			Titulo:         rule.Titulo,
			Mensagem:       mensagem,
			Status:         newStatus,
			AmbienteID:     a.ID,
			AmbienteCodigo: a.Codigo,
			ObraID:         a.ObraID,
			ObraNome:       obraNome,
			Link:           rule.Link,
			CreatedAt:      now,
		})
	}
	if len(batch) == 0 {
		d.log.Debug("[notification][dispatch] no active recipients", "ambiente_id", a.ID, "status", newStatus)
		return 0
	}

	created := d.fanOut(ctx, batch)
	d.log.Info("[notification][dispatch] status notifications created",
		"ambiente_id", a.ID, "codigo", a.Codigo, "status", newStatus, "recipients", len(batch), "created", created)

	if created > 0 {
		d.pushOps(ctx, fmt.Sprintf("%s: %s", a.Codigo, newStatus.Label()),
			fmt.Sprintf("%s (%d destinatário(s))", mensagem, created))
	}
	return created
}

func (d *NotificationDispatcher) NotifyProjectAssignment(ctx context.Context, obra entities.Obra, newUserIDs []string) int {
	if len(newUserIDs) == 0 {
		return 0
	}
	users, err := d.users.GetByIDs(ctx, newUserIDs)
	if err != nil {
		d.log.Error("[notification][assignment] recipient lookup failed", "obra_id", obra.ID, "error", err)
		return 0
	}

	now := d.now()
	var batch []entities.Notification
	for _, u := range activeUsers(users) {
		batch = append(batch, entities.Notification{
			ID:        uuid.NewString(),
			UsuarioID: u.ID,
			Tipo:      entities.NotificationTypeObraAtribuida,
			Titulo:    "Nova obra atribuída",
			Mensagem:  fmt.Sprintf("Você foi adicionado como responsável pela obra %s.", obra.Nome),
			ObraID:    obra.ID,
			ObraNome:  obra.Nome,
			Link:      "/obras/" + obra.ID,
			CreatedAt: now,
		})
	}
	if len(batch) == 0 {
		return 0
	}

	created := d.fanOut(ctx, batch)
	d.log.Info("[notification][assignment] notifications created", "obra_id", obra.ID, "recipients", len(batch), "created", created)
	return created
}

// fanOut inserts the batch with bounded concurrency and returns how many succeeded.
func (d *NotificationDispatcher) fanOut(ctx context.Context, batch []entities.Notification) int {
	var created atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(d.fanoutLimit)
	for _, n := range batch {
		g.Go(func() error {
			saved, err := d.notifications.Create(ctx, n)
			if err != nil {
				d.metrics.NotificationFailed(n.Tipo)
				d.log.Error("[notification][dispatch] insert failed", "usuario_id", n.UsuarioID, "tipo", n.Tipo, "error", err)
				return nil
			}
			d.metrics.NotificationCreated(n.Tipo)
			created.Add(1)
			d.publish(ctx, saved)
			return nil
		})
	}
	_ = g.Wait()

	return int(created.Load())
}

func (d *NotificationDispatcher) publish(ctx context.Context, n entities.Notification) {
	for _, p := range d.publishers {
		if err := p.Publish(ctx, n); err != nil {
			d.metrics.PublishFailed("realtime")
			d.log.Warn("[notification][publish] failed", "notification_id", n.ID, "usuario_id", n.UsuarioID, "error", err)
		}
	}
}

func (d *NotificationDispatcher) pushOps(ctx context.Context, title, message string) {
	if d.ops == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, opsPushTimeout)
	defer cancel()
	if err := d.ops.Notify(ctx, title, message); err != nil {
		d.metrics.PublishFailed("push")
		d.log.Warn("[notification][push] failed", "title", title, "error", err)
	}
}

func (d *NotificationDispatcher) obraNome(ctx context.Context, obraID string) string {
	if strings.TrimSpace(obraID) == "" {
		return ""
	}
	obra, err := d.obras.GetByID(ctx, obraID)
	if err != nil {
		d.log.Warn("[notification][dispatch] obra lookup failed", "obra_id", obraID, "error", err)
		return ""
	}
	return obra.Nome
}

func activeUsers(users []entities.User) []entities.User {
	out := make([]entities.User, 0, len(users))
	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		if !u.Ativo {
			continue
		}
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}
	return out
}

func describeAmbiente(codigo, obraNome string) string {
	if obraNome == "" {
		return codigo
	}
	return fmt.Sprintf("%s (%s)", codigo, obraNome)
}
