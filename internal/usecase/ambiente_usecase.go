package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/domain/measurement"
	"gestao_cortinas/internal/domain/mounting"
	"gestao_cortinas/internal/domain/workflow"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAmbienteNotFound        = errors.New("ambiente not found")
	ErrInvalidAmbienteID       = errors.New("invalid ambiente id")
	ErrInvalidObraID           = errors.New("invalid obra_id")
	ErrInvalidSala             = errors.New("invalid sala")
	ErrInvalidAmbienteStatus   = errors.New("invalid ambiente status")
	ErrInvalidInstallationType = errors.New("invalid installation type")
	ErrInvalidMeasurement      = errors.New("measurements must not be negative")
	ErrMissingWidth            = errors.New("ambiente has no width measured")
	ErrMissingMountingType     = errors.New("ambiente has no mounting type")
	ErrAmbienteConflict        = errors.New("ambiente was modified by another request")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrForbidden               = errors.New("operation not allowed for this role")
	ErrObservacaoWithoutStatus = errors.New("observacao is only recorded with a status change")
)

// TransitionError carries the validator message for a rejected status change.
type TransitionError struct {
	From    entities.AmbienteStatus
	To      entities.AmbienteStatus
	Message string
}

func (e *TransitionError) Error() string { return e.Message }

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

type CreateAmbienteInput struct {
	ObraID       string
	Prefixo      string
	Sala         string
	Medidas      entities.Medidas
	Variaveis    entities.Variaveis
	Responsaveis entities.Responsaveis
	Observacao   string
}

// UpdateAmbienteInput is a partial update; nil fields are left untouched.
type UpdateAmbienteInput struct {
	Medidas      *entities.Medidas
	Variaveis    *entities.Variaveis
	Responsaveis *entities.Responsaveis
	Status       *entities.AmbienteStatus
	Observacao   string
	// Version, when set, must match the stored version.
	Version *int64
}

type ArchetypeResolver interface {
	ResolveArchetype(ctx context.Context, tipoMontagem string) (string, error)
}

// IAmbienteUseCase exposes the ambiente workflow operations.
type IAmbienteUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateAmbienteInput) (entities.Ambiente, error)
	Update(ctx context.Context, actor entities.Actor, id string, in UpdateAmbienteInput) (entities.Ambiente, error)
	GetByID(ctx context.Context, id string) (entities.Ambiente, error)
	ListByObra(ctx context.Context, obraID string) ([]entities.Ambiente, error)
	ListByStatus(ctx context.Context, status entities.AmbienteStatus) ([]entities.Ambiente, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
	AllowedTransitions(ctx context.Context, actor entities.Actor, id string) (entities.Ambiente, []entities.AmbienteStatus, error)
	Pieces(ctx context.Context, id string) ([]mounting.Piece, error)
}

type AmbienteUseCase struct {
	repo       interfaces.IAmbienteRepository
	obras      interfaces.IObraRepository
	dispatcher INotificationDispatcher
	archetypes ArchetypeResolver
	metrics    interfaces.IWorkflowMetrics
	log        *logger.Logger
	now        func() time.Time
}

var _ IAmbienteUseCase = (*AmbienteUseCase)(nil)

func NewAmbienteUseCase(
	repo interfaces.IAmbienteRepository,
	obras interfaces.IObraRepository,
	dispatcher INotificationDispatcher,
	archetypes ArchetypeResolver,
	metrics interfaces.IWorkflowMetrics,
	log *logger.Logger,
) *AmbienteUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &AmbienteUseCase{
		repo:       repo,
		obras:      obras,
		dispatcher: dispatcher,
		archetypes: archetypes,
		metrics:    metrics,
		log:        log.With("component", "AmbienteUseCase"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *AmbienteUseCase) Create(ctx context.Context, actor entities.Actor, in CreateAmbienteInput) (entities.Ambiente, error) {
	in.ObraID = strings.TrimSpace(in.ObraID)
	in.Prefixo = strings.TrimSpace(in.Prefixo)
	in.Sala = strings.TrimSpace(in.Sala)
	if in.ObraID == "" {
		return entities.Ambiente{}, ErrInvalidObraID
	}
	if in.Sala == "" {
		return entities.Ambiente{}, ErrInvalidSala
	}
	if err := validateMedidas(in.Medidas); err != nil {
		return entities.Ambiente{}, err
	}
	if err := validateRegras(in.Variaveis.Regras); err != nil {
		return entities.Ambiente{}, err
	}

	obra, err := u.obras.GetByID(ctx, in.ObraID)
	if err != nil {
		return entities.Ambiente{}, err
	}
	if obra.ID == "" {
		return entities.Ambiente{}, ErrObraNotFound
	}

	siblings, err := u.repo.ListByObra(ctx, in.ObraID)
	if err != nil {
		return entities.Ambiente{}, err
	}
	seq := nextSequencia(siblings, in.Prefixo, in.Sala)

	now := u.now()
	a := entities.Ambiente{
		ID:           uuid.NewString(),
		ObraID:       in.ObraID,
		Codigo:       entities.BuildCodigo(in.Prefixo, in.Sala, seq),
		Prefixo:      in.Prefixo,
		Sala:         in.Sala,
		Sequencia:    seq,
		Medidas:      in.Medidas,
		Variaveis:    in.Variaveis,
		Status:       entities.AmbienteStatusMedicaoPendente,
		Responsaveis: in.Responsaveis,
		CreatedBy:    actor.ID,
		UpdatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
	a.AppendLog(entities.AmbienteLog{
		Status:      a.Status,
		Observacao:  observacaoOr(in.Observacao, "Ambiente criado"),
		Timestamp:   now,
		UsuarioID:   actor.ID,
		UsuarioNome: actor.Nome,
	})
	measurement.Recalculate(&a)

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Ambiente{}, err
	}
	u.log.Info("[ambiente][usecase] created", "ambiente_id", created.ID, "codigo", created.Codigo, "obra_id", created.ObraID, "usuario_id", actor.ID)
	return created, nil
}

func (u *AmbienteUseCase) Update(ctx context.Context, actor entities.Actor, id string, in UpdateAmbienteInput) (entities.Ambiente, error) {
	if in.Observacao != "" && in.Status == nil {
		return entities.Ambiente{}, ErrObservacaoWithoutStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Ambiente{}, err
	}
	if in.Version != nil && *in.Version != current.Version {
		return entities.Ambiente{}, ErrAmbienteConflict
	}

	a := current
	a.Logs = append([]entities.AmbienteLog(nil), current.Logs...)
	a.Status = current.Status.OrDefault()

	if in.Medidas != nil {
		if err := validateMedidas(*in.Medidas); err != nil {
			return entities.Ambiente{}, err
		}
		a.Medidas = *in.Medidas
	}
	if in.Variaveis != nil {
		if err := validateRegras(in.Variaveis.Regras); err != nil {
			return entities.Ambiente{}, err
		}
		a.Variaveis = *in.Variaveis
	}
	if in.Responsaveis != nil {
		a.Responsaveis = *in.Responsaveis
	}

	now := u.now()
	statusChanged := false
	if in.Status != nil && *in.Status != a.Status {
		from, to := a.Status, *in.Status
		result := workflow.ValidateTransition(from, to, actor.Role)
		u.metrics.TransitionObserved(from, to, result.Valid)
		if !result.Valid {
			u.log.Warn("[ambiente][usecase] transition rejected", "ambiente_id", a.ID, "from", from, "to", to, "role", actor.Role)
			return entities.Ambiente{}, &TransitionError{From: from, To: to, Message: result.Message}
		}
		a.Status = to
		a.StampWorkflow(from, to, now)
		a.AppendLog(entities.AmbienteLog{
			Status:      to,
			Observacao:  in.Observacao,
			Timestamp:   now,
			UsuarioID:   actor.ID,
			UsuarioNome: actor.Nome,
		})
		statusChanged = true
	}

	measurement.Recalculate(&a)
	a.UpdatedBy = actor.ID
	a.UpdatedAt = now
	a.Version = current.Version + 1

	saved, err := u.repo.Update(ctx, a, current.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Ambiente{}, ErrAmbienteConflict
		}
		return entities.Ambiente{}, err
	}
	if saved.ID == "" {
		return entities.Ambiente{}, ErrAmbienteNotFound
	}

	if statusChanged {
		u.log.Info("[ambiente][usecase] status changed", "ambiente_id", saved.ID, "codigo", saved.Codigo,
			"from", current.Status.OrDefault(), "to", saved.Status, "usuario_id", actor.ID)
		u.dispatcher.DispatchStatus(ctx, saved, saved.Status)
	}
	return saved, nil
}

func (u *AmbienteUseCase) GetByID(ctx context.Context, id string) (entities.Ambiente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ambiente{}, ErrInvalidAmbienteID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ambiente{}, err
	}
	if a.ID == "" {
		return entities.Ambiente{}, ErrAmbienteNotFound
	}
	return a, nil
}

func (u *AmbienteUseCase) ListByObra(ctx context.Context, obraID string) ([]entities.Ambiente, error) {
	obraID = strings.TrimSpace(obraID)
	if obraID == "" {
		return nil, ErrInvalidObraID
	}
	list, err := u.repo.ListByObra(ctx, obraID)
	if err != nil {
		return nil, err
	}
	sortByCodigo(list)
	return list, nil
}

func (u *AmbienteUseCase) ListByStatus(ctx context.Context, status entities.AmbienteStatus) ([]entities.Ambiente, error) {
	if !status.IsValid() {
		return nil, ErrInvalidAmbienteStatus
	}
	list, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sortByCodigo(list)
	return list, nil
}

func (u *AmbienteUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.Role.IsManager() {
		return ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAmbienteID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAmbienteNotFound
	}
	u.log.Info("[ambiente][usecase] deleted", "ambiente_id", id, "usuario_id", actor.ID)
	return nil
}

func (u *AmbienteUseCase) AllowedTransitions(ctx context.Context, actor entities.Actor, id string) (entities.Ambiente, []entities.AmbienteStatus, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Ambiente{}, nil, err
	}
	return a, workflow.AllowedNextStatuses(a.Status, actor.Role), nil
}

// Pieces computes the rail pieces for the ambiente from its mounting type, width and rail discount.
func (u *AmbienteUseCase) Pieces(ctx context.Context, id string) ([]mounting.Piece, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tipo := strings.TrimSpace(a.Variaveis.TipoMontagem)
	if tipo == "" {
		return nil, ErrMissingMountingType
	}
	if a.Medidas.Largura == nil {
		return nil, ErrMissingWidth
	}

	archetype := tipo
	if !mounting.IsKnown(tipo) && u.archetypes != nil {
		archetype, err = u.archetypes.ResolveArchetype(ctx, tipo)
		if err != nil {
			return nil, err
		}
	}

	var desconto float64
	if a.Variaveis.Regras.DescontoTrilho != nil {
		desconto = *a.Variaveis.Regras.DescontoTrilho
	}
	return mounting.CalculatePieces(archetype, *a.Medidas.Largura, desconto)
}

func validateMedidas(m entities.Medidas) error {
	if !m.TipoInstalacao.IsValid() {
		return ErrInvalidInstallationType
	}
	for _, v := range []*float64{m.Largura, m.Altura, m.Recuo} {
		if v != nil && *v < 0 {
			return ErrInvalidMeasurement
		}
	}
	return nil
}

func validateRegras(r entities.DiscountRules) error {
	for _, v := range []*float64{r.DescontoTrilho, r.DescontoBlackout, r.DescontoVoil, r.AlturaInstalacao} {
		if v != nil && *v < 0 {
			return ErrInvalidMeasurement
		}
	}
	return nil
}

// nextSequencia numbers ambientes per (prefixo, sala) inside an obra, starting at 1.
func nextSequencia(siblings []entities.Ambiente, prefixo, sala string) int {
	highest := 0
	for _, s := range siblings {
		if strings.EqualFold(s.Prefixo, prefixo) && strings.EqualFold(s.Sala, sala) && s.Sequencia > highest {
			highest = s.Sequencia
		}
	}
	return highest + 1
}

func sortByCodigo(list []entities.Ambiente) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Prefixo != b.Prefixo {
			return a.Prefixo < b.Prefixo
		}
		if a.Sala != b.Sala {
			return a.Sala < b.Sala
		}
		return a.Sequencia < b.Sequencia
	})
}

func observacaoOr(obs, def string) string {
	if s := strings.TrimSpace(obs); s != "" {
		return s
	}
	return def
}
