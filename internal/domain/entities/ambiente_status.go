package entities

// AmbienteStatus represents the lifecycle of an ambiente (one measurable opening).
//
// Nominal path:
//
//	medicao_pendente -> aguardando_validacao -> em_producao -> producao_calha ->
//	producao_cortina -> estoque_deposito -> em_transito -> aguardando_instalacao -> instalado
//
// Adding a status requires touching the transition tables (domain/workflow) and the
// notification rules (usecase); tests fail when one of them is left out.

type AmbienteStatus string

const (
	AmbienteStatusMedicaoPendente      AmbienteStatus = "medicao_pendente"
	AmbienteStatusAguardandoValidacao  AmbienteStatus = "aguardando_validacao"
	AmbienteStatusEmProducao           AmbienteStatus = "em_producao"
	AmbienteStatusProducaoCalha        AmbienteStatus = "producao_calha"
	AmbienteStatusProducaoCortina      AmbienteStatus = "producao_cortina"
	AmbienteStatusEstoqueDeposito      AmbienteStatus = "estoque_deposito"
	AmbienteStatusEmTransito           AmbienteStatus = "em_transito"
	AmbienteStatusAguardandoInstalacao AmbienteStatus = "aguardando_instalacao"
	AmbienteStatusInstalado            AmbienteStatus = "instalado"
)

// AllAmbienteStatuses lists every status in nominal workflow order.
var AllAmbienteStatuses = []AmbienteStatus{
	AmbienteStatusMedicaoPendente,
	AmbienteStatusAguardandoValidacao,
	AmbienteStatusEmProducao,
	AmbienteStatusProducaoCalha,
	AmbienteStatusProducaoCortina,
	AmbienteStatusEstoqueDeposito,
	AmbienteStatusEmTransito,
	AmbienteStatusAguardandoInstalacao,
	AmbienteStatusInstalado,
}

var ambienteStatusLabels = map[AmbienteStatus]string{
	AmbienteStatusMedicaoPendente:      "Medição pendente",
	AmbienteStatusAguardandoValidacao:  "Aguardando validação",
	AmbienteStatusEmProducao:           "Em produção",
	AmbienteStatusProducaoCalha:        "Produção de calha",
	AmbienteStatusProducaoCortina:      "Produção de cortina",
	AmbienteStatusEstoqueDeposito:      "Estoque/Depósito",
	AmbienteStatusEmTransito:           "Em trânsito",
	AmbienteStatusAguardandoInstalacao: "Aguardando instalação",
	AmbienteStatusInstalado:            "Instalado",
}

// Label returns the human label, or the raw value for unknown statuses.
func (s AmbienteStatus) Label() string {
	if l, ok := ambienteStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s AmbienteStatus) IsValid() bool {
	_, ok := ambienteStatusLabels[s]
	return ok
}

// OrDefault maps an absent status to medicao_pendente.
func (s AmbienteStatus) OrDefault() AmbienteStatus {
	if s == "" {
		return AmbienteStatusMedicaoPendente
	}
	return s
}
