// Package workflow holds the role-gated transition rules of the ambiente lifecycle.
package workflow

import (
	"fmt"

	"gestao_cortinas/internal/domain/entities"
)

type transitionTable map[entities.AmbienteStatus][]entities.AmbienteStatus

// standardTransitions is forward-only, one hop, with the validation branch and the
// reschedule back-edge from aguardando_instalacao.
var standardTransitions = transitionTable{
	entities.AmbienteStatusMedicaoPendente:      {entities.AmbienteStatusAguardandoValidacao},
	entities.AmbienteStatusAguardandoValidacao:  {entities.AmbienteStatusEmProducao, entities.AmbienteStatusProducaoCalha},
	entities.AmbienteStatusEmProducao:           {entities.AmbienteStatusProducaoCalha},
	entities.AmbienteStatusProducaoCalha:        {entities.AmbienteStatusProducaoCortina},
	entities.AmbienteStatusProducaoCortina:      {entities.AmbienteStatusEstoqueDeposito},
	entities.AmbienteStatusEstoqueDeposito:      {entities.AmbienteStatusEmTransito},
	entities.AmbienteStatusEmTransito:           {entities.AmbienteStatusAguardandoInstalacao},
	entities.AmbienteStatusAguardandoInstalacao: {entities.AmbienteStatusInstalado, entities.AmbienteStatusEmTransito},
	entities.AmbienteStatusInstalado:            {},
}

// managerTransitions is a superset of standardTransitions with backward corrections.
var managerTransitions = transitionTable{
	entities.AmbienteStatusMedicaoPendente: {entities.AmbienteStatusAguardandoValidacao},
	entities.AmbienteStatusAguardandoValidacao: {
		entities.AmbienteStatusMedicaoPendente,
		entities.AmbienteStatusEmProducao,
		entities.AmbienteStatusProducaoCalha,
	},
	entities.AmbienteStatusEmProducao: {
		entities.AmbienteStatusAguardandoValidacao,
		entities.AmbienteStatusProducaoCalha,
	},
	entities.AmbienteStatusProducaoCalha: {
		entities.AmbienteStatusAguardandoValidacao,
		entities.AmbienteStatusEmProducao,
		entities.AmbienteStatusProducaoCortina,
	},
	entities.AmbienteStatusProducaoCortina: {
		entities.AmbienteStatusProducaoCalha,
		entities.AmbienteStatusEstoqueDeposito,
	},
	entities.AmbienteStatusEstoqueDeposito: {
		entities.AmbienteStatusProducaoCortina,
		entities.AmbienteStatusEmTransito,
	},
	entities.AmbienteStatusEmTransito: {
		entities.AmbienteStatusEstoqueDeposito,
		entities.AmbienteStatusAguardandoInstalacao,
	},
	entities.AmbienteStatusAguardandoInstalacao: {
		entities.AmbienteStatusEmTransito,
		entities.AmbienteStatusInstalado,
	},
	entities.AmbienteStatusInstalado: {entities.AmbienteStatusAguardandoInstalacao},
}

// TransitionResult is the outcome of ValidateTransition. Message is empty when Valid.
type TransitionResult struct {
	Valid   bool
	Message string
}

func tableFor(role entities.Role) transitionTable {
	if role.IsManager() {
		return managerTransitions
	}
	return standardTransitions
}

// ValidateTransition decides whether role may move an ambiente from current to requested.
// Legality depends only on (current, requested, role).
func ValidateTransition(current, requested entities.AmbienteStatus, role entities.Role) TransitionResult {
	current = current.OrDefault()
	if requested == current {
		return TransitionResult{Valid: true}
	}
	if !requested.IsValid() {
		return TransitionResult{Message: fmt.Sprintf("Status desconhecido: %q.", requested)}
	}

	for _, next := range tableFor(role)[current] {
		if next == requested {
			return TransitionResult{Valid: true}
		}
	}

	msg := fmt.Sprintf("Transição de \"%s\" para \"%s\" não é permitida.", current.Label(), requested.Label())
	if !role.IsManager() {
		msg += " Entre em contato com um gerente para corrigir o status."
	}
	return TransitionResult{Message: msg}
}

// AllowedNextStatuses returns a copy of the adjacency row for current under role.
// Intended for UI affordances; decisions go through ValidateTransition.
func AllowedNextStatuses(current entities.AmbienteStatus, role entities.Role) []entities.AmbienteStatus {
	row := tableFor(role)[current.OrDefault()]
	out := make([]entities.AmbienteStatus, len(row))
	copy(out, row)
	return out
}
