package workflow

import (
	"testing"

	"gestao_cortinas/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contains(list []entities.AmbienteStatus, s entities.AmbienteStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestTablesCoverEveryStatus(t *testing.T) {
	for _, s := range entities.AllAmbienteStatuses {
		_, inStandard := standardTransitions[s]
		_, inManager := managerTransitions[s]
		assert.Truef(t, inStandard, "standard table missing %s", s)
		assert.Truef(t, inManager, "manager table missing %s", s)
	}
	assert.Len(t, standardTransitions, len(entities.AllAmbienteStatuses))
	assert.Len(t, managerTransitions, len(entities.AllAmbienteStatuses))
}

func TestManagerTableIsSupersetOfStandard(t *testing.T) {
	for from, row := range standardTransitions {
		for _, to := range row {
			assert.Truef(t, contains(managerTransitions[from], to), "manager table missing %s -> %s", from, to)
		}
	}
}

func TestValidateTransition_NoOpAlwaysValid(t *testing.T) {
	for _, s := range entities.AllAmbienteStatuses {
		for _, role := range entities.AllRoles {
			res := ValidateTransition(s, s, role)
			assert.Truef(t, res.Valid, "%s -> %s as %s", s, s, role)
			assert.Empty(t, res.Message)
		}
	}
}

func TestValidateTransition_StandardForwardOnly(t *testing.T) {
	for _, from := range entities.AllAmbienteStatuses {
		for _, to := range entities.AllAmbienteStatuses {
			if from == to {
				continue
			}
			res := ValidateTransition(from, to, entities.RoleInstalador)
			if contains(standardTransitions[from], to) {
				assert.Truef(t, res.Valid, "%s -> %s should be allowed", from, to)
				continue
			}
			assert.Falsef(t, res.Valid, "%s -> %s should be rejected", from, to)
			assert.Contains(t, res.Message, from.Label())
			assert.Contains(t, res.Message, to.Label())
			assert.Contains(t, res.Message, "gerente")

			if contains(managerTransitions[from], to) {
				assert.Truef(t, ValidateTransition(from, to, entities.RoleGerente).Valid, "manager %s -> %s", from, to)
			}
		}
	}
}

func TestValidateTransition_Terminal(t *testing.T) {
	for _, to := range entities.AllAmbienteStatuses {
		if to == entities.AmbienteStatusInstalado {
			continue
		}
		assert.False(t, ValidateTransition(entities.AmbienteStatusInstalado, to, entities.RoleInstalador).Valid)
	}

	res := ValidateTransition(entities.AmbienteStatusInstalado, entities.AmbienteStatusAguardandoInstalacao, entities.RoleGerente)
	assert.True(t, res.Valid)
}

func TestValidateTransition_ManagerRejectionHasNoContactHint(t *testing.T) {
	res := ValidateTransition(entities.AmbienteStatusMedicaoPendente, entities.AmbienteStatusInstalado, entities.RoleGerente)
	require.False(t, res.Valid)
	assert.NotContains(t, res.Message, "Entre em contato")
}

func TestValidateTransition_EmptyCurrentDefaultsToMedicaoPendente(t *testing.T) {
	assert.True(t, ValidateTransition("", entities.AmbienteStatusAguardandoValidacao, entities.RoleMedidor).Valid)
	assert.True(t, ValidateTransition("", entities.AmbienteStatusMedicaoPendente, entities.RoleMedidor).Valid)
	assert.False(t, ValidateTransition("", entities.AmbienteStatusEmProducao, entities.RoleMedidor).Valid)
}

func TestValidateTransition_UnknownRequested(t *testing.T) {
	res := ValidateTransition(entities.AmbienteStatusEmProducao, "cancelado", entities.RoleGerente)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Message, "cancelado")
}

func TestAllowedNextStatuses(t *testing.T) {
	got := AllowedNextStatuses(entities.AmbienteStatusAguardandoValidacao, entities.RoleMedidor)
	assert.Equal(t, []entities.AmbienteStatus{entities.AmbienteStatusEmProducao, entities.AmbienteStatusProducaoCalha}, got)

	got[0] = entities.AmbienteStatusInstalado
	assert.Equal(t, entities.AmbienteStatusEmProducao, standardTransitions[entities.AmbienteStatusAguardandoValidacao][0], "row must be copied")

	assert.Empty(t, AllowedNextStatuses(entities.AmbienteStatusInstalado, entities.RoleInstalador))
	assert.Equal(t,
		[]entities.AmbienteStatus{entities.AmbienteStatusAguardandoInstalacao},
		AllowedNextStatuses(entities.AmbienteStatusInstalado, entities.RoleGerente),
	)
}
