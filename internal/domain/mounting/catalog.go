// Package mounting is the fixed catalog of mounting archetypes and their piece formulas.
//
// The registry is built once at package init and never mutated.
package mounting

import (
	"errors"
	"math"

	"gestao_cortinas/internal/domain/measurement"
)

var ErrUnknownArchetype = errors.New("unknown mounting archetype")

const (
	// CrossOverlap is the overlap added to each crossed rail half.
	CrossOverlap = 15.0
	// FixedPanelWidth is the width of each fixed side panel.
	FixedPanelWidth = 30.0
	// WaveFactor is the extra length budget for wave-fold tracks.
	WaveFactor = 1.1
)

const (
	ArchetypeSimples          = "simples"
	ArchetypeDupla            = "dupla"
	ArchetypeDuplaCruzada     = "dupla_cruzada"
	ArchetypePainelFixoMovel  = "painel_fixo_movel"
	ArchetypeSistemaQuadruplo = "sistema_quadruplo"
	ArchetypeWave             = "wave"
	ArchetypeWaveDupla        = "wave_dupla"
	ArchetypeMotorizado       = "motorizado"
)

// Formula computes a cut width from the span width and the rail discount.
type Formula func(width, discount float64) float64

type PieceSpec struct {
	Nome      string
	Descricao string
	Calculate Formula
}

type Archetype struct {
	ID        string
	Nome      string
	Descricao string
	Pieces    []PieceSpec
}

// Piece is a computed cut.
type Piece struct {
	Nome      string  `json:"nome"`
	Largura   float64 `json:"largura"`
	Descricao string  `json:"descricao,omitempty"`
}

func clamp(v float64) float64 {
	return math.Max(0, v)
}

func fullWidth(width, discount float64) float64 {
	return clamp(width - discount)
}

func crossedHalf(width, discount float64) float64 {
	usable := width - discount
	if usable <= 0 {
		return 0
	}
	return clamp(usable/2 + CrossOverlap)
}

func fixedPanel(float64, float64) float64 {
	return FixedPanelWidth
}

func movingCenter(width, discount float64) float64 {
	return clamp(width - discount - 2*FixedPanelWidth)
}

func waveTrack(width, discount float64) float64 {
	return clamp((width - discount) * WaveFactor)
}

var archetypes = []Archetype{
	{
		ID:        ArchetypeSimples,
		Nome:      "Trilho simples",
		Descricao: "Um trilho na largura do vão.",
		Pieces: []PieceSpec{
			{Nome: "Trilho", Calculate: fullWidth},
		},
	},
	{
		ID:        ArchetypeDupla,
		Nome:      "Trilho duplo",
		Descricao: "Dois trilhos paralelos, voil e blackout.",
		Pieces: []PieceSpec{
			{Nome: "Trilho voil", Calculate: fullWidth},
			{Nome: "Trilho blackout", Calculate: fullWidth},
		},
	},
	{
		ID:        ArchetypeDuplaCruzada,
		Nome:      "Duplo cruzado",
		Descricao: "Trilho de fundo mais duas folhas cruzadas no centro.",
		Pieces: []PieceSpec{
			{Nome: "Trilho de fundo", Calculate: fullWidth},
			{Nome: "Trilho cruzado esquerdo", Descricao: "Metade do vão mais transpasse", Calculate: crossedHalf},
			{Nome: "Trilho cruzado direito", Descricao: "Metade do vão mais transpasse", Calculate: crossedHalf},
		},
	},
	{
		ID:        ArchetypePainelFixoMovel,
		Nome:      "Painel fixo e móvel",
		Descricao: "Dois painéis laterais fixos e um painel central móvel.",
		Pieces: []PieceSpec{
			{Nome: "Painel fixo esquerdo", Calculate: fixedPanel},
			{Nome: "Painel móvel central", Descricao: "Vão menos os painéis fixos", Calculate: movingCenter},
			{Nome: "Painel fixo direito", Calculate: fixedPanel},
		},
	},
	{
		ID:        ArchetypeSistemaQuadruplo,
		Nome:      "Sistema quádruplo",
		Descricao: "Dois trilhos de fundo e duas folhas cruzadas.",
		Pieces: []PieceSpec{
			{Nome: "Trilho de fundo voil", Calculate: fullWidth},
			{Nome: "Trilho de fundo blackout", Calculate: fullWidth},
			{Nome: "Trilho cruzado esquerdo", Descricao: "Metade do vão mais transpasse", Calculate: crossedHalf},
			{Nome: "Trilho cruzado direito", Descricao: "Metade do vão mais transpasse", Calculate: crossedHalf},
		},
	},
	{
		ID:        ArchetypeWave,
		Nome:      "Wave",
		Descricao: "Trilho wave com folga para as ondas.",
		Pieces: []PieceSpec{
			{Nome: "Trilho wave", Calculate: waveTrack},
		},
	},
	{
		ID:        ArchetypeWaveDupla,
		Nome:      "Wave duplo",
		Descricao: "Dois trilhos wave paralelos.",
		Pieces: []PieceSpec{
			{Nome: "Trilho wave voil", Calculate: waveTrack},
			{Nome: "Trilho wave blackout", Calculate: waveTrack},
		},
	},
	{
		ID:        ArchetypeMotorizado,
		Nome:      "Motorizado",
		Descricao: "Trilho motorizado simples.",
		Pieces: []PieceSpec{
			{Nome: "Trilho motorizado", Calculate: fullWidth},
		},
	},
}

var registry = func() map[string]Archetype {
	m := make(map[string]Archetype, len(archetypes))
	for _, a := range archetypes {
		m[a.ID] = a
	}
	return m
}()

// Lookup returns the archetype registered under id.
func Lookup(id string) (Archetype, bool) {
	a, ok := registry[id]
	return a, ok
}

// IsKnown reports whether id names one of the fixed archetypes.
func IsKnown(id string) bool {
	_, ok := registry[id]
	return ok
}

// All returns the archetypes in catalog order.
func All() []Archetype {
	out := make([]Archetype, len(archetypes))
	copy(out, archetypes)
	return out
}

// CalculatePieces returns the cut list for the archetype, each width rounded to one decimal.
func CalculatePieces(id string, width, discount float64) ([]Piece, error) {
	a, ok := registry[id]
	if !ok {
		return nil, ErrUnknownArchetype
	}
	out := make([]Piece, 0, len(a.Pieces))
	for _, p := range a.Pieces {
		out = append(out, Piece{
			Nome:      p.Nome,
			Largura:   measurement.Round1(p.Calculate(width, discount)),
			Descricao: p.Descricao,
		})
	}
	return out, nil
}

// TotalPieces returns the number of pieces of the archetype. Unknown ids count as a
// single piece; callers that need to detect bad data use Lookup.
func TotalPieces(id string) int {
	if a, ok := registry[id]; ok {
		return len(a.Pieces)
	}
	return 1
}
