package domain

import (
	"sort"
	"strings"
)

// RelationLabel es la categoria de relacion intertipo.
type RelationLabel string

const (
	RelationIdentity       RelationLabel = "Identity"
	RelationDuality        RelationLabel = "Duality"
	RelationActivation     RelationLabel = "Activation"
	RelationMirror         RelationLabel = "Mirror"
	RelationSemiDuality    RelationLabel = "Semi-duality"
	RelationExtinguishment RelationLabel = "Extinguishment"
	RelationConflict       RelationLabel = "Conflict"
	RelationBusiness       RelationLabel = "Business"
	RelationSuperEgo       RelationLabel = "Super-ego"
	RelationOther          RelationLabel = "Other"
)

// RelationLabels devuelve todas las etiquetas en orden de precedencia.
func RelationLabels() []RelationLabel {
	return []RelationLabel{
		RelationIdentity,
		RelationDuality,
		RelationActivation,
		RelationMirror,
		RelationSemiDuality,
		RelationExtinguishment,
		RelationBusiness,
		RelationConflict,
		RelationSuperEgo,
		RelationOther,
	}
}

// ColorToken es un color hexadecimal de presentacion.
type ColorToken string

// ColorDefault se usa para etiquetas sin color propio.
const ColorDefault ColorToken = "#9ca3af"

var relationColors = map[RelationLabel]ColorToken{
	RelationIdentity:       "#6b7280",
	RelationDuality:        "#16a34a",
	RelationActivation:     "#22c55e",
	RelationMirror:         "#0ea5e9",
	RelationSemiDuality:    "#84cc16",
	RelationExtinguishment: "#f59e0b",
	RelationConflict:       "#dc2626",
	RelationBusiness:       "#3b82f6",
	RelationSuperEgo:       "#a855f7",
	RelationOther:          "#64748b",
}

// ColorFor mapea una etiqueta a su color fijo.
func ColorFor(label RelationLabel) ColorToken {
	if c, ok := relationColors[label]; ok {
		return c
	}
	return ColorDefault
}

// RelationResult es el resultado derivado de clasificar un par de tipos.
type RelationResult struct {
	Label RelationLabel `json:"label"`
	Color ColorToken    `json:"color"`
}

// RelationPair es una pareja canonica del dataset de relaciones.
type RelationPair struct {
	A       string `json:"a"`
	B       string `json:"b"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// DualPairSet es un conjunto de pares no ordenados de codigos.
type DualPairSet struct {
	keys     map[string]struct{}
	partners map[string]string
	pairs    []RelationPair
}

// PairKey devuelve la clave canonica de un par: codigos ordenados y unidos con "-".
func PairKey(a, b string) string {
	codes := []string{a, b}
	sort.Strings(codes)
	return strings.Join(codes, "-")
}

// NewDualPairSet construye el conjunto a partir de las parejas del dataset.
// Si un codigo aparece en mas de un par, Partner devuelve el primero.
func NewDualPairSet(pairs []RelationPair) DualPairSet {
	set := DualPairSet{
		keys:     make(map[string]struct{}, len(pairs)),
		partners: make(map[string]string, len(pairs)*2),
		pairs:    make([]RelationPair, len(pairs)),
	}
	copy(set.pairs, pairs)
	for _, p := range pairs {
		set.keys[PairKey(p.A, p.B)] = struct{}{}
		if _, ok := set.partners[p.A]; !ok {
			set.partners[p.A] = p.B
		}
		if _, ok := set.partners[p.B]; !ok {
			set.partners[p.B] = p.A
		}
	}
	return set
}

func (s DualPairSet) Contains(a, b string) bool {
	_, ok := s.keys[PairKey(a, b)]
	return ok
}

// Partner devuelve el dual de code.
func (s DualPairSet) Partner(code string) (string, bool) {
	p, ok := s.partners[code]
	return p, ok
}

func (s DualPairSet) Len() int {
	return len(s.keys)
}

// Pairs devuelve una copia de las parejas originales.
func (s DualPairSet) Pairs() []RelationPair {
	out := make([]RelationPair, len(s.pairs))
	copy(out, s.pairs)
	return out
}
