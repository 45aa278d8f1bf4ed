package service

import "socionics-wiki/internal/domain"

// RelationClassifier clasifica la relacion intertipo entre dos registros.
// No tiene estado: es seguro usarlo desde varias goroutines.
type RelationClassifier struct{}

// DefaultRelationClassifier permite uso directo sin instanciar.
var DefaultRelationClassifier = RelationClassifier{}

type relationRule struct {
	label domain.RelationLabel
	match func(a, b domain.TypeRecord, duals domain.DualPairSet) bool
}

// relationRules se evalua en orden y gana la primera coincidencia.
// Cada predicado se calcula desde los campos crudos, nunca desde una etiqueta previa.
var relationRules = []relationRule{
	{domain.RelationIdentity, func(a, b domain.TypeRecord, _ domain.DualPairSet) bool {
		return isIdentity(a, b)
	}},
	{domain.RelationDuality, func(a, b domain.TypeRecord, duals domain.DualPairSet) bool {
		return isDuality(a, b, duals)
	}},
	{domain.RelationActivation, func(a, b domain.TypeRecord, _ domain.DualPairSet) bool {
		return isActivation(a, b)
	}},
	{domain.RelationMirror, func(a, b domain.TypeRecord, _ domain.DualPairSet) bool {
		return isMirror(a, b)
	}},
	{domain.RelationSemiDuality, func(a, b domain.TypeRecord, _ domain.DualPairSet) bool {
		return isSemiDuality(a, b)
	}},
	{domain.RelationExtinguishment, func(a, b domain.TypeRecord, _ domain.DualPairSet) bool {
		return isExtinguishment(a, b)
	}},
	{domain.RelationBusiness, func(a, b domain.TypeRecord, duals domain.DualPairSet) bool {
		d, ok := quadraDistance(a, b)
		if !ok || (d != 1 && d != 3) {
			return false
		}
		return !isDuality(a, b, duals) && !isSemiDuality(a, b) && !isExtinguishment(a, b)
	}},
	{domain.RelationConflict, func(a, b domain.TypeRecord, duals domain.DualPairSet) bool {
		d, ok := quadraDistance(a, b)
		return ok && d == 2 && a.Quadra != b.Quadra && !isDuality(a, b, duals)
	}},
	{domain.RelationSuperEgo, func(a, b domain.TypeRecord, _ domain.DualPairSet) bool {
		_, ok := quadraDistance(a, b)
		return ok
	}},
}

// Classify devuelve la etiqueta y el color de la relacion entre a y b.
// Es total: si ninguna regla aplica devuelve Other.
func (RelationClassifier) Classify(a, b domain.TypeRecord, duals domain.DualPairSet) domain.RelationResult {
	label := domain.RelationOther
	for _, rule := range relationRules {
		if rule.match(a, b, duals) {
			label = rule.label
			break
		}
	}
	return domain.RelationResult{Label: label, Color: domain.ColorFor(label)}
}

func isIdentity(a, b domain.TypeRecord) bool {
	return a.Code == b.Code
}

func isDuality(a, b domain.TypeRecord, duals domain.DualPairSet) bool {
	return duals.Contains(a.Code, b.Code)
}

func isActivation(a, b domain.TypeRecord) bool {
	return a.Leading == b.Creative && a.Creative == b.Leading
}

func isMirror(a, b domain.TypeRecord) bool {
	return a.Leading == b.Leading && a.Creative == b.Creative && !isIdentity(a, b)
}

func isSemiDuality(a, b domain.TypeRecord) bool {
	return (a.Leading == b.Creative || b.Leading == a.Creative) && !isActivation(a, b)
}

func isExtinguishment(a, b domain.TypeRecord) bool {
	return (a.Leading == b.Leading && !isIdentity(a, b)) || (a.Creative == b.Creative && !isMirror(a, b))
}

// quadraDistance es |index(a) - index(b)| en [Alpha, Beta, Gamma, Delta].
// ok es false si alguna cuadra no pertenece al orden ciclico.
func quadraDistance(a, b domain.TypeRecord) (int, bool) {
	ia, ib := a.Quadra.Index(), b.Quadra.Index()
	if ia < 0 || ib < 0 {
		return 0, false
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return d, true
}
