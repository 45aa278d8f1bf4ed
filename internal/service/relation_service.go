package service

import (
	"context"

	"go.uber.org/zap"

	"socionics-wiki/internal/dataset"
	"socionics-wiki/internal/domain"
	"socionics-wiki/internal/metrics"
)

// ErrUnknownType se devuelve cuando un codigo no existe en el dataset.
var ErrUnknownType = dataset.ErrUnknownType

// TypeCatalog es la vista de solo lectura que necesitan los servicios.
type TypeCatalog interface {
	Types() []domain.TypeRecord
	Type(code string) (domain.TypeRecord, error)
	Duals() domain.DualPairSet
}

type Comparison struct {
	A        domain.TypeRecord     `json:"a"`
	B        domain.TypeRecord     `json:"b"`
	Relation domain.RelationResult `json:"relation"`
}

// RelationGroup agrupa los tipos que comparten una etiqueta respecto de otro tipo.
type RelationGroup struct {
	Label domain.RelationLabel `json:"label"`
	Color domain.ColorToken    `json:"color"`
	Codes []string             `json:"codes"`
}

// RelationMatrix es la tabla completa; Labels[i][j] clasifica Codes[i] contra Codes[j].
type RelationMatrix struct {
	Codes  []string                 `json:"codes"`
	Labels [][]domain.RelationLabel `json:"labels"`
}

// RelationService aplica el clasificador sobre el catalogo cargado.
type RelationService struct {
	logger     *zap.Logger
	catalog    TypeCatalog
	classifier RelationClassifier
	metrics    *metrics.Metrics
}

func NewRelationService(logger *zap.Logger, catalog TypeCatalog, m *metrics.Metrics) *RelationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelationService{
		logger:     logger,
		catalog:    catalog,
		classifier: DefaultRelationClassifier,
		metrics:    m,
	}
}

func (s *RelationService) classify(a, b domain.TypeRecord) domain.RelationResult {
	res := s.classifier.Classify(a, b, s.catalog.Duals())
	if s.metrics != nil {
		s.metrics.ClassificationsTotal.WithLabelValues(string(res.Label)).Inc()
	}
	if res.Label == domain.RelationOther {
		s.logger.Warn("relation fell through to Other",
			zap.String("a", a.Code),
			zap.String("b", b.Code),
		)
	}
	return res
}

// Compare clasifica dos tipos por codigo.
func (s *RelationService) Compare(_ context.Context, codeA, codeB string) (Comparison, error) {
	a, err := s.catalog.Type(codeA)
	if err != nil {
		return Comparison{}, err
	}
	b, err := s.catalog.Type(codeB)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{A: a, B: b, Relation: s.classify(a, b)}, nil
}

// RelationsOf clasifica code contra los 16 tipos y agrupa por etiqueta en orden de precedencia.
func (s *RelationService) RelationsOf(code string) ([]RelationGroup, error) {
	subject, err := s.catalog.Type(code)
	if err != nil {
		return nil, err
	}

	byLabel := make(map[domain.RelationLabel][]string)
	for _, other := range s.catalog.Types() {
		res := s.classify(subject, other)
		byLabel[res.Label] = append(byLabel[res.Label], other.Code)
	}

	var groups []RelationGroup
	for _, label := range domain.RelationLabels() {
		codes, ok := byLabel[label]
		if !ok {
			continue
		}
		groups = append(groups, RelationGroup{Label: label, Color: domain.ColorFor(label), Codes: codes})
	}
	return groups, nil
}

// Matrix devuelve la tabla 16x16 en orden canonico.
func (s *RelationService) Matrix() RelationMatrix {
	types := s.catalog.Types()
	m := RelationMatrix{
		Codes:  make([]string, len(types)),
		Labels: make([][]domain.RelationLabel, len(types)),
	}
	for i, a := range types {
		m.Codes[i] = a.Code
		m.Labels[i] = make([]domain.RelationLabel, len(types))
		for j, b := range types {
			m.Labels[i][j] = s.classify(a, b).Label
		}
	}
	return m
}
