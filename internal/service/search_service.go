package service

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"

	"socionics-wiki/internal/domain"
)

const (
	SearchKindType     = "type"
	SearchKindTerm     = "term"
	SearchKindRelation = "relation"

	defaultSearchLimit = 20
	maxSearchLimit     = 100
	fuzzyMinRunes      = 3
	fuzzyThreshold     = 0.85
)

// SearchCatalog es lo que el buscador necesita del dataset.
type SearchCatalog interface {
	Types() []domain.TypeRecord
	Glossary() []domain.GlossaryTerm
	Relations() []domain.RelationPair
}

type SearchResult struct {
	Kind    string  `json:"kind"`
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet,omitempty"`
	Score   float64 `json:"score"`
}

type SearchService struct {
	catalog SearchCatalog
}

func NewSearchService(catalog SearchCatalog) *SearchService {
	return &SearchService{catalog: catalog}
}

type searchDoc struct {
	result SearchResult
	exact  []string // campos que puntuan 2.0 con coincidencia exacta
	fields []string // campos para coincidencia por subcadena
	fuzzy  []string // campos para Jaro-Winkler
}

func (s *SearchService) docs() []searchDoc {
	var docs []searchDoc
	for _, t := range s.catalog.Types() {
		docs = append(docs, searchDoc{
			result: SearchResult{Kind: SearchKindType, Key: t.Code, Title: t.FullName, Snippet: t.Alias},
			exact:  []string{t.Code},
			fields: []string{t.Code, t.FullName, t.Alias},
			fuzzy:  []string{t.FullName, t.Alias},
		})
	}
	for _, g := range s.catalog.Glossary() {
		docs = append(docs, searchDoc{
			result: SearchResult{Kind: SearchKindTerm, Key: g.Slug, Title: g.Term, Snippet: g.Definition},
			exact:  []string{g.Term, g.Slug},
			fields: []string{g.Term, g.Definition},
			fuzzy:  []string{g.Term},
		})
	}
	for _, r := range s.catalog.Relations() {
		docs = append(docs, searchDoc{
			result: SearchResult{Kind: SearchKindRelation, Key: domain.PairKey(r.A, r.B), Title: r.Name + ": " + r.A + " - " + r.B, Snippet: r.Summary},
			fields: []string{r.Summary},
		})
	}
	return docs
}

// Search filtra por subcadena sin distinguir mayusculas. Si no hay resultados
// y la consulta es suficientemente larga, intenta una pasada difusa.
func (s *SearchService) Search(query string, limit int) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	docs := s.docs()
	var results []SearchResult
	for _, d := range docs {
		if score, ok := substringScore(q, d); ok {
			r := d.result
			r.Score = score
			results = append(results, r)
		}
	}

	if len(results) == 0 && utf8.RuneCountInString(q) >= fuzzyMinRunes {
		for _, d := range docs {
			best := 0.0
			for _, f := range d.fuzzy {
				if sim := matchr.JaroWinkler(q, strings.ToLower(f), false); sim > best {
					best = sim
				}
			}
			if best >= fuzzyThreshold {
				r := d.result
				r.Score = best
				results = append(results, r)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Kind != results[j].Kind {
			return kindRank(results[i].Kind) < kindRank(results[j].Kind)
		}
		return results[i].Key < results[j].Key
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func substringScore(q string, d searchDoc) (float64, bool) {
	for _, e := range d.exact {
		if strings.ToLower(e) == q {
			return 2.0, true
		}
	}
	for _, f := range d.fields {
		if strings.Contains(strings.ToLower(f), q) {
			return 1.0, true
		}
	}
	return 0, false
}

func kindRank(kind string) int {
	switch kind {
	case SearchKindType:
		return 0
	case SearchKindTerm:
		return 1
	default:
		return 2
	}
}
