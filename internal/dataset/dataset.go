package dataset

import (
	"errors"
	"fmt"
	"sort"

	"socionics-wiki/internal/domain"
)

const expectedTypeCount = 16

var (
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrUnknownType    = errors.New("unknown type")
	ErrUnknownTerm    = errors.New("unknown glossary term")
)

// Dataset es la vista de solo lectura sobre tipos, relaciones y glosario.
// Se construye una vez al arrancar y es seguro para uso concurrente.
type Dataset struct {
	types    map[string]domain.TypeRecord
	order    []string
	duals    domain.DualPairSet
	glossary []domain.GlossaryTerm
	terms    map[string]int
	overview domain.Overview
}

func New(types []domain.TypeRecord, relations []domain.RelationPair, glossary []domain.GlossaryTerm, overview domain.Overview) *Dataset {
	ds := &Dataset{
		types:    make(map[string]domain.TypeRecord, len(types)),
		duals:    domain.NewDualPairSet(relations),
		glossary: make([]domain.GlossaryTerm, len(glossary)),
		terms:    make(map[string]int, len(glossary)),
		overview: overview,
	}
	for _, t := range types {
		if _, dup := ds.types[t.Code]; !dup {
			ds.order = append(ds.order, t.Code)
		}
		ds.types[t.Code] = t
	}
	sortCodes(ds.order)

	copy(ds.glossary, glossary)
	for i, term := range ds.glossary {
		if _, dup := ds.terms[term.Slug]; !dup {
			ds.terms[term.Slug] = i
		}
	}
	return ds
}

// sortCodes ordena segun CanonicalCodes; los codigos desconocidos van al final en orden alfabetico.
func sortCodes(codes []string) {
	rank := make(map[string]int, len(CanonicalCodes))
	for i, c := range CanonicalCodes {
		rank[c] = i
	}
	sort.SliceStable(codes, func(i, j int) bool {
		ri, okI := rank[codes[i]]
		rj, okJ := rank[codes[j]]
		switch {
		case okI && okJ:
			return ri < rj
		case okI != okJ:
			return okI
		default:
			return codes[i] < codes[j]
		}
	})
}

// Types devuelve los tipos en orden canonico.
func (d *Dataset) Types() []domain.TypeRecord {
	out := make([]domain.TypeRecord, 0, len(d.order))
	for _, code := range d.order {
		out = append(out, d.types[code])
	}
	return out
}

// Type busca un tipo por codigo.
func (d *Dataset) Type(code string) (domain.TypeRecord, error) {
	t, ok := d.types[code]
	if !ok {
		return domain.TypeRecord{}, fmt.Errorf("%w: %q", ErrUnknownType, code)
	}
	return t, nil
}

func (d *Dataset) Duals() domain.DualPairSet {
	return d.duals
}

// Relations devuelve las parejas duales tal como vienen en el dataset.
func (d *Dataset) Relations() []domain.RelationPair {
	return d.duals.Pairs()
}

func (d *Dataset) Glossary() []domain.GlossaryTerm {
	out := make([]domain.GlossaryTerm, len(d.glossary))
	copy(out, d.glossary)
	return out
}

func (d *Dataset) Term(slug string) (domain.GlossaryTerm, error) {
	i, ok := d.terms[slug]
	if !ok {
		return domain.GlossaryTerm{}, fmt.Errorf("%w: %q", ErrUnknownTerm, slug)
	}
	return d.glossary[i], nil
}

func (d *Dataset) Overview() domain.Overview {
	return d.overview
}

// TypeFilter restringe FilterTypes; los campos en cero no filtran.
type TypeFilter struct {
	Quadra      domain.Quadra
	Temperament domain.Temperament
	Element     domain.Element
}

func (d *Dataset) FilterTypes(f TypeFilter) []domain.TypeRecord {
	var out []domain.TypeRecord
	for _, t := range d.Types() {
		if f.Quadra != 0 && t.Quadra != f.Quadra {
			continue
		}
		if f.Temperament != 0 && t.Temperament != f.Temperament {
			continue
		}
		if f.Element != 0 && !t.HasElement(f.Element) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Validate comprueba los invariantes del dataset.
func (d *Dataset) Validate() error {
	if len(d.types) != expectedTypeCount {
		return fmt.Errorf("%w: expected %d types, got %d", ErrInvalidDataset, expectedTypeCount, len(d.types))
	}
	for _, code := range d.order {
		t := d.types[code]
		if !t.Quadra.Valid() || !t.Temperament.Valid() || !t.Leading.Valid() || !t.Creative.Valid() {
			return fmt.Errorf("%w: type %s has invalid enumerated fields", ErrInvalidDataset, code)
		}
		if t.Leading == t.Creative {
			return fmt.Errorf("%w: type %s has leading == creative (%s)", ErrInvalidDataset, code, t.Leading)
		}
	}

	seen := make(map[string]string, len(d.types))
	for _, p := range d.duals.Pairs() {
		if p.A == p.B {
			return fmt.Errorf("%w: dual pair %s pairs a type with itself", ErrInvalidDataset, p.A)
		}
		for _, code := range []string{p.A, p.B} {
			if _, ok := d.types[code]; !ok {
				return fmt.Errorf("%w: dual pair references unknown type %q", ErrInvalidDataset, code)
			}
			if prev, dup := seen[code]; dup {
				return fmt.Errorf("%w: type %s appears in dual pairs %s and %s", ErrInvalidDataset, code, prev, domain.PairKey(p.A, p.B))
			}
			seen[code] = domain.PairKey(p.A, p.B)
		}
	}
	if len(seen) != len(d.types) {
		return fmt.Errorf("%w: dual pairs cover %d of %d types", ErrInvalidDataset, len(seen), len(d.types))
	}

	if len(d.terms) != len(d.glossary) {
		return fmt.Errorf("%w: duplicate glossary slugs", ErrInvalidDataset)
	}
	return nil
}
