package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"socionics-wiki/internal/domain"
)

func TestCanonicalIsValid(t *testing.T) {
	ds := Canonical()
	if err := ds.Validate(); err != nil {
		t.Fatalf("canonical dataset invalid: %v", err)
	}
	if got := len(ds.Types()); got != 16 {
		t.Fatalf("expected 16 types, got %d", got)
	}
	if got := len(ds.Glossary()); got != 8 {
		t.Fatalf("expected 8 glossary terms, got %d", got)
	}
	if got := ds.Duals().Len(); got != 8 {
		t.Fatalf("expected 8 dual pairs, got %d", got)
	}

	var codes []string
	for _, rec := range ds.Types() {
		codes = append(codes, rec.Code)
		if rec.Leading == rec.Creative {
			t.Fatalf("type %s has leading == creative", rec.Code)
		}
	}
	if diff := cmp.Diff(CanonicalCodes, codes); diff != "" {
		t.Fatalf("unexpected type order (-want +got):\n%s", diff)
	}
}

func TestCanonicalDualsPerfectMatching(t *testing.T) {
	ds := Canonical()
	count := make(map[string]int)
	for _, p := range ds.Relations() {
		count[p.A]++
		count[p.B]++
	}
	for _, code := range CanonicalCodes {
		if count[code] != 1 {
			t.Fatalf("type %s appears in %d dual pairs", code, count[code])
		}
		partner, ok := ds.Duals().Partner(code)
		if !ok {
			t.Fatalf("type %s has no partner", code)
		}
		back, _ := ds.Duals().Partner(partner)
		if back != code {
			t.Fatalf("partner of %s is %s but partner of %s is %s", code, partner, partner, back)
		}
	}
}

func TestTypeAndTermLookup(t *testing.T) {
	ds := Canonical()

	lii, err := ds.Type("LII")
	if err != nil {
		t.Fatalf("lookup LII: %v", err)
	}
	if lii.Leading != domain.ElementTi || lii.Creative != domain.ElementNe {
		t.Fatalf("unexpected LII channels: %s/%s", lii.Leading, lii.Creative)
	}
	if _, err := ds.Type("XYZ"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}

	term, err := ds.Term("quadra")
	if err != nil || term.Term != "Quadra" {
		t.Fatalf("unexpected quadra term: %+v, %v", term, err)
	}
	if _, err := ds.Term("missing"); !errors.Is(err, ErrUnknownTerm) {
		t.Fatalf("expected ErrUnknownTerm, got %v", err)
	}
}

func TestFilterTypes(t *testing.T) {
	ds := Canonical()

	alpha := ds.FilterTypes(TypeFilter{Quadra: domain.QuadraAlpha})
	if len(alpha) != 4 {
		t.Fatalf("expected 4 alpha types, got %d", len(alpha))
	}

	ep := ds.FilterTypes(TypeFilter{Temperament: domain.TemperamentEP})
	if len(ep) != 4 {
		t.Fatalf("expected 4 EP types, got %d", len(ep))
	}

	ne := ds.FilterTypes(TypeFilter{Element: domain.ElementNe})
	var codes []string
	for _, rec := range ne {
		codes = append(codes, rec.Code)
	}
	if diff := cmp.Diff([]string{"ILE", "LII", "IEE", "EII"}, codes); diff != "" {
		t.Fatalf("unexpected Ne types (-want +got):\n%s", diff)
	}

	none := ds.FilterTypes(TypeFilter{Quadra: domain.QuadraAlpha, Element: domain.ElementTe})
	if len(none) != 0 {
		t.Fatalf("expected no alpha Te types, got %d", len(none))
	}
}

func TestValidateRejectsBrokenData(t *testing.T) {
	base := Canonical()

	t.Run("leading equals creative", func(t *testing.T) {
		types := base.Types()
		types[0].Creative = types[0].Leading
		ds := New(types, base.Relations(), base.Glossary(), base.Overview())
		if err := ds.Validate(); !errors.Is(err, ErrInvalidDataset) {
			t.Fatalf("expected ErrInvalidDataset, got %v", err)
		}
	})

	t.Run("code in two dual pairs", func(t *testing.T) {
		rels := base.Relations()
		rels[1].A = "ILE"
		ds := New(base.Types(), rels, base.Glossary(), base.Overview())
		if err := ds.Validate(); !errors.Is(err, ErrInvalidDataset) {
			t.Fatalf("expected ErrInvalidDataset, got %v", err)
		}
	})

	t.Run("missing dual pair", func(t *testing.T) {
		rels := base.Relations()[:7]
		ds := New(base.Types(), rels, base.Glossary(), base.Overview())
		if err := ds.Validate(); !errors.Is(err, ErrInvalidDataset) {
			t.Fatalf("expected ErrInvalidDataset, got %v", err)
		}
	})

	t.Run("too few types", func(t *testing.T) {
		ds := New(base.Types()[:15], base.Relations(), base.Glossary(), base.Overview())
		if err := ds.Validate(); !errors.Is(err, ErrInvalidDataset) {
			t.Fatalf("expected ErrInvalidDataset, got %v", err)
		}
	})
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	types := Canonical().Types()
	types[3].Overview = "LII overview scraped from the wiki."
	src := New(types, Canonical().Relations(), Canonical().Glossary(), Canonical().Overview())

	if err := Write(dir, src); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, name := range []string{TypesFile, RelationsFile, GlossaryFile, OverviewFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(src.Types(), loaded.Types()); diff != "" {
		t.Fatalf("types differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(src.Relations(), loaded.Relations()); diff != "" {
		t.Fatalf("relations differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(src.Glossary(), loaded.Glossary()); diff != "" {
		t.Fatalf("glossary differs (-want +got):\n%s", diff)
	}
}

func TestLoadFallsBackToCanonical(t *testing.T) {
	ds, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Canonical().Types(), ds.Types()); diff != "" {
		t.Fatalf("expected canonical types (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsMalformedFiles(t *testing.T) {
	t.Run("bad json", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, TypesFile), []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(dir); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("unknown element", func(t *testing.T) {
		dir := t.TempDir()
		body := `{"ILE": {"code": "ILE", "quadra": "Alpha", "temperament": "EP", "leading": "Xx", "creative": "Ti"}}`
		if err := os.WriteFile(filepath.Join(dir, TypesFile), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(dir); err == nil {
			t.Fatalf("expected unknown element error")
		}
	})

	t.Run("key mismatch", func(t *testing.T) {
		dir := t.TempDir()
		body := `{"ILE": {"code": "SEI", "quadra": "Alpha", "temperament": "EP", "leading": "Ne", "creative": "Ti"}}`
		if err := os.WriteFile(filepath.Join(dir, TypesFile), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(dir); !errors.Is(err, ErrInvalidDataset) {
			t.Fatalf("expected ErrInvalidDataset, got %v", err)
		}
	})
}

func TestWriteLeavesExistingFilesOnEncodeFailure(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir, Canonical()); err != nil {
		t.Fatalf("seed dataset: %v", err)
	}

	rels := Canonical().Relations()
	rels[0].Summary = "rewritten summary"
	glossary := Canonical().Glossary()
	glossary[0].Definition = "rewritten definition"
	types := Canonical().Types()
	types[0].Quadra = domain.Quadra(9)
	broken := New(types, rels, glossary, Canonical().Overview())

	if err := Write(dir, broken); err == nil {
		t.Fatalf("expected encode error for invalid quadra")
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load after failed write: %v", err)
	}
	if diff := cmp.Diff(Canonical().Relations(), loaded.Relations()); diff != "" {
		t.Fatalf("relations changed by failed write (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Canonical().Glossary(), loaded.Glossary()); diff != "" {
		t.Fatalf("glossary changed by failed write (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 4 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only the four dataset files, got %v", names)
	}
}
