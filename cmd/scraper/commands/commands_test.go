package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"socionics-wiki/internal/dataset"
	"socionics-wiki/internal/service"
)

func TestValidateDataset_CanonicalFallback(t *testing.T) {
	var out bytes.Buffer
	if err := validateDataset(&out, t.TempDir()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := out.String(); got != "ok: 16 types, 8 dual pairs, 8 glossary terms\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestValidateDataset_RejectsBrokenRelations(t *testing.T) {
	dir := t.TempDir()
	broken := `[{"a":"ILE","b":"SEI","name":"Duality"},{"a":"ILE","b":"LII","name":"Duality"}]`
	if err := os.WriteFile(filepath.Join(dir, dataset.RelationsFile), []byte(broken), 0o644); err != nil {
		t.Fatalf("write relations: %v", err)
	}

	err := validateDataset(&bytes.Buffer{}, dir)
	if !errors.Is(err, dataset.ErrInvalidDataset) {
		t.Fatalf("expected ErrInvalidDataset, got %v", err)
	}
}

func TestRenderMatrix(t *testing.T) {
	m := service.NewRelationService(nil, dataset.Canonical(), nil).Matrix()

	var out bytes.Buffer
	renderMatrix(&out, m)

	text := out.String()
	lines := strings.Split(strings.TrimSpace(text), "\n")
	// 16 filas, cabecera y bordes del estilo redondeado.
	if len(lines) != 16+4 {
		t.Fatalf("expected 20 lines, got %d:\n%s", len(lines), text)
	}
	for _, want := range []string{"LII", "Duality", "Super-ego", "Semi-duality"} {
		if !strings.Contains(text, want) {
			t.Fatalf("table missing %q", want)
		}
	}
}
