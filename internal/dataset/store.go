package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"socionics-wiki/internal/domain"
)

const (
	TypesFile     = "types.json"
	RelationsFile = "relations.json"
	GlossaryFile  = "glossary.json"
	OverviewFile  = "overview.json"
)

// Load lee los archivos JSON de dir. Un archivo ausente se reemplaza por la tabla canonica.
func Load(dir string) (*Dataset, error) {
	canonical := Canonical()

	types := canonical.Types()
	var typesByCode map[string]domain.TypeRecord
	found, err := readJSON(filepath.Join(dir, TypesFile), &typesByCode)
	if err != nil {
		return nil, err
	}
	if found {
		types = types[:0]
		for code, t := range typesByCode {
			if t.Code == "" {
				t.Code = code
			}
			if t.Code != code {
				return nil, fmt.Errorf("%w: %s key %q holds record %q", ErrInvalidDataset, TypesFile, code, t.Code)
			}
			types = append(types, t)
		}
	}

	relations := canonical.Relations()
	if _, err := readJSON(filepath.Join(dir, RelationsFile), &relations); err != nil {
		return nil, err
	}

	glossary := canonical.Glossary()
	if _, err := readJSON(filepath.Join(dir, GlossaryFile), &glossary); err != nil {
		return nil, err
	}

	overview := canonical.Overview()
	if _, err := readJSON(filepath.Join(dir, OverviewFile), &overview); err != nil {
		return nil, err
	}

	ds := New(types, relations, glossary, overview)
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func readJSON(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}

// Write vuelca el dataset en dir como cuatro archivos JSON.
// Primero escribe todos los temporales y solo renombra si los cuatro se escribieron.
func Write(dir string, ds *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	types := make(map[string]domain.TypeRecord, len(ds.order))
	for _, t := range ds.Types() {
		types[t.Code] = t
	}

	files := []struct {
		name  string
		value any
	}{
		{RelationsFile, ds.Relations()},
		{GlossaryFile, ds.Glossary()},
		{OverviewFile, ds.Overview()},
		{TypesFile, types},
	}

	staged := make([]string, 0, len(files))
	defer func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}()
	for _, f := range files {
		tmp, err := stageJSON(dir, f.name, f.value)
		if err != nil {
			return err
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		if err := os.Rename(staged[i], filepath.Join(dir, f.name)); err != nil {
			return fmt.Errorf("replace %s: %w", f.name, err)
		}
	}
	return nil
}

// stageJSON escribe value en un temporal oculto junto a name y devuelve su ruta.
func stageJSON(dir, name string, value any) (string, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return tmp.Name(), nil
}
