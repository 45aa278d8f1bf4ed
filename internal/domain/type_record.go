package domain

import "time"

// TypeRecord describe uno de los 16 tipos. Se crea al cargar el dataset y no se muta.
type TypeRecord struct {
	Code        string      `json:"code"`
	FullName    string      `json:"full_name"`
	Alias       string      `json:"alias"`
	Quadra      Quadra      `json:"quadra"`
	Temperament Temperament `json:"temperament"`
	Leading     Element     `json:"leading"`
	Creative    Element     `json:"creative"`
	Href        string      `json:"href"`
	Overview    string      `json:"overview,omitempty"` // Parrafo extraido por el scraper
}

// HasElement indica si el tipo usa el elemento como funcion lider o creativa.
func (t TypeRecord) HasElement(e Element) bool {
	return t.Leading == e || t.Creative == e
}

// GlossaryTerm es una entrada del glosario.
type GlossaryTerm struct {
	Slug       string `json:"slug"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Overview es el texto de portada del sitio.
type Overview struct {
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Source    string     `json:"source,omitempty"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
}
