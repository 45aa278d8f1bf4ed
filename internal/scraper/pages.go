package scraper

import (
	"strings"

	"socionics-wiki/internal/dataset"
)

// OverviewPageKey identifica la pagina general de socionica.
const OverviewPageKey = "overview"

type Page struct {
	Key string
	URL string
}

// Pages devuelve la pagina general seguida de las 16 paginas de tipo en orden canonico.
func Pages(baseURL string) []Page {
	base := strings.TrimRight(baseURL, "/")
	pages := make([]Page, 0, len(dataset.CanonicalCodes)+1)
	pages = append(pages, Page{Key: OverviewPageKey, URL: base + "/socionics.html"})
	for _, code := range dataset.CanonicalCodes {
		pages = append(pages, Page{Key: code, URL: base + "/" + code + ".html"})
	}
	return pages
}
