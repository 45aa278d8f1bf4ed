package scraper

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoParagraph indica que la pagina no tiene un parrafo utilizable.
var ErrNoParagraph = errors.New("no lead paragraph found")

const minParagraphLen = 40

var (
	contentSelectors = []string{"#mw-content-text p", "main p", "article p", "body p"}
	citationRegex    = regexp.MustCompile(`\[\d+\]`)
)

// ExtractLead devuelve el primer parrafo con texto suficiente del contenido principal.
func ExtractLead(html []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	for _, selector := range contentSelectors {
		var lead string
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := cleanText(s.Text())
			if len(text) >= minParagraphLen {
				lead = text
				return false
			}
			return true
		})
		if lead != "" {
			return lead, nil
		}
	}
	return "", ErrNoParagraph
}

func cleanText(s string) string {
	s = citationRegex.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
