package scraper

import (
	"errors"
	"testing"
)

func TestExtractLead_PrefersContentContainer(t *testing.T) {
	html := []byte(`<html><body>
		<p>Navigation text that is long enough to be a paragraph on its own.</p>
		<div id="mw-content-text">
			<p>Short.</p>
			<p>The   Intuitive-Logical   Extravert is an inventor type[1] focused on possibilities.</p>
		</div>
	</body></html>`)

	got, err := ExtractLead(html)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := "The Intuitive-Logical Extravert is an inventor type focused on possibilities."
	if got != want {
		t.Fatalf("unexpected lead:\n got %q\nwant %q", got, want)
	}
}

func TestExtractLead_FallsBackToMainThenBody(t *testing.T) {
	mainHTML := []byte(`<html><body><main><p>Socionics is a theory of information processing and personality types.</p></main></body></html>`)
	got, err := ExtractLead(mainHTML)
	if err != nil || got != "Socionics is a theory of information processing and personality types." {
		t.Fatalf("unexpected main lead %q err=%v", got, err)
	}

	bodyHTML := []byte(`<html><body><p>tiny</p><p>A body paragraph with more than forty characters of text.</p></body></html>`)
	got, err = ExtractLead(bodyHTML)
	if err != nil || got != "A body paragraph with more than forty characters of text." {
		t.Fatalf("unexpected body lead %q err=%v", got, err)
	}
}

func TestExtractLead_NoParagraph(t *testing.T) {
	_, err := ExtractLead([]byte(`<html><body><p>too short</p><div>not a paragraph but long enough to count otherwise</div></body></html>`))
	if !errors.Is(err, ErrNoParagraph) {
		t.Fatalf("expected ErrNoParagraph, got %v", err)
	}
}
