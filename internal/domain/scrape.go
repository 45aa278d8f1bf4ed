package domain

import "time"

const (
	ScrapeStatusRunning   = "running"
	ScrapeStatusSucceeded = "succeeded"
	ScrapeStatusFailed    = "failed"
)

type ScrapeRun struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	BaseURL    string     `json:"base_url"`
	PageCount  int        `json:"page_count"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// PageSnapshot registra el resultado de descargar una pagina durante un run.
type PageSnapshot struct {
	ID         string    `json:"id"`
	RunID      string    `json:"run_id"`
	PageKey    string    `json:"page_key"`
	URL        string    `json:"url"`
	StatusCode int       `json:"status_code"`
	Attempts   int       `json:"attempts"`
	Paragraph  string    `json:"paragraph,omitempty"`
	Checksum   string    `json:"checksum"`
	FetchedAt  time.Time `json:"fetched_at"`
}
