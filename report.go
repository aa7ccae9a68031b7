package persona

import "time"

// ScrapeFailure records why one candidate URL contributed nothing to an
// ingestion run.
type ScrapeFailure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// IngestReport summarizes one ingestion run. A report is only produced when
// at least one page was stored; runs that yield nothing return an error
// instead. Reports are ephemeral and never persisted.
type IngestReport struct {
	// Person is the normalized persona name the run stored under.
	Person string `json:"person"`

	// Attempted is the number of candidate URLs handed to the scraper.
	Attempted int `json:"attempted"`

	// Succeeded counts scrapes that produced usable text, whether or not
	// that text was new.
	Succeeded int `json:"succeeded"`

	// NewChunks and DuplicateChunks split Succeeded by storage outcome.
	NewChunks       int `json:"newChunks"`
	DuplicateChunks int `json:"duplicateChunks"`

	// CharsStored is the total size of newly stored text.
	CharsStored int `json:"charsStored"`

	// Failures lists every candidate that contributed nothing, with a
	// human-readable reason.
	Failures []ScrapeFailure `json:"failures,omitempty"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`
}
