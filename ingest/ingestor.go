// Package ingest builds persona knowledge bases. It searches the web for
// pages about a person, scrapes the candidates concurrently under
// per-page deadlines, and stores whatever survives.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/bloom"
	"golang.org/x/sync/errgroup"
)

// Defaults for ingestion behavior.
const (
	DefaultWorkers     = 4
	DefaultPageTimeout = 15 * time.Second
	DefaultMinTextLen  = 100
	DefaultMaxURLs     = 3
	DefaultOverscan    = 2

	dedupeExpectedURLs      = 1000
	dedupeFalsePositiveRate = 0.01
)

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an ingestion run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Err       error
}

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// Ingestor orchestrates persona knowledge acquisition: search, scrape
// fan-out, and storage.
type Ingestor struct {
	Search  persona.SearchService
	Scraper persona.Scraper
	Store   persona.ContentStore

	// Limiter, when set, paces scrapes per domain.
	Limiter persona.DomainLimiter

	// Workers bounds concurrent scrapes. Defaults to DefaultWorkers.
	Workers int

	// PageTimeout bounds each individual scrape. Defaults to
	// DefaultPageTimeout.
	PageTimeout time.Duration

	// MinTextLen drops scraped texts shorter than this many characters.
	// Defaults to DefaultMinTextLen.
	MinTextLen int

	// Overscan multiplies maxURLs on the search request so post-dedup
	// truncation can still fill the quota. Defaults to DefaultOverscan.
	Overscan int
}

// scrapeResult holds the outcome of scraping a single URL.
type scrapeResult struct {
	url  string
	text string
	err  error
}

// Ingest builds or extends the knowledge base for person. It searches
// for up to maxURLs candidate pages, scrapes them concurrently, and
// stores each extracted text as a chunk. One page failing does not fail
// the run; the report records per-URL failures alongside the successes.
// When at least one page succeeds the persona becomes the session's
// active persona.
func (ing *Ingestor) Ingest(ctx context.Context, sess *persona.Session, person string, maxURLs int, progress ProgressFunc) (*persona.IngestReport, error) {
	started := time.Now()

	name := persona.NormalizeName(person)
	if name == "" {
		return nil, persona.Errorf(persona.EINVALID, "person name is required")
	}
	if maxURLs <= 0 {
		maxURLs = DefaultMaxURLs
	}

	urls, err := ing.findCandidates(ctx, person, maxURLs)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, persona.Errorf(persona.ENOCONTENT, "no pages found for %q", person)
	}

	workers := ing.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	pageTimeout := ing.PageTimeout
	if pageTimeout <= 0 {
		pageTimeout = DefaultPageTimeout
	}
	minTextLen := ing.MinTextLen
	if minTextLen <= 0 {
		minTextLen = DefaultMinTextLen
	}

	total := len(urls)
	resultCh := make(chan scrapeResult, total)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// Cancelling fanCtx aborts outstanding scrapes once storage fails.
	fanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(fanCtx)
	g.SetLimit(workers)

	go func() {
		for _, u := range urls {
			g.Go(func() error {
				resultCh <- ing.scrapeOne(gctx, u, pageTimeout, minTextLen)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	report := &persona.IngestReport{Person: name, Attempted: total}

	var completed int
	var storeErr error
	for res := range resultCh {
		completed++

		if res.err != nil {
			report.Failures = append(report.Failures, persona.ScrapeFailure{
				URL:    res.url,
				Reason: persona.ErrorMessage(res.err),
			})
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: res.url, Err: res.err})
			}
			continue
		}

		// After a storage failure keep draining so the workers can exit,
		// but stop writing.
		if storeErr != nil {
			continue
		}

		_, isNew, err := ing.Store.Put(ctx, name, res.url, res.text)
		if err != nil {
			storeErr = err
			cancel()
			continue
		}

		report.Succeeded++
		if isNew {
			report.NewChunks++
			report.CharsStored += utf8.RuneCountInString(strings.TrimSpace(res.text))
		} else {
			report.DuplicateChunks++
		}
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: res.url})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	if storeErr != nil {
		return nil, storeErr
	}

	if report.Succeeded == 0 {
		return nil, persona.Errorf(persona.EALLFAILED, "all %d pages failed for %q: %s", total, person, summarizeFailures(report.Failures))
	}

	if sess != nil {
		sess.SetActive(name)
	}

	report.Elapsed = time.Since(started)
	return report, nil
}

// findCandidates searches for pages about person and returns up to
// maxURLs deduplicated URLs.
func (ing *Ingestor) findCandidates(ctx context.Context, person string, maxURLs int) ([]string, error) {
	overscan := ing.Overscan
	if overscan <= 0 {
		overscan = DefaultOverscan
	}
	results, err := ing.Search.Search(ctx, person, maxURLs*overscan)
	if err != nil {
		if persona.ErrorCode(err) == persona.ESEARCH {
			return nil, err
		}
		return nil, persona.Errorf(persona.ESEARCH, "search failed: %s", persona.ErrorMessage(err))
	}

	seen := bloom.NewSet(dedupeExpectedURLs, dedupeFalsePositiveRate)
	urls := make([]string, 0, maxURLs)
	for _, r := range results {
		u := strings.TrimSpace(r.URL)
		if u == "" {
			continue
		}
		// Fragments never change the fetched page.
		if i := strings.Index(u, "#"); i >= 0 {
			u = u[:i]
		}
		if !seen.Add(u) {
			continue
		}
		urls = append(urls, u)
		if len(urls) == maxURLs {
			break
		}
	}
	return urls, nil
}

// scrapeOne runs a single scrape under its own deadline and classifies
// failures into the reasons recorded on the report.
func (ing *Ingestor) scrapeOne(ctx context.Context, rawURL string, timeout time.Duration, minTextLen int) scrapeResult {
	result := scrapeResult{url: rawURL}

	if ing.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := ing.Limiter.Wait(ctx, u.Host); err != nil {
				result.err = err
				return result
			}
		}
	}

	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := ing.Scraper.Scrape(sctx, rawURL)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			result.err = fmt.Errorf("timed out after %s", timeout)
		} else {
			result.err = err
		}
		return result
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < minTextLen {
		result.err = fmt.Errorf("content too short (%d chars)", n)
		return result
	}

	result.text = text
	return result
}

// summarizeFailures renders per-URL failure reasons for the all-failed
// error message.
func summarizeFailures(failures []persona.ScrapeFailure) string {
	parts := make([]string, 0, len(failures))
	for _, f := range failures {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.URL, f.Reason))
	}
	return strings.Join(parts, "; ")
}
