package persona

import "context"

// Scraper turns a web page into plain text suitable for storage.
// Implementations hide fetching, blocked-page detection, boilerplate
// removal, and markdown conversion.
type Scraper interface {
	// Scrape fetches the URL and returns its main content as plain text.
	// The context carries the per-page deadline; a page that refuses
	// automated access is EBLOCKED.
	Scrape(ctx context.Context, url string) (string, error)
}

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL and returns the HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title comes from page metadata (meta tags, JSON+LD, etc.).
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}

// BlockedDetector recognizes pages that refuse automated access,
// such as captcha challenges and bot interstitials.
type BlockedDetector interface {
	// Detect inspects HTML and reports whether the page is a block page
	// rather than content. The marker names what was matched, for error
	// messages.
	Detect(html string) (blocked bool, marker string)
}
