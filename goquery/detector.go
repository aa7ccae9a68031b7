// Package goquery inspects scraped HTML for bot walls: captcha
// challenges, rate-limit interstitials, and access-denied pages that
// carry no usable content.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	persona "github.com/kvrancic/persona-mcp"
)

// Ensure Detector implements persona.BlockedDetector at compile time.
var _ persona.BlockedDetector = (*Detector)(nil)

// Detector identifies blocked pages from HTML content. It checks page
// titles first and then the structural markers left by common
// bot-protection vendors.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// blockedTitles are title substrings unique to challenge pages.
var blockedTitles = []string{
	"just a moment",           // Cloudflare
	"attention required",      // Cloudflare
	"access denied",
	"are you a robot",
	"verify you are human",
	"security check",
	"pardon our interruption", // Akamai
}

// challengeSelectors are DOM markers that only appear on challenge
// pages, never on real articles.
var challengeSelectors = []string{
	"#challenge-form",       // Cloudflare
	"#challenge-running",    // Cloudflare
	"#cf-challenge-running", // Cloudflare
	"form#captcha-form",     // Google sorry page
	"#px-captcha",           // PerimeterX
}

// captchaSelectors are widgets that also appear on legitimate pages
// (comment and contact forms), so they only count when the page has no
// real text around them.
var captchaSelectors = []string{
	".g-recaptcha",
	".h-captcha",
	"iframe[src*='recaptcha']",
	"iframe[src*='hcaptcha']",
}

// thinPageWords is the body-text size below which a captcha widget
// means the whole page is a wall.
const thinPageWords = 150

// Detect reports whether the HTML is a blocked page and which marker
// identified it. Unparseable HTML is not considered blocked; extraction
// fails on it with a better error.
func (d *Detector) Detect(html string) (bool, string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false, ""
	}

	title := strings.ToLower(strings.TrimSpace(doc.Find("title").First().Text()))
	for _, marker := range blockedTitles {
		if strings.Contains(title, marker) {
			return true, "title: " + marker
		}
	}

	for _, selector := range challengeSelectors {
		if doc.Find(selector).Length() > 0 {
			return true, selector
		}
	}

	if len(strings.Fields(doc.Find("body").Text())) < thinPageWords {
		for _, selector := range captchaSelectors {
			if doc.Find(selector).Length() > 0 {
				return true, selector
			}
		}
	}

	return false, ""
}
