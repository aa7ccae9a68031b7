// Package persona provides per-person knowledge bases built from public web
// content. It searches the web for pages about a person, scrapes them
// concurrently into a deduplicated local corpus, and answers natural
// language questions about the person using retrieved passages as grounding
// for a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, serper/, genai/).
package persona
