// Package infobox provides a SymptomExtractor for encyclopedia pages.
// It reads the summary table ("infobox") at the top of an article, finds the
// first row whose header mentions symptoms and returns that row's text with
// citation markers removed.
package infobox
