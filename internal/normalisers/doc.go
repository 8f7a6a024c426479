// Package normalisers turns fetched markup into the plain values the
// lexicon stores. Each normaliser knows one page structure; infobox reads
// the symptom row of an encyclopedia summary table.
package normalisers
