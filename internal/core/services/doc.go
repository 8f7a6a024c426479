// Package services implements the driving ports on top of the driven ones.
//
// The two algorithms the lexicon depends on live here as plain functions:
// UnifyNames (set union plus sort) and CollapseDuplicates (first-seen wins
// on normalised symptom text). LexiconService sequences the stages,
// SymptomResolver handles one disease at a time, and CatalogueService and
// SettingsService serve reads and configuration.
package services
