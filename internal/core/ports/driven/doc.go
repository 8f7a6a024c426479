// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NameHarvester: Enumerates names from the alphabetical directory
//   - NameArchive: Reads and writes local name archives
//   - SearchProvider: Full-text web search
//   - Encyclopedia: Encyclopedia page fetching
//   - SymptomExtractor: Infobox symptom extraction
//   - LexiconStore / LexiconStoreOpener: Final output persistence
//   - ConfigStore: Persisted configuration overrides
//
// # Optional Interfaces
//
//   - RunRecorder: Build history. Stores without it simply skip recording.
//   - Pacer: Spacing between outgoing requests. Nil means no spacing.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
