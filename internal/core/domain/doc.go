// Package domain defines the core business entities for symptomlex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CleanName: The rule every disease name key passes
//   - NameCollection: The sorted, de-duplicated set of names to resolve
//   - SymptomRecord: An insertion-ordered disease to symptom text mapping
//   - ItemOutcome and StageReport: Explicit per-item results of each stage
//   - Config: Every tunable constant of the build pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
