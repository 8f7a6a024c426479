// Package driving holds the interfaces the CLI, the browser and the MCP
// server call into.
//
//   - LexiconBuilder: runs the pipeline or one of its stages
//   - LexiconCatalogue: reads a saved lexicon and its build history
//   - SettingsService: reads and edits the configuration
//
// Services in internal/core/services implement them.
package driving
