// Package connectors groups the network-facing adapters of symptomlex.
// Each connector knows how to talk to one kind of remote service:
//
//   - directory: the alphabetical disease directory
//   - search/duckduckgo: the full-text search provider
//   - encyclopedia: encyclopedia page fetching
//   - web: the shared HTTP client and HTML tree helpers
//
// Connectors are wired into core services at startup in cmd/symptomlex.
package connectors
