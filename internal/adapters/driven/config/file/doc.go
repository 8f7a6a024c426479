// Package file keeps configuration overrides in a TOML file, by default
// ~/.symptomlex/config.toml. Keys are dotted paths such as "search.pause"
// mapped onto nested tables.
package file
