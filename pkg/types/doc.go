// Package types defines the recipe entity, the store, persister and slot
// interfaces, configuration, and the standard errors shared by the
// recipebook packages.
package types
