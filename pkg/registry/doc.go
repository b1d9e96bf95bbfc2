// Package registry resolves the effect named by a manifest to its Go
// implementation.
package registry
