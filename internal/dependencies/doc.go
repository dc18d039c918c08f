// Package dependencies supplies default implementations for collaborators
// that callers leave unset.
package dependencies
