// Package defaults centralizes timeout and limit constants so they are
// consistent across the server and tests.
package defaults
