package util

import "github.com/oklog/ulid/v2"

// NewULID generates a new ULID string using the package's cryptographically
// secure default entropy source.
func NewULID() string {
	return ulid.Make().String()
}
