package types

import "fmt"

type ABVersion uint64

type Versioned interface {
	GetVersion() ABVersion
}

// EnsureVersion checks the version decoded from a durable record against the
// version the code supports. Records never decode silently across versions.
func EnsureVersion(v Versioned, actual, expected ABVersion) error {
	if actual != expected {
		return fmt.Errorf("invalid version (type %T), expected %d, got %d", v, expected, actual)
	}
	return nil
}
