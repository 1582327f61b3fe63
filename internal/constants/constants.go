package constants

const (
	// MaxKeySizeBytes is the hard cap on key size (1 KB). Keys beyond this
	// are rejected at the validation boundary rather than silently stored.
	MaxKeySizeBytes = 1024
)
