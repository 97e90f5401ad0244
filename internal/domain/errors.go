package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the catalog could not be reached
	ErrCatalogUnavailable = errors.New("catalog is unreachable")

	// ErrMalformedResponse indicates the catalog answered with something unparseable
	ErrMalformedResponse = errors.New("malformed catalog response")

	// ErrStoreUnavailable indicates the local store could not be opened or written
	ErrStoreUnavailable = errors.New("local store is unavailable")
)

// ProviderError is a failure reported by the catalog itself,
// e.g. "Movie not found!" or "Invalid API key!".
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// ProviderMessage returns the provider's message if err carries one
func ProviderMessage(err error) (string, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message, true
	}
	return "", false
}
