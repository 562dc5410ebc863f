package domain

import "context"

// ResolverPort resolves a free text name to a stored identity
type ResolverPort interface {
	// Resolve returns the phone of the closest matching contact
	// "" with a nil error means no contact was close enough
	Resolve(ctx context.Context, query string) (string, error)
}

// RefresherPort regenerates the address book snapshot
type RefresherPort interface {
	// Refresh runs the snapshot producer and returns the snapshot path
	Refresh(ctx context.Context) (string, error)
}
