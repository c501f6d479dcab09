package ports

import "context"

// LocationProvider defines the contract for a device position source
type LocationProvider interface {
	// LastKnownPosition returns nil without error when the source has no fix
	LastKnownPosition(ctx context.Context) (*Coordinate, error)
	GetProviderName() string
}

// LocationGateway resolves the current position or fails with a LocationUnavailable error
type LocationGateway interface {
	CurrentPosition(ctx context.Context) (Coordinate, error)
}
