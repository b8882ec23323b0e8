// Package places provides the places bounded context.
// This file defines the public interfaces exposed to other domains.
package places

import (
	"context"

	"bumpti_backend/internal/places/transport"
)

// PlacesService defines the public interface for place lookups.
// Other domains should depend on this interface, not the concrete implementation.
type PlacesService interface {
	// NearbyPlaces searches a circle around a coordinate for the given types.
	NearbyPlaces(ctx context.Context, req transport.NearbyPlacesRequest) (transport.PlacesResponse, error)

	// PlacesByIDs resolves a batch of place ids; one failure fails the batch.
	PlacesByIDs(ctx context.Context, req transport.PlacesByIDsRequest) (transport.PlacesResponse, error)
}
