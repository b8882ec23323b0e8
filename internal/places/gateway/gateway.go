// Package gateway is the typed client-side entry point to the places
// callables. It owns request construction and the per-operation failure
// policy: nearby search surfaces every failure, featured lookups degrade to an
// empty list.
package gateway

import (
	"context"

	"bumpti_backend/internal/places/placetype"
	"bumpti_backend/internal/places/transport"
	"bumpti_backend/platform/logger"
)

// Caller invokes a named callable, decoding its result into result.
// *callable.Client implements it over HTTP.
type Caller interface {
	Call(ctx context.Context, name string, data, result any) error
}

// Option customizes a nearby search.
type Option func(*transport.NearbyPlacesRequest)

// WithRadius sets the search radius in meters.
func WithRadius(meters int) Option {
	return func(r *transport.NearbyPlacesRequest) { r.Radius = &meters }
}

// WithKeyword narrows the search by free text.
func WithKeyword(keyword string) Option {
	return func(r *transport.NearbyPlacesRequest) { r.Keyword = keyword }
}

// WithRankPreference sets POPULARITY or DISTANCE ranking.
func WithRankPreference(rank string) Option {
	return func(r *transport.NearbyPlacesRequest) { r.RankPreference = rank }
}

// WithMaxResultCount caps the number of results.
func WithMaxResultCount(n int) Option {
	return func(r *transport.NearbyPlacesRequest) { r.MaxResultCount = &n }
}

type Gateway struct {
	caller Caller
	log    *logger.Logger
}

func New(caller Caller, log *logger.Logger) *Gateway {
	return &Gateway{caller: caller, log: log}
}

// GetNearbyPlaces searches around (lat, lng). Failures are returned unchanged
// so the caller can surface them.
func (g *Gateway) GetNearbyPlaces(ctx context.Context, lat, lng float64, types []placetype.PlaceType, opts ...Option) ([]transport.Place, error) {
	maxResults := transport.DefaultMaxResultCount
	req := transport.NearbyPlacesRequest{
		Lat:            &lat,
		Lng:            &lng,
		Types:          types,
		RankPreference: transport.RankPopularity,
		MaxResultCount: &maxResults,
	}
	for _, opt := range opts {
		opt(&req)
	}

	var resp transport.PlacesResponse
	if err := g.caller.Call(ctx, transport.NearbyPlacesCallable, req, &resp); err != nil {
		return nil, err
	}
	if resp.Places == nil {
		return []transport.Place{}, nil
	}
	return resp.Places, nil
}

// GetFeaturedPlaces resolves the curated place ids. It never fails: any error
// is logged and an empty list is returned.
func (g *Gateway) GetFeaturedPlaces(ctx context.Context, placeIDs []string) []transport.Place {
	var resp transport.PlacesResponse
	err := g.caller.Call(ctx, transport.PlacesByIDsCallable, transport.PlacesByIDsRequest{PlaceIDs: placeIDs}, &resp)
	if err != nil {
		g.log.WithContext(ctx).Error("featured places lookup failed", "count", len(placeIDs), "error", err)
		return []transport.Place{}
	}
	if resp.Places == nil {
		return []transport.Place{}
	}
	return resp.Places
}
