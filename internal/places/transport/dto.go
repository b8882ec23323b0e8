// Package transport provides DTOs for the places domain.
package transport

import (
	"bytes"
	"encoding/json"

	"bumpti_backend/internal/places/placetype"
)

// Callable names as seen by clients.
const (
	NearbyPlacesCallable = "getNearbyPlaces"
	PlacesByIDsCallable  = "getPlacesByIds"
)

// Rank preferences accepted by nearby search.
const (
	RankPopularity = "POPULARITY"
	RankDistance   = "DISTANCE"
)

// Defaults applied to nearby search when the caller omits a field.
const (
	DefaultRadius         = 20000
	MaxRadius             = 50000
	DefaultMaxResultCount = 20
	MaxPlaceIDs           = 50
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is the normalized place returned by both lookups.
type Place struct {
	PlaceID          string    `json:"placeId"`
	Name             string    `json:"name"`
	Location         *Location `json:"location"`
	Type             *string   `json:"type"`
	FormattedAddress *string   `json:"formattedAddress"`
	// Types holds the raw provider types; nearby search only.
	Types []string `json:"types,omitempty"`
}

// MarshalJSON writes types whenever the slice is non-nil, so nearby results
// always carry the field and by-id results never do.
func (p Place) MarshalJSON() ([]byte, error) {
	type plain Place
	if p.Types == nil {
		return json.Marshal(plain(p))
	}
	return json.Marshal(struct {
		plain
		Types []string `json:"types"`
	}{plain: plain(p), Types: p.Types})
}

// PlacesResponse is the result of both callables.
type PlacesResponse struct {
	Places []Place `json:"places"`
}

// NearbyPlacesRequest is the getNearbyPlaces payload.
// Lat/Lng stay nil when the caller sent anything other than a JSON number.
type NearbyPlacesRequest struct {
	Lat            *float64              `json:"lat"`
	Lng            *float64              `json:"lng"`
	Radius         *int                  `json:"radius,omitempty"`
	Types          []placetype.PlaceType `json:"types"`
	Keyword        string                `json:"keyword,omitempty"`
	RankPreference string                `json:"rankPreference,omitempty"`
	MaxResultCount *int                  `json:"maxResultCount,omitempty"`
}

// UnmarshalJSON decodes leniently: ill-typed coordinates or types are left
// empty so the service can reject them with its own messages.
func (r *NearbyPlacesRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lat            json.RawMessage `json:"lat"`
		Lng            json.RawMessage `json:"lng"`
		Radius         *int            `json:"radius"`
		Types          json.RawMessage `json:"types"`
		Keyword        string          `json:"keyword"`
		RankPreference string          `json:"rankPreference"`
		MaxResultCount *int            `json:"maxResultCount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = NearbyPlacesRequest{
		Lat:            decodeNumber(raw.Lat),
		Lng:            decodeNumber(raw.Lng),
		Radius:         raw.Radius,
		Keyword:        raw.Keyword,
		RankPreference: raw.RankPreference,
		MaxResultCount: raw.MaxResultCount,
	}

	var types []placetype.PlaceType
	if err := json.Unmarshal(raw.Types, &types); err == nil {
		r.Types = types
	}

	return nil
}

// PlacesByIDsRequest is the getPlacesByIds payload.
type PlacesByIDsRequest struct {
	PlaceIDs []string `json:"placeIds"`
}

// UnmarshalJSON leaves PlaceIDs empty when placeIds is not an array of strings.
func (r *PlacesByIDsRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		PlaceIDs json.RawMessage `json:"placeIds"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = PlacesByIDsRequest{}
	var ids []string
	if err := json.Unmarshal(raw.PlaceIDs, &ids); err == nil {
		r.PlaceIDs = ids
	}
	return nil
}

func decodeNumber(raw json.RawMessage) *float64 {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil
	}
	return &f
}
