package service

import (
	"slices"

	"bumpti_backend/internal/places/client"
	"bumpti_backend/internal/places/transport"
)

func normalizeNearby(p client.Place, requested []string) transport.Place {
	out := transport.Place{
		PlaceID:          p.ID,
		Name:             displayName(p.DisplayName),
		Location:         location(p.Location),
		FormattedAddress: optional(p.FormattedAddress),
		Types:            []string{},
	}
	if p.Types != nil {
		out.Types = p.Types
	}
	for _, t := range p.Types {
		if slices.Contains(requested, t) {
			out.Type = &t
			break
		}
	}
	return out
}

func normalizeByID(p client.Place, requestedID string) transport.Place {
	out := transport.Place{
		PlaceID:          p.ID,
		Name:             displayName(p.DisplayName),
		Location:         location(p.Location),
		FormattedAddress: optional(p.FormattedAddress),
	}
	if out.PlaceID == "" {
		out.PlaceID = requestedID
	}
	if len(p.Types) > 0 {
		first := p.Types[0]
		out.Type = &first
	}
	return out
}

func displayName(text *client.LocalizedText) string {
	if text == nil || text.Text == "" {
		return msgUnknownName
	}
	return text.Text
}

func location(ll *client.LatLng) *transport.Location {
	if ll == nil {
		return nil
	}
	return &transport.Location{Lat: ll.Latitude, Lng: ll.Longitude}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
