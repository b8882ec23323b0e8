package client

// SearchNearbyRequest is the places:searchNearby request body.
type SearchNearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	ExcludedTypes       []string            `json:"excludedTypes"`
	RankPreference      string              `json:"rankPreference"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LocationRestriction LocationRestriction `json:"locationRestriction"`
	Keyword             string              `json:"keyword,omitempty"`
}

// LocationRestriction limits results to a circle.
type LocationRestriction struct {
	Circle Circle `json:"circle"`
}

// Circle is a center point and radius in meters.
type Circle struct {
	Center LatLng  `json:"center"`
	Radius float64 `json:"radius"`
}

// LatLng mirrors google.type.LatLng.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocalizedText mirrors google.type.LocalizedText.
type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// Place holds the fields selected by the field masks.
type Place struct {
	ID               string         `json:"id"`
	DisplayName      *LocalizedText `json:"displayName,omitempty"`
	FormattedAddress string         `json:"formattedAddress,omitempty"`
	Types            []string       `json:"types,omitempty"`
	Location         *LatLng        `json:"location,omitempty"`
}
