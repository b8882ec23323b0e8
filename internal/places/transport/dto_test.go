package transport

import (
	"encoding/json"
	"testing"
)

func TestNearbyRequestLeavesIllTypedCoordinatesNil(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		latNil  bool
		lngNil  bool
	}{
		{name: "numbers", payload: `{"lat":40.7,"lng":-74}`, latNil: false, lngNil: false},
		{name: "string lat", payload: `{"lat":"40","lng":-74}`, latNil: true, lngNil: false},
		{name: "missing lng", payload: `{"lat":40}`, latNil: false, lngNil: true},
		{name: "null lat", payload: `{"lat":null,"lng":1}`, latNil: true, lngNil: false},
		{name: "bool lng", payload: `{"lat":1,"lng":true}`, latNil: false, lngNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req NearbyPlacesRequest
			if err := json.Unmarshal([]byte(tt.payload), &req); err != nil {
				t.Fatalf("expected lenient decode, got %v", err)
			}
			if (req.Lat == nil) != tt.latNil {
				t.Fatalf("lat nil = %v, want %v", req.Lat == nil, tt.latNil)
			}
			if (req.Lng == nil) != tt.lngNil {
				t.Fatalf("lng nil = %v, want %v", req.Lng == nil, tt.lngNil)
			}
		})
	}
}

func TestNearbyRequestDecodesTypesAndOptions(t *testing.T) {
	var req NearbyPlacesRequest
	payload := `{"lat":1,"lng":2,"types":["bar","cafe"],"radius":500,"rankPreference":"DISTANCE","maxResultCount":5,"keyword":"jazz"}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(req.Types) != 2 || req.Types[1] != "cafe" {
		t.Fatalf("unexpected types %v", req.Types)
	}
	if req.Radius == nil || *req.Radius != 500 || req.MaxResultCount == nil || *req.MaxResultCount != 5 {
		t.Fatalf("unexpected options %+v", req)
	}
	if req.RankPreference != RankDistance || req.Keyword != "jazz" {
		t.Fatalf("unexpected rank/keyword %+v", req)
	}

	var bad NearbyPlacesRequest
	if err := json.Unmarshal([]byte(`{"types":"bar"}`), &bad); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bad.Types != nil {
		t.Fatalf("expected non-array types to decode as nil, got %v", bad.Types)
	}
}

func TestPlacesByIDsRequestRejectsNonArraysQuietly(t *testing.T) {
	var req PlacesByIDsRequest
	if err := json.Unmarshal([]byte(`{"placeIds":"abc"}`), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.PlaceIDs != nil {
		t.Fatalf("expected nil ids, got %v", req.PlaceIDs)
	}

	if err := json.Unmarshal([]byte(`{"placeIds":["a","b"]}`), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(req.PlaceIDs) != 2 {
		t.Fatalf("expected 2 ids, got %v", req.PlaceIDs)
	}
}

func TestPlaceEncodesNullsForMissingFields(t *testing.T) {
	data, err := json.Marshal(Place{PlaceID: "p1", Name: "Unknown"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"placeId":"p1","name":"Unknown","location":null,"type":null,"formattedAddress":null}`
	if string(data) != want {
		t.Fatalf("unexpected JSON\n got: %s\nwant: %s", data, want)
	}
}
