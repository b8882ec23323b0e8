package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bumpti_backend/platform/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, logger.NewWithWriter("production", io.Discard))
}

func TestSearchNearbySendsHeadersAndBody(t *testing.T) {
	var got SearchNearbyRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/places:searchNearby" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Goog-Api-Key") != "key-1" {
			t.Errorf("missing api key header")
		}
		if r.Header.Get("X-Goog-FieldMask") != nearbyFieldMask {
			t.Errorf("unexpected field mask %q", r.Header.Get("X-Goog-FieldMask"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"places":[{"id":"p1","displayName":{"text":"Bar do Zeca"},"types":["bar"]}]}`))
	})

	places, err := c.SearchNearby(context.Background(), "key-1", SearchNearbyRequest{
		IncludedTypes:  []string{"bar"},
		ExcludedTypes:  []string{"bakery"},
		RankPreference: "POPULARITY",
		MaxResultCount: 20,
		LocationRestriction: LocationRestriction{Circle: Circle{
			Center: LatLng{Latitude: -23.5, Longitude: -46.6},
			Radius: 20000,
		}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(places) != 1 || places[0].ID != "p1" || places[0].DisplayName.Text != "Bar do Zeca" {
		t.Fatalf("unexpected places %+v", places)
	}
	if got.LocationRestriction.Circle.Center.Latitude != -23.5 || got.Keyword != "" {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestSearchNearbyToleratesMissingPlaces(t *testing.T) {
	for _, body := range []string{`{}`, `{"places":null}`, `{"places":"oops"}`, `{"places":{"id":"x"}}`} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		places, err := c.SearchNearby(context.Background(), "k", SearchNearbyRequest{})
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", body, err)
		}
		if places == nil || len(places) != 0 {
			t.Fatalf("%s: expected empty non-nil slice, got %#v", body, places)
		}
	}
}

func TestNonSuccessStatusReturnsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	})

	_, err := c.GetPlace(context.Background(), "k", "abc")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusForbidden || statusErr.Body != `{"error":{"message":"API key not valid"}}` {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestGetPlaceEscapesIDAndUsesDetailsMask(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.EscapedPath() != "/v1/places/a%2Fb" {
			t.Errorf("unexpected path %q", r.URL.EscapedPath())
		}
		if r.Header.Get("X-Goog-FieldMask") != detailsFieldMask {
			t.Errorf("unexpected field mask %q", r.Header.Get("X-Goog-FieldMask"))
		}
		_, _ = w.Write([]byte(`{"id":"a/b","location":{"latitude":1.5,"longitude":2.5}}`))
	})

	place, err := c.GetPlace(context.Background(), "k", "a/b")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if place.Location == nil || place.Location.Longitude != 2.5 {
		t.Fatalf("unexpected place %+v", place)
	}
}
