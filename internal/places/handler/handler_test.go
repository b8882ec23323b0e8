package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bumpti_backend/internal/places/client"
	"bumpti_backend/internal/places/service"
	"bumpti_backend/platform/httpkit"
	"bumpti_backend/platform/logger"
	"bumpti_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T, upstream http.HandlerFunc) (*gin.Engine, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		upstream(w, r)
	}))
	t.Cleanup(srv.Close)

	log := logger.NewWithWriter("production", io.Discard)
	svc := service.New(client.New(srv.URL, time.Second, log), service.StaticKey("k"), validator.New(), log, time.Second)

	engine := gin.New()
	New(svc, log).RegisterRoutes(engine.Group("/api/v1/callable"))
	return engine, &calls
}

func post(engine *gin.Engine, name, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/callable/"+name, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestNearbyCallableReturnsResultEnvelope(t *testing.T) {
	engine, _ := newEngine(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places":[{"id":"p1","displayName":{"text":"Bar"},"types":["bar"]}]}`))
	})

	rec := post(engine, NearbyPlacesName, `{"data":{"lat":-23.5,"lng":-46.6,"types":["bar"]}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var out struct {
		Result struct {
			Places []struct {
				PlaceID string   `json:"placeId"`
				Type    *string  `json:"type"`
				Types   []string `json:"types"`
			} `json:"places"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Result.Places) != 1 || out.Result.Places[0].Type == nil || *out.Result.Places[0].Type != "bar" {
		t.Fatalf("unexpected result %s", rec.Body.String())
	}
}

func TestNearbyCallableRejectsStringLatitude(t *testing.T) {
	engine, calls := newEngine(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := post(engine, NearbyPlacesName, `{"data":{"lat":"40","lng":-74,"types":["bar"]}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var out httpkit.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	if out.Error.Status != "INVALID_ARGUMENT" || out.Error.Message != "Missing or invalid coordinates" {
		t.Fatalf("unexpected error %+v", out.Error)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no upstream call, got %d", calls.Load())
	}
}

func TestByIDsCallableMapsFailureToInternal(t *testing.T) {
	engine, _ := newEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("gone"))
	})

	rec := post(engine, PlacesByIDsName, `{"data":{"placeIds":["a"]}}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var out httpkit.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	if out.Error.Status != "INTERNAL" || out.Error.Message != "Failed to fetch place a: 404 - gone" {
		t.Fatalf("unexpected error %+v", out.Error)
	}
}

func TestByIDsCallableRejectsNonArray(t *testing.T) {
	engine, calls := newEngine(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := post(engine, PlacesByIDsName, `{"data":{"placeIds":"abc"}}`)
	var out httpkit.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	if rec.Code != http.StatusBadRequest || out.Error.Message != "placeIds must be a non-empty array" {
		t.Fatalf("unexpected response %d %+v", rec.Code, out.Error)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no upstream call, got %d", calls.Load())
	}
}
