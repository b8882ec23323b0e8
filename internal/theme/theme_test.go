package theme

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		scheme string
		want   string
	}{
		{"light", SchemeLight},
		{"LIGHT", SchemeLight},
		{"dark", SchemeDark},
		{"", SchemeDark},
		{"no-preference", SchemeDark},
	}
	for _, tt := range tests {
		if got := Resolve(tt.scheme).Scheme; got != tt.want {
			t.Fatalf("Resolve(%q) = %s, want %s", tt.scheme, got, tt.want)
		}
	}
}

func TestPalettesDefineEveryToken(t *testing.T) {
	for _, p := range []Palette{dark, light} {
		data, _ := json.Marshal(p)
		var tokens map[string]string
		_ = json.Unmarshal(data, &tokens)
		for name, value := range tokens {
			if value == "" {
				t.Fatalf("%s palette: token %s is empty", p.Scheme, name)
			}
		}
	}
}

func TestGetPalette(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/theme", GetPalette)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/theme?scheme=light", nil))
	var p Palette
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != http.StatusOK || p.Background != "#FFFFFF" {
		t.Fatalf("unexpected response %d %+v", rec.Code, p)
	}
}
