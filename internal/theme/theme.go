// Package theme maps a device color scheme to the app's color tokens.
package theme

import (
	"strings"

	apphttp "bumpti_backend/internal/http"
	"bumpti_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Color schemes reported by devices.
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
)

// Palette is the set of color tokens the presentation layer renders with.
type Palette struct {
	Scheme          string `json:"scheme"`
	Text            string `json:"text"`
	TextSecondary   string `json:"textSecondary"`
	Background      string `json:"background"`
	Surface         string `json:"surface"`
	SurfaceHover    string `json:"surfaceHover"`
	Border          string `json:"border"`
	Icon            string `json:"icon"`
	Accent          string `json:"accent"`
	AccentBlueLight string `json:"accentBlueLight"`
	Error           string `json:"error"`
}

var (
	dark = Palette{
		Scheme:          SchemeDark,
		Text:            "#E7E9EA",
		TextSecondary:   "#8B98A5",
		Background:      "#000000",
		Surface:         "#16181C",
		SurfaceHover:    "#1C1F23",
		Border:          "#2F3336",
		Icon:            "#8B98A5",
		Accent:          "#1D9BF0",
		AccentBlueLight: "#3DAAFF",
		Error:           "#FF453A",
	}
	light = Palette{
		Scheme:          SchemeLight,
		Text:            "#0F1419",
		TextSecondary:   "#536471",
		Background:      "#FFFFFF",
		Surface:         "#F7F9F9",
		SurfaceHover:    "#EFF3F4",
		Border:          "#E5E5EA",
		Icon:            "#536471",
		Accent:          "#1D9BF0",
		AccentBlueLight: "#2997FF",
		Error:           "#E74C3C",
	}
)

// Resolve returns the light palette for "light" and the dark palette for
// anything else, including an unknown or empty scheme.
func Resolve(scheme string) Palette {
	if strings.EqualFold(strings.TrimSpace(scheme), SchemeLight) {
		return light
	}
	return dark
}

// Module serves GET /api/v1/theme?scheme=light|dark.
type Module struct{}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "theme"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/theme", GetPalette)
}

// GetPalette handles GET /api/v1/theme
func GetPalette(c *gin.Context) {
	httpkit.OK(c, Resolve(c.Query("scheme")))
}

var _ apphttp.Module = (*Module)(nil)
