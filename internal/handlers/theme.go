package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/theme"
)

// themeCookieMaxAge keeps a visitor's override for a year
const themeCookieMaxAge = 365 * 24 * 60 * 60

// effectiveMode resolves the display mode for one request. A valid
// site-theme cookie is a per-visitor override and takes precedence
// over the shared controller mode.
func effectiveMode(c *gin.Context, controller *theme.Controller) theme.Mode {
	if raw, err := c.Cookie(theme.StorageKey); err == nil {
		if m := theme.Mode(raw); m.Valid() {
			return m
		}
	}
	return controller.Mode()
}

// ThemeHandlers exposes the theme mode over HTTP
type ThemeHandlers struct {
	Controller *theme.Controller
}

// NewThemeHandlers wires the theme controller into the router
func NewThemeHandlers(controller *theme.Controller) *ThemeHandlers {
	return &ThemeHandlers{Controller: controller}
}

// Get reports the visitor's effective theme mode
func (h *ThemeHandlers) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mode": string(effectiveMode(c, h.Controller))})
}

// Toggle flips the visitor's mode. The new value is written back as
// the site-theme cookie; the shared controller follows so visitors
// without a cookie see the most recent choice.
func (h *ThemeHandlers) Toggle(c *gin.Context) {
	mode := theme.Dark
	if effectiveMode(c, h.Controller) == theme.Dark {
		mode = theme.Light
	}
	if h.Controller.Mode() != mode {
		h.Controller.Toggle()
	}

	c.SetCookie(theme.StorageKey, string(mode), themeCookieMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"mode": string(mode)})
}
