package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

// Site settings sit on every page render, so the single row is cached
// with a short TTL instead of hitting the database per request.
var (
	settingsMu      sync.Mutex
	settingsEntry   *models.SiteSettings
	settingsExpires time.Time
	settingsTTL     = 60 * time.Second
)

// CurrentSettings returns the cached settings row, creating it with
// defaults on first use
func CurrentSettings(db *gorm.DB) (*models.SiteSettings, error) {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	if settingsEntry != nil && time.Now().Before(settingsExpires) {
		copy := *settingsEntry
		return &copy, nil
	}

	var settings models.SiteSettings
	result := db.First(&settings)
	if result.Error == gorm.ErrRecordNotFound {
		settings = models.SiteSettings{
			SiteTitle:   "BushTechs Solutions",
			SiteTagline: "Safe, comprehensive, and fast platform.",
		}
		if err := db.Create(&settings).Error; err != nil {
			return nil, err
		}
	} else if result.Error != nil {
		return nil, result.Error
	}

	settingsEntry = &settings
	settingsExpires = time.Now().Add(settingsTTL)
	copy := settings
	return &copy, nil
}

// InvalidateSettings drops the cache; callers that update the row use
// this so the next render sees the change
func InvalidateSettings() {
	settingsMu.Lock()
	settingsEntry = nil
	settingsMu.Unlock()
}

// SiteSettingsMiddleware resolves settings once per request and puts
// them in the gin context under "settings"
func SiteSettingsMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := CurrentSettings(db)
		if err != nil {
			c.AbortWithStatus(500)
			return
		}
		c.Set("settings", settings)
		c.Next()
	}
}
