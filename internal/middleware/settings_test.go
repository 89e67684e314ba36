package middleware

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

func setupSettingsDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(&models.SiteSettings{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	InvalidateSettings()
	return database
}

func TestCurrentSettingsCreatesDefaults(t *testing.T) {
	database := setupSettingsDB(t)

	settings, err := CurrentSettings(database)
	if err != nil {
		t.Fatalf("CurrentSettings failed: %v", err)
	}

	if settings.SiteTitle != "BushTechs Solutions" {
		t.Errorf("Expected default title, got %q", settings.SiteTitle)
	}
	if settings.SiteTagline == "" {
		t.Error("Expected default tagline")
	}
}

func TestCurrentSettingsServesFromCache(t *testing.T) {
	database := setupSettingsDB(t)

	first, err := CurrentSettings(database)
	if err != nil {
		t.Fatalf("CurrentSettings failed: %v", err)
	}

	// Change the row behind the cache's back; TTL has not expired so
	// the stale value is still served
	database.Model(&models.SiteSettings{}).Where("id = ?", first.ID).
		Update("site_title", "Changed")

	second, err := CurrentSettings(database)
	if err != nil {
		t.Fatalf("CurrentSettings failed: %v", err)
	}
	if second.SiteTitle != first.SiteTitle {
		t.Error("Expected cached value within TTL")
	}
}

func TestInvalidateSettings(t *testing.T) {
	database := setupSettingsDB(t)

	first, err := CurrentSettings(database)
	if err != nil {
		t.Fatalf("CurrentSettings failed: %v", err)
	}

	database.Model(&models.SiteSettings{}).Where("id = ?", first.ID).
		Update("site_tagline", "Rebranded")
	InvalidateSettings()

	second, err := CurrentSettings(database)
	if err != nil {
		t.Fatalf("CurrentSettings failed: %v", err)
	}
	if second.SiteTagline != "Rebranded" {
		t.Errorf("Expected fresh value after invalidation, got %q", second.SiteTagline)
	}
}
