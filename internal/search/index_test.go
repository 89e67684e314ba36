package search

import (
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Project{}, &models.Service{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	if err := InitFTSIndex(db); err != nil {
		t.Skipf("Skipping test: FTS5 not available in test environment: %v", err)
	}

	return db
}

func TestIndexAndSearchProject(t *testing.T) {
	db := setupTestDB(t)

	project := models.Project{
		Title:       "Hydro Power Station",
		Category:    "Energy",
		Description: "Turbine installation on the Omo river",
		Location:    "Omo Valley",
		Status:      "Completed",
	}
	db.Create(&project)

	if err := IndexProject(db, &project); err != nil {
		t.Fatalf("IndexProject failed: %v", err)
	}

	results, err := Search(db, "turbine")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Kind != KindProject || results[0].RefID != project.ID {
		t.Errorf("Unexpected result: %+v", results[0])
	}
	if results[0].URL != "/projects" {
		t.Errorf("Expected /projects URL, got %s", results[0].URL)
	}
}

func TestSearchSnippetHighlighting(t *testing.T) {
	db := setupTestDB(t)

	service := models.Service{
		Title:       "Network Engineering",
		Description: "Design and rollout of campus fiber networks",
	}
	db.Create(&service)
	if err := IndexService(db, &service); err != nil {
		t.Fatalf("IndexService failed: %v", err)
	}

	results, err := Search(db, "fiber")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if !strings.Contains(results[0].Snippet, "<mark>") {
		t.Errorf("Expected highlighted snippet, got %q", results[0].Snippet)
	}
}

func TestReindexReplacesOldEntry(t *testing.T) {
	db := setupTestDB(t)

	project := models.Project{Title: "Old Name", Description: "original text"}
	db.Create(&project)
	IndexProject(db, &project)

	project.Title = "New Name"
	project.Description = "replacement text"
	if err := IndexProject(db, &project); err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}

	stale, err := Search(db, "original")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("Expected old content gone, got %d hits", len(stale))
	}

	fresh, err := Search(db, "replacement")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(fresh) != 1 {
		t.Errorf("Expected new content indexed, got %d hits", len(fresh))
	}
}

func TestRemoveFromIndex(t *testing.T) {
	db := setupTestDB(t)

	service := models.Service{Title: "Consulting", Description: "strategy workshops"}
	db.Create(&service)
	IndexService(db, &service)

	if err := RemoveFromIndex(db, KindService, service.ID); err != nil {
		t.Fatalf("RemoveFromIndex failed: %v", err)
	}

	results, err := Search(db, "workshops")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results after removal, got %d", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	db := setupTestDB(t)

	results, err := Search(db, "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected empty result set, got %d", len(results))
	}
}

func TestRebuildIndex(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.Project{Title: "Bridge Works", Description: "river crossing"})
	db.Create(&models.Service{Title: "Surveying", Description: "land measurement"})

	if err := RebuildIndex(db); err != nil {
		t.Fatalf("RebuildIndex failed: %v", err)
	}

	projects, err := Search(db, "crossing")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	services, err := Search(db, "measurement")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(projects) != 1 || len(services) != 1 {
		t.Errorf("Expected both kinds indexed, got %d projects, %d services", len(projects), len(services))
	}
}

func TestStripHTML(t *testing.T) {
	out := stripHTML("<p>Hello <b>world</b></p>")
	if out != "Hello world" {
		t.Errorf("Expected plain text, got %q", out)
	}
}
