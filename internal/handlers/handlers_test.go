package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/config"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/db"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/search"
)

// setupHandlerTest wires an in-memory database and temp storage so
// handlers run without external state
func setupHandlerTest(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpDir := t.TempDir()
	if err := config.InitConfig(filepath.Join(tmpDir, "config.yaml")); err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}
	config.Set("storage.media_dir", filepath.Join(tmpDir, "media"))

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(
		&models.User{}, &models.Project{}, &models.Service{},
		&models.TeamMember{}, &models.Partner{}, &models.Testimonial{},
		&models.MissionVision{}, &models.AboutInfo{},
		&models.ContactSubmission{}, &models.SiteSettings{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	db.SetDB(database)
	// Index table is best-effort; handlers only log index failures
	_ = search.InitFTSIndex(database)

	return database
}

// multipartBody builds a form body from field pairs
func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("Failed to write form field: %v", err)
		}
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

// doRequest runs one request through a fresh router with the route
// registered
func doRequest(method, path string, body *bytes.Buffer, contentType string, register func(*gin.Engine)) *httptest.ResponseRecorder {
	router := gin.New()
	register(router)

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, payload string, register func(*gin.Engine)) *httptest.ResponseRecorder {
	return doRequest(method, path, bytes.NewBufferString(payload), "application/json", register)
}

func newMultipartRequest(t *testing.T, method, path string, body *bytes.Buffer, contentType string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func newJSONRequest(t *testing.T, method, path, payload string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func record(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
