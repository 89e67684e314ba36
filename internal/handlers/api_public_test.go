// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

func TestListProjectsEmpty(t *testing.T) {
	setupHandlerTest(t)

	w := jsonRequest("GET", "/api/projects", "", func(r *gin.Engine) {
		r.GET("/api/projects", ListProjectsHandler)
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	// Empty collections come back as [], never null
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %s", w.Body.String())
	}
}

func TestListProjectsOrdering(t *testing.T) {
	database := setupHandlerTest(t)

	database.Create(&models.Project{Title: "Second", Description: "d", SortOrder: 2})
	database.Create(&models.Project{Title: "First", Description: "d", SortOrder: 1})

	w := jsonRequest("GET", "/api/projects", "", func(r *gin.Engine) {
		r.GET("/api/projects", ListProjectsHandler)
	})

	var projects []models.Project
	if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(projects) != 2 || projects[0].Title != "First" {
		t.Errorf("Expected sort_order ordering, got %+v", projects)
	}
}

func TestListExcludesSoftDeleted(t *testing.T) {
	database := setupHandlerTest(t)

	service := models.Service{Title: "Gone", Description: "d"}
	database.Create(&service)
	database.Delete(&service)

	w := jsonRequest("GET", "/api/services", "", func(r *gin.Engine) {
		r.GET("/api/services", ListServicesHandler)
	})

	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("Expected soft-deleted rows hidden, got %s", w.Body.String())
	}
}

func TestGetMissionVisionEmpty(t *testing.T) {
	setupHandlerTest(t)

	w := jsonRequest("GET", "/api/mission-vision", "", func(r *gin.Engine) {
		r.GET("/api/mission-vision", GetMissionVisionHandler)
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for missing record, got %d", w.Code)
	}
	var mv models.MissionVision
	if err := json.Unmarshal(w.Body.Bytes(), &mv); err != nil {
		t.Fatalf("Expected decodable object, got %s", w.Body.String())
	}
}

func TestSubmitContact(t *testing.T) {
	database := setupHandlerTest(t)

	payload := `{"name":"Abel","email":"abel@example.com","phone":"0911","service_type":"Networking","message":"Hello"}`
	w := jsonRequest("POST", "/api/contact", payload, func(r *gin.Engine) {
		r.POST("/api/contact", SubmitContactHandler)
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	database.Model(&models.ContactSubmission{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 stored submission, got %d", count)
	}
}

func TestSubmitContactFormEncoded(t *testing.T) {
	database := setupHandlerTest(t)

	form := url.Values{}
	form.Set("name", "Abel")
	form.Set("email", "abel@example.com")
	form.Set("message", "From the contact page")
	w := doRequest("POST", "/contact", bytes.NewBufferString(form.Encode()), "application/x-www-form-urlencoded", func(r *gin.Engine) {
		r.POST("/contact", SubmitContactHandler)
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var sub models.ContactSubmission
	if err := database.First(&sub).Error; err != nil {
		t.Fatalf("Expected stored submission: %v", err)
	}
	if sub.Message != "From the contact page" {
		t.Errorf("Unexpected message: %q", sub.Message)
	}
}

func TestSubmitContactMissingFields(t *testing.T) {
	database := setupHandlerTest(t)

	w := jsonRequest("POST", "/api/contact", `{"name":"Abel","email":"a@b.c"}`, func(r *gin.Engine) {
		r.POST("/api/contact", SubmitContactHandler)
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	var count int64
	database.Model(&models.ContactSubmission{}).Count(&count)
	if count != 0 {
		t.Error("Expected nothing stored for invalid submission")
	}
}

func TestSubmitContactBadEmail(t *testing.T) {
	setupHandlerTest(t)

	payload := `{"name":"Abel","email":"not-an-email","message":"Hi"}`
	w := jsonRequest("POST", "/api/contact", payload, func(r *gin.Engine) {
		r.POST("/api/contact", SubmitContactHandler)
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad email, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	setupHandlerTest(t)

	w := jsonRequest("GET", "/health", "", func(r *gin.Engine) {
		r.GET("/health", HealthHandler)
	})

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}
