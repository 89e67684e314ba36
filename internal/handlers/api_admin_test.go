// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

func TestCreateProject(t *testing.T) {
	database := setupHandlerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Fiber Rollout",
		"category":    "Networking",
		"description": "Citywide fiber backbone",
		"location":    "Adama",
		"status":      "Ongoing",
		"year":        "2025",
	})
	w := doRequest("POST", "/api/admin/projects", body, contentType, func(r *gin.Engine) {
		r.POST("/api/admin/projects", CreateProjectHandler)
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var project models.Project
	database.First(&project)
	if project.Title != "Fiber Rollout" || project.Status != "Ongoing" {
		t.Errorf("Unexpected stored project: %+v", project)
	}
}

func TestCreateProjectMissingTitle(t *testing.T) {
	setupHandlerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"description": "No title given",
	})
	w := doRequest("POST", "/api/admin/projects", body, contentType, func(r *gin.Engine) {
		r.POST("/api/admin/projects", CreateProjectHandler)
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestCreateProjectInvalidStatus(t *testing.T) {
	setupHandlerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "X",
		"description": "Y",
		"status":      "Maybe",
	})
	w := doRequest("POST", "/api/admin/projects", body, contentType, func(r *gin.Engine) {
		r.POST("/api/admin/projects", CreateProjectHandler)
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid status, got %d", w.Code)
	}
}

func TestUpdateProject(t *testing.T) {
	database := setupHandlerTest(t)

	project := models.Project{Title: "Old", Description: "d", Status: "Completed"}
	database.Create(&project)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "New Title",
		"description": "updated",
	})
	w := doRequest("PUT", fmt.Sprintf("/api/admin/projects/%d", project.ID), body, contentType, func(r *gin.Engine) {
		r.PUT("/api/admin/projects/:id", UpdateProjectHandler)
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Project
	database.First(&updated, project.ID)
	if updated.Title != "New Title" {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	setupHandlerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"title": "X", "description": "Y",
	})
	w := doRequest("PUT", "/api/admin/projects/999", body, contentType, func(r *gin.Engine) {
		r.PUT("/api/admin/projects/:id", UpdateProjectHandler)
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestDeleteProject(t *testing.T) {
	database := setupHandlerTest(t)

	project := models.Project{Title: "Doomed", Description: "d"}
	database.Create(&project)

	w := doRequest("DELETE", fmt.Sprintf("/api/admin/projects/%d", project.ID), nil, "", func(r *gin.Engine) {
		r.DELETE("/api/admin/projects/:id", DeleteProjectHandler)
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var count int64
	database.Model(&models.Project{}).Count(&count)
	if count != 0 {
		t.Error("Expected project soft-deleted from default scope")
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	setupHandlerTest(t)

	w := doRequest("DELETE", "/api/admin/projects/42", nil, "", func(r *gin.Engine) {
		r.DELETE("/api/admin/projects/:id", DeleteProjectHandler)
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCreateTeamMember(t *testing.T) {
	database := setupHandlerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"name":         "Hana",
		"role":         "Lead Engineer",
		"linkedin_url": "https://linkedin.com/in/hana",
	})
	w := doRequest("POST", "/api/admin/team", body, contentType, func(r *gin.Engine) {
		r.POST("/api/admin/team", CreateTeamMemberHandler)
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var member models.TeamMember
	database.First(&member)
	if member.Name != "Hana" || member.LinkedinURL == "" {
		t.Errorf("Unexpected stored member: %+v", member)
	}
}

func TestPartnerCRUD(t *testing.T) {
	database := setupHandlerTest(t)

	body, contentType := multipartBody(t, map[string]string{"name": "Acme"})
	w := doRequest("POST", "/api/partners", body, contentType, func(r *gin.Engine) {
		r.POST("/api/partners", CreatePartnerHandler)
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Create: expected 201, got %d", w.Code)
	}

	var partner models.Partner
	database.First(&partner)

	body, contentType = multipartBody(t, map[string]string{"name": "Acme Corp"})
	w = doRequest("PUT", fmt.Sprintf("/api/partners/%d", partner.ID), body, contentType, func(r *gin.Engine) {
		r.PUT("/api/partners/:id", UpdatePartnerHandler)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Update: expected 200, got %d", w.Code)
	}

	w = doRequest("DELETE", fmt.Sprintf("/api/partners/%d", partner.ID), nil, "", func(r *gin.Engine) {
		r.DELETE("/api/partners/:id", DeletePartnerHandler)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Delete: expected 200, got %d", w.Code)
	}
}

func TestCreateTestimonialRequiresAuthorAndText(t *testing.T) {
	setupHandlerTest(t)

	body, contentType := multipartBody(t, map[string]string{"author": "Sara"})
	w := doRequest("POST", "/api/testimonials", body, contentType, func(r *gin.Engine) {
		r.POST("/api/testimonials", CreateTestimonialHandler)
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without text, got %d", w.Code)
	}
}

func TestUpsertMissionVisionSingleRow(t *testing.T) {
	database := setupHandlerTest(t)

	register := func(r *gin.Engine) {
		r.PUT("/api/mission-vision", UpsertMissionVisionHandler)
	}

	w := jsonRequest("PUT", "/api/mission-vision", `{"mission_title":"Build","vision_title":"Lead"}`, register)
	if w.Code != http.StatusOK {
		t.Fatalf("First upsert: expected 200, got %d", w.Code)
	}

	w = jsonRequest("PUT", "/api/mission-vision", `{"mission_title":"Build Better","vision_title":"Lead"}`, register)
	if w.Code != http.StatusOK {
		t.Fatalf("Second upsert: expected 200, got %d", w.Code)
	}

	var count int64
	database.Model(&models.MissionVision{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single row after repeated upserts, got %d", count)
	}

	var mv models.MissionVision
	database.First(&mv)
	if mv.MissionTitle != "Build Better" {
		t.Errorf("Expected updated title, got %q", mv.MissionTitle)
	}
}

func TestUpsertAboutInfo(t *testing.T) {
	database := setupHandlerTest(t)

	payload := `{"sectionTitle":"About","mainHeadline":"Who we are","engineers":"30"}`
	w := jsonRequest("PUT", "/api/about-info", payload, func(r *gin.Engine) {
		r.PUT("/api/about-info", UpsertAboutInfoHandler)
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var info models.AboutInfo
	database.First(&info)
	if info.StatEngineers != "30" {
		t.Errorf("Expected stats stored, got %+v", info)
	}
}

func TestContactSubmissionsInbox(t *testing.T) {
	database := setupHandlerTest(t)

	database.Create(&models.ContactSubmission{Name: "A", Email: "a@b.c", Message: "m"})
	database.Create(&models.ContactSubmission{Name: "B", Email: "b@b.c", Message: "m"})

	w := jsonRequest("GET", "/api/admin/contact-submissions", "", func(r *gin.Engine) {
		r.GET("/api/admin/contact-submissions", ListContactSubmissionsHandler)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var submissions []models.ContactSubmission
	if err := json.Unmarshal(w.Body.Bytes(), &submissions); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(submissions) != 2 {
		t.Fatalf("Expected 2 submissions, got %d", len(submissions))
	}

	w = doRequest("DELETE", fmt.Sprintf("/api/admin/contact-submissions/%d", submissions[0].ID), nil, "", func(r *gin.Engine) {
		r.DELETE("/api/admin/contact-submissions/:id", DeleteContactSubmissionHandler)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on delete, got %d", w.Code)
	}

	var count int64
	database.Model(&models.ContactSubmission{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 submission left, got %d", count)
	}
}

func TestPathIDRejectsGarbage(t *testing.T) {
	setupHandlerTest(t)

	w := doRequest("DELETE", "/api/admin/projects/abc", nil, "", func(r *gin.Engine) {
		r.DELETE("/api/admin/projects/:id", DeleteProjectHandler)
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric id, got %d", w.Code)
	}
}
