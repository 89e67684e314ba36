// SPDX-License-Identifier: MIT
package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/config"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/db"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/email"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/render"
)

// listOrdered loads a collection in display order. Responses are always
// arrays, never null, so empty collections decode cleanly.
func listOrdered[T any](c *gin.Context) {
	var items []T
	if err := db.GetDB().Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// ListProjectsHandler returns all portfolio projects
func ListProjectsHandler(c *gin.Context) {
	listOrdered[models.Project](c)
}

// ListServicesHandler returns all service offerings
func ListServicesHandler(c *gin.Context) {
	listOrdered[models.Service](c)
}

// ListTeamHandler returns all team members
func ListTeamHandler(c *gin.Context) {
	listOrdered[models.TeamMember](c)
}

// ListPartnersHandler returns all partner entries
func ListPartnersHandler(c *gin.Context) {
	listOrdered[models.Partner](c)
}

// ListTestimonialsHandler returns all testimonials
func ListTestimonialsHandler(c *gin.Context) {
	listOrdered[models.Testimonial](c)
}

// GetMissionVisionHandler returns the single mission/vision record
func GetMissionVisionHandler(c *gin.Context) {
	var mv models.MissionVision
	if err := db.GetDB().First(&mv).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, mv)
}

// GetAboutInfoHandler returns the single about record
func GetAboutInfoHandler(c *gin.Context) {
	var info models.AboutInfo
	if err := db.GetDB().First(&info).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// contactRequest is the payload accepted by the contact form endpoint
type contactRequest struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	ServiceType string `json:"service_type" form:"service_type"`
	Message     string `json:"message" form:"message"`
}

// SubmitContactHandler stores a contact form submission and notifies
// the site owner when SMTP is configured. Accepts JSON from the admin
// panel's fetch calls and form encoding from the rendered contact page.
func SubmitContactHandler(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}
	if !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}

	submission := models.ContactSubmission{
		Name:        render.Plain(req.Name),
		Email:       render.Plain(req.Email),
		Phone:       render.Plain(req.Phone),
		ServiceType: render.Plain(req.ServiceType),
		Message:     req.Message,
	}
	if err := db.GetDB().Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
		return
	}

	// Notification happens off the request path; the submission is
	// already stored either way
	if notify := config.GetString("contact.notify_email"); notify != "" {
		go func(sub models.ContactSubmission) {
			svc, err := email.NewEmailService()
			if err != nil {
				log.Printf("contact notification skipped: %v", err)
				return
			}
			if err := svc.SendContactNotification(notify, &sub); err != nil {
				log.Printf("contact notification failed: %v", err)
			}
		}(submission)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// HealthHandler reports service liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
