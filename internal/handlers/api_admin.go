// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/config"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/db"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/media"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/search"
)

// mediaStore returns the store for admin image uploads
func mediaStore() *media.Store {
	return media.NewStore(config.GetString("storage.media_dir"))
}

// formImage saves an optional "image" form part and returns its
// web path. An absent part is not an error.
func formImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	if file.Size > config.GetInt64("storage.max_upload_bytes") {
		return "", errors.New("image too large")
	}
	filename, err := mediaStore().Save(file)
	if err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func requireFields(c *gin.Context, pairs map[string]string) bool {
	for name, value := range pairs {
		if strings.TrimSpace(value) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
			return false
		}
	}
	return true
}

// --- Projects ---

func projectFromForm(c *gin.Context, p *models.Project) bool {
	p.Title = strings.TrimSpace(c.PostForm("title"))
	p.Category = strings.TrimSpace(c.PostForm("category"))
	p.Description = strings.TrimSpace(c.PostForm("description"))
	p.Location = strings.TrimSpace(c.PostForm("location"))
	p.Year = strings.TrimSpace(c.PostForm("year"))
	p.Link = strings.TrimSpace(c.PostForm("link"))

	if !requireFields(c, map[string]string{"title": p.Title, "description": p.Description}) {
		return false
	}

	if status := strings.TrimSpace(c.PostForm("status")); status != "" {
		if !models.ValidProjectStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return false
		}
		p.Status = status
	} else if p.Status == "" {
		p.Status = models.ProjectStatusCompleted
	}

	if order := c.PostForm("sort_order"); order != "" {
		if n, err := strconv.Atoi(order); err == nil {
			p.SortOrder = n
		}
	}

	imagePath, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if imagePath != "" {
		p.ImagePath = imagePath
	}
	return true
}

// CreateProjectHandler adds a portfolio project
func CreateProjectHandler(c *gin.Context) {
	var project models.Project
	if !projectFromForm(c, &project) {
		return
	}

	if err := db.GetDB().Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	if err := search.IndexProject(db.GetDB(), &project); err != nil {
		log.Printf("failed to index project %d: %v", project.ID, err)
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProjectHandler modifies an existing project
func UpdateProjectHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var project models.Project
	if err := db.GetDB().First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	if !projectFromForm(c, &project) {
		return
	}

	if err := db.GetDB().Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	if err := search.IndexProject(db.GetDB(), &project); err != nil {
		log.Printf("failed to index project %d: %v", project.ID, err)
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProjectHandler removes a project
func DeleteProjectHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result := db.GetDB().Delete(&models.Project{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err := search.RemoveFromIndex(db.GetDB(), search.KindProject, id); err != nil {
		log.Printf("failed to unindex project %d: %v", id, err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// --- Services ---

func serviceFromForm(c *gin.Context, s *models.Service) bool {
	s.Title = strings.TrimSpace(c.PostForm("title"))
	s.Description = strings.TrimSpace(c.PostForm("description"))

	if !requireFields(c, map[string]string{"title": s.Title, "description": s.Description}) {
		return false
	}

	if order := c.PostForm("sort_order"); order != "" {
		if n, err := strconv.Atoi(order); err == nil {
			s.SortOrder = n
		}
	}

	imagePath, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if imagePath != "" {
		s.ImagePath = imagePath
	}
	return true
}

// CreateServiceHandler adds a service offering
func CreateServiceHandler(c *gin.Context) {
	var service models.Service
	if !serviceFromForm(c, &service) {
		return
	}

	if err := db.GetDB().Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	if err := search.IndexService(db.GetDB(), &service); err != nil {
		log.Printf("failed to index service %d: %v", service.ID, err)
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateServiceHandler modifies an existing service
func UpdateServiceHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := db.GetDB().First(&service, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	if !serviceFromForm(c, &service) {
		return
	}

	if err := db.GetDB().Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service"})
		return
	}
	if err := search.IndexService(db.GetDB(), &service); err != nil {
		log.Printf("failed to index service %d: %v", service.ID, err)
	}
	c.JSON(http.StatusOK, service)
}

// DeleteServiceHandler removes a service
func DeleteServiceHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result := db.GetDB().Delete(&models.Service{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	if err := search.RemoveFromIndex(db.GetDB(), search.KindService, id); err != nil {
		log.Printf("failed to unindex service %d: %v", id, err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// --- Team ---

func teamMemberFromForm(c *gin.Context, m *models.TeamMember) bool {
	m.Name = strings.TrimSpace(c.PostForm("name"))
	m.Role = strings.TrimSpace(c.PostForm("role"))
	m.LinkedinURL = strings.TrimSpace(c.PostForm("linkedin_url"))
	m.TwitterURL = strings.TrimSpace(c.PostForm("twitter_url"))

	if !requireFields(c, map[string]string{"name": m.Name, "role": m.Role}) {
		return false
	}

	if order := c.PostForm("sort_order"); order != "" {
		if n, err := strconv.Atoi(order); err == nil {
			m.SortOrder = n
		}
	}

	imagePath, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if imagePath != "" {
		m.ImagePath = imagePath
	}
	return true
}

// CreateTeamMemberHandler adds a team member
func CreateTeamMemberHandler(c *gin.Context) {
	var member models.TeamMember
	if !teamMemberFromForm(c, &member) {
		return
	}

	if err := db.GetDB().Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMemberHandler modifies a team member
func UpdateTeamMemberHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var member models.TeamMember
	if err := db.GetDB().First(&member, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}

	if !teamMemberFromForm(c, &member) {
		return
	}

	if err := db.GetDB().Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update team member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMemberHandler removes a team member
func DeleteTeamMemberHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result := db.GetDB().Delete(&models.TeamMember{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete team member"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted"})
}

// --- Partners ---

func partnerFromForm(c *gin.Context, p *models.Partner) bool {
	p.Name = strings.TrimSpace(c.PostForm("name"))

	if !requireFields(c, map[string]string{"name": p.Name}) {
		return false
	}

	if order := c.PostForm("sort_order"); order != "" {
		if n, err := strconv.Atoi(order); err == nil {
			p.SortOrder = n
		}
	}

	imagePath, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if imagePath != "" {
		p.ImagePath = imagePath
	}
	return true
}

// CreatePartnerHandler adds a partner entry
func CreatePartnerHandler(c *gin.Context) {
	var partner models.Partner
	if !partnerFromForm(c, &partner) {
		return
	}

	if err := db.GetDB().Create(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create partner"})
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// UpdatePartnerHandler modifies a partner entry
func UpdatePartnerHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var partner models.Partner
	if err := db.GetDB().First(&partner, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
		return
	}

	if !partnerFromForm(c, &partner) {
		return
	}

	if err := db.GetDB().Save(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update partner"})
		return
	}
	c.JSON(http.StatusOK, partner)
}

// DeletePartnerHandler removes a partner entry
func DeletePartnerHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result := db.GetDB().Delete(&models.Partner{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete partner"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted"})
}

// --- Testimonials ---

func testimonialFromForm(c *gin.Context, ts *models.Testimonial) bool {
	ts.Author = strings.TrimSpace(c.PostForm("author"))
	ts.Company = strings.TrimSpace(c.PostForm("company"))
	ts.Text = strings.TrimSpace(c.PostForm("text"))

	if !requireFields(c, map[string]string{"author": ts.Author, "text": ts.Text}) {
		return false
	}

	if order := c.PostForm("sort_order"); order != "" {
		if n, err := strconv.Atoi(order); err == nil {
			ts.SortOrder = n
		}
	}

	imagePath, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if imagePath != "" {
		ts.ImagePath = imagePath
	}
	return true
}

// CreateTestimonialHandler adds a testimonial
func CreateTestimonialHandler(c *gin.Context) {
	var testimonial models.Testimonial
	if !testimonialFromForm(c, &testimonial) {
		return
	}

	if err := db.GetDB().Create(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// UpdateTestimonialHandler modifies a testimonial
func UpdateTestimonialHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var testimonial models.Testimonial
	if err := db.GetDB().First(&testimonial, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
		return
	}

	if !testimonialFromForm(c, &testimonial) {
		return
	}

	if err := db.GetDB().Save(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update testimonial"})
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonialHandler removes a testimonial
func DeleteTestimonialHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result := db.GetDB().Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete testimonial"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// --- Singleton copy blocks ---

// UpsertMissionVisionHandler replaces the mission/vision copy. The
// record is created on first write.
func UpsertMissionVisionHandler(c *gin.Context) {
	var req models.MissionVision
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var mv models.MissionVision
	err := db.GetDB().First(&mv).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	mv.MissionTitle = req.MissionTitle
	mv.MissionDesc = req.MissionDesc
	mv.VisionTitle = req.VisionTitle
	mv.VisionDesc = req.VisionDesc

	if err := db.GetDB().Save(&mv).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save mission/vision"})
		return
	}
	c.JSON(http.StatusOK, mv)
}

// UpsertAboutInfoHandler replaces the about copy and stats bar
func UpsertAboutInfoHandler(c *gin.Context) {
	var req models.AboutInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var info models.AboutInfo
	err := db.GetDB().First(&info).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	info.SectionTitle = req.SectionTitle
	info.MainHeadline = req.MainHeadline
	info.SubHeadline = req.SubHeadline
	info.Description = req.Description
	info.StatEngineers = req.StatEngineers
	info.StatCustomers = req.StatCustomers
	info.StatProjects = req.StatProjects
	info.StatEstablished = req.StatEstablished

	if err := db.GetDB().Save(&info).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save about info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// --- Contact submissions inbox ---

// ListContactSubmissionsHandler returns submissions, newest first
func ListContactSubmissionsHandler(c *gin.Context) {
	var submissions []models.ContactSubmission
	if err := db.GetDB().Order("created_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if submissions == nil {
		submissions = []models.ContactSubmission{}
	}
	c.JSON(http.StatusOK, submissions)
}

// DeleteContactSubmissionHandler removes one submission
func DeleteContactSubmissionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result := db.GetDB().Delete(&models.ContactSubmission{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete submission"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted"})
}

// ListMediaHandler returns stored uploads for the admin media screen
func ListMediaHandler(c *gin.Context) {
	items, err := mediaStore().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list media"})
		return
	}
	c.JSON(http.StatusOK, items)
}
