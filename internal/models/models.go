package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an admin account
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Name         string         `json:"name"`
	PasswordHash string         `gorm:"not null" json:"-"`
	ImagePath    string         `json:"image"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Project statuses accepted by the admin API
const (
	ProjectStatusCompleted = "Completed"
	ProjectStatusOngoing   = "Ongoing"
	ProjectStatusPlanned   = "Planned"
)

// Project represents a portfolio entry
type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Category    string         `json:"category"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Location    string         `json:"location"`
	Status      string         `gorm:"default:Completed" json:"status"`
	Year        string         `json:"year"`
	Link        string         `json:"link"`
	ImagePath   string         `json:"image"`
	SortOrder   int            `gorm:"default:0" json:"-"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Service represents a service offering
type Service struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	ImagePath   string         `json:"image"`
	SortOrder   int            `gorm:"default:0" json:"-"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TeamMember represents a person on the team page
type TeamMember struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Role        string         `gorm:"not null" json:"role"`
	LinkedinURL string         `json:"linkedin_url"`
	TwitterURL  string         `json:"twitter_url"`
	ImagePath   string         `json:"image"`
	SortOrder   int            `gorm:"default:0" json:"-"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Partner represents a partner/client logo entry
type Partner struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	ImagePath string         `json:"image"`
	SortOrder int            `gorm:"default:0" json:"-"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Testimonial represents a customer quote
type Testimonial struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Author    string         `gorm:"not null" json:"author"`
	Company   string         `json:"company"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	ImagePath string         `json:"image"`
	SortOrder int            `gorm:"default:0" json:"-"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MissionVision is a single-row record holding the mission/vision copy
type MissionVision struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MissionTitle string    `json:"mission_title"`
	MissionDesc  string    `gorm:"type:text" json:"mission_desc"`
	VisionTitle  string    `json:"vision_title"`
	VisionDesc   string    `gorm:"type:text" json:"vision_desc"`
	UpdatedAt    time.Time `json:"-"`
}

// AboutInfo is a single-row record holding the about-page copy and stats bar
type AboutInfo struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	SectionTitle    string    `json:"sectionTitle"`
	MainHeadline    string    `json:"mainHeadline"`
	SubHeadline     string    `json:"subHeadline"`
	Description     string    `gorm:"type:text" json:"description"`
	StatEngineers   string    `json:"engineers"`
	StatCustomers   string    `json:"customers"`
	StatProjects    string    `json:"projects"`
	StatEstablished string    `json:"established"`
	UpdatedAt       time.Time `json:"-"`
}

// ContactSubmission represents a message sent through the contact form
type ContactSubmission struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Email       string         `gorm:"not null" json:"email"`
	Phone       string         `json:"phone"`
	ServiceType string         `json:"service_type"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// SiteSettings is a single-row record for sitewide presentation state
type SiteSettings struct {
	ID          uint `gorm:"primaryKey"`
	SiteTitle   string
	SiteTagline string
	UpdatedAt   time.Time
}

// TableName overrides for consistent naming
func (User) TableName() string {
	return "users"
}

func (Project) TableName() string {
	return "projects"
}

func (Service) TableName() string {
	return "services"
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (Partner) TableName() string {
	return "partners"
}

func (Testimonial) TableName() string {
	return "testimonials"
}

func (MissionVision) TableName() string {
	return "mission_vision"
}

func (AboutInfo) TableName() string {
	return "about_info"
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

// ValidProjectStatus reports whether s is one of the accepted statuses
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusOngoing, ProjectStatusPlanned:
		return true
	}
	return false
}
