// SPDX-License-Identifier: MIT
package search

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

// Indexed content kinds
const (
	KindProject = "project"
	KindService = "service"
)

// InitFTSIndex creates the FTS5 virtual table for site search
func InitFTSIndex(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Default tokenizer; porter is not available in all SQLite builds
	_, err = sqlDB.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS content_fts USING fts5(
			kind UNINDEXED,
			ref_id UNINDEXED,
			title,
			body
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create FTS index: %w", err)
	}

	return nil
}

// IndexProject adds or updates a project in the search index
func IndexProject(db *gorm.DB, p *models.Project) error {
	body := strings.Join([]string{
		stripHTML(p.Description), p.Category, p.Location, p.Year,
	}, " ")
	return upsertEntry(db, KindProject, p.ID, p.Title, body)
}

// IndexService adds or updates a service in the search index
func IndexService(db *gorm.DB, s *models.Service) error {
	return upsertEntry(db, KindService, s.ID, s.Title, stripHTML(s.Description))
}

func upsertEntry(db *gorm.DB, kind string, refID uint, title, body string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	_, err = sqlDB.Exec(`DELETE FROM content_fts WHERE kind = ? AND ref_id = ?`, kind, refID)
	if err != nil {
		return fmt.Errorf("failed to delete old index entry: %w", err)
	}

	_, err = sqlDB.Exec(`
		INSERT INTO content_fts (kind, ref_id, title, body)
		VALUES (?, ?, ?, ?)
	`, kind, refID, title, body)
	if err != nil {
		return fmt.Errorf("failed to insert index entry: %w", err)
	}

	return nil
}

// RemoveFromIndex drops one entry from the search index
func RemoveFromIndex(db *gorm.DB, kind string, refID uint) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	_, err = sqlDB.Exec(`DELETE FROM content_fts WHERE kind = ? AND ref_id = ?`, kind, refID)
	if err != nil {
		return fmt.Errorf("failed to remove from index: %w", err)
	}

	return nil
}

// Result is a single search hit
type Result struct {
	Kind    string  `json:"kind"`
	RefID   uint    `json:"ref_id"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	URL     string  `json:"url"`
	Rank    float64 `json:"rank"`
}

// Search runs a full-text query across projects and services
func Search(db *gorm.DB, query string) ([]Result, error) {
	if query == "" {
		return []Result{}, nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	rows, err := sqlDB.Query(`
		SELECT
			kind,
			ref_id,
			title,
			snippet(content_fts, 3, '<mark>', '</mark>', '...', 50) as snippet,
			rank
		FROM content_fts
		WHERE content_fts MATCH ?
		ORDER BY rank
		LIMIT 50
	`, query)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var result Result
		if err := rows.Scan(&result.Kind, &result.RefID, &result.Title, &result.Snippet, &result.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		switch result.Kind {
		case KindProject:
			result.URL = "/projects"
		case KindService:
			result.URL = "/services"
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}

	return results, nil
}

// RebuildIndex reindexes every project and service
func RebuildIndex(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if _, err := sqlDB.Exec(`DELETE FROM content_fts`); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	var projects []models.Project
	if err := db.Find(&projects).Error; err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	for i := range projects {
		if err := IndexProject(db, &projects[i]); err != nil {
			return fmt.Errorf("failed to index project %d: %w", projects[i].ID, err)
		}
	}

	var services []models.Service
	if err := db.Find(&services).Error; err != nil {
		return fmt.Errorf("failed to load services: %w", err)
	}
	for i := range services {
		if err := IndexService(db, &services[i]); err != nil {
			return fmt.Errorf("failed to index service %d: %w", services[i].ID, err)
		}
	}

	return nil
}

// stripHTML removes markup so only text is indexed
func stripHTML(s string) string {
	var result strings.Builder
	inTag := false
	for _, r := range s {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	return result.String()
}
