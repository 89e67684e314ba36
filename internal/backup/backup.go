// Package backup creates and prunes point-in-time copies of the
// site database.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const filePrefix = "bushtechs-"

// Manager handles backup operations under one directory
type Manager struct {
	BackupPath string
}

// NewManager creates a backup manager rooted at backupPath
func NewManager(backupPath string) *Manager {
	return &Manager{
		BackupPath: backupPath,
	}
}

// CreateBackup copies the database file into the backup directory
// under a timestamped name and returns the backup filename
func (m *Manager) CreateBackup(dbPath string) (string, error) {
	if dbPath == "" {
		return "", fmt.Errorf("no database path configured")
	}

	if err := os.MkdirAll(m.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	src, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer src.Close()

	filename := filePrefix + time.Now().Format("2006-01-02-150405") + ".db"
	fullPath := filepath.Join(m.BackupPath, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	return filename, nil
}

// List returns backup filenames, newest first
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, ".db") {
			names = append(names, name)
		}
	}
	// Timestamped names sort chronologically
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Prune deletes all but the newest keep backups
func (m *Manager) Prune(keep int) error {
	if keep < 1 {
		keep = 1
	}

	names, err := m.List()
	if err != nil {
		return err
	}

	for _, name := range names[min(keep, len(names)):] {
		if err := os.Remove(filepath.Join(m.BackupPath, name)); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", name, err)
		}
	}
	return nil
}

// Restore copies a named backup over the database file
func (m *Manager) Restore(filename, dbPath string) error {
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid backup name: %s", filename)
	}

	src, err := os.Open(filepath.Join(m.BackupPath, filename))
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database for restore: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}
