// SPDX-License-Identifier: MIT
package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// imageExtensions are the upload types we accept
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store manages uploaded images under one directory tree:
// <dir>/ holds originals, <dir>/thumbs/ holds 200x200 previews.
type Store struct {
	Dir string
}

// NewStore creates a media store rooted at dir
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Item is one stored upload
type Item struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// Save stores an uploaded image under a fresh UUID filename, validates
// it by content sniffing, generates a thumbnail, and returns the
// stored filename.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	if !imageExtensions[ext] {
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}

	filename := uuid.New().String() + ext
	fullPath := filepath.Join(s.Dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Sniff the real content type; the extension alone is not trusted
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for validation: %w", err)
	}
	contentType := http.DetectContentType(buffer[:n])
	if !validImageType(contentType) {
		return "", fmt.Errorf("invalid file type: %s (only images allowed)", contentType)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to reset file pointer: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	// Thumbnail failures are not fatal; the original is already stored
	_ = StandardThumbnail(fullPath, s.ThumbnailPath(filename))

	return filename, nil
}

// Remove deletes a stored image and its thumbnail
func (s *Store) Remove(filename string) error {
	// Reject path traversal in stored names
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid filename: %s", filename)
	}
	if err := os.Remove(filepath.Join(s.Dir, filename)); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	_ = os.Remove(s.ThumbnailPath(filename))
	return nil
}

// List returns all stored images sorted by filename
func (s *Store) List() ([]Item, error) {
	entries, err := os.ReadDir(s.Dir)
	if os.IsNotExist(err) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read uploads directory: %w", err)
	}

	var items []Item
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		items = append(items, Item{Filename: entry.Name(), Size: info.Size()})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Filename < items[j].Filename })
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Path returns the filesystem path of a stored image
func (s *Store) Path(filename string) string {
	return filepath.Join(s.Dir, filename)
}

// ThumbnailPath returns the filesystem path of an image's thumbnail
func (s *Store) ThumbnailPath(filename string) string {
	return filepath.Join(s.Dir, "thumbs", filename)
}

func validImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
