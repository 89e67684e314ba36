// SPDX-License-Identifier: MIT
package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{200, 30, 30, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(4 << 20); err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestSaveStoresFileWithGeneratedName(t *testing.T) {
	store := NewStore(t.TempDir())
	header := makeFileHeader(t, "photo.jpg", makeTestJPEG(t, 100, 100))

	filename, err := store.Save(header)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if filename == "photo.jpg" {
		t.Error("Expected a generated filename, got the original")
	}
	if !strings.HasSuffix(filename, ".jpg") {
		t.Errorf("Expected extension preserved, got %s", filename)
	}
	if _, err := os.Stat(store.Path(filename)); err != nil {
		t.Errorf("Stored file missing: %v", err)
	}
}

func TestSaveGeneratesThumbnail(t *testing.T) {
	store := NewStore(t.TempDir())
	header := makeFileHeader(t, "photo.jpg", makeTestJPEG(t, 400, 300))

	filename, err := store.Save(header)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	thumbFile, err := os.Open(store.ThumbnailPath(filename))
	if err != nil {
		t.Fatalf("Thumbnail missing: %v", err)
	}
	defer thumbFile.Close()

	img, _, err := image.Decode(thumbFile)
	if err != nil {
		t.Fatalf("Failed to decode thumbnail: %v", err)
	}
	if img.Bounds().Dx() != ThumbnailWidth || img.Bounds().Dy() != ThumbnailHeight {
		t.Errorf("Expected %dx%d thumbnail, got %dx%d",
			ThumbnailWidth, ThumbnailHeight, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestSaveRejectsNonImage(t *testing.T) {
	store := NewStore(t.TempDir())
	header := makeFileHeader(t, "report.jpg", []byte("%PDF-1.4 not an image at all"))

	if _, err := store.Save(header); err == nil {
		t.Error("Expected rejection of non-image content")
	}
}

func TestSaveRejectsBadExtension(t *testing.T) {
	store := NewStore(t.TempDir())
	header := makeFileHeader(t, "script.sh", []byte("#!/bin/sh"))

	if _, err := store.Save(header); err == nil {
		t.Error("Expected rejection of .sh upload")
	}
}

func TestRemoveDeletesFileAndThumbnail(t *testing.T) {
	store := NewStore(t.TempDir())
	header := makeFileHeader(t, "photo.jpg", makeTestJPEG(t, 100, 100))

	filename, err := store.Save(header)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Remove(filename); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(store.Path(filename)); !os.IsNotExist(err) {
		t.Error("Expected original to be deleted")
	}
	if _, err := os.Stat(store.ThumbnailPath(filename)); !os.IsNotExist(err) {
		t.Error("Expected thumbnail to be deleted")
	}
}

func TestRemoveRejectsPathTraversal(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Remove("../etc/passwd"); err == nil {
		t.Error("Expected traversal to be rejected")
	}
}

func TestListSkipsThumbsAndNonImages(t *testing.T) {
	store := NewStore(t.TempDir())

	header := makeFileHeader(t, "a.jpg", makeTestJPEG(t, 50, 50))
	if _, err := store.Save(header); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	os.WriteFile(filepath.Join(store.Dir, "notes.txt"), []byte("x"), 0644)

	items, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}
}

func TestListEmptyDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing"))
	items, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty list, got %d items", len(items))
	}
}

func TestThumbnailCenterCropsWideImage(t *testing.T) {
	tmpDir := t.TempDir()
	srcPath := filepath.Join(tmpDir, "wide.png")

	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, color.RGBA{0, 180, 0, 255})
		}
	}
	file, err := os.Create(srcPath)
	if err != nil {
		t.Fatalf("Failed to create test PNG: %v", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	file.Close()

	dstPath := filepath.Join(tmpDir, "thumb.jpg")
	if err := Thumbnail(srcPath, dstPath, 50, 50); err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	thumbFile, err := os.Open(dstPath)
	if err != nil {
		t.Fatalf("Failed to open thumbnail: %v", err)
	}
	defer thumbFile.Close()

	out, format, err := image.Decode(thumbFile)
	if err != nil {
		t.Fatalf("Failed to decode thumbnail: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("Expected JPEG output, got %s", format)
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
