package media

import (
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	ThumbnailWidth  = 200
	ThumbnailHeight = 200
)

// StandardThumbnail creates a 200x200 preview for admin listings
func StandardThumbnail(srcPath, dstPath string) error {
	return Thumbnail(srcPath, dstPath, ThumbnailWidth, ThumbnailHeight)
}

// Thumbnail renders srcPath into a width x height JPEG at dstPath.
// The source is center-cropped so the output has exact dimensions.
func Thumbnail(srcPath, dstPath string, width, height int) error {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer srcFile.Close()

	img, _, err := image.Decode(srcFile)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	crop := centerCrop(img.Bounds(), width, height)

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Bounds(), img, crop, draw.Over, nil)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	dstFile, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	defer dstFile.Close()

	// JPEG output regardless of source format
	if err := jpeg.Encode(dstFile, out, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return nil
}

// centerCrop picks the largest centered region of src matching the
// target aspect ratio
func centerCrop(src image.Rectangle, width, height int) image.Rectangle {
	srcW := src.Dx()
	srcH := src.Dy()

	srcAspect := float64(srcW) / float64(srcH)
	dstAspect := float64(width) / float64(height)

	if srcAspect > dstAspect {
		cropW := int(float64(srcH) * dstAspect)
		x := (srcW - cropW) / 2
		return image.Rect(x, 0, x+cropW, srcH)
	}
	cropH := int(float64(srcW) / dstAspect)
	y := (srcH - cropH) / 2
	return image.Rect(0, y, srcW, y+cropH)
}
