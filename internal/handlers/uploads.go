// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServeUploadedFile serves stored images, including thumbnails under
// the thumbs/ subpath
func ServeUploadedFile(c *gin.Context) {
	filename := c.Param("filepath")
	filename = strings.TrimPrefix(filename, "/")

	if filename == "" || strings.Contains(filename, "..") {
		c.Status(http.StatusNotFound)
		return
	}

	c.File(filepath.Join(mediaStore().Dir, filepath.Clean(filename)))
}
