package main

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// File intake for gallery binaries: allow-listed image types only, capped at
// 5 MiB, stored under collision-resistant names owned by this process.

const maxUploadSize = 5 << 20 // 5 MiB

var (
	ErrUnsupportedMedia = errors.New("only jpeg, png, gif and webp images are allowed")
	ErrFileTooLarge     = errors.New("file too large (max 5MB)")
)

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var allowedImageMimes = map[string]bool{
	"image/jpeg": true, "image/jpg": true, "image/png": true,
	"image/gif": true, "image/webp": true,
}

// checkImageFile validates size, extension and declared content type.
// Extension and MIME type must both be on the allow-list.
func checkImageFile(fh *multipart.FileHeader) error {
	if fh.Size > maxUploadSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime := strings.ToLower(strings.TrimSpace(strings.Split(fh.Header.Get("Content-Type"), ";")[0]))
	if !allowedImageExts[ext] || !allowedImageMimes[mime] {
		return ErrUnsupportedMedia
	}
	return nil
}

// storedFileName assigns a collision-resistant name keeping the original
// extension, so concurrent uploads never need coordination.
func storedFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}

// saveGalleryFile validates and persists one uploaded part, returning the
// stored name for binding into the gallery record.
func saveGalleryFile(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	if err := checkImageFile(fh); err != nil {
		return "", err
	}
	name := storedFileName(fh.Filename)
	if err := c.SaveUploadedFile(fh, filepath.Join(galleryUploadDir(), name)); err != nil {
		return "", err
	}
	return name, nil
}

// removeGalleryFile deletes a stored binary and its thumbnail. A missing
// file is not an error; other failures are logged and swallowed so record
// deletion never blocks on cleanup.
func removeGalleryFile(name string) {
	if name == "" {
		return
	}
	name = filepath.Base(name) // stored names are flat; never follow path segments
	full := filepath.Join(galleryUploadDir(), name)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		zlog.Warnw("failed to remove gallery file", "file", full, "error", err)
	}
	thumb := thumbPath(name)
	if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
		zlog.Warnw("failed to remove thumbnail", "file", thumb, "error", err)
	}
}
