package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
)

// Background thumbnail rendering for the admin grid. New gallery uploads are
// picked up from the filesystem and downscaled into <gallery>/thumbs/ under
// the same stored name. Thumbnails are a convenience: failures are logged
// and the full-size file stays authoritative.

const thumbWidth = 480

func thumbPath(name string) string {
	return filepath.Join(galleryUploadDir(), "thumbs", name)
}

// supportsThumbnail filters to formats imaging can both decode and encode.
func supportsThumbnail(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

// makeThumbnail renders a downscaled copy of a stored gallery file.
func makeThumbnail(name string) error {
	src := filepath.Join(galleryUploadDir(), name)
	img, err := imaging.Open(src)
	if err != nil {
		return err
	}
	if img.Bounds().Dx() > thumbWidth {
		img = imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	}
	dst := thumbPath(name)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return imaging.Save(img, dst)
}

// scanMissingThumbnails renders thumbnails for files that predate the watcher.
func scanMissingThumbnails() {
	entries, err := os.ReadDir(galleryUploadDir())
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() || !supportsThumbnail(e.Name()) {
			continue
		}
		if _, err := os.Stat(thumbPath(e.Name())); err == nil {
			continue
		}
		if err := makeThumbnail(e.Name()); err != nil {
			zlog.Warnw("thumbnail render failed", "file", e.Name(), "error", err)
		}
	}
}

// watchGalleryUploads renders thumbnails for newly created gallery files.
// Create events are debounced so half-written files are not picked up.
func watchGalleryUploads() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(galleryUploadDir()); err != nil {
		return err
	}
	zlog.Infow("watching gallery uploads", "dir", galleryUploadDir())

	scanMissingThumbnails()

	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				name := filepath.Base(ev.Name)
				if supportsThumbnail(name) {
					pending[name] = time.Now()
				}
			}
		case <-ticker.C:
			now := time.Now()
			for name, t := range pending {
				if now.Sub(t) > 300*time.Millisecond { // stable
					delete(pending, name)
					if err := makeThumbnail(name); err != nil {
						zlog.Warnw("thumbnail render failed", "file", name, "error", err)
					}
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			zlog.Warnw("gallery watch error", "error", err)
		}
	}
}
