package main

import (
	"log"
	"os"
	"path/filepath"

	"sparksite/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// initDB opens the configured backend and migrates the schema. DB_DRIVER
// selects the adapter: "sqlite" (default) stores rows in a local file at
// DB_PATH, "postgres" uses the DSN in DB_DSN.
func initDB() {
	var err error
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch driver := os.Getenv("DB_DRIVER"); driver {
	case "postgres":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			log.Fatal("DB_DRIVER=postgres requires DB_DSN to be set")
		}
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	case "", "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = filepath.Join("data", "app.db")
		}
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			log.Fatalf("failed to create data dir for %s: %v", path, mkErr)
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
	default:
		log.Fatalf("unknown DB_DRIVER %q (want sqlite or postgres)", driver)
	}
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	if err := db.AutoMigrate(&models.AdminUser{}, &models.GalleryImage{}, &models.Review{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	seedDB()
}

// seedDB provisions the bootstrap admin identity if no row exists yet and
// makes sure the upload directory is in place.
func seedDB() {
	var count int64
	db.Model(&models.AdminUser{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		if _, err := CreateAdmin("admin", "admin123"); err != nil {
			zlog.Warnw("failed to seed admin user", "error", err)
		} else {
			zlog.Infow("seeded bootstrap admin", "username", "admin")
		}
	}
	ensureUploadBase()
}

// ensureUploadBase creates the gallery upload directory.
func ensureUploadBase() {
	dir := galleryUploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		zlog.Warnw("failed to create upload dir", "dir", dir, "error", err)
	}
}

// uploadBaseDir returns the base directory for uploads (UPLOAD_BASE env).
func uploadBaseDir() string {
	if v := os.Getenv("UPLOAD_BASE"); v != "" {
		return v
	}
	return "uploads"
}

// galleryUploadDir is where gallery binaries land, mirroring the public
// /uploads/gallery/<name> URL space.
func galleryUploadDir() string {
	return filepath.Join(uploadBaseDir(), "gallery")
}
