package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"sparksite/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Provisions an additional admin identity. Passwords are only ever stored as
// bcrypt digests.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: go run ./cmd/create_admin <username> <password>")
		os.Exit(2)
	}
	username := os.Args[1]
	password := os.Args[2]
	if len(password) < 6 {
		log.Fatal("password too short (min 6)")
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver := os.Getenv("DB_DRIVER"); driver {
	case "postgres":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			log.Fatal("DB_DRIVER=postgres requires DB_DSN to be set")
		}
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "", "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = filepath.Join("data", "app.db")
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		log.Fatalf("unknown DB_DRIVER %q", driver)
	}
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	var existing models.AdminUser
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Printf("admin %s already exists (id=%d)\n", username, existing.ID)
		os.Exit(0)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	user := models.AdminUser{Username: username, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	fmt.Printf("created admin %s id=%d\n", username, user.ID)
}
