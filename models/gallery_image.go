package models

import "time"

// GalleryImage represents one project photo entry. A before/after entry
// carries the before/after pair instead of the single image path.
type GalleryImage struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Description     string    `gorm:"size:500" json:"description"`
	Category        string    `gorm:"size:64;not null;index" json:"category"`
	ImagePath       *string   `gorm:"size:255" json:"image_path"`
	BeforeImagePath *string   `gorm:"size:255" json:"before_image_path"`
	AfterImagePath  *string   `gorm:"size:255" json:"after_image_path"`
	IsBeforeAfter   bool      `gorm:"default:false" json:"is_before_after"`
}

// Paths returns the stored filenames referenced by the record.
func (g *GalleryImage) Paths() []string {
	var out []string
	for _, p := range []*string{g.ImagePath, g.BeforeImagePath, g.AfterImagePath} {
		if p != nil && *p != "" {
			out = append(out, *p)
		}
	}
	return out
}
