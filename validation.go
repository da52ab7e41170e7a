package main

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// galleryCategories is the allowed category enum for gallery entries.
var galleryCategories = map[string]bool{
	"rewiring":       true,
	"consumer-units": true,
	"ev-chargers":    true,
	"lighting":       true,
	"eicr":           true,
	"fault-finding":  true,
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func validateLogin(req loginRequest) error {
	if n := utf8.RuneCountInString(req.Username); n < 3 || n > 50 {
		return errors.New("username must be between 3 and 50 characters")
	}
	if n := len(req.Password); n < 6 || n > 100 {
		return errors.New("password must be between 6 and 100 characters")
	}
	return nil
}

// galleryForm carries the scalar multipart fields of a gallery write plus
// which file parts were attached. Presence flags distinguish "absent" from
// "empty" so updates stay partial.
type galleryForm struct {
	Title          string
	HasTitle       bool
	Description    string
	HasDescription bool
	Category       string
	HasCategory    bool
	IsBeforeAfter  bool
	HasFlag        bool
	HasImage       bool
	HasBefore      bool
	HasAfter       bool
}

func validateGalleryCreate(f galleryForm) error {
	if n := utf8.RuneCountInString(f.Title); n < 1 || n > 200 {
		return errors.New("title must be between 1 and 200 characters")
	}
	if utf8.RuneCountInString(f.Description) > 500 {
		return errors.New("description must be at most 500 characters")
	}
	if !galleryCategories[f.Category] {
		return fmt.Errorf("category must be one of the known service categories")
	}
	// A before/after entry needs the pair; a plain entry needs the single image.
	if f.IsBeforeAfter {
		if !f.HasBefore || !f.HasAfter {
			return errors.New("before_image and after_image are required for before/after entries")
		}
	} else if !f.HasImage {
		return errors.New("image is required")
	}
	return nil
}

func validateGalleryUpdate(f galleryForm) error {
	if f.HasTitle {
		if n := utf8.RuneCountInString(f.Title); n < 1 || n > 200 {
			return errors.New("title must be between 1 and 200 characters")
		}
	}
	if f.HasDescription && utf8.RuneCountInString(f.Description) > 500 {
		return errors.New("description must be at most 500 characters")
	}
	if f.HasCategory && !galleryCategories[f.Category] {
		return errors.New("category must be one of the known service categories")
	}
	return nil
}

type reviewCreateRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   *int   `json:"rating"`
	Text     string `json:"text"`
	Service  string `json:"service"`
}

func validateReviewCreate(req reviewCreateRequest) error {
	if n := utf8.RuneCountInString(req.Name); n < 1 || n > 100 {
		return errors.New("name must be between 1 and 100 characters")
	}
	if n := utf8.RuneCountInString(req.Location); n < 1 || n > 100 {
		return errors.New("location must be between 1 and 100 characters")
	}
	if req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 {
		return errors.New("rating must be an integer between 1 and 5")
	}
	if n := utf8.RuneCountInString(req.Text); n < 1 || n > 1000 {
		return errors.New("text must be between 1 and 1000 characters")
	}
	if utf8.RuneCountInString(req.Service) > 100 {
		return errors.New("service must be at most 100 characters")
	}
	return nil
}

type reviewUpdateRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Rating   *int    `json:"rating"`
	Text     *string `json:"text"`
	Service  *string `json:"service"`
}

func validateReviewUpdate(req reviewUpdateRequest) error {
	if req.Name != nil {
		if n := utf8.RuneCountInString(*req.Name); n < 1 || n > 100 {
			return errors.New("name must be between 1 and 100 characters")
		}
	}
	if req.Location != nil {
		if n := utf8.RuneCountInString(*req.Location); n < 1 || n > 100 {
			return errors.New("location must be between 1 and 100 characters")
		}
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return errors.New("rating must be an integer between 1 and 5")
	}
	if req.Text != nil {
		if n := utf8.RuneCountInString(*req.Text); n < 1 || n > 1000 {
			return errors.New("text must be between 1 and 1000 characters")
		}
	}
	if req.Service != nil && utf8.RuneCountInString(*req.Service) > 100 {
		return errors.New("service must be at most 100 characters")
	}
	return nil
}
