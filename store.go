package main

import (
	"time"

	"sparksite/models"
)

// Row-store access for the two record collections. Listing is newest-first;
// updates are partial (only the supplied columns change) and always refresh
// updated_at; update/delete report whether a row matched.

func listGalleryImages(category string) ([]models.GalleryImage, error) {
	items := []models.GalleryImage{}
	q := db.Model(&models.GalleryImage{})
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func getGalleryImage(id uint) (*models.GalleryImage, error) {
	var img models.GalleryImage
	if err := db.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func createGalleryImage(img *models.GalleryImage) error {
	return db.Create(img).Error
}

func updateGalleryImage(id uint, fields map[string]any) (bool, error) {
	fields["updated_at"] = time.Now()
	res := db.Model(&models.GalleryImage{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func deleteGalleryImage(id uint) (bool, error) {
	res := db.Delete(&models.GalleryImage{}, id)
	return res.RowsAffected > 0, res.Error
}

func listReviews() ([]models.Review, error) {
	items := []models.Review{}
	if err := db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func getReview(id uint) (*models.Review, error) {
	var rv models.Review
	if err := db.First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func createReview(rv *models.Review) error {
	return db.Create(rv).Error
}

func updateReview(id uint, fields map[string]any) (bool, error) {
	fields["updated_at"] = time.Now()
	res := db.Model(&models.Review{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func deleteReview(id uint) (bool, error) {
	res := db.Delete(&models.Review{}, id)
	return res.RowsAffected > 0, res.Error
}
