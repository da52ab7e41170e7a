package main

import (
	"testing"
	"time"

	"sparksite/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

func TestGalleryCreateReadBack(t *testing.T) {
	img := models.GalleryImage{
		Title:       "Consumer unit replacement",
		Description: "18th edition board",
		Category:    "consumer-units",
		ImagePath:   strptr("123-abc.jpg"),
	}
	require.NoError(t, createGalleryImage(&img))
	require.NotZero(t, img.ID)

	got, err := getGalleryImage(img.ID)
	require.NoError(t, err)
	require.Equal(t, img.Title, got.Title)
	require.Equal(t, img.Description, got.Description)
	require.Equal(t, img.Category, got.Category)
	require.Equal(t, *img.ImagePath, *got.ImagePath)
	require.Nil(t, got.BeforeImagePath)
	require.False(t, got.IsBeforeAfter)
	require.False(t, got.CreatedAt.IsZero())
	require.False(t, got.UpdatedAt.IsZero())
}

func TestGalleryPartialUpdate(t *testing.T) {
	img := models.GalleryImage{
		Title:           "Before rewire",
		Description:     "full house rewire",
		Category:        "rewiring",
		IsBeforeAfter:   true,
		BeforeImagePath: strptr("1-b.jpg"),
		AfterImagePath:  strptr("1-a.jpg"),
	}
	require.NoError(t, createGalleryImage(&img))
	before, err := getGalleryImage(img.ID)
	require.NoError(t, err)

	matched, err := updateGalleryImage(img.ID, map[string]any{"title": "After rewire"})
	require.NoError(t, err)
	require.True(t, matched)

	after, err := getGalleryImage(img.ID)
	require.NoError(t, err)
	require.Equal(t, "After rewire", after.Title)
	// everything but title and updated_at is untouched
	require.Equal(t, before.Description, after.Description)
	require.Equal(t, before.Category, after.Category)
	require.Equal(t, *before.BeforeImagePath, *after.BeforeImagePath)
	require.Equal(t, *before.AfterImagePath, *after.AfterImagePath)
	require.Equal(t, before.IsBeforeAfter, after.IsBeforeAfter)
	require.WithinDuration(t, before.CreatedAt, after.CreatedAt, time.Millisecond)
	require.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestGalleryUpdateDeleteUnknownID(t *testing.T) {
	matched, err := updateGalleryImage(9999999, map[string]any{"title": "x"})
	require.NoError(t, err)
	require.False(t, matched)

	matched, err = deleteGalleryImage(9999999)
	require.NoError(t, err)
	require.False(t, matched)
}

func TestGalleryListNewestFirstAndFilter(t *testing.T) {
	a := models.GalleryImage{Title: "EV charger install", Category: "ev-chargers", ImagePath: strptr("a.jpg")}
	require.NoError(t, createGalleryImage(&a))
	b := models.GalleryImage{Title: "Garden lighting", Category: "lighting", ImagePath: strptr("b.jpg")}
	require.NoError(t, createGalleryImage(&b))

	all, err := listGalleryImages("")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)
	// b was created after a, so it sorts first
	var posA, posB int = -1, -1
	for i, it := range all {
		if it.ID == a.ID {
			posA = i
		}
		if it.ID == b.ID {
			posB = i
		}
	}
	require.NotEqual(t, -1, posA)
	require.NotEqual(t, -1, posB)
	require.Less(t, posB, posA)

	filtered, err := listGalleryImages("ev-chargers")
	require.NoError(t, err)
	for _, it := range filtered {
		require.Equal(t, "ev-chargers", it.Category)
	}

	unfiltered, err := listGalleryImages("all")
	require.NoError(t, err)
	require.Equal(t, len(all), len(unfiltered))
}

func TestReviewLifecycle(t *testing.T) {
	rv := models.Review{
		Name:     "J. Smith",
		Location: "Southampton",
		Rating:   5,
		Text:     "Tidy work, fair price.",
		Service:  "rewiring",
	}
	require.NoError(t, createReview(&rv))

	got, err := getReview(rv.ID)
	require.NoError(t, err)
	require.Equal(t, rv.Name, got.Name)
	require.Equal(t, rv.Rating, got.Rating)

	matched, err := updateReview(rv.ID, map[string]any{"rating": 4})
	require.NoError(t, err)
	require.True(t, matched)
	got, err = getReview(rv.ID)
	require.NoError(t, err)
	require.Equal(t, 4, got.Rating)
	require.Equal(t, rv.Text, got.Text)

	matched, err = deleteReview(rv.ID)
	require.NoError(t, err)
	require.True(t, matched)

	_, err = getReview(rv.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
