package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestSupportsThumbnail(t *testing.T) {
	require.True(t, supportsThumbnail("a.jpg"))
	require.True(t, supportsThumbnail("a.PNG"))
	require.False(t, supportsThumbnail("a.webp")) // no webp encoder
	require.False(t, supportsThumbnail("a.txt"))
}

func TestMakeThumbnailResizes(t *testing.T) {
	name := storedFileName("wide.png")
	img := imaging.New(800, 600, color.NRGBA{200, 200, 200, 255})
	require.NoError(t, imaging.Save(img, filepath.Join(galleryUploadDir(), name)))

	require.NoError(t, makeThumbnail(name))
	thumb, err := imaging.Open(thumbPath(name))
	require.NoError(t, err)
	require.Equal(t, thumbWidth, thumb.Bounds().Dx())

	// removing the gallery file takes the thumbnail with it
	removeGalleryFile(name)
	_, err = os.Stat(thumbPath(name))
	require.True(t, os.IsNotExist(err))
}

func TestMakeThumbnailKeepsSmallImages(t *testing.T) {
	name := storedFileName("small.png")
	img := imaging.New(300, 200, color.NRGBA{10, 10, 10, 255})
	require.NoError(t, imaging.Save(img, filepath.Join(galleryUploadDir(), name)))

	require.NoError(t, makeThumbnail(name))
	thumb, err := imaging.Open(thumbPath(name))
	require.NoError(t, err)
	require.Equal(t, 300, thumb.Bounds().Dx())
	removeGalleryFile(name)
}

func TestScanMissingThumbnails(t *testing.T) {
	name := storedFileName("scan.png")
	img := imaging.New(640, 480, color.NRGBA{0, 0, 0, 255})
	require.NoError(t, imaging.Save(img, filepath.Join(galleryUploadDir(), name)))

	scanMissingThumbnails()
	_, err := os.Stat(thumbPath(name))
	require.NoError(t, err)
	removeGalleryFile(name)
}
