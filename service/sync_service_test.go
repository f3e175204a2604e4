package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDrive struct {
	images    []DriveImage
	contents  map[string][]byte
	downloads int
}

func (d *fakeDrive) ListImages(folderID string) ([]DriveImage, error) {
	return d.images, nil
}

func (d *fakeDrive) Download(fileID string) ([]byte, error) {
	d.downloads++
	return d.contents[fileID], nil
}

func TestSyncImagesDownloadsNewSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agua.jpg"), []byte("existing"), 0644))

	drive := &fakeDrive{
		images: []DriveImage{
			{ID: "f1", Name: "agua.jpg", MimeType: "image/jpeg"},
			{ID: "f2", Name: "papas.jpg", MimeType: "image/jpeg"},
		},
		contents: map[string][]byte{"f2": []byte("papas-bytes")},
	}

	sync := NewImageSyncService(drive, dir)
	downloaded, skipped, total, err := sync.SyncImages("folder-id")
	require.NoError(t, err)

	assert.Equal(t, 1, downloaded)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, drive.downloads)

	data, err := os.ReadFile(filepath.Join(dir, "papas.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("papas-bytes"), data)

	// Existing file untouched.
	data, err = os.ReadFile(filepath.Join(dir, "agua.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("existing"), data)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "foo.jpg", sanitizeFileName("foo.jpg"))
	assert.Equal(t, "bar.jpg", sanitizeFileName("../bar.jpg"))
	assert.Equal(t, "x.jpg", sanitizeFileName("/etc/x.jpg"))
	assert.Equal(t, "y.jpg", sanitizeFileName("fotos\\y.jpg"))
}
