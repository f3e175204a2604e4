package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ImageSyncService downloads product photos from the shop's Google Drive
// folder into the local static images directory so the storefront can serve
// them.
type ImageSyncService struct {
	driveService DriveServiceInterface
	imagesDir    string
}

// NewImageSyncService creates a new ImageSyncService
func NewImageSyncService(driveService DriveServiceInterface, imagesDir string) *ImageSyncService {
	return &ImageSyncService{
		driveService: driveService,
		imagesDir:    imagesDir,
	}
}

// SyncImages copies new images from the Drive folder into the images
// directory. Files that already exist locally (by name) are skipped.
// Returns downloaded, skipped, and total counts.
func (s *ImageSyncService) SyncImages(folderID string) (downloaded int, skipped int, total int, err error) {
	log.Printf("🔄 Starting image sync for folder: %s", folderID)

	images, err := s.driveService.ListImages(folderID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to list images from Drive: %w", err)
	}
	total = len(images)
	log.Printf("📦 Found %d images in Drive folder", total)

	if err := os.MkdirAll(s.imagesDir, 0755); err != nil {
		return 0, 0, total, fmt.Errorf("failed to create images directory: %w", err)
	}

	for _, img := range images {
		name := sanitizeFileName(img.Name)
		localPath := filepath.Join(s.imagesDir, name)

		if _, statErr := os.Stat(localPath); statErr == nil {
			skipped++
			continue
		}

		data, dlErr := s.driveService.Download(img.ID)
		if dlErr != nil {
			log.Printf("❌ Failed to download %s: %v", img.Name, dlErr)
			continue
		}

		if writeErr := os.WriteFile(localPath, data, 0644); writeErr != nil {
			log.Printf("❌ Failed to write %s: %v", localPath, writeErr)
			continue
		}

		log.Printf("✓ Downloaded %s (%d bytes)", name, len(data))
		downloaded++
	}

	log.Printf("🎉 Image sync completed: %d downloaded, %d skipped, %d total", downloaded, skipped, total)
	return downloaded, skipped, total, nil
}

// sanitizeFileName strips any path components so a Drive file name cannot
// escape the images directory.
func sanitizeFileName(name string) string {
	return filepath.Base(strings.ReplaceAll(name, "\\", "/"))
}
