package service

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	imageCacheDir = "cache/images"

	qualityThumb  = 60
	qualityMedium = 75

	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// EnsureImageCacheDir creates the image cache directory if it doesn't exist.
func EnsureImageCacheDir() error {
	if err := os.MkdirAll(imageCacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create image cache directory: %w", err)
	}
	return nil
}

// ImageCachePath returns the cache file path for a product image variant.
func ImageCachePath(productID int, size string) string {
	return filepath.Join(imageCacheDir, fmt.Sprintf("product_%d_%s.jpg", productID, size))
}

// ReadCachedImage reads an optimized image variant from the cache.
// The second return value reports whether the cache entry exists.
func ReadCachedImage(cachePath string) ([]byte, bool) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// WriteCachedImage stores an optimized image variant in the cache.
func WriteCachedImage(cachePath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// OptimizeImage re-encodes an image as JPEG, bounded to the dimensions of
// the requested variant. size is "thumb" (grid cards) or "medium" (modal);
// unknown values fall back to medium.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim := maxSizeMedium
	quality := qualityMedium
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
	default:
		log.Printf("⚠️  Unknown image size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		// Fit preserves aspect ratio within the bounding box.
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	return buf.Bytes(), nil
}

// OptimizedProductImage returns the optimized variant of a product image,
// serving from the on-disk cache when possible.
func OptimizedProductImage(productID int, sourcePath string, size string) ([]byte, error) {
	cachePath := ImageCachePath(productID, size)
	if data, ok := ReadCachedImage(cachePath); ok {
		return data, nil
	}

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read product image %s: %w", sourcePath, err)
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, err
	}

	if err := WriteCachedImage(cachePath, optimized); err != nil {
		log.Printf("⚠️  Failed to cache optimized image for product %d: %v", productID, err)
	}

	return optimized, nil
}
