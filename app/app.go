package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"almacen-catalogo/app/controller"
	"almacen-catalogo/app/router"
	"almacen-catalogo/db"
	"almacen-catalogo/repository"
	"almacen-catalogo/service"
)

const (
	defaultCatalogFile = "data/products.json"
	defaultStoreName   = "Almacén La Esquina"
	defaultStorePhone  = "542346698477"
)

// Initialize initializes the application
func Initialize() error {
	source, err := catalogSource()
	if err != nil {
		return err
	}

	// The catalog is loaded exactly once. A failed load is terminal for the
	// session but not fatal for the process: the storefront shows the
	// reload message in place of the grid.
	store := service.NewCatalogStore(source)
	if err := store.Load(context.Background()); err != nil {
		log.Printf("❌ Catalog load failed, storefront will show the error state: %v", err)
	}

	if err := service.EnsureImageCacheDir(); err != nil {
		return err
	}

	storeName := os.Getenv("STORE_NAME")
	if storeName == "" {
		storeName = defaultStoreName
	}
	phone := os.Getenv("STORE_PHONE")
	if phone == "" {
		phone = defaultStorePhone
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	renderService := service.NewRenderService(storeName, phone)
	exportService := service.NewExportService(baseURL)

	// Drive photo sync is optional; without credentials the endpoint
	// reports itself unconfigured.
	var syncService *service.ImageSyncService
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		syncService = service.NewImageSyncService(driveService, filepath.Join("static", "images"))
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, image sync disabled")
	}

	controllers := &router.Controllers{
		Storefront: controller.NewStorefrontController(store, renderService),
		Catalog:    controller.NewCatalogController(store, renderService, exportService),
		Image:      controller.NewImageController(store, syncService, os.Getenv("DRIVE_FOLDER_ID")),
	}

	router.SetupRoutes(controllers)

	return nil
}

// catalogSource selects the catalog source from CATALOG_SOURCE:
// "file" (default), "url", or "postgres".
func catalogSource() (repository.CatalogSourceInterface, error) {
	switch os.Getenv("CATALOG_SOURCE") {
	case "postgres":
		if err := db.InitDB(); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewCatalogDBRepository(), nil

	case "url":
		catalogURL := os.Getenv("CATALOG_URL")
		if catalogURL == "" {
			return nil, fmt.Errorf("CATALOG_URL environment variable is not set")
		}
		return repository.NewCatalogURLRepository(catalogURL), nil

	default:
		path := os.Getenv("CATALOG_FILE")
		if path == "" {
			path = defaultCatalogFile
		}
		return repository.NewCatalogFileRepository(path), nil
	}
}
