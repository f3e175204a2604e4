package service

// DriveImage describes one image file found in the shop's Drive folder.
type DriveImage struct {
	ID       string
	Name     string
	MimeType string
}

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListImages(folderID string) ([]DriveImage, error)
	Download(fileID string) ([]byte, error)
}
