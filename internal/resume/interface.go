package resume

import (
	"context"

	"careeros/pkg/domain"
)

// Upload is a stored resume queued for extraction.
type Upload struct {
	UploadedBy domain.UserID `json:"uploadedBy"`
	FileKey    string        `json:"fileKey"`
	FileName   string        `json:"fileName"`
	FileURL    string        `json:"fileUrl"`
}

//go:generate mockgen -package mockresume -source=interface.go -destination=mock/mockresume.go *
type Uploader interface {
	// Upload validates and stores a resume, then queues it for extraction.
	Upload(ctx context.Context, userID domain.UserID, fileName string, data []byte) (*Upload, error)
}
