package service

import (
	"context"
	"io"
)

type UploadResult struct {
	URL string
	Key string
}

//go:generate mockgen -source=uploader.go -destination=../../mocks/mock_uploader.go -package=mocks
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (UploadResult, error)
	Delete(ctx context.Context, key string) error
}
