package interview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/imaging"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// ImageSettings controls where and how interview pictures are stored.
type ImageSettings struct {
	Folder  string
	Options imaging.Options
}

// imageStore resizes, uploads and removes interview pictures. Uploads land under
// <folder>/<owner>/<unix-millis>.
type imageStore struct {
	uploader service.Uploader
	settings ImageSettings
	logger   logger.Logger
	now      func() time.Time
}

func newImageStore(uploader service.Uploader, settings ImageSettings, log logger.Logger) *imageStore {
	return &imageStore{uploader: uploader, settings: settings, logger: log, now: time.Now}
}

func (s *imageStore) put(ctx context.Context, ownerID uuid.UUID, file io.Reader) (service.UploadResult, error) {
	data, err := imaging.Process(file, s.settings.Options)
	if err != nil {
		if errors.Is(err, imaging.ErrDecode) || errors.Is(err, imaging.ErrTooLarge) || errors.Is(err, imaging.ErrEmpty) {
			return service.UploadResult{}, apperror.NewInvalidInput(err.Error(), err)
		}
		return service.UploadResult{}, apperror.NewInternal("failed to process image", err)
	}

	folder := fmt.Sprintf("%s/%s", s.settings.Folder, ownerID.String())
	publicID := fmt.Sprintf("%d", s.now().UnixMilli())

	res, err := s.uploader.Upload(ctx, bytes.NewReader(data), folder, publicID)
	if err != nil {
		return service.UploadResult{}, apperror.NewStore(err)
	}
	return res, nil
}

// discard removes an object without waiting. Failures are only logged.
func (s *imageStore) discard(key string) {
	if key == "" {
		return
	}
	go func() {
		if err := s.uploader.Delete(context.Background(), key); err != nil {
			s.logger.Warn("Failed to delete interview image", zap.String("image_key", key), zap.Error(err))
		}
	}()
}
