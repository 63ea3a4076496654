package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadProfileImage stores a profile photo under a key derived from
	// the employee id, replacing any previous one.
	UploadProfileImage(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadLeaveAttachment stores a justification document for a leave
	// request.
	UploadLeaveAttachment(ctx context.Context, requestID string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func (s *fileServiceImpl) UploadProfileImage(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	allowed := false
	for _, e := range []string{".jpg", ".jpeg", ".png"} {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	// One image per employee, re-uploading overwrites the previous key.
	path := fmt.Sprintf("profile/%s%s", employeeID, ext)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) UploadLeaveAttachment(ctx context.Context, requestID string, file io.Reader, filename string) (string, error) {
	safeName := filepath.Base(filename)
	path := fmt.Sprintf("leave/leave_%s_%s", requestID, safeName)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload leave attachment: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if err := s.storage.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	url, err := s.storage.GetURL(ctx, path, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to get file URL: %w", err)
	}
	return url, nil
}
