package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadProfilePicture stores an employee profile image.
	UploadProfilePicture(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadResume stores a candidate resume.
	UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string) (string, error)

	// UploadLeaveAttachment stores a leave request attachment.
	UploadLeaveAttachment(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func (s *fileServiceImpl) UploadProfilePicture(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
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

	newFilename := fmt.Sprintf("%s-%s%s", employeeID, uuid.New().String(), ext)
	path := filepath.Join("profiles", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext != ".pdf" && ext != ".doc" && ext != ".docx" {
		return "", fmt.Errorf("invalid file type: only pdf, doc, docx allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", candidateID, uuid.New().String(), ext)
	path := filepath.Join("resumes", newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) UploadLeaveAttachment(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path := filepath.Join("leave", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload leave attachment: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

func (s *fileServiceImpl) Delete(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
