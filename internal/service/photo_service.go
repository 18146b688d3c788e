package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperrors "actipoint/internal/errors"
	"actipoint/internal/model"
	"actipoint/internal/repository"
)

const uploadTimestampLayout = "20060102150405"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// PhotoService handles verification photo intake: the file is stored on
// disk, recorded, and the uploader credited through the ledger.
type PhotoService interface {
	StoreVerification(ctx context.Context, username string, file *multipart.FileHeader) (*model.Photo, *model.User, error)
}

type photoService struct {
	photoRepo repository.PhotoRepository
	ledger    LedgerService
	uploadDir string
}

// NewPhotoService creates a new photo service storing files under uploadDir.
func NewPhotoService(photoRepo repository.PhotoRepository, ledger LedgerService, uploadDir string) PhotoService {
	return &photoService{
		photoRepo: photoRepo,
		ledger:    ledger,
		uploadDir: uploadDir,
	}
}

// StoreVerification writes the uploaded file to the upload directory and
// credits the uploader. The file is stored before the user is resolved, so
// an unknown-user upload still lands on disk but credits nothing. Storage
// is append-only: an existing file is never overwritten.
func (s *photoService) StoreVerification(ctx context.Context, username string, file *multipart.FileHeader) (*model.Photo, *model.User, error) {
	if file == nil {
		return nil, nil, apperrors.ErrNoFileAttached
	}

	storedName := storedFileName(username, file.Filename, time.Now())

	if err := s.writeFile(file, storedName); err != nil {
		return nil, nil, fmt.Errorf("store photo: %w", err)
	}

	_, user, err := s.ledger.CreditForVerification(ctx, username, storedName)
	if err != nil {
		return nil, nil, err
	}

	photo := &model.Photo{
		Username:     username,
		StoredName:   storedName,
		OriginalName: file.Filename,
		Size:         file.Size,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, nil, fmt.Errorf("record photo: %w", err)
	}

	return photo, user, nil
}

func (s *photoService) writeFile(file *multipart.FileHeader, storedName string) error {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.uploadDir, storedName), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// storedFileName builds the on-disk name <username>_<timestamp>_<original>
// with second-resolution timestamps.
func storedFileName(username, original string, ts time.Time) string {
	return fmt.Sprintf("%s_%s_%s",
		sanitizeFilename(username),
		ts.Format(uploadTimestampLayout),
		sanitizeFilename(original))
}

// sanitizeFilename strips path components and any character outside
// [A-Za-z0-9_.-] so the result is safe to join under the upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}
