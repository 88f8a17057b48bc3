package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/pkg/logger"
)

// maxFileSize is the upload size ceiling (10 MB)
const maxFileSize = 10 * 1024 * 1024

// LocalStorage handles saving uploaded media to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL to access the stored files
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is optional; if provided, it will be prepended to returned file paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	// Ensure the base path exists
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// UploadFile stores an upload under the given folder and returns its public URL.
func (ls *LocalStorage) UploadFile(fileHeader *multipart.FileHeader, folder string) (string, error) {
	if fileHeader == nil || fileHeader.Size == 0 {
		return "", fmt.Errorf("no file provided")
	}

	if fileHeader.Size > maxFileSize {
		return "", fmt.Errorf("file size %d exceeds maximum allowed size %d", fileHeader.Size, maxFileSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Ensure the folder exists
	fullDirPath := ls.basePath
	if folder != "" {
		fullDirPath = filepath.Join(ls.basePath, folder)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create storage folder")
			return "", fmt.Errorf("failed to create storage folder: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	var fileURL string
	if ls.baseURL != "" {
		fileURL = strings.TrimRight(ls.baseURL, "/") + "/"
		if folder != "" {
			fileURL += folder + "/"
		}
		fileURL += uniqueFilename
	} else {
		fileURL = "/" + filepath.ToSlash(filepath.Join("uploads", folder, uniqueFilename))
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("savedAs", uniqueFilename).Str("url", fileURL).Msg("File saved successfully")
	return fileURL, nil
}

// DeleteFile removes a file from storage by its URL path. Returns nil if the
// file does not exist.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	// Strip the base URL or the /uploads prefix to get the relative path
	rel := fileURL
	if ls.baseURL != "" && strings.HasPrefix(rel, ls.baseURL) {
		rel = strings.TrimPrefix(rel, ls.baseURL)
	}
	rel = strings.TrimPrefix(rel, "/uploads")
	rel = strings.TrimPrefix(rel, "/")

	fullPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}

	return nil
}
