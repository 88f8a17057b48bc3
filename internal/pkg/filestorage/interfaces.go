package filestorage

import "mime/multipart"

// FileStorage is the blob-store collaborator boundary: it takes a raw upload
// and a folder name and returns a public URL. The core persists only the URL,
// never raw bytes.
type FileStorage interface {
	// UploadFile stores the upload under the given folder and returns its public URL
	UploadFile(fileHeader *multipart.FileHeader, folder string) (string, error)

	// DeleteFile removes a previously stored file by its URL path
	DeleteFile(fileURL string) error
}
