// Package filestorage stores uploaded files on disk under collision-proof
// names. The mock platform API uses it for avatars and post media.
package filestorage

import "mime/multipart"

// Storage saves uploaded files and hands back the URL path they are served
// under.
type Storage interface {
	// Save stores an uploaded file and returns its serving path.
	Save(fileHeader *multipart.FileHeader) (string, error)

	// Delete removes a stored file by its serving path. Deleting a file that
	// is already gone is not an error.
	Delete(servingPath string) error
}
