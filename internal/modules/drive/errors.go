package drive

import "errors"

var (
	ErrEmptyName    = errors.New("file name cannot be empty")
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
	ErrFileNotFound = errors.New("file not found")
	ErrFileExists   = errors.New("a file with that name already exists")

	// ErrRenameOrphan means the copy landed under the new name but the old
	// object could not be removed — both now exist and nothing will clean
	// that up automatically.
	ErrRenameOrphan = errors.New("renamed copy uploaded but original not deleted")
)
