package drive

import "time"

// FileEntry is one listed drive file. The name is both the display label
// and the storage key under the owner's prefix, so there is no separate id.
type FileEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

type SortOption string

const (
	SortNone    SortOption = "none"
	SortName    SortOption = "name"
	SortDateNew SortOption = "date-new"
	SortDateOld SortOption = "date-old"
)

type RenameRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// RenameStep names a completed stage of the rename choreography.
type RenameStep string

const (
	StepDownloaded RenameStep = "downloaded"
	StepUploaded   RenameStep = "uploaded"
	StepOldDeleted RenameStep = "old_deleted"
)

// RenameResult reports how far the rename got. On the orphan path both
// the old and new names refer to live objects.
type RenameResult struct {
	OldName string       `json:"old_name"`
	NewName string       `json:"new_name"`
	Steps   []RenameStep `json:"steps"`
	Files   []FileEntry  `json:"files,omitempty"`
}
