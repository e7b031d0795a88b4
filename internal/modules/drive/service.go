package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/pkg/listx"
	"github.com/1Deeeeyl/multiple-activities/internal/realtime"
	"github.com/1Deeeeyl/multiple-activities/internal/storage"
)

// The backend inserts this marker object into otherwise-empty folders;
// it must never surface in listings.
const emptyFolderPlaceholder = ".emptyFolderPlaceholder"

const maxFileSize = 50 * 1024 * 1024 // 50 MB

type Service struct {
	store  storage.ObjectStore
	bucket string
	events realtime.Publisher
}

func NewService(store storage.ObjectStore, bucket string, events realtime.Publisher) *Service {
	return &Service{store: store, bucket: bucket, events: events}
}

// List returns the owner's files in a requested order. The listing is
// always fetched fresh; SortNone is the backend's own (key) order.
func (s *Service) List(ctx context.Context, profileID string, sortBy SortOption) ([]FileEntry, error) {
	entries, err := s.fetch(ctx, profileID)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case SortName:
		entries = listx.SortByName(entries, func(e FileEntry) string { return e.Name })
	case SortDateNew:
		entries = listx.SortByNewest(entries, func(e FileEntry) time.Time { return e.CreatedAt })
	case SortDateOld:
		entries = listx.SortByOldest(entries, func(e FileEntry) time.Time { return e.CreatedAt })
	}

	return entries, nil
}

// Search filters a freshly fetched listing, never a stale snapshot.
func (s *Service) Search(ctx context.Context, profileID, query string) ([]FileEntry, error) {
	entries, err := s.fetch(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return listx.FilterSubstring(entries, func(e FileEntry) string { return e.Name }, query), nil
}

// Upload stores the file under its original name. An existing file with
// the same name is a conflict, not an overwrite.
func (s *Service) Upload(ctx context.Context, profileID string, fileHeader *multipart.FileHeader) ([]FileEntry, error) {
	name := filepath.Base(strings.TrimSpace(fileHeader.Filename))
	if name == "" || name == "." || name == emptyFolderPlaceholder {
		return nil, ErrEmptyName
	}
	if fileHeader.Size > maxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	contentType := strings.Split(http.DetectContentType(sniff), ";")[0]

	key := s.key(profileID, name)
	if err := s.store.Upload(ctx, s.bucket, key, data, contentType); err != nil {
		if errors.Is(err, storage.ErrObjectExists) {
			return nil, ErrFileExists
		}
		return nil, err
	}

	s.publish(profileID, realtime.EventInsert, map[string]string{"name": name})

	return s.fetch(ctx, profileID)
}

// Delete removes the named file. The listing check makes a miss an explicit
// not-found instead of the store's silent no-op.
func (s *Service) Delete(ctx context.Context, profileID, name string) ([]FileEntry, error) {
	entries, err := s.fetch(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !containsName(entries, name) {
		return nil, ErrFileNotFound
	}

	if err := s.store.Remove(ctx, s.bucket, []string{s.key(profileID, name)}); err != nil {
		return nil, fmt.Errorf("delete %s: %w", name, err)
	}

	s.publish(profileID, realtime.EventDelete, map[string]string{"name": name})

	return s.fetch(ctx, profileID)
}

// Rename gives a file a new name by copy: the store has no rename
// primitive, so the bytes are downloaded, re-uploaded under the new key and
// the old key removed, in that order, with no rollback. The result records
// each completed step so a caller can see exactly where a failure left the
// bucket.
func (s *Service) Rename(ctx context.Context, profileID, oldName, newName string) (*RenameResult, error) {
	newName = filepath.Base(strings.TrimSpace(newName))
	if newName == "" || newName == "." {
		return nil, ErrEmptyName
	}

	result := &RenameResult{OldName: oldName, NewName: newName}

	oldKey := s.key(profileID, oldName)
	newKey := s.key(profileID, newName)

	// Step 1: download the original. Nothing has changed if this fails.
	data, err := s.store.Download(ctx, s.bucket, oldKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return result, ErrFileNotFound
		}
		return result, fmt.Errorf("download %s: %w", oldName, err)
	}
	result.Steps = append(result.Steps, StepDownloaded)

	// Step 2: upload under the new name. A collision aborts and leaves
	// only the original in place, which is still consistent.
	contentType := strings.Split(http.DetectContentType(capped(data)), ";")[0]
	if err := s.store.Upload(ctx, s.bucket, newKey, data, contentType); err != nil {
		if errors.Is(err, storage.ErrObjectExists) {
			return result, ErrFileExists
		}
		return result, fmt.Errorf("upload %s: %w", newName, err)
	}
	result.Steps = append(result.Steps, StepUploaded)

	// Step 3: remove the original. Failing here orphans the old copy:
	// both objects exist and only the caller ever learns about it.
	if err := s.store.Remove(ctx, s.bucket, []string{oldKey}); err != nil {
		return result, fmt.Errorf("%w: old=%s new=%s", ErrRenameOrphan, oldKey, newKey)
	}
	result.Steps = append(result.Steps, StepOldDeleted)

	s.publish(profileID, realtime.EventUpdate, map[string]string{"old_name": oldName, "new_name": newName})

	result.Files, err = s.fetch(ctx, profileID)
	if err != nil {
		return result, err
	}
	return result, nil
}

func (s *Service) fetch(ctx context.Context, profileID string) ([]FileEntry, error) {
	objects, err := s.store.List(ctx, s.bucket, profileID)
	if err != nil {
		return nil, fmt.Errorf("list drive files: %w", err)
	}

	entries := make([]FileEntry, 0, len(objects))
	for _, obj := range objects {
		if obj.Name == emptyFolderPlaceholder {
			continue
		}
		entries = append(entries, FileEntry{
			ID:        obj.Name,
			Name:      obj.Name,
			URL:       s.store.PublicURL(s.bucket, s.key(profileID, obj.Name)),
			Size:      obj.Size,
			CreatedAt: obj.CreatedAt,
		})
	}
	return entries, nil
}

func (s *Service) key(profileID, name string) string {
	return profileID + "/" + name
}

func (s *Service) publish(profileID string, typ realtime.EventType, record any) {
	if s.events == nil {
		return
	}
	s.events.Publish(profileID, realtime.Event{Table: "drive", Type: typ, Record: record})
}

func containsName(entries []FileEntry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

func capped(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}
