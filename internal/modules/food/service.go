package food

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

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	"github.com/1Deeeeyl/multiple-activities/internal/realtime"
	"github.com/1Deeeeyl/multiple-activities/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxImageSize = 10 * 1024 * 1024 // 10 MB

// allowedImageTypes — food photos only, no documents or video.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type FoodRepositoryInterface interface {
	ListAll(ctx context.Context) ([]domain.Food, error)
	GetByID(ctx context.Context, id string) (*domain.Food, error)
	Create(ctx context.Context, f *domain.Food) error
	Delete(ctx context.Context, id, profileID string) error
}

type ReviewRepositoryInterface interface {
	ListByFood(ctx context.Context, foodID string) ([]domain.FoodReview, error)
	GetByFoodAndProfile(ctx context.Context, foodID, profileID string) (*domain.FoodReview, error)
	Create(ctx context.Context, rv *domain.FoodReview) error
	Update(ctx context.Context, id, profileID, text string, now time.Time) (*domain.FoodReview, error)
	Delete(ctx context.Context, id, profileID string) error
}

type ProfileReader interface {
	UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type Service struct {
	foods    FoodRepositoryInterface
	reviews  ReviewRepositoryInterface
	profiles ProfileReader
	store    storage.ObjectStore
	bucket   string
	events   realtime.Publisher
}

func NewService(
	foods FoodRepositoryInterface,
	reviews ReviewRepositoryInterface,
	profiles ProfileReader,
	store storage.ObjectStore,
	bucket string,
	events realtime.Publisher,
) *Service {
	return &Service{
		foods:    foods,
		reviews:  reviews,
		profiles: profiles,
		store:    store,
		bucket:   bucket,
		events:   events,
	}
}

// List returns the global food board, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Food, error) {
	return s.foods.ListAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Food, error) {
	f, err := s.foods.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Create uploads the photo under the owner's prefix with a fresh uuid key
// (the original filename never becomes the storage key) and then inserts
// the row carrying the derived public URL.
func (s *Service) Create(ctx context.Context, profileID, foodName string, fileHeader *multipart.FileHeader) (*domain.Food, error) {
	foodName = strings.TrimSpace(foodName)
	if foodName == "" {
		return nil, ErrEmptyName
	}
	if fileHeader == nil || fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > maxImageSize {
		return nil, ErrImageTooLarge
	}

	data, mimeType, err := readImage(fileHeader)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := fmt.Sprintf("%s/%s%s", profileID, uuid.New().String(), ext)

	if err := s.store.Upload(ctx, s.bucket, key, data, mimeType); err != nil {
		return nil, fmt.Errorf("upload food image: %w", err)
	}

	f := &domain.Food{
		ID:        uuid.New().String(),
		FoodName:  foodName,
		ImageURL:  s.store.PublicURL(s.bucket, key),
		ProfileID: profileID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.foods.Create(ctx, f); err != nil {
		// Roll the blob back so a failed insert doesn't leak an image.
		_ = s.store.Remove(ctx, s.bucket, []string{key})
		return nil, err
	}

	s.publish(profileID, "foods", realtime.EventInsert, f)
	return f, nil
}

// Delete removes the row (owner-scoped) and then the stored image. The
// image removal is best effort; the row is authoritative.
func (s *Service) Delete(ctx context.Context, profileID, id string) error {
	f, err := s.foods.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.foods.Delete(ctx, id, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if key, ok := s.keyFromURL(f.ImageURL); ok {
		_ = s.store.Remove(ctx, s.bucket, []string{key})
	}

	s.publish(profileID, "foods", realtime.EventDelete, map[string]string{"id": id})
	return nil
}

func (s *Service) publish(profileID, table string, typ realtime.EventType, record any) {
	if s.events == nil {
		return
	}
	s.events.Publish(profileID, realtime.Event{Table: table, Type: typ, Record: record})
}

// keyFromURL recovers "<profile>/<file>" from a stored public URL.
func (s *Service) keyFromURL(url string) (string, bool) {
	marker := "/" + s.bucket + "/"
	idx := strings.LastIndex(url, marker)
	if idx < 0 {
		return "", false
	}
	return url[idx+len(marker):], true
}

func readImage(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}

	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	mimeType := strings.Split(http.DetectContentType(sniff), ";")[0]
	if !allowedImageTypes[mimeType] {
		return nil, "", ErrInvalidMimeType
	}

	return data, mimeType, nil
}
