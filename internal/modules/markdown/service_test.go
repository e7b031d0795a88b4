package markdown

import (
	"context"
	"testing"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockMarkdownRepository struct {
	mock.Mock
}

func (m *MockMarkdownRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.Markdown, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Markdown), args.Error(1)
}

func (m *MockMarkdownRepository) Create(ctx context.Context, note *domain.Markdown) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockMarkdownRepository) Update(ctx context.Context, id, profileID, title, body string, now time.Time) (*domain.Markdown, error) {
	args := m.Called(ctx, id, profileID, title, body, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Markdown), args.Error(1)
}

func (m *MockMarkdownRepository) Delete(ctx context.Context, id, profileID string) error {
	args := m.Called(ctx, id, profileID)
	return args.Error(0)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockMarkdownRepository)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Markdown) bool {
		return m.Title == "Notes" && m.Body == "# Heading" && m.ProfileID == "user-1" && m.ID != ""
	})).Return(nil)

	m, err := svc.Create(context.Background(), "user-1", CreateMarkdownRequest{Title: " Notes ", Body: "# Heading"})

	require.NoError(t, err)
	assert.Equal(t, "Notes", m.Title)
	repo.AssertExpectations(t)
}

func TestService_Create_BlankFields(t *testing.T) {
	repo := new(MockMarkdownRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), "user-1", CreateMarkdownRequest{Title: " ", Body: "x"})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.Create(context.Background(), "user-1", CreateMarkdownRequest{Title: "x", Body: "  "})
	assert.ErrorIs(t, err, ErrEmptyBody)

	repo.AssertNotCalled(t, "Create")
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockMarkdownRepository)
	svc := NewService(repo, nil)

	repo.On("Delete", mock.Anything, "missing", "user-1").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "user-1", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
