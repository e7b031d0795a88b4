package markdown

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	"github.com/1Deeeeyl/multiple-activities/internal/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarkdownRepositoryInterface interface {
	ListByProfile(ctx context.Context, profileID string) ([]domain.Markdown, error)
	Create(ctx context.Context, m *domain.Markdown) error
	Update(ctx context.Context, id, profileID, title, body string, now time.Time) (*domain.Markdown, error)
	Delete(ctx context.Context, id, profileID string) error
}

type Service struct {
	markdowns MarkdownRepositoryInterface
	events    realtime.Publisher
}

func NewService(markdowns MarkdownRepositoryInterface, events realtime.Publisher) *Service {
	return &Service{markdowns: markdowns, events: events}
}

func (s *Service) List(ctx context.Context, profileID string) ([]domain.Markdown, error) {
	return s.markdowns.ListByProfile(ctx, profileID)
}

func (s *Service) Create(ctx context.Context, profileID string, req CreateMarkdownRequest) (*domain.Markdown, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrEmptyBody
	}

	now := time.Now().UTC()
	m := &domain.Markdown{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      req.Body,
		ProfileID: profileID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.markdowns.Create(ctx, m); err != nil {
		return nil, err
	}

	s.publish(profileID, realtime.EventInsert, m)
	return m, nil
}

func (s *Service) Update(ctx context.Context, profileID, id string, req UpdateMarkdownRequest) (*domain.Markdown, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrEmptyBody
	}

	m, err := s.markdowns.Update(ctx, id, profileID, title, req.Body, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.publish(profileID, realtime.EventUpdate, m)
	return m, nil
}

func (s *Service) Delete(ctx context.Context, profileID, id string) error {
	if err := s.markdowns.Delete(ctx, id, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.publish(profileID, realtime.EventDelete, map[string]string{"id": id})
	return nil
}

func (s *Service) publish(profileID string, typ realtime.EventType, record any) {
	if s.events == nil {
		return
	}
	s.events.Publish(profileID, realtime.Event{Table: "markdowns", Type: typ, Record: record})
}
