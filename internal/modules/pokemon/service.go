package pokemon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	"github.com/1Deeeeyl/multiple-activities/internal/pkg/listx"
	"github.com/1Deeeeyl/multiple-activities/internal/pokeapi"
	"github.com/1Deeeeyl/multiple-activities/internal/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// pageSize is the browse window; PokéAPI paginates by offset/limit.
const pageSize = 50

const unknownUser = "Unknown User"

type PokeClient interface {
	ListPage(ctx context.Context, limit, offset int) (*pokeapi.ListResponse, error)
	GetByName(ctx context.Context, name string) (*pokeapi.Pokemon, error)
	Details(ctx context.Context, items []pokeapi.ListItem) ([]pokeapi.Pokemon, error)
}

type ReviewRepositoryInterface interface {
	ListByPokemon(ctx context.Context, pokemonID int) ([]domain.PokemonReview, error)
	GetByPokemonAndProfile(ctx context.Context, pokemonID int, profileID string) (*domain.PokemonReview, error)
	Create(ctx context.Context, rv *domain.PokemonReview) error
	Update(ctx context.Context, id, profileID, text string, now time.Time) (*domain.PokemonReview, error)
	Delete(ctx context.Context, id, profileID string) error
}

type ProfileReader interface {
	UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type Service struct {
	client   PokeClient
	reviews  ReviewRepositoryInterface
	profiles ProfileReader
	events   realtime.Publisher
}

func NewService(client PokeClient, reviews ReviewRepositoryInterface, profiles ProfileReader, events realtime.Publisher) *Service {
	return &Service{client: client, reviews: reviews, profiles: profiles, events: events}
}

// Browse returns one page of the full index with details resolved, plus
// the total page count derived from the provider's count.
func (s *Service) Browse(ctx context.Context, page int) (*BrowsePage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	list, err := s.client.ListPage(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list pokemons: %w", err)
	}

	pokemons, err := s.client.Details(ctx, list.Results)
	if err != nil {
		return nil, err
	}

	return &BrowsePage{
		Pokemons:    pokemons,
		CurrentPage: page,
		TotalPages:  listx.PageCount(list.Count, pageSize),
	}, nil
}

// Search looks up a single Pokémon by exact name. A blank query falls back
// to the first browse page; a miss returns an empty result with a message
// rather than an error.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		page, err := s.Browse(ctx, 1)
		if err != nil {
			return nil, err
		}
		return &SearchResult{Pokemons: page.Pokemons}, nil
	}

	p, err := s.client.GetByName(ctx, query)
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) {
			return &SearchResult{
				Pokemons: []pokeapi.Pokemon{},
				Message:  fmt.Sprintf("Pokemon %q not found", query),
			}, nil
		}
		return nil, err
	}

	return &SearchResult{Pokemons: []pokeapi.Pokemon{*p}}, nil
}

// ListReviews returns a Pokémon's reviews with usernames joined in.
func (s *Service) ListReviews(ctx context.Context, pokemonID int, sortBy ReviewSort) ([]domain.PokemonReview, error) {
	reviews, err := s.reviews.ListByPokemon(ctx, pokemonID)
	if err != nil {
		return nil, err
	}

	if err := s.attachUsernames(ctx, reviews); err != nil {
		return nil, err
	}

	switch sortBy {
	case SortByUsername:
		reviews = listx.SortByNameFold(reviews, func(r domain.PokemonReview) string { return r.Username })
	default:
		reviews = listx.SortByNewest(reviews, func(r domain.PokemonReview) time.Time { return r.CreatedAt })
	}

	return reviews, nil
}

// CreateReview inserts the principal's review; one per user per Pokémon.
func (s *Service) CreateReview(ctx context.Context, profileID string, pokemonID int, req CreateReviewRequest) (*domain.PokemonReview, error) {
	text := strings.TrimSpace(req.Review)
	if text == "" {
		return nil, ErrEmptyReview
	}

	existing, err := s.reviews.GetByPokemonAndProfile(ctx, pokemonID, profileID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	rv := &domain.PokemonReview{
		ID:        uuid.New().String(),
		PokemonID: pokemonID,
		ProfileID: profileID,
		Review:    text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	if err := s.attachUsername(ctx, rv); err != nil {
		return nil, err
	}

	s.publish(profileID, realtime.EventInsert, rv)
	return rv, nil
}

func (s *Service) UpdateReview(ctx context.Context, profileID, reviewID string, req UpdateReviewRequest) (*domain.PokemonReview, error) {
	text := strings.TrimSpace(req.Review)
	if text == "" {
		return nil, ErrEmptyReview
	}

	rv, err := s.reviews.Update(ctx, reviewID, profileID, text, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if err := s.attachUsername(ctx, rv); err != nil {
		return nil, err
	}

	s.publish(profileID, realtime.EventUpdate, rv)
	return rv, nil
}

func (s *Service) DeleteReview(ctx context.Context, profileID, reviewID string) error {
	if err := s.reviews.Delete(ctx, reviewID, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	s.publish(profileID, realtime.EventDelete, map[string]string{"id": reviewID})
	return nil
}

func (s *Service) publish(profileID string, typ realtime.EventType, record any) {
	if s.events == nil {
		return
	}
	s.events.Publish(profileID, realtime.Event{Table: "pokemon_reviews", Type: typ, Record: record})
}

func (s *Service) attachUsernames(ctx context.Context, reviews []domain.PokemonReview) error {
	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ProfileID)
	}

	names, err := s.profiles.UsernamesByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range reviews {
		if name, ok := names[reviews[i].ProfileID]; ok {
			reviews[i].Username = name
		} else {
			reviews[i].Username = unknownUser
		}
	}
	return nil
}

func (s *Service) attachUsername(ctx context.Context, rv *domain.PokemonReview) error {
	names, err := s.profiles.UsernamesByIDs(ctx, []string{rv.ProfileID})
	if err != nil {
		return err
	}
	if name, ok := names[rv.ProfileID]; ok {
		rv.Username = name
	} else {
		rv.Username = unknownUser
	}
	return nil
}
