package pokemon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	"github.com/1Deeeeyl/multiple-activities/internal/pokeapi"
)

// fakePokeClient serves canned index pages and a name lookup table.
type fakePokeClient struct {
	count      int
	results    []pokeapi.ListItem
	byName     map[string]pokeapi.Pokemon
	lastOffset int
	lastLimit  int
}

func (f *fakePokeClient) ListPage(ctx context.Context, limit, offset int) (*pokeapi.ListResponse, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	return &pokeapi.ListResponse{Count: f.count, Results: f.results}, nil
}

func (f *fakePokeClient) GetByName(ctx context.Context, name string) (*pokeapi.Pokemon, error) {
	p, ok := f.byName[name]
	if !ok {
		return nil, pokeapi.ErrNotFound
	}
	return &p, nil
}

func (f *fakePokeClient) Details(ctx context.Context, items []pokeapi.ListItem) ([]pokeapi.Pokemon, error) {
	out := make([]pokeapi.Pokemon, 0, len(items))
	for _, item := range items {
		p, err := f.GetByName(ctx, item.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListByPokemon(ctx context.Context, pokemonID int) ([]domain.PokemonReview, error) {
	args := m.Called(ctx, pokemonID)
	return args.Get(0).([]domain.PokemonReview), args.Error(1)
}

func (m *MockReviewRepository) GetByPokemonAndProfile(ctx context.Context, pokemonID int, profileID string) (*domain.PokemonReview, error) {
	args := m.Called(ctx, pokemonID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PokemonReview), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.PokemonReview) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, id, profileID, text string, now time.Time) (*domain.PokemonReview, error) {
	args := m.Called(ctx, id, profileID, text, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PokemonReview), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id, profileID string) error {
	args := m.Called(ctx, id, profileID)
	return args.Error(0)
}

type MockProfileReader struct {
	mock.Mock
}

func (m *MockProfileReader) UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[string]string), args.Error(1)
}

func newFakeClient() *fakePokeClient {
	return &fakePokeClient{
		count: 1302,
		results: []pokeapi.ListItem{
			{Name: "bulbasaur"},
			{Name: "ivysaur"},
		},
		byName: map[string]pokeapi.Pokemon{
			"bulbasaur": {ID: 1, Name: "bulbasaur", ImageURL: "http://img/1.png"},
			"ivysaur":   {ID: 2, Name: "ivysaur", ImageURL: "http://img/2.png"},
		},
	}
}

func TestBrowse_PageWindowAndTotal(t *testing.T) {
	client := newFakeClient()
	svc := NewService(client, nil, nil, nil)

	page, err := svc.Browse(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 50, client.lastLimit)
	assert.Equal(t, 100, client.lastOffset)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 27, page.TotalPages) // ceil(1302/50)
	require.Len(t, page.Pokemons, 2)
	assert.Equal(t, "bulbasaur", page.Pokemons[0].Name)
}

func TestBrowse_RejectsNonPositivePage(t *testing.T) {
	svc := NewService(newFakeClient(), nil, nil, nil)

	_, err := svc.Browse(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestSearch_BlankFallsBackToFirstPage(t *testing.T) {
	client := newFakeClient()
	svc := NewService(client, nil, nil, nil)

	result, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, 0, client.lastOffset)
	assert.Len(t, result.Pokemons, 2)
	assert.Empty(t, result.Message)
}

func TestSearch_ExactMatch(t *testing.T) {
	svc := NewService(newFakeClient(), nil, nil, nil)

	result, err := svc.Search(context.Background(), "ivysaur")

	require.NoError(t, err)
	require.Len(t, result.Pokemons, 1)
	assert.Equal(t, 2, result.Pokemons[0].ID)
}

func TestSearch_MissIsNotAnError(t *testing.T) {
	svc := NewService(newFakeClient(), nil, nil, nil)

	result, err := svc.Search(context.Background(), "missingno")

	require.NoError(t, err)
	assert.Empty(t, result.Pokemons)
	assert.Equal(t, `Pokemon "missingno" not found`, result.Message)
}

func TestCreateReview_OnePerUserPerPokemon(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("GetByPokemonAndProfile", mock.Anything, 1, "user-1").
		Return(&domain.PokemonReview{ID: "existing"}, nil)

	svc := NewService(newFakeClient(), reviews, new(MockProfileReader), nil)

	_, err := svc.CreateReview(context.Background(), "user-1", 1, CreateReviewRequest{Review: "Great"})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_EmptyTextFailsFast(t *testing.T) {
	reviews := new(MockReviewRepository)
	svc := NewService(newFakeClient(), reviews, new(MockProfileReader), nil)

	_, err := svc.CreateReview(context.Background(), "user-1", 1, CreateReviewRequest{Review: "   "})

	assert.ErrorIs(t, err, ErrEmptyReview)
	reviews.AssertNotCalled(t, "GetByPokemonAndProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReview_JoinsUsername(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("GetByPokemonAndProfile", mock.Anything, 1, "user-1").Return(nil, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.PokemonReview")).Return(nil)

	profiles := new(MockProfileReader)
	profiles.On("UsernamesByIDs", mock.Anything, []string{"user-1"}).
		Return(map[string]string{"user-1": "ash"}, nil)

	svc := NewService(newFakeClient(), reviews, profiles, nil)

	rv, err := svc.CreateReview(context.Background(), "user-1", 1, CreateReviewRequest{Review: "  Great starter  "})

	require.NoError(t, err)
	assert.Equal(t, "Great starter", rv.Review)
	assert.Equal(t, 1, rv.PokemonID)
	assert.Equal(t, "ash", rv.Username)
	assert.NotEmpty(t, rv.ID)
}

func TestListReviews_UsernameSortFoldsCase(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("ListByPokemon", mock.Anything, 1).Return([]domain.PokemonReview{
		{ID: "r1", ProfileID: "p1"},
		{ID: "r2", ProfileID: "p2"},
		{ID: "r3", ProfileID: "p3"},
	}, nil)

	profiles := new(MockProfileReader)
	profiles.On("UsernamesByIDs", mock.Anything, []string{"p1", "p2", "p3"}).
		Return(map[string]string{"p1": "Zoe", "p2": "adam"}, nil)

	svc := NewService(newFakeClient(), reviews, profiles, nil)

	got, err := svc.ListReviews(context.Background(), 1, SortByUsername)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "adam", got[0].Username)
	assert.Equal(t, "Unknown User", got[1].Username) // p3 has no profile row
	assert.Equal(t, "Zoe", got[2].Username)
}

func TestListReviews_DefaultsToNewestFirst(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	reviews := new(MockReviewRepository)
	reviews.On("ListByPokemon", mock.Anything, 1).Return([]domain.PokemonReview{
		{ID: "old", ProfileID: "p1", CreatedAt: older},
		{ID: "new", ProfileID: "p1", CreatedAt: newer},
	}, nil)

	profiles := new(MockProfileReader)
	profiles.On("UsernamesByIDs", mock.Anything, mock.Anything).
		Return(map[string]string{"p1": "ash"}, nil)

	svc := NewService(newFakeClient(), reviews, profiles, nil)

	got, err := svc.ListReviews(context.Background(), 1, SortByDate)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
}

func TestUpdateReview_NotFound(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("Update", mock.Anything, "missing", "user-1", "text", mock.AnythingOfType("time.Time")).
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(newFakeClient(), reviews, new(MockProfileReader), nil)

	_, err := svc.UpdateReview(context.Background(), "user-1", "missing", UpdateReviewRequest{Review: "text"})

	assert.ErrorIs(t, err, ErrReviewNotFound)
}
