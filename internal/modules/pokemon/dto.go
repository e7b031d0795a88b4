package pokemon

import "github.com/1Deeeeyl/multiple-activities/internal/pokeapi"

// BrowsePage is one window of the full Pokémon index.
type BrowsePage struct {
	Pokemons    []pokeapi.Pokemon `json:"pokemons"`
	CurrentPage int               `json:"current_page"`
	TotalPages  int               `json:"total_pages"`
}

// SearchResult carries either the exact match or an empty list with a
// human-readable message; a miss is not an error.
type SearchResult struct {
	Pokemons []pokeapi.Pokemon `json:"pokemons"`
	Message  string            `json:"message,omitempty"`
}

type CreateReviewRequest struct {
	Review string `json:"review" binding:"required"`
}

type UpdateReviewRequest struct {
	Review string `json:"review" binding:"required"`
}

type ReviewSort string

const (
	SortByDate     ReviewSort = "date"
	SortByUsername ReviewSort = "username"
)
