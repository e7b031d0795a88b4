package domain

import "time"

// PokemonReview references the external Pokémon by its numeric PokéAPI id;
// there is no local pokemons table.
type PokemonReview struct {
	ID        string    `json:"review_id" gorm:"column:id;primaryKey"`
	PokemonID int       `json:"pokemon_id" gorm:"column:pokemon_id;index;not null"`
	ProfileID string    `json:"profile_id" gorm:"column:profile_id;index;not null"`
	Review    string    `json:"review" gorm:"column:review;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `json:"username" gorm:"-"`
}

func (PokemonReview) TableName() string { return "pokemon_reviews" }
