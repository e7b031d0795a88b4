package domain

import "time"

type Food struct {
	ID        string    `json:"food_id" gorm:"column:id;primaryKey"`
	FoodName  string    `json:"food_name" gorm:"column:food_name;not null"`
	ImageURL  string    `json:"image_url" gorm:"column:image_url"`
	ProfileID string    `json:"profile_id" gorm:"column:profile_id;index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Food) TableName() string { return "foods" }

// FoodReview is one user's review of a food item. A user gets at most one
// review per food.
type FoodReview struct {
	ID        string    `json:"review_id" gorm:"column:id;primaryKey"`
	FoodID    string    `json:"food_id" gorm:"column:food_id;index;not null"`
	ProfileID string    `json:"profile_id" gorm:"column:profile_id;index;not null"`
	Review    string    `json:"review" gorm:"column:review;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined from profiles, not stored on this row.
	Username string `json:"username" gorm:"-"`
}

func (FoodReview) TableName() string { return "food_reviews" }
