package domain

import "time"

// Profile carries the public display name for a user. Review listings join
// the username from here by profile_id.
type Profile struct {
	ProfileID string    `json:"profile_id" gorm:"column:profile_id;primaryKey"`
	Username  string    `json:"username" gorm:"column:username;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
