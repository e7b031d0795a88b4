package domain

import "time"

type Markdown struct {
	ID        string    `json:"markdown_id" gorm:"column:id;primaryKey"`
	Title     string    `json:"title" gorm:"column:title;not null"`
	Body      string    `json:"body" gorm:"column:body;type:text"`
	ProfileID string    `json:"profile_id" gorm:"column:profile_id;index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Markdown) TableName() string { return "markdowns" }
