package domain

import "time"

type TodoPriority string

const (
	PriorityLow    TodoPriority = "LOW"
	PriorityMedium TodoPriority = "MEDIUM"
	PriorityHigh   TodoPriority = "HIGH"
)

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p TodoPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Todo struct {
	ID         string       `json:"id" gorm:"column:id;primaryKey"`
	Task       string       `json:"text" gorm:"column:task;not null"`
	IsComplete bool         `json:"is_done" gorm:"column:is_complete;default:false"`
	Priority   TodoPriority `json:"priority" gorm:"column:priority;default:'LOW'"`
	ProfileID  string       `json:"profile_id" gorm:"column:profile_id;index;not null"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (Todo) TableName() string { return "todos" }
