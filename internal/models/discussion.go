package models

import (
	"gorm.io/gorm"
)

// DiscussionPost is a single post in a per-problem discussion thread.
type DiscussionPost struct {
	gorm.Model
	ProblemID string `gorm:"index;not null" json:"problemId"`
	UserID    uint   `gorm:"index;not null" json:"userId"`
	Username  string `json:"username"`
	Content   string `gorm:"not null" json:"content"`
}
