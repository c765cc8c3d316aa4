package models

import (
	"gorm.io/gorm"
)

// Solution is a user-submitted solution for a problem.
type Solution struct {
	gorm.Model
	ProblemSlug string `gorm:"index;not null" json:"problemSlug"`
	Language    string `json:"language"`
	Code        string `json:"code"`
	Votes       int    `json:"votes"`
	AuthorID    uint   `gorm:"index;not null" json:"authorId"`
	Author      User   `gorm:"foreignKey:AuthorID" json:"author"`
}

type SubmitSolutionRequest struct {
	ProblemSlug string `json:"problemSlug"`
	Code        string `json:"code"`
	Language    string `json:"language"`
}

type VoteRequest struct {
	SolutionID uint   `json:"solutionId"`
	VoteType   string `json:"voteType"` // "upvote" or "downvote"
}
