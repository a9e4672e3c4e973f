// Package domain defines the review record and the ports the records service exposes
package domain

import (
	"time"

	"promptcorrector/internal/core/review"
	"promptcorrector/internal/core/tagger"
)

// Record is one prompt in the review queue
type Record struct {
	ID               string              `json:"id" example:"Mary140520250115_Set_4_0"`
	OriginalText     string              `json:"original_text" example:"unknown"`
	CodeSwitchedText string              `json:"code_switched_text" example:"Mo fẹ́ go to the market"`
	ReviewedText     string              `json:"reviewed_text,omitempty"`
	Status           review.Status       `json:"status" example:"pending"`
	Reviewer         string              `json:"reviewer,omitempty" example:"adunni"`
	Emotions         []review.Emotion    `json:"emotions"`
	LanguageTags     []tagger.TaggedWord `json:"language_tags"`
	Timestamp        *time.Time          `json:"timestamp,omitempty"`
	Pulled           bool                `json:"pulled"`
	CreatorName      string              `json:"creator_name"`
	Domain           string              `json:"domain" example:"General"`

	// lease held by a review session while the record is loaded
	ClaimedBy      string     `json:"-"`
	ClaimExpiresAt *time.Time `json:"-"`
}

// Submission is a reviewer decision on a claimed record
type Submission struct {
	ID           string
	Owner        string // session holding the claim
	Reviewer     string
	Action       review.Action
	ReviewedText string
	Emotions     []review.Emotion
	Tags         []tagger.TaggedWord
}

// StatusRow is the projection analytics reads
type StatusRow struct {
	Reviewer string
	Status   review.Status
	Pulled   bool
}
