// Package domain holds DTOs and ports for review sessions
package domain

import (
	"promptcorrector/internal/core/tagcodec"
	records "promptcorrector/internal/services/records/domain"
)

// StartInput opens a review session
type StartInput struct {
	Username string `json:"username" validate:"required,max=64" example:"Adunni"`
}

// ToggleInput flips the tag of one word of the loaded record
type ToggleInput struct {
	Index int `json:"index" validate:"gte=0" example:"2"`
}

// EditInput replaces the text under review
type EditInput struct {
	Text string `json:"text" validate:"required,max=2000" example:"Mo fẹ́ lọ to the market"`
}

// SubmitInput records the reviewer's decision on the loaded record
type SubmitInput struct {
	Action     string   `json:"action" validate:"required,review_action" example:"approve"`
	Emotions   []string `json:"emotions,omitempty" validate:"omitempty,max=7,dive,emotion" example:"Happy"`
	EditedText string   `json:"edited_text,omitempty" validate:"max=2000"`
}

// UndoInput sends one of the reviewer's records back to pending
type UndoInput struct {
	RecordID string `json:"record_id" validate:"required,max=200" example:"Mary140520250115_Set_4_0"`
}

// View is the state of a session as the client renders it
type View struct {
	SessionID   string                 `json:"session_id" example:"4b1c8f0e-3f3b-4a53-9d44-0c4b7f0f3a11"`
	Reviewer    string                 `json:"reviewer" example:"adunni"`
	Record      *records.Record        `json:"record"`
	Tags        []tagcodec.ColoredWord `json:"tags"`
	EditedText  string                 `json:"edited_text,omitempty"`
	ReviewCount int                    `json:"review_count" example:"12"`
}

// NextOutput is the result of load_next; Record is nil when the queue is empty
type NextOutput struct {
	Record  *records.Record        `json:"record"`
	Tags    []tagcodec.ColoredWord `json:"tags"`
	Message string                 `json:"message,omitempty" example:"no pending records"`
}

// ToggleOutput reports whether the index was in range
type ToggleOutput struct {
	Changed bool                   `json:"changed"`
	Tags    []tagcodec.ColoredWord `json:"tags"`
}

// EditOutput carries the retagged edited text
type EditOutput struct {
	EditedText string                 `json:"edited_text"`
	Tags       []tagcodec.ColoredWord `json:"tags"`
}

// ReviewOutput is the stored record after a submit or undo
type ReviewOutput struct {
	Record      records.Record `json:"record"`
	ReviewCount int            `json:"review_count"`
}
