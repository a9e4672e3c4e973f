// Package review defines review statuses, actions and emotion labels, and the
// transition rules between statuses
package review

import (
	"fmt"
	"sort"
	"strings"

	perr "promptcorrector/internal/platform/errors"
	pstrings "promptcorrector/internal/platform/strings"
)

// Status is the review state of a record
type Status string

// Statuses
const (
	Pending Status = "pending"
	Approve Status = "approve"
	Edit    Status = "edit"
	Reject  Status = "reject"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case Pending, Approve, Edit, Reject:
		return true
	}
	return false
}

// Reviewed reports whether s is a terminal reviewed status
func (s Status) Reviewed() bool { return s == Approve || s == Edit || s == Reject }

// ParseStatus validates a stored status
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", perr.Newf(perr.ErrorCodeValidation, "unknown review status %q", s)
	}
	return st, nil
}

// Action is what a reviewer does to a record
type Action string

// Actions; the first three match their target status
const (
	ActionApprove Action = "approve"
	ActionEdit    Action = "edit"
	ActionReject  Action = "reject"
	ActionUndo    Action = "undo"
)

// SubmitActions lists the actions a reviewer may submit from pending
var SubmitActions = []Action{ActionApprove, ActionEdit, ActionReject}

// ParseAction validates a submitted action; undo is not a submit action
func ParseAction(s string) (Action, error) {
	a := Action(pstrings.Fold(s))
	switch a {
	case ActionApprove, ActionEdit, ActionReject:
		return a, nil
	}
	return "", perr.Newf(perr.ErrorCodeValidation, "unknown review action %q", s)
}

// ErrInvalidTransition is returned for any move the state machine does not allow
var ErrInvalidTransition = perr.New(perr.ErrorCodeConflict, "invalid review transition")

// Next returns the status reached by applying a to from.
// From pending only approve, edit and reject are allowed; from each reviewed
// status only undo, which returns to pending
func Next(from Status, a Action) (Status, error) {
	switch {
	case from == Pending && (a == ActionApprove || a == ActionEdit || a == ActionReject):
		return Status(a), nil
	case from.Reviewed() && a == ActionUndo:
		return Pending, nil
	}
	return "", perr.Wrapf(ErrInvalidTransition, perr.ErrorCodeConflict, "cannot %s a %s record", a, from)
}

// Emotion is a label from the fixed emotion vocabulary
type Emotion string

// Emotion vocabulary
const (
	Happy     Emotion = "Happy"
	Sad       Emotion = "Sad"
	Angry     Emotion = "Angry"
	Neutral   Emotion = "Neutral"
	Surprised Emotion = "Surprised"
	Fearful   Emotion = "Fearful"
	Disgusted Emotion = "Disgusted"
)

// Emotions is the vocabulary in display order
var Emotions = []Emotion{Happy, Sad, Angry, Neutral, Surprised, Fearful, Disgusted}

var emotionIndex = func() map[Emotion]int {
	m := make(map[Emotion]int, len(Emotions))
	for i, e := range Emotions {
		m[e] = i
	}
	return m
}()

// ValidEmotion reports whether s names a vocabulary emotion (case sensitive)
func ValidEmotion(s string) bool {
	_, ok := emotionIndex[Emotion(s)]
	return ok
}

// NormalizeEmotions validates labels, drops duplicates and sorts them in
// vocabulary order. An empty selection defaults to Neutral
func NormalizeEmotions(in []string) ([]Emotion, error) {
	if len(in) == 0 {
		return []Emotion{Neutral}, nil
	}
	seen := make(map[Emotion]struct{}, len(in))
	out := make([]Emotion, 0, len(in))
	var bad []string
	for _, s := range in {
		e := Emotion(strings.TrimSpace(s))
		if _, ok := emotionIndex[e]; !ok {
			bad = append(bad, fmt.Sprintf("unknown emotion %q", s))
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	if len(bad) > 0 {
		return nil, perr.NewProblems("invalid emotions", bad)
	}
	sort.Slice(out, func(i, j int) bool { return emotionIndex[out[i]] < emotionIndex[out[j]] })
	return out, nil
}

// EmotionStrings converts labels to plain strings for storage
func EmotionStrings(es []Emotion) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = string(e)
	}
	return out
}
