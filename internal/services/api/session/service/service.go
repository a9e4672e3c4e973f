// Package service implements the review session controller
package service

import (
	"context"
	"strings"
	"time"

	"promptcorrector/internal/core/normalize"
	"promptcorrector/internal/core/review"
	"promptcorrector/internal/core/tagcodec"
	"promptcorrector/internal/core/tagger"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/platform/logger"
	"promptcorrector/internal/platform/metrics"
	pstrings "promptcorrector/internal/platform/strings"
	"promptcorrector/internal/services/api/session/domain"
	records "promptcorrector/internal/services/records/domain"
)

// Service defines the session service contract
type Service interface {
	domain.ServicePort
}

// Records is the slice of the records module a session needs
type Records interface {
	records.QueuePort
	records.ReviewPort
	records.HistoryPort
}

// Config for the session controller
type Config struct {
	SessionTTL time.Duration
	Cleanup    time.Duration // janitor interval for expired sessions
}

const emptyQueueMessage = "no pending records"

var errNoRecord = perr.Conflictf("no record loaded, call next first")

// Svc implements the session controller
type Svc struct {
	records Records
	tagger  *tagger.Tagger
	store   *sessionStore
	metrics *metrics.Metrics
	now     func() time.Time
}

// New constructs a session controller; m may be nil
func New(recs Records, tg *tagger.Tagger, cfg Config, m *metrics.Metrics) *Svc {
	if recs == nil {
		panic("session.Service requires records ports")
	}
	if tg == nil {
		panic("session.Service requires a tagger")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.Cleanup <= 0 {
		cfg.Cleanup = time.Minute
	}
	s := &Svc{
		records: recs,
		tagger:  tg,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
	s.store = newSessionStore(cfg.SessionTTL, cfg.Cleanup, s.evicted)
	return s
}

// evicted runs for every session leaving the cache
func (v *Svc) evicted(s *session) {
	if s.released.Load() {
		v.metrics.SessionEnded("released")
		return
	}
	v.metrics.SessionEnded("expired")

	s.mu.Lock()
	rec := s.record
	s.mu.Unlock()
	if rec == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := v.records.Release(ctx, rec.ID, s.id); err != nil {
		logger.Named("session").Warn().Err(err).Str("record_id", rec.ID).Msg("release claim of expired session")
	}
}

// with runs fn holding the session lock, with the reviewer on the request logger
func (v *Svc) with(ctx context.Context, id string, fn func(context.Context, *session) error) error {
	s, err := v.store.get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(logger.WithRequest(ctx, "", s.reviewer), s)
}

// Start opens a session for a free text username
func (v *Svc) Start(ctx context.Context, in domain.StartInput) (domain.View, error) {
	reviewer := pstrings.Fold(in.Username)
	if reviewer == "" {
		return domain.View{}, perr.WithField(perr.New(perr.ErrorCodeValidation, "username is required"), "username")
	}
	s := v.store.create(reviewer, v.now())
	v.metrics.SessionStarted()
	logger.C(ctx).Debug().Str("session_id", s.id).Str("reviewer", reviewer).Msg("session: started")

	var out domain.View
	err := v.with(ctx, s.id, func(ctx context.Context, s *session) (err error) {
		out, err = v.view(ctx, s)
		return err
	})
	return out, err
}

// View returns the current session state
func (v *Svc) View(ctx context.Context, id string) (domain.View, error) {
	var out domain.View
	err := v.with(ctx, id, func(ctx context.Context, s *session) (err error) {
		out, err = v.view(ctx, s)
		return err
	})
	return out, err
}

func (v *Svc) view(ctx context.Context, s *session) (domain.View, error) {
	n, err := v.records.ReviewCount(ctx, s.reviewer)
	if err != nil {
		return domain.View{}, err
	}
	return domain.View{
		SessionID:   s.id,
		Reviewer:    s.reviewer,
		Record:      s.record,
		Tags:        tagcodec.Colorize(s.tags),
		EditedText:  s.editedText,
		ReviewCount: n,
	}, nil
}

// Release ends the session and frees the claim on its loaded record
func (v *Svc) Release(ctx context.Context, id string) error {
	s, err := v.store.get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	rec := s.record
	s.clear()
	s.mu.Unlock()

	v.store.delete(s)
	if rec == nil {
		return nil
	}
	return v.records.Release(ctx, rec.ID, s.id)
}

// Next loads a record into the session; a loaded record is kept until submitted
func (v *Svc) Next(ctx context.Context, id string) (domain.NextOutput, error) {
	var out domain.NextOutput
	err := v.with(ctx, id, func(ctx context.Context, s *session) error {
		if s.record == nil {
			rec, err := v.records.ClaimNext(ctx, s.id)
			if err != nil {
				return err
			}
			if rec == nil {
				out = domain.NextOutput{Tags: []tagcodec.ColoredWord{}, Message: emptyQueueMessage}
				return nil
			}
			s.record = rec
			s.tags = v.tagger.Retag(rec.LanguageTags, rec.CodeSwitchedText)
			s.editedText = ""
			logger.C(ctx).Debug().Str("record_id", rec.ID).Msg("session: loaded")
		}
		out = domain.NextOutput{Record: s.record, Tags: tagcodec.Colorize(s.tags)}
		return nil
	})
	return out, err
}

// Toggle flips en and yo on one word; an out of range index changes nothing
func (v *Svc) Toggle(ctx context.Context, id string, in domain.ToggleInput) (domain.ToggleOutput, error) {
	var out domain.ToggleOutput
	err := v.with(ctx, id, func(_ context.Context, s *session) error {
		if s.record == nil {
			return errNoRecord
		}
		tags, changed := tagger.Toggle(s.tags, in.Index)
		s.tags = tags
		out = domain.ToggleOutput{Changed: changed, Tags: tagcodec.Colorize(tags)}
		return nil
	})
	return out, err
}

// Edit sets the pending edited text and retags it, keeping toggles on unchanged words
func (v *Svc) Edit(ctx context.Context, id string, in domain.EditInput) (domain.EditOutput, error) {
	text := cleanText(in.Text)
	if text == "" {
		return domain.EditOutput{}, perr.WithField(perr.New(perr.ErrorCodeValidation, "text must contain a word"), "text")
	}
	var out domain.EditOutput
	err := v.with(ctx, id, func(_ context.Context, s *session) error {
		if s.record == nil {
			return errNoRecord
		}
		s.tags = v.tagger.Retag(s.tags, text)
		s.editedText = text
		out = domain.EditOutput{EditedText: text, Tags: tagcodec.Colorize(s.tags)}
		return nil
	})
	return out, err
}

// Submit commits the reviewer's decision on the loaded record
func (v *Svc) Submit(ctx context.Context, id string, in domain.SubmitInput) (domain.ReviewOutput, error) {
	action, err := review.ParseAction(in.Action)
	if err != nil {
		return domain.ReviewOutput{}, perr.WithField(err, "action")
	}
	emotions, err := review.NormalizeEmotions(in.Emotions)
	if err != nil {
		return domain.ReviewOutput{}, perr.WithField(err, "emotions")
	}

	var out domain.ReviewOutput
	err = v.with(ctx, id, func(ctx context.Context, s *session) error {
		if s.record == nil {
			return errNoRecord
		}
		text, tags, err := v.finalText(s, action, cleanText(in.EditedText))
		if err != nil {
			return err
		}

		rec, err := v.records.Submit(ctx, records.Submission{
			ID:           s.record.ID,
			Owner:        s.id,
			Reviewer:     s.reviewer,
			Action:       action,
			ReviewedText: text,
			Emotions:     emotions,
			Tags:         tags,
		})
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeConflict) || perr.IsCode(err, perr.ErrorCodeNotFound) {
				// the record can no longer be submitted from here
				s.clear()
			}
			return err
		}
		s.clear()

		n, err := v.records.ReviewCount(ctx, s.reviewer)
		if err != nil {
			return err
		}
		out = domain.ReviewOutput{Record: rec, ReviewCount: n}
		return nil
	})
	return out, err
}

// finalText picks the reviewed text and the tags aligned with it
func (v *Svc) finalText(s *session, action review.Action, override string) (string, []tagger.TaggedWord, error) {
	if action != review.ActionEdit {
		text := s.record.CodeSwitchedText
		if s.editedText == "" {
			return text, s.tags, nil
		}
		// a pending edit is discarded
		return text, v.tagger.Retag(s.tags, text), nil
	}

	text, tags := s.editedText, s.tags
	if override != "" && override != text {
		text, tags = override, v.tagger.Retag(s.tags, override)
	}
	if text == "" {
		return "", nil, perr.WithField(perr.New(perr.ErrorCodeValidation, "edit requires edited_text"), "edited_text")
	}
	return text, tags, nil
}

// Undo sends one of this reviewer's records back to pending
func (v *Svc) Undo(ctx context.Context, id string, in domain.UndoInput) (domain.ReviewOutput, error) {
	var out domain.ReviewOutput
	err := v.with(ctx, id, func(ctx context.Context, s *session) error {
		rec, err := v.records.Undo(ctx, strings.TrimSpace(in.RecordID), s.reviewer)
		if err != nil {
			return err
		}
		n, err := v.records.ReviewCount(ctx, s.reviewer)
		if err != nil {
			return err
		}
		out = domain.ReviewOutput{Record: rec, ReviewCount: n}
		return nil
	})
	return out, err
}

func cleanText(s string) string {
	return strings.TrimSpace(normalize.StripQuotes(normalize.Sanitize(s)))
}
