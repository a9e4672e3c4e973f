package service

import (
	"promptcorrector/internal/core/normalize"
	"promptcorrector/internal/core/review"
	"promptcorrector/internal/core/tagcodec"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/services/records/domain"
	"promptcorrector/internal/services/records/repo"
)

// toRecord checks a stored row against the record schema
func toRecord(r repo.Row) (domain.Record, error) {
	st, err := review.ParseStatus(r.Status)
	if err != nil {
		return domain.Record{}, perr.Wrapf(err, perr.ErrorCodeValidation, "record %s: bad status", r.ID)
	}
	reviewer := deref(r.Reviewer)
	if (st == review.Pending) != (reviewer == "") {
		return domain.Record{}, perr.Newf(perr.ErrorCodeValidation,
			"record %s: status %s does not match reviewer %q", r.ID, st, reviewer)
	}

	emotions := make([]review.Emotion, 0, len(r.Emotions))
	for _, e := range r.Emotions {
		if !review.ValidEmotion(e) {
			return domain.Record{}, perr.Newf(perr.ErrorCodeValidation, "record %s: unknown emotion %q", r.ID, e)
		}
		emotions = append(emotions, review.Emotion(e))
	}

	tags, err := tagcodec.Decode(r.LanguageTags)
	if err != nil {
		return domain.Record{}, perr.Wrapf(err, perr.ErrorCodeValidation, "record %s: bad language tags", r.ID)
	}

	return domain.Record{
		ID:               r.ID,
		OriginalText:     r.OriginalText,
		CodeSwitchedText: normalize.StripQuotes(r.CodeSwitchedText),
		ReviewedText:     deref(r.ReviewedText),
		Status:           st,
		Reviewer:         reviewer,
		Emotions:         emotions,
		LanguageTags:     tags,
		Timestamp:        r.TS,
		Pulled:           r.Pulled,
		CreatorName:      r.CreatorName,
		Domain:           r.Domain,
		ClaimedBy:        deref(r.ClaimedBy),
		ClaimExpiresAt:   r.ClaimExpiresAt,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
