// Package service implements the review record store over postgres
package service

import (
	"context"
	"math/rand/v2"
	"time"

	"promptcorrector/internal/core/batch"
	"promptcorrector/internal/core/review"
	"promptcorrector/internal/core/tagcodec"
	"promptcorrector/internal/modkit/repokit"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/platform/logger"
	"promptcorrector/internal/platform/metrics"
	"promptcorrector/internal/services/records/domain"
	"promptcorrector/internal/services/records/repo"
)

// Config for the records service
type Config struct {
	ClaimTTL    time.Duration // lease length for a loaded record
	BatchSize   int           // candidates fetched per claim attempt
	UpsertChunk int           // rows per insert statement on upload
}

func (c Config) withDefaults() Config {
	if c.ClaimTTL <= 0 {
		c.ClaimTTL = 15 * time.Minute
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 20
	}
	if c.UpsertChunk <= 0 {
		c.UpsertChunk = 500
	}
	return c
}

// Svc implements domain.Port
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config

	Metrics *metrics.Metrics
	Now     func() time.Time
	Shuffle func([]string)
}

var _ domain.Port = (*Svc)(nil)

// New constructs a records service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("records.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("records.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		cfg:    cfg.withDefaults(),
		Now:    func() time.Time { return time.Now().UTC() },
		Shuffle: func(ids []string) {
			rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		},
	}
}

// EnsureSchema creates the table and indexes if missing
func (s *Svc) EnsureSchema(ctx context.Context) error {
	return dbErr(s.Repo.EnsureSchema(ctx), "ensure schema")
}

// ClaimNext leases one random eligible record out of the next batch of candidates
func (s *Svc) ClaimNext(ctx context.Context, owner string) (*domain.Record, error) {
	now := s.Now()
	ids, err := s.Repo.Candidates(ctx, owner, now, s.cfg.BatchSize)
	if err != nil {
		s.Metrics.RecordClaim(metrics.ResultError)
		return nil, dbErr(err, "list candidates")
	}
	if len(ids) == 0 {
		s.Metrics.RecordClaim(metrics.ResultEmpty)
		return nil, nil
	}
	s.Shuffle(ids)

	for _, id := range ids {
		row, err := s.Repo.Claim(ctx, id, owner, now, now.Add(s.cfg.ClaimTTL))
		if isNotFound(err) {
			// another session won this one
			s.Metrics.RecordClaim(metrics.ResultConflict)
			continue
		}
		if err != nil {
			s.Metrics.RecordClaim(metrics.ResultError)
			return nil, dbErr(err, "claim record")
		}
		rec, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		s.Metrics.RecordClaim(metrics.ResultOK)
		logger.C(ctx).Debug().Str("record_id", rec.ID).Str("owner", owner).Msg("records: claimed")
		return &rec, nil
	}
	return nil, nil
}

// Release drops owner's lease on id
func (s *Svc) Release(ctx context.Context, id, owner string) error {
	return dbErr(s.Repo.Release(ctx, id, owner), "release record")
}

// Get loads one record
func (s *Svc) Get(ctx context.Context, id string) (domain.Record, error) {
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return domain.Record{}, perr.NotFoundf("record %s not found", id)
		}
		return domain.Record{}, dbErr(err, "get record")
	}
	return toRecord(row)
}

// Submit applies approve, edit or reject to a pending record the submitter may still hold
func (s *Svc) Submit(ctx context.Context, in domain.Submission) (domain.Record, error) {
	next, err := review.Next(review.Pending, in.Action)
	if err != nil {
		s.Metrics.RecordTransition(string(in.Action), metrics.ResultInvalid)
		return domain.Record{}, err
	}
	tags, err := tagcodec.Encode(in.Tags)
	if err != nil {
		s.Metrics.RecordTransition(string(in.Action), metrics.ResultInvalid)
		return domain.Record{}, err
	}

	row, err := s.Repo.Submit(ctx, repo.SubmitRow{
		ID:           in.ID,
		Owner:        in.Owner,
		Status:       string(next),
		Reviewer:     in.Reviewer,
		ReviewedText: in.ReviewedText,
		Emotions:     review.EmotionStrings(in.Emotions),
		LanguageTags: tags,
	}, s.Now())
	if isNotFound(err) {
		s.Metrics.RecordTransition(string(in.Action), metrics.ResultConflict)
		return domain.Record{}, s.staleSubmit(ctx, in.ID)
	}
	if err != nil {
		s.Metrics.RecordTransition(string(in.Action), metrics.ResultError)
		return domain.Record{}, dbErr(err, "submit review")
	}

	s.Metrics.RecordTransition(string(in.Action), metrics.ResultOK)
	logger.C(ctx).Info().
		Str("record_id", in.ID).
		Str("reviewer", in.Reviewer).
		Str("status", string(next)).
		Msg("records: reviewed")
	return toRecord(row)
}

// staleSubmit explains why the compare and set matched nothing
func (s *Svc) staleSubmit(ctx context.Context, id string) error {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if cur.Status != review.Pending {
		return perr.Conflictf("record %s was already reviewed (%s)", id, cur.Status)
	}
	return perr.Conflictf("record %s is claimed by another session", id)
}

// Undo returns reviewer's own reviewed record to pending
func (s *Svc) Undo(ctx context.Context, id, reviewer string) (domain.Record, error) {
	const action = string(review.ActionUndo)

	cur, err := s.Get(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	if _, err := review.Next(cur.Status, review.ActionUndo); err != nil {
		s.Metrics.RecordTransition(action, metrics.ResultConflict)
		return domain.Record{}, err
	}
	if cur.Reviewer != reviewer {
		s.Metrics.RecordTransition(action, metrics.ResultForbidden)
		return domain.Record{}, perr.Forbiddenf("record %s was reviewed by someone else", id)
	}

	row, err := s.Repo.Undo(ctx, id, reviewer, s.Now())
	if isNotFound(err) {
		s.Metrics.RecordTransition(action, metrics.ResultConflict)
		return domain.Record{}, perr.Conflictf("record %s changed before undo", id)
	}
	if err != nil {
		s.Metrics.RecordTransition(action, metrics.ResultError)
		return domain.Record{}, dbErr(err, "undo review")
	}

	s.Metrics.RecordTransition(action, metrics.ResultOK)
	logger.C(ctx).Info().Str("record_id", id).Str("reviewer", reviewer).Msg("records: undone")
	return toRecord(row)
}

// History lists reviewer's most recent reviews, newest first
func (s *Svc) History(ctx context.Context, reviewer string, limit int) ([]domain.Record, error) {
	rows, err := s.Repo.ByReviewer(ctx, reviewer, limit)
	if err != nil {
		return nil, dbErr(err, "list history")
	}
	out := make([]domain.Record, 0, len(rows))
	for _, r := range rows {
		rec, err := toRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// ReviewCount counts every record reviewer currently owns a decision on
func (s *Svc) ReviewCount(ctx context.Context, reviewer string) (int, error) {
	n, err := s.Repo.CountByReviewer(ctx, reviewer)
	return n, dbErr(err, "count reviews")
}

// StatusRows scans reviewer, status and pulled for every record
func (s *Svc) StatusRows(ctx context.Context) ([]domain.StatusRow, error) {
	rows, err := s.Repo.ScanStatus(ctx)
	if err != nil {
		return nil, dbErr(err, "scan status")
	}
	out := make([]domain.StatusRow, 0, len(rows))
	for _, r := range rows {
		st, err := review.ParseStatus(r.Status)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.StatusRow{Reviewer: r.Reviewer, Status: st, Pulled: r.Pulled})
	}
	return out, nil
}

// UpsertBatch writes prompts as pending records in one transaction
func (s *Svc) UpsertBatch(ctx context.Context, prompts []batch.Prompt) (int, error) {
	if len(prompts) == 0 {
		return 0, nil
	}
	rows := make([]repo.PromptRow, 0, len(prompts))
	for _, p := range prompts {
		rows = append(rows, repo.PromptRow{
			ID:               p.ID,
			OriginalText:     p.OriginalText,
			CodeSwitchedText: p.CodeSwitchedText,
			CreatorName:      p.CreatorName,
			Domain:           p.Domain,
		})
	}

	err := repokit.WithTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		for start := 0; start < len(rows); start += s.cfg.UpsertChunk {
			end := min(start+s.cfg.UpsertChunk, len(rows))
			if err := r.UpsertPending(ctx, rows[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, dbErr(err, "upsert batch")
	}
	return len(rows), nil
}

func isNotFound(err error) bool {
	return err != nil && perr.IsCode(err, perr.ErrorCodeNotFound)
}

// dbErr maps driver errors; errors already carrying a code pass through
func dbErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.FromPostgres(err, msg)
}
