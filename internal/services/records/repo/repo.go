// Package repo provides postgres access for review records
package repo

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"promptcorrector/internal/modkit/repokit"
	"promptcorrector/internal/platform/store"
)

//go:embed schema.sql
var schemaSQL string

// Repo is the persistence surface for stage_four_reviews
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Get(ctx context.Context, id string) (Row, error)
	Candidates(ctx context.Context, owner string, now time.Time, limit int) ([]string, error)
	Claim(ctx context.Context, id, owner string, now, until time.Time) (Row, error)
	Release(ctx context.Context, id, owner string) error
	Submit(ctx context.Context, in SubmitRow, now time.Time) (Row, error)
	Undo(ctx context.Context, id, reviewer string, now time.Time) (Row, error)
	ByReviewer(ctx context.Context, reviewer string, limit int) ([]Row, error)
	CountByReviewer(ctx context.Context, reviewer string) (int, error)
	ScanStatus(ctx context.Context) ([]StatusRow, error)
	UpsertPending(ctx context.Context, xs []PromptRow) error
}

// Row is a stage_four_reviews row as stored
type Row struct {
	ID               string
	OriginalText     string
	CodeSwitchedText string
	ReviewedText     *string
	Status           string
	Reviewer         *string
	Emotions         []string
	LanguageTags     []byte // jsonb
	TS               *time.Time
	Pulled           bool
	CreatorName      string
	Domain           string
	ClaimedBy        *string
	ClaimExpiresAt   *time.Time
}

// SubmitRow carries the columns a review transition writes
type SubmitRow struct {
	ID           string
	Owner        string
	Status       string
	Reviewer     string
	ReviewedText string
	Emotions     []string
	LanguageTags []byte
}

// StatusRow is the analytics projection
type StatusRow struct {
	Reviewer string
	Status   string
	Pulled   bool
}

// PromptRow is one uploaded prompt
type PromptRow struct {
	ID               string
	OriginalText     string
	CodeSwitchedText string
	CreatorName      string
	Domain           string
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const columns = `id, original_text, code_switched_text, reviewed_text, status, reviewer,
emotions, language_tags, ts, pulled, creator_name, domain, claimed_by, claim_expires_at`

func scanRow(r store.Row) (Row, error) {
	var x Row
	err := r.Scan(
		&x.ID, &x.OriginalText, &x.CodeSwitchedText, &x.ReviewedText, &x.Status, &x.Reviewer,
		&x.Emotions, &x.LanguageTags, &x.TS, &x.Pulled, &x.CreatorName, &x.Domain,
		&x.ClaimedBy, &x.ClaimExpiresAt,
	)
	return x, err
}

// EnsureSchema applies schema.sql one statement at a time
func (r *queries) EnsureSchema(ctx context.Context) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := r.q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

func (r *queries) Get(ctx context.Context, id string) (Row, error) {
	return store.One(ctx, r.q, scanRow, `select `+columns+` from stage_four_reviews where id = $1`, id)
}

// Candidates lists pending records owner may claim: unclaimed, lease expired, or already its own
func (r *queries) Candidates(ctx context.Context, owner string, now time.Time, limit int) ([]string, error) {
	const sql = `
select id
from stage_four_reviews
where status = 'pending'
and not pulled
and (claimed_by is null or claimed_by = $1 or claim_expires_at <= $2)
order by id
limit $3`
	return store.Many(ctx, r.q, func(row store.Row) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	}, sql, owner, now, limit)
}

// Claim leases id to owner until the given time; perr.ErrNotFound when another owner won
func (r *queries) Claim(ctx context.Context, id, owner string, now, until time.Time) (Row, error) {
	const sql = `
update stage_four_reviews
set claimed_by = $2, claim_expires_at = $4
where id = $1
and status = 'pending'
and not pulled
and (claimed_by is null or claimed_by = $2 or claim_expires_at <= $3)
returning ` + columns
	return store.One(ctx, r.q, scanRow, sql, id, owner, now, until)
}

// Release drops owner's lease; releasing a lease someone else holds is a no-op
func (r *queries) Release(ctx context.Context, id, owner string) error {
	const sql = `
update stage_four_reviews
set claimed_by = null, claim_expires_at = null
where id = $1 and claimed_by = $2`
	_, err := r.q.Exec(ctx, sql, id, owner)
	return err
}

// Submit moves a pending record to a reviewed status in one compare and set
func (r *queries) Submit(ctx context.Context, in SubmitRow, now time.Time) (Row, error) {
	const sql = `
update stage_four_reviews
set status = $2,
    reviewer = $4,
    reviewed_text = $5,
    emotions = $6,
    language_tags = $7::jsonb,
    ts = $8,
    claimed_by = null,
    claim_expires_at = null
where id = $1
and status = 'pending'
and (claimed_by is null or claimed_by = $3 or claim_expires_at <= $8)
returning ` + columns
	return store.One(ctx, r.q, scanRow, sql,
		in.ID, in.Status, in.Owner, in.Reviewer, in.ReviewedText,
		in.Emotions, string(in.LanguageTags), now,
	)
}

// Undo returns a reviewed record to pending; text, emotions and tags are kept for the next pass
func (r *queries) Undo(ctx context.Context, id, reviewer string, now time.Time) (Row, error) {
	const sql = `
update stage_four_reviews
set status = 'pending',
    reviewer = null,
    ts = $3,
    claimed_by = null,
    claim_expires_at = null
where id = $1
and status <> 'pending'
and reviewer = $2
returning ` + columns
	return store.One(ctx, r.q, scanRow, sql, id, reviewer, now)
}

func (r *queries) ByReviewer(ctx context.Context, reviewer string, limit int) ([]Row, error) {
	const sql = `
select ` + columns + `
from stage_four_reviews
where reviewer = $1
and not pulled
and ts is not null
order by ts desc, id
limit $2`
	return store.Many(ctx, r.q, scanRow, sql, reviewer, limit)
}

func (r *queries) CountByReviewer(ctx context.Context, reviewer string) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*)::int from stage_four_reviews where reviewer = $1`, reviewer)
}

func (r *queries) ScanStatus(ctx context.Context) ([]StatusRow, error) {
	const sql = `select coalesce(reviewer, ''), status, pulled from stage_four_reviews`
	return store.Many(ctx, r.q, func(row store.Row) (StatusRow, error) {
		var x StatusRow
		err := row.Scan(&x.Reviewer, &x.Status, &x.Pulled)
		return x, err
	}, sql)
}

// UpsertPending writes prompts as fresh pending records, overwriting any existing id
func (r *queries) UpsertPending(ctx context.Context, xs []PromptRow) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`insert into stage_four_reviews
	(id, original_text, code_switched_text, creator_name, domain) values `)

	args := make([]any, 0, len(xs)*5)
	for i, p := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*5 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d)", base, base+1, base+2, base+3, base+4)
		args = append(args, p.ID, p.OriginalText, p.CodeSwitchedText, p.CreatorName, p.Domain)
	}
	sb.WriteString(`
on conflict (id) do update set
    original_text = excluded.original_text,
    code_switched_text = excluded.code_switched_text,
    creator_name = excluded.creator_name,
    domain = excluded.domain,
    reviewed_text = null,
    status = 'pending',
    reviewer = null,
    emotions = '{}',
    language_tags = '[]',
    ts = null,
    pulled = false,
    claimed_by = null,
    claim_expires_at = null`)
	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}
