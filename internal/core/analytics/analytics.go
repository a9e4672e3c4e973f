// Package analytics aggregates per-reviewer review progress
package analytics

import (
	"sort"
	"strings"

	"promptcorrector/internal/core/review"
)

// Row is the projection of a record the aggregator needs
type Row struct {
	Reviewer string
	Status   review.Status
	Pulled   bool
}

// ReviewerStats holds one reviewer's counts; Total is approve + edit
type ReviewerStats struct {
	Reviewer string `json:"reviewer"`
	Approve  int    `json:"approve"`
	Edit     int    `json:"edit"`
	Reject   int    `json:"reject"`
	Total    int    `json:"total"`
}

// Summary is the aggregate view. Reviewers is sorted by Total desc, then name
type Summary struct {
	Reviewers  []ReviewerStats `json:"reviewers"`
	Leader     string          `json:"leader,omitempty"`
	SumTotal   int             `json:"sum_total"`
	Unreviewed int             `json:"unreviewed"`
}

// Summarize folds rows into a Summary. Pulled rows are ignored entirely;
// rejects are counted per reviewer but never added to totals
func Summarize(rows []Row) Summary {
	by := make(map[string]*ReviewerStats)
	sum := Summary{Reviewers: []ReviewerStats{}}

	for _, r := range rows {
		if r.Pulled {
			continue
		}
		if r.Status == review.Pending {
			sum.Unreviewed++
			continue
		}
		name := strings.TrimSpace(r.Reviewer)
		if name == "" || !r.Status.Reviewed() {
			continue
		}
		st, ok := by[name]
		if !ok {
			st = &ReviewerStats{Reviewer: name}
			by[name] = st
		}
		switch r.Status {
		case review.Approve:
			st.Approve++
		case review.Edit:
			st.Edit++
		case review.Reject:
			st.Reject++
		}
	}

	for _, st := range by {
		st.Total = st.Approve + st.Edit
		sum.SumTotal += st.Total
		sum.Reviewers = append(sum.Reviewers, *st)
	}
	sort.Slice(sum.Reviewers, func(i, j int) bool {
		a, b := sum.Reviewers[i], sum.Reviewers[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Reviewer < b.Reviewer
	})
	if len(sum.Reviewers) > 0 && sum.Reviewers[0].Total > 0 {
		sum.Leader = sum.Reviewers[0].Reviewer
	}
	return sum
}
