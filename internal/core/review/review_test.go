package review

import (
	"errors"
	"testing"

	perr "promptcorrector/internal/platform/errors"
)

func TestNext_Reachability(t *testing.T) {
	t.Parallel()
	statuses := []Status{Pending, Approve, Edit, Reject}
	actions := []Action{ActionApprove, ActionEdit, ActionReject, ActionUndo}

	allowed := map[Status]map[Action]Status{
		Pending: {ActionApprove: Approve, ActionEdit: Edit, ActionReject: Reject},
		Approve: {ActionUndo: Pending},
		Edit:    {ActionUndo: Pending},
		Reject:  {ActionUndo: Pending},
	}

	for _, from := range statuses {
		for _, a := range actions {
			got, err := Next(from, a)
			want, ok := allowed[from][a]
			if ok {
				if err != nil || got != want {
					t.Fatalf("Next(%s,%s) = %s,%v want %s", from, a, got, err, want)
				}
				continue
			}
			if err == nil {
				t.Fatalf("Next(%s,%s) should fail, got %s", from, a, got)
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("Next(%s,%s) error should wrap ErrInvalidTransition: %v", from, a, err)
			}
			if perr.HTTPStatus(err) != 409 {
				t.Fatalf("invalid transition should map to 409, got %d", perr.HTTPStatus(err))
			}
		}
	}
}

func TestNext_UnknownStatus(t *testing.T) {
	if _, err := Next(Status("archived"), ActionUndo); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParse(t *testing.T) {
	if a, err := ParseAction(" Approve "); err != nil || a != ActionApprove {
		t.Fatalf("ParseAction = %q, %v", a, err)
	}
	for _, bad := range []string{"undo", "", "publish"} {
		if _, err := ParseAction(bad); err == nil {
			t.Fatalf("ParseAction(%q) should fail", bad)
		}
	}
	if _, err := ParseStatus("edit"); err != nil {
		t.Fatalf("ParseStatus(edit): %v", err)
	}
	if _, err := ParseStatus("Edit"); err == nil {
		t.Fatalf("ParseStatus is case sensitive")
	}
}

func TestNormalizeEmotions(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []Emotion
		wantErr int
	}{
		{name: "default neutral", in: nil, want: []Emotion{Neutral}},
		{name: "dedup and order", in: []string{"Sad", "Happy", "Sad"}, want: []Emotion{Happy, Sad}},
		{name: "trimmed", in: []string{" Angry "}, want: []Emotion{Angry}},
		{name: "unknown", in: []string{"Happy", "Bored", "Meh"}, wantErr: 2},
		{name: "case sensitive", in: []string{"happy"}, wantErr: 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeEmotions(tc.in)
			if tc.wantErr > 0 {
				if err == nil {
					t.Fatalf("expected error")
				}
				if len(perr.ProblemsOf(err)) != tc.wantErr {
					t.Fatalf("problems = %v", perr.ProblemsOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v want %v", got, tc.want)
				}
			}
		})
	}
}
