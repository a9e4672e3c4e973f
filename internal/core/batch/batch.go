// Package batch turns a header-less single-column prompt table into new
// pending review records. Validation collects every problem before failing
package batch

import (
	"fmt"
	"strings"
	"unicode"

	"promptcorrector/internal/core/normalize"
	perr "promptcorrector/internal/platform/errors"
)

// Defaults applied to uploaded prompts
const (
	UnknownOriginal = "unknown"
	DefaultDomain   = "General"
)

// Params carries the provenance of one upload
type Params struct {
	Creator     string // short code used in IDs, e.g. Mary140520250115
	SetNum      string // batch number
	Domain      string // defaults to General
	CreatorName string // display name, defaults to Creator
}

// Prompt is one processed row ready to be stored as a pending record
type Prompt struct {
	ID               string `json:"id"`
	OriginalText     string `json:"original_text"`
	CodeSwitchedText string `json:"code_switched_text"`
	CreatorName      string `json:"creator_name"`
	Domain           string `json:"domain"`
}

// ID formats a record id for the row at index i of a set
func ID(creator, setNum string, i int) string {
	return fmt.Sprintf("%s_Set_%s_%d", creator, setNum, i)
}

// Build validates rows and params and returns one Prompt per row in order.
// Every problem found is reported in a single Validation error
func Build(rows [][]string, p Params) ([]Prompt, error) {
	var probs perr.ProblemList

	p.Creator = strings.TrimSpace(p.Creator)
	p.SetNum = strings.TrimSpace(p.SetNum)
	p.Domain = strings.TrimSpace(p.Domain)
	p.CreatorName = strings.TrimSpace(p.CreatorName)

	switch {
	case p.Creator == "":
		probs.Add("creator is required")
	case strings.IndexFunc(p.Creator, unicode.IsSpace) >= 0:
		probs.Add("creator must not contain spaces")
	}
	switch {
	case p.SetNum == "":
		probs.Add("set number is required")
	case strings.IndexFunc(p.SetNum, unicode.IsSpace) >= 0:
		probs.Add("set number must not contain spaces")
	}
	if p.Domain == "" {
		p.Domain = DefaultDomain
	}
	if p.CreatorName == "" {
		p.CreatorName = p.Creator
	}

	if len(rows) == 0 {
		probs.Add("the file must contain at least one prompt")
	}

	out := make([]Prompt, 0, len(rows))
	for i, row := range rows {
		switch {
		case len(row) == 0:
			probs.Addf("row %d: missing value", i+1)
			continue
		case len(row) > 1:
			probs.Addf("row %d: expected exactly one column, got %d", i+1, len(row))
			continue
		}
		text := normalize.StripQuotes(normalize.Sanitize(row[0]))
		if text == "" {
			probs.Addf("row %d: missing value", i+1)
			continue
		}
		out = append(out, Prompt{
			ID:               ID(p.Creator, p.SetNum, i),
			OriginalText:     UnknownOriginal,
			CodeSwitchedText: text,
			CreatorName:      p.CreatorName,
			Domain:           p.Domain,
		})
	}

	if err := probs.Err("upload rejected"); err != nil {
		return nil, err
	}
	return out, nil
}
