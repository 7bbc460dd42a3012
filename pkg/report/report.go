package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/recordcheck/pkg/record"
)

// Result is the outcome for one user, in document order.
type Result struct {
	Index            int      `json:"index" yaml:"index"`
	ID               int64    `json:"id" yaml:"id"`
	Email            string   `json:"email" yaml:"email"`
	Summary          string   `json:"summary" yaml:"summary"`
	Valid            bool     `json:"valid" yaml:"valid"`
	InvalidFields    []string `json:"invalid_fields" yaml:"invalid_fields"`
	InvalidAddresses []int    `json:"invalid_addresses,omitempty" yaml:"invalid_addresses,omitempty"`
}

// Report summarises one validation run.
type Report struct {
	RunID       uuid.UUID `json:"run_id" yaml:"run_id"`
	Source      string    `json:"source" yaml:"source"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Total       int       `json:"total" yaml:"total"`
	Valid       int       `json:"valid" yaml:"valid"`
	Invalid     int       `json:"invalid" yaml:"invalid"`
	Results     []Result  `json:"results" yaml:"results"`
}

// Option configures Build.
type Option func(*options)

type options struct {
	now   func() time.Time
	runID uuid.UUID
}

// WithClock sets the clock used for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRunID sets the run identifier instead of generating one.
func WithRunID(id uuid.UUID) Option {
	return func(o *options) {
		if id != uuid.Nil {
			o.runID = id
		}
	}
}

// Build validates every user once and collects the outcome.
func Build(source string, users []record.User, opts ...Option) *Report {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if o.runID == uuid.Nil {
		o.runID = uuid.New()
	}

	r := &Report{
		RunID:       o.runID,
		Source:      source,
		GeneratedAt: o.now().UTC(),
		Total:       len(users),
		Results:     make([]Result, 0, len(users)),
	}

	for i, u := range users {
		fields := u.InvalidFields()
		res := Result{
			Index:         i,
			ID:            u.ID,
			Email:         u.Email,
			Summary:       u.String(),
			Valid:         len(fields) == 0,
			InvalidFields: fields,
		}
		if !res.Valid {
			res.InvalidAddresses = u.InvalidAddresses()
			r.Invalid++
		} else {
			r.Valid++
		}
		r.Results = append(r.Results, res)
	}

	return r
}

// Failed returns the results of invalid users.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Valid {
			failed = append(failed, res)
		}
	}
	return failed
}
