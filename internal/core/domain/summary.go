package domain

import (
	"encoding/json"
	"time"
)

// Outcome classifies how a single candidate file finished.
type Outcome uint8

const (
	// OutcomeSucceeded indicates the file was transformed and written back.
	OutcomeSucceeded Outcome = iota
	// OutcomeFailed indicates the file could not be read, transformed or written.
	OutcomeFailed
	// OutcomeSkipped indicates the file needed no write, either from a cache hit or a no-op transform.
	OutcomeSkipped
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Reason records which state of the per-file state machine decided the outcome.
type Reason string

const (
	// ReasonCacheHit means the current content matched the cached fingerprint.
	ReasonCacheHit Reason = "cache-hit"
	// ReasonNoOp means the transform returned byte-identical content.
	ReasonNoOp Reason = "no-op"
	// ReasonWritten means the transformed content was written back.
	ReasonWritten Reason = "written"
	// ReasonWouldChange means a check run found content that would be rewritten.
	ReasonWouldChange Reason = "would-change"
	// ReasonReadFailed means the file could not be read or decoded.
	ReasonReadFailed Reason = "read-failed"
	// ReasonTransformFailed means the engine returned an error.
	ReasonTransformFailed Reason = "transform-failed"
	// ReasonTransformTimeout means the engine exceeded the per-file timeout.
	ReasonTransformTimeout Reason = "transform-timeout"
	// ReasonWriteFailed means the transformed content could not be encoded or written.
	ReasonWriteFailed Reason = "write-failed"
)

// FileResult is the outcome of running the state machine on one candidate.
type FileResult struct {
	Candidate Candidate     `json:"candidate"`
	Outcome   Outcome       `json:"outcome"`
	Reason    Reason        `json:"reason"`
	Err       error         `json:"-"`
	Duration  time.Duration `json:"duration"`
}

// MarshalJSON renders Err as a plain message.
func (r FileResult) MarshalJSON() ([]byte, error) {
	type alias FileResult
	out := struct {
		alias
		Error string `json:"error,omitempty"`
	}{alias: alias(r)}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

// Summary accumulates per-outcome counts and the wall-clock window of a run.
type Summary struct {
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
	Started   time.Time `json:"started"`
	Finished  time.Time `json:"finished"`
}

// Record increments the counter that matches outcome.
func (s *Summary) Record(outcome Outcome) {
	switch outcome {
	case OutcomeSucceeded:
		s.Succeeded++
	case OutcomeFailed:
		s.Failed++
	case OutcomeSkipped:
		s.Skipped++
	}
}

// Total returns the number of files that reached an outcome.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed + s.Skipped
}

// Duration returns the elapsed time between Started and Finished.
func (s Summary) Duration() time.Duration {
	if s.Finished.Before(s.Started) {
		return 0
	}
	return s.Finished.Sub(s.Started)
}

// Report is the full result of a run: the summary plus every file result in candidate order.
type Report struct {
	Summary Summary      `json:"summary"`
	Files   []FileResult `json:"files"`
}

// NewReport folds results into a Report.
func NewReport(started, finished time.Time, results []FileResult) *Report {
	r := &Report{
		Summary: Summary{Started: started, Finished: finished},
		Files:   results,
	}
	for _, res := range results {
		r.Summary.Record(res.Outcome)
	}
	return r
}
