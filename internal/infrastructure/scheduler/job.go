package scheduler

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the status of a scheduled run
type JobStatus string

const (
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusPartial JobStatus = "PARTIAL"
	JobStatusFailed  JobStatus = "FAILED"
)

// ConceptOutcome is the result of generating one concept in a run
type ConceptOutcome struct {
	ConceptID uuid.UUID
	Created   int
	Skipped   int
	Error     string
}

// JobRun records one execution of the generation job
type JobRun struct {
	ID          uuid.UUID
	Period      string
	Status      JobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Outcomes    []ConceptOutcome
}

// Totals sums created and skipped counts over every concept
func (r JobRun) Totals() (created, skipped int) {
	for _, o := range r.Outcomes {
		created += o.Created
		skipped += o.Skipped
	}
	return created, skipped
}

func (r *JobRun) finish(now time.Time) {
	r.CompletedAt = now
	failed := 0
	for _, o := range r.Outcomes {
		if o.Error != "" {
			failed++
		}
	}
	switch {
	case failed == 0:
		r.Status = JobStatusSuccess
	case failed == len(r.Outcomes):
		r.Status = JobStatusFailed
	default:
		r.Status = JobStatusPartial
	}
}
