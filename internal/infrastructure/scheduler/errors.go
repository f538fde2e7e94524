package scheduler

import "errors"

var (
	// ErrInvalidConfig is returned when the scheduler configuration cannot be used
	ErrInvalidConfig = errors.New("invalid scheduler configuration")

	// ErrAlreadyRunning is returned by Start on a running scheduler
	ErrAlreadyRunning = errors.New("scheduler is already running")

	// ErrJobInProgress is returned by RunNow while a generation run is active
	ErrJobInProgress = errors.New("generation job already in progress")
)
