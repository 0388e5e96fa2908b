package domain

import "time"

// StepStatus is the outcome of a recorded step.
type StepStatus int

const (
	// StepRunning means the step started and has not finished.
	StepRunning StepStatus = iota
	// StepDone means the step finished successfully.
	StepDone
	// StepCached means the step was skipped because its result was up to date.
	StepCached
	// StepFailed means the step returned an error.
	StepFailed
)

// StepResult summarizes one recorded step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Duration time.Duration
}
