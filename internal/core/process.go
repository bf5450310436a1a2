package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a process set or quantum is rejected
// before any simulation happens.
var ErrInvalidInput = errors.New("invalid input")

// Process is the immutable description of one process: who it is, when
// it arrives, how much CPU it needs and how urgent it is (lower
// priority value = more urgent).
type Process struct {
	Pid      int `json:"process_id"`
	Arrival  int `json:"arrival_time"`
	Burst    int `json:"burst_time"`
	Priority int `json:"priority"`
}

// ProcessState carries the bookkeeping one scheduling run keeps per
// process. StartTime stays -1 until the process is first dispatched.
type ProcessState struct {
	Process
	Remaining  int
	StartTime  int
	Completion int
	Waiting    int
	Turnaround int
}

// NewStates validates a process set and builds fresh run state for it.
// Each call returns independent state, so the same descriptors can be
// fed to several algorithms without the runs observing each other.
func NewStates(procs []Process) ([]*ProcessState, error) {
	if len(procs) == 0 {
		return nil, fmt.Errorf("%w: empty process set", ErrInvalidInput)
	}
	seen := make(map[int]bool, len(procs))
	for _, p := range procs {
		if p.Pid <= 0 {
			return nil, fmt.Errorf("%w: pid %d must be a positive integer", ErrInvalidInput, p.Pid)
		}
		if seen[p.Pid] {
			return nil, fmt.Errorf("%w: duplicate pid %d", ErrInvalidInput, p.Pid)
		}
		seen[p.Pid] = true
		if p.Arrival < 0 {
			return nil, fmt.Errorf("%w: pid %d has negative arrival time %d", ErrInvalidInput, p.Pid, p.Arrival)
		}
		if p.Burst <= 0 {
			return nil, fmt.Errorf("%w: pid %d has non-positive burst time %d", ErrInvalidInput, p.Pid, p.Burst)
		}
	}

	states := make([]*ProcessState, 0, len(procs))
	for _, p := range procs {
		states = append(states, &ProcessState{
			Process:   p,
			Remaining: p.Burst,
			StartTime: -1,
		})
	}
	return states, nil
}

// Finalize records completion at time t and derives turnaround and
// waiting. It must be called exactly once, when Remaining hits zero.
func (s *ProcessState) Finalize(t int) {
	s.Completion = t
	s.Turnaround = s.Completion - s.Arrival
	s.Waiting = s.Turnaround - s.Burst
}
