package schedulers

import (
	"fmt"
	"log"
	"sort"

	"github.com/vikrant987123/linux-scheduler-simulation/internal/core"
)

// ScheduleRoundRobin runs the process set through round robin with the
// given time quantum. The ready queue is FIFO over processes that have
// arrived; a process is granted min(quantum, remaining) ticks per
// dispatch. Processes arriving during a slice are admitted before the
// preempted process re-enters the queue.
func ScheduleRoundRobin(procs []core.Process, timeQuantum int) (*core.Timeline, []*core.ProcessState, error) {
	if timeQuantum <= 0 {
		return nil, nil, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrInvalidInput, timeQuantum)
	}
	states, err := core.NewStates(procs)
	if err != nil {
		return nil, nil, err
	}
	log.Println("running roundRobin algorithm with timeQuantum =", timeQuantum)

	byArrival := make([]*core.ProcessState, len(states))
	copy(byArrival, states)
	sort.Slice(byArrival, func(i, j int) bool {
		if byArrival[i].Arrival != byArrival[j].Arrival {
			return byArrival[i].Arrival < byArrival[j].Arrival
		}
		return byArrival[i].Pid < byArrival[j].Pid
	})

	var (
		timeline  core.Timeline
		ready     []*core.ProcessState
		next      int
		clock     int
		completed int
	)
	admit := func() {
		for next < len(byArrival) && byArrival[next].Arrival <= clock {
			ready = append(ready, byArrival[next])
			next++
		}
	}
	admit()

	for completed < len(states) {
		if len(ready) == 0 {
			// nothing runnable, idle until the next arrival
			nextArrival := byArrival[next].Arrival
			if clock < nextArrival {
				timeline.AppendIdle(clock, nextArrival)
				clock = nextArrival
			}
			admit()
			continue
		}

		p := ready[0]
		ready = ready[1:]
		if p.StartTime == -1 {
			p.StartTime = clock
		}
		run := timeQuantum
		if p.Remaining < run {
			run = p.Remaining
		}
		timeline.AppendRun(p.Pid, clock, clock+run)
		p.Remaining -= run
		clock += run
		// arrivals during the slice go in ahead of the preempted process
		admit()
		if p.Remaining > 0 {
			ready = append(ready, p)
		} else {
			p.Finalize(clock)
			completed++
		}
	}

	sortStatesByPid(states)
	return &timeline, states, nil
}

func sortStatesByPid(states []*core.ProcessState) {
	sort.Slice(states, func(i, j int) bool {
		return states[i].Pid < states[j].Pid
	})
}
