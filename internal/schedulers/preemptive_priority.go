package schedulers

import (
	"container/heap"
	"log"
	"sort"

	"github.com/vikrant987123/linux-scheduler-simulation/internal/core"
)

// readyQueue is a min-heap over (priority, arrival, pid). The three
// keys form a total order, so pops are never ambiguous and a process
// pushed back after a tick never loses a tie to itself.
type readyQueue []*core.ProcessState

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].Priority != q[j].Priority {
		return q[i].Priority < q[j].Priority
	}
	if q[i].Arrival != q[j].Arrival {
		return q[i].Arrival < q[j].Arrival
	}
	return q[i].Pid < q[j].Pid
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) {
	*q = append(*q, x.(*core.ProcessState))
}

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// SchedulePreemptivePriority runs the process set under preemptive
// priority scheduling, lower priority value first. The running process
// is re-evaluated every tick, so an arriving more-urgent process
// preempts at the next tick boundary.
func SchedulePreemptivePriority(procs []core.Process) (*core.Timeline, []*core.ProcessState, error) {
	states, err := core.NewStates(procs)
	if err != nil {
		return nil, nil, err
	}
	log.Println("running preemptivePriority algorithm")

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
		ready     readyQueue
		next      int
		clock     int
		completed int
	)
	admit := func() {
		for next < len(byArrival) && byArrival[next].Arrival <= clock {
			heap.Push(&ready, byArrival[next])
			next++
		}
	}

	for completed < len(states) {
		admit()
		if ready.Len() == 0 {
			timeline.AppendIdle(clock, byArrival[next].Arrival)
			clock = byArrival[next].Arrival
			continue
		}

		p := heap.Pop(&ready).(*core.ProcessState)
		if p.StartTime == -1 {
			p.StartTime = clock
		}
		// run a single tick so a just-arrived more urgent process can
		// take over at the boundary
		timeline.AppendRun(p.Pid, clock, clock+1)
		p.Remaining--
		clock++
		admit()
		if p.Remaining > 0 {
			heap.Push(&ready, p)
		} else {
			p.Finalize(clock)
			completed++
		}
	}

	sortStatesByPid(states)
	return &timeline, states, nil
}
