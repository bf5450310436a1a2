package core

// Interval is one slot of the execution timeline: either a process run
// or an idle gap. Idle intervals carry no pid; modelling them as a
// variant instead of a sentinel pid keeps real identities unambiguous.
type Interval struct {
	Pid   int
	Idle  bool
	Start int
	End   int
}

// SamePid reports whether two intervals belong to the same identity,
// treating idle as an identity distinct from every process.
func (iv Interval) SamePid(other Interval) bool {
	if iv.Idle || other.Idle {
		return iv.Idle && other.Idle
	}
	return iv.Pid == other.Pid
}

// Timeline is the append-only interval sequence an engine produces.
// Appends must be contiguous; adjacent appends with the same identity
// are coalesced into one interval, so a process dispatched tick by
// tick shows up as a single run.
type Timeline struct {
	intervals []Interval
}

func (t *Timeline) append(iv Interval) {
	if n := len(t.intervals); n > 0 && t.intervals[n-1].SamePid(iv) && t.intervals[n-1].End == iv.Start {
		t.intervals[n-1].End = iv.End
		return
	}
	t.intervals = append(t.intervals, iv)
}

// AppendRun extends the timeline with an execution slot for pid.
func (t *Timeline) AppendRun(pid, start, end int) {
	t.append(Interval{Pid: pid, Start: start, End: end})
}

// AppendIdle extends the timeline with an idle gap.
func (t *Timeline) AppendIdle(start, end int) {
	t.append(Interval{Idle: true, Start: start, End: end})
}

// Intervals returns the built sequence.
func (t *Timeline) Intervals() []Interval {
	return t.intervals
}

// Makespan is the end tick of the last interval, 0 for an empty
// timeline.
func (t *Timeline) Makespan() int {
	if len(t.intervals) == 0 {
		return 0
	}
	return t.intervals[len(t.intervals)-1].End
}

// BusyTime is the summed duration of all execution intervals.
func (t *Timeline) BusyTime() int {
	busy := 0
	for _, iv := range t.intervals {
		if !iv.Idle {
			busy += iv.End - iv.Start
		}
	}
	return busy
}

// ContextSwitches counts adjacent interval pairs whose identity
// differs; idle-to-process and process-to-process transitions both
// count.
func (t *Timeline) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(t.intervals); i++ {
		if !t.intervals[i].SamePid(t.intervals[i-1]) {
			switches++
		}
	}
	return switches
}
