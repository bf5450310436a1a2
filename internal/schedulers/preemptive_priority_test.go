package schedulers

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vikrant987123/linux-scheduler-simulation/internal/core"
)

func TestPreemptivePrioritySampleTrace(t *testing.T) {
	timeline, states, err := SchedulePreemptivePriority(sampleProcesses())
	if err != nil {
		t.Fatal(err)
	}
	checkContiguous(t, timeline)
	checkStatesAgainstTimeline(t, states, timeline)

	// pid 2 (priority 1) arrives at tick 1 and preempts pid 1
	// (priority 2), so pid 1 runs exactly [0,1) before losing the CPU
	want := []core.Interval{
		{Pid: 1, Start: 0, End: 1},
		{Pid: 2, Start: 1, End: 4},
		{Pid: 1, Start: 4, End: 8},
		{Pid: 4, Start: 8, End: 14},
		{Pid: 3, Start: 14, End: 22},
	}
	if got := timeline.Intervals(); !reflect.DeepEqual(got, want) {
		t.Fatalf("timeline = %v\nwant %v", got, want)
	}

	wantCompletion := map[int]int{1: 8, 2: 4, 3: 22, 4: 14}
	for _, s := range states {
		if s.Completion != wantCompletion[s.Pid] {
			t.Errorf("pid %d: completion = %d, want %d", s.Pid, s.Completion, wantCompletion[s.Pid])
		}
	}

	response := GenerateAnalytics("preemptive_priority", states, timeline)
	if response.AverageWaitingTime != 5.0 {
		t.Errorf("average waiting time = %v, want 5.0", response.AverageWaitingTime)
	}
	if response.AverageTurnAroundTime != 10.5 {
		t.Errorf("average turnaround time = %v, want 10.5", response.AverageTurnAroundTime)
	}
	if response.ContextSwitches != 4 {
		t.Errorf("context switches = %d, want 4", response.ContextSwitches)
	}
	if response.CpuUtilization != 100 {
		t.Errorf("cpu utilization = %v, want 100", response.CpuUtilization)
	}
	if response.Makespan != 22 {
		t.Errorf("makespan = %d, want 22", response.Makespan)
	}
}

func TestPreemptivePriority_NoSelfPreemptionOnRequeue(t *testing.T) {
	// a running process re-queued every tick keeps its original arrival
	// and pid, so it never loses a priority tie to a later arrival
	procs := []core.Process{
		{Pid: 1, Arrival: 0, Burst: 4, Priority: 5},
		{Pid: 2, Arrival: 1, Burst: 4, Priority: 5},
	}
	timeline, _, err := SchedulePreemptivePriority(procs)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Interval{
		{Pid: 1, Start: 0, End: 4},
		{Pid: 2, Start: 4, End: 8},
	}
	if got := timeline.Intervals(); !reflect.DeepEqual(got, want) {
		t.Fatalf("timeline = %v\nwant %v (pid 1 must not be preempted by an equal-priority later arrival)", got, want)
	}
}

func TestPreemptivePriorityIdleGaps(t *testing.T) {
	procs := []core.Process{
		{Pid: 1, Arrival: 3, Burst: 2, Priority: 1},
		{Pid: 2, Arrival: 9, Burst: 1, Priority: 1},
	}
	timeline, states, err := SchedulePreemptivePriority(procs)
	if err != nil {
		t.Fatal(err)
	}
	checkContiguous(t, timeline)
	checkStatesAgainstTimeline(t, states, timeline)

	want := []core.Interval{
		{Idle: true, Start: 0, End: 3},
		{Pid: 1, Start: 3, End: 5},
		{Idle: true, Start: 5, End: 9},
		{Pid: 2, Start: 9, End: 10},
	}
	if got := timeline.Intervals(); !reflect.DeepEqual(got, want) {
		t.Fatalf("timeline = %v\nwant %v", got, want)
	}
}

func TestPreemptivePriorityTieBreaks(t *testing.T) {
	// equal priority resolves by arrival, then by pid
	procs := []core.Process{
		{Pid: 5, Arrival: 0, Burst: 1, Priority: 3},
		{Pid: 2, Arrival: 0, Burst: 1, Priority: 3},
		{Pid: 9, Arrival: 0, Burst: 1, Priority: 1},
	}
	timeline, _, err := SchedulePreemptivePriority(procs)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Interval{
		{Pid: 9, Start: 0, End: 1},
		{Pid: 2, Start: 1, End: 2},
		{Pid: 5, Start: 2, End: 3},
	}
	if got := timeline.Intervals(); !reflect.DeepEqual(got, want) {
		t.Fatalf("timeline = %v\nwant %v", got, want)
	}
}

func TestPreemptivePrioritySingleProcess(t *testing.T) {
	procs := []core.Process{{Pid: 1, Arrival: 4, Burst: 6, Priority: -2}}
	timeline, states, err := SchedulePreemptivePriority(procs)
	if err != nil {
		t.Fatal(err)
	}
	checkContiguous(t, timeline)
	s := states[0]
	if s.Waiting != 0 {
		t.Errorf("waiting = %d, want 0", s.Waiting)
	}
	if s.Completion != 10 {
		t.Errorf("completion = %d, want arrival+burst = 10", s.Completion)
	}
	want := []core.Interval{
		{Idle: true, Start: 0, End: 4},
		{Pid: 1, Start: 4, End: 10},
	}
	if got := timeline.Intervals(); !reflect.DeepEqual(got, want) {
		t.Fatalf("timeline = %v\nwant %v", got, want)
	}
}

func TestPreemptivePriorityInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		procs []core.Process
	}{
		{"empty set", nil},
		{"duplicate pid", []core.Process{
			{Pid: 1, Arrival: 0, Burst: 2, Priority: 1},
			{Pid: 1, Arrival: 1, Burst: 2, Priority: 2},
		}},
		{"negative arrival", []core.Process{{Pid: 1, Arrival: -4, Burst: 2, Priority: 1}}},
		{"zero burst", []core.Process{{Pid: 1, Arrival: 0, Burst: 0, Priority: 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			timeline, states, err := SchedulePreemptivePriority(c.procs)
			if !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if timeline != nil || states != nil {
				t.Fatal("expected no timeline or states on invalid input")
			}
		})
	}
}

func TestPreemptivePriorityDeterministic(t *testing.T) {
	first, firstStates, err := SchedulePreemptivePriority(sampleProcesses())
	if err != nil {
		t.Fatal(err)
	}
	second, secondStates, err := SchedulePreemptivePriority(sampleProcesses())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Intervals(), second.Intervals()) {
		t.Error("timelines differ between identical runs")
	}
	if !reflect.DeepEqual(firstStates, secondStates) {
		t.Error("states differ between identical runs")
	}
}

func TestBothAlgorithmsShareDescriptors(t *testing.T) {
	// the same descriptor slice can go through both engines; neither
	// run may observe the other's bookkeeping
	procs := sampleProcesses()
	_, rrStates, err := ScheduleRoundRobin(procs, 2)
	if err != nil {
		t.Fatal(err)
	}
	_, ppsStates, err := SchedulePreemptivePriority(procs)
	if err != nil {
		t.Fatal(err)
	}
	if rrStates[0].Completion != 14 {
		t.Errorf("rr pid 1 completion = %d, want 14", rrStates[0].Completion)
	}
	if ppsStates[0].Completion != 8 {
		t.Errorf("pps pid 1 completion = %d, want 8", ppsStates[0].Completion)
	}
	for i, p := range procs {
		if p != sampleProcesses()[i] {
			t.Errorf("descriptor %d mutated: %+v", i, p)
		}
	}
}
