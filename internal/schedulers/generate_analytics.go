package schedulers

import (
	"github.com/vikrant987123/linux-scheduler-simulation/internal/core"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/responses"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/util"
)

// GenerateAnalytics derives the schedule response from the finalized
// process states and the timeline: per-process details, averages,
// CPU utilization as a percentage, throughput and context switches.
// Utilization and throughput guard against an empty timeline.
func GenerateAnalytics(algorithm string, states []*core.ProcessState, timeline *core.Timeline) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(states))
	for _, s := range states {
		proccessDetails = append(proccessDetails, responses.ProcessResponse{
			ProcessId:      s.Pid,
			ArrivalTime:    s.Arrival,
			BurstTime:      s.Burst,
			Priority:       s.Priority,
			StartTime:      s.StartTime,
			CompletionTime: s.Completion,
			WaitingTime:    s.Waiting,
			TurnAroundTime: s.Turnaround,
		})
	}
	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	makespan := timeline.Makespan()
	var utilization, throughput float64
	if makespan > 0 {
		utilization = 100 * float64(timeline.BusyTime()) / float64(makespan)
		throughput = float64(len(states)) / float64(makespan)
	}

	intervals := timeline.Intervals()
	gantt := make([]responses.GanttEntry, 0, len(intervals))
	for _, iv := range intervals {
		gantt = append(gantt, responses.GanttEntry{
			ProcessId: iv.Pid,
			Idle:      iv.Idle,
			Start:     iv.Start,
			End:       iv.End,
		})
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		Makespan:              makespan,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		ContextSwitches:       timeline.ContextSwitches(),
		Gantt:                 gantt,
		Details:               proccessDetails,
	}
}
