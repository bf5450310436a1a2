package requests

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}
