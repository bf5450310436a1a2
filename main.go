package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/olekukonko/tablewriter"

	"github.com/vikrant987123/linux-scheduler-simulation/api"
	"github.com/vikrant987123/linux-scheduler-simulation/config"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/core"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/responses"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/schedulers"
)

// defaultTimeQuantum is the CLI fallback. Serve mode takes its default
// from config.yaml instead; the CLI cannot, since it must run without a
// config file present. Keep this in step with scheduler.round_robin.time_quantum.
const defaultTimeQuantum = 2

func main() {
	fmt.Println("Linux-Based Process Scheduler Simulation")
	fmt.Println("Usage: scheduler [mode] [quantum]")
	fmt.Println("Modes: rr (Round Robin), pps (Preemptive Priority Scheduling), serve (HTTP API)")
	fmt.Println("If no args provided, sample dataset will run both algorithms.")

	if len(os.Args) < 2 {
		// no args: run the sample set through both algorithms
		procs := sampleProcesses()
		if err := runRoundRobin(os.Stdout, procs, defaultTimeQuantum); err != nil {
			log.Fatalln(err)
		}
		if err := runPreemptivePriority(os.Stdout, procs); err != nil {
			log.Fatalln(err)
		}
		return
	}

	switch mode := os.Args[1]; mode {
	case "serve":
		serve()
	case "rr":
		quantum := defaultTimeQuantum
		if len(os.Args) >= 3 {
			q, err := strconv.Atoi(os.Args[2])
			if err != nil {
				log.Fatalln("quantum must be an integer:", os.Args[2])
			}
			quantum = q
		}
		procs, err := loadProcesses(os.Stdin)
		if err != nil {
			log.Fatalln(err)
		}
		if err := runRoundRobin(os.Stdout, procs, quantum); err != nil {
			log.Fatalln(err)
		}
	case "pps":
		procs, err := loadProcesses(os.Stdin)
		if err != nil {
			log.Fatalln(err)
		}
		if err := runPreemptivePriority(os.Stdout, procs); err != nil {
			log.Fatalln(err)
		}
	default:
		log.Fatalln("unknown mode:", mode)
	}
}

func serve() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/rr", handler.RoundRobin)
	v1.Post("/pps", handler.PreemptivePriority)
	v1.Post("/all", handler.AllAlgorithms)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func sampleProcesses() []core.Process {
	return []core.Process{
		{Pid: 1, Arrival: 0, Burst: 5, Priority: 2},
		{Pid: 2, Arrival: 1, Burst: 3, Priority: 1},
		{Pid: 3, Arrival: 2, Burst: 8, Priority: 4},
		{Pid: 4, Arrival: 3, Burst: 6, Priority: 3},
	}
}

// loadProcesses reads a process list: a count n, then n records of
// "pid arrival burst priority" separated by whitespace.
func loadProcesses(r io.Reader) ([]core.Process, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil || n < 0 {
		return nil, errors.New("expected input: first line = n (number of processes) followed by lines: pid arrival burst priority")
	}
	procs := make([]core.Process, 0, n)
	for i := 0; i < n; i++ {
		var p core.Process
		if _, err := fmt.Fscan(r, &p.Pid, &p.Arrival, &p.Burst, &p.Priority); err != nil {
			return nil, fmt.Errorf("reading process %d of %d: %v", i+1, n, err)
		}
		procs = append(procs, p)
	}
	return procs, nil
}

func runRoundRobin(w io.Writer, procs []core.Process, quantum int) error {
	fmt.Fprintf(w, "\n=== Round Robin (quantum = %d) ===\n", quantum)
	timeline, states, err := schedulers.ScheduleRoundRobin(procs, quantum)
	if err != nil {
		return err
	}
	response := schedulers.GenerateAnalytics("round_robin", states, timeline)
	response.TimeQuantum = quantum
	render(w, response)
	return nil
}

func runPreemptivePriority(w io.Writer, procs []core.Process) error {
	fmt.Fprintf(w, "\n=== Preemptive Priority Scheduling (lower = higher priority) ===\n")
	timeline, states, err := schedulers.SchedulePreemptivePriority(procs)
	if err != nil {
		return err
	}
	render(w, schedulers.GenerateAnalytics("preemptive_priority", states, timeline))
	return nil
}

func render(w io.Writer, response responses.ScheduleResponse) {
	renderGantt(w, response.Gantt)
	renderMetrics(w, response)
	renderTable(w, response)
}

func renderGantt(w io.Writer, gantt []responses.GanttEntry) {
	fmt.Fprintln(w, "\nGantt Chart (pid : [start -> end])")
	for _, entry := range gantt {
		if entry.Idle {
			fmt.Fprintf(w, "idle : [%d -> %d]  ", entry.Start, entry.End)
		} else {
			fmt.Fprintf(w, "P%d : [%d -> %d]  ", entry.ProcessId, entry.Start, entry.End)
		}
	}
	fmt.Fprintln(w)
}

func renderMetrics(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintln(w, "\n--- Metrics ---")
	fmt.Fprintf(w, "Total time (makespan): %d\n", response.Makespan)
	fmt.Fprintf(w, "Average Waiting Time: %.2f\n", response.AverageWaitingTime)
	fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", response.AverageTurnAroundTime)
	fmt.Fprintf(w, "CPU Utilization: %.2f %%\n", response.CpuUtilization)
	fmt.Fprintf(w, "Throughput (processes/unit time): %.2f\n", response.CpuThroughput)
	fmt.Fprintf(w, "Context switches: %d\n", response.ContextSwitches)
}

func renderTable(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Start", "Completion", "Waiting", "Turnaround"})
	for _, d := range response.Details {
		table.Append([]string{
			strconv.Itoa(d.ProcessId),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.StartTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)})
	table.Render()
}
