package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vikrant987123/linux-scheduler-simulation/config"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/core"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/requests"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/responses"
	"github.com/vikrant987123/linux-scheduler-simulation/internal/schedulers"
)

type SchedulerHandler interface {
	RoundRobin(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func toProcesses(request requests.ScheduleRequests) []core.Process {
	procs := make([]core.Process, 0, len(request.Jobs))
	for _, job := range request.Jobs {
		procs = append(procs, core.Process{
			Pid:      job.ProcessId,
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: job.Priority,
		})
	}
	return procs
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	quantum := ctx.QueryInt("quantum", s.config.RoundRobinTimeQuantum)
	timeline, states, err := schedulers.ScheduleRoundRobin(toProcesses(request), quantum)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	response := schedulers.GenerateAnalytics("round_robin", states, timeline)
	response.TimeQuantum = quantum
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	timeline, states, err := schedulers.SchedulePreemptivePriority(toProcesses(request))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(schedulers.GenerateAnalytics("preemptive_priority", states, timeline))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	procs := toProcesses(request)

	quantum := ctx.QueryInt("quantum", s.config.RoundRobinTimeQuantum)
	rrTimeline, rrStates, err := schedulers.ScheduleRoundRobin(procs, quantum)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	ppsTimeline, ppsStates, err := schedulers.SchedulePreemptivePriority(procs)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rrResponse := schedulers.GenerateAnalytics("round_robin", rrStates, rrTimeline)
	rrResponse.TimeQuantum = quantum
	return ctx.JSON([]responses.ScheduleResponse{
		rrResponse,
		schedulers.GenerateAnalytics("preemptive_priority", ppsStates, ppsTimeline),
	})
}
