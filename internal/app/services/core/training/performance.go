package training

import (
	"context"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/dto/responses"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// CalculatePerformance rates how the patient followed the training plan
// between fromDate and toDate. Cancelled tasks are ignored.
func CalculatePerformance(ctx context.Context, api contracts.TrainingAPI, codes config.AppTraining, admissionID, fromDate, toDate string) (*responses.Performance, error) {
	filter := &wsapi_dto.TaskFilter{
		ObjectType: wsapi_dto.FilterObjectTasks,
		FromDate:   fromDate,
		ToDate:     toDate,
	}
	filter.SetTaskCodes(codes.TrainingTaskCode)

	tasks, err := api.AdmissionGetTaskList(ctx, admissionID, constvars.PerformanceTaskLimit, 0, filter, false)
	if err != nil {
		return nil, err
	}

	var closed, pending, expired, considered int
	maxEffort := EffortUnknown
	for _, task := range tasks {
		if task.IsCancelled() {
			continue
		}
		considered++

		switch {
		case task.IsClosed():
			closed++
			if maxEffort >= codes.EffortHigh {
				continue
			}
			effort, err := taskEffort(ctx, api, codes, task)
			if err != nil {
				return nil, err
			}
			if effort > maxEffort {
				maxEffort = effort
			}
		case task.IsExpired():
			expired++
		case task.IsOpen():
			pending++
		}
	}

	if considered == 0 {
		return &responses.Performance{
			Performance: constvars.PerformanceNoData,
			Difficulty:  constvars.DifficultyUnknown,
		}, nil
	}

	difficulty := constvars.DifficultyNone
	if maxEffort >= codes.EffortHigh {
		difficulty = constvars.DifficultyReported
	}
	return &responses.Performance{
		Performance: classifyPerformance(closed, pending, expired),
		Difficulty:  difficulty,
	}, nil
}

// classifyPerformance treats any number of pending tasks like a single one.
func classifyPerformance(closed, pending, expired int) string {
	switch {
	case closed > 0 && expired == 0 && pending == 0:
		return constvars.PerformanceOK
	case closed > 0 && expired == 0:
		return constvars.PerformanceOK1
	case closed > 0 && pending > 0:
		return constvars.PerformanceOK2
	case closed > 0:
		return constvars.PerformanceOK3
	case expired == 0 && pending > 0:
		return constvars.PerformanceOnePending
	case pending > 0:
		return constvars.PerformanceKO
	}
	return constvars.PerformanceEmpty
}
