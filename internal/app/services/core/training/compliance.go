package training

import (
	"context"
	"sort"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// CalculateCompliance classifies the two most recent training tasks of the
// admission scheduled up to date.
func CalculateCompliance(ctx context.Context, api contracts.TrainingAPI, codes config.AppTraining, admissionID, date string) (int, error) {
	filter := &wsapi_dto.TaskFilter{
		ObjectType: wsapi_dto.FilterObjectTasks,
		ToDate:     date,
	}
	filter.SetTaskCodes(codes.TrainingTaskCode)

	tasks, err := api.AdmissionGetTaskList(ctx, admissionID, constvars.ComplianceTaskLimit, 0, filter, false)
	if err != nil {
		return constvars.ComplianceNotEnoughData, err
	}
	if len(tasks) == 0 {
		return constvars.ComplianceNotEnoughData, nil
	}
	sortMostRecentFirst(tasks)

	latest := tasks[0]
	if latest.IsClosed() {
		effort, err := taskEffort(ctx, api, codes, latest)
		if err != nil {
			return constvars.ComplianceNotEnoughData, err
		}
		switch {
		case effort != EffortUnknown && effort <= codes.EffortLow:
			return constvars.ComplianceGreen, nil
		case effort >= codes.EffortVeryHigh:
			return constvars.ComplianceRed, nil
		}
		return constvars.ComplianceYellow, nil
	}

	if (latest.IsOpen() || latest.IsExpired()) && len(tasks) > 1 && tasks[1].IsExpired() {
		return constvars.ComplianceRed, nil
	}
	return constvars.ComplianceYellow, nil
}

func sortMostRecentFirst(tasks []*wsapi_dto.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Date+" "+tasks[i].Hour > tasks[j].Date+" "+tasks[j].Hour
	})
}
