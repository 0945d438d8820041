package training

import (
	"context"
	"path"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// EffortUnknown is the effort of a task that is not closed or whose forms
// do not report any effort.
const EffortUnknown = -1.0

// taskEffort is the highest effort answered in the content forms of task.
func taskEffort(ctx context.Context, api contracts.TrainingAPI, codes config.AppTraining, task *wsapi_dto.Task) (float64, error) {
	if !task.IsClosed() {
		return EffortUnknown, nil
	}

	forms, err := task.Forms(ctx, api)
	if err != nil {
		return EffortUnknown, err
	}

	effort := EffortUnknown
	for _, form := range forms {
		if matched, _ := path.Match(codes.EffortFormPattern, form.FormCode); !matched {
			continue
		}
		question, err := form.FindQuestion(ctx, api, codes.EffortItemCode)
		if err != nil {
			return EffortUnknown, err
		}
		if question == nil {
			continue
		}
		if value := utils.NullableFloat(question.Value); value != nil && *value > effort {
			effort = *value
		}
	}
	return effort, nil
}
