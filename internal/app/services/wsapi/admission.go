package wsapi

import (
	"context"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"
)

func (c *Client) AdmissionCreate(ctx context.Context, caseID, subscriptionID, date, teamID string, allowIncomplete bool, setupValues map[string]string) (*wsapi_dto.Admission, error) {
	setupParam := optionalParam("setup_values", "")
	if len(setupValues) > 0 {
		setupParam = jsonParam("setup_values", setupValues)
	}
	response, err := c.Invoke(ctx, constvars.WSAPIFnAdmissionCreate,
		param("case", caseID),
		param("subscription", subscriptionID),
		optionalParam("date", date),
		optionalParam("team", teamID),
		param("allow_incomplete", utils.BoolToFlag(allowIncomplete)),
		setupParam,
	)
	if err != nil {
		return nil, err
	}
	return wsapi_dto.ParseAdmission(c.parseResult(ctx, constvars.WSAPIFnAdmissionCreate, response)), nil
}

func (c *Client) AdmissionGet(ctx context.Context, admissionID string) (*wsapi_dto.Admission, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnAdmissionGet, param("admission", admissionID))
	if err != nil {
		return nil, err
	}
	return wsapi_dto.ParseAdmission(c.parseResult(ctx, constvars.WSAPIFnAdmissionGet, response)), nil
}

func (c *Client) AdmissionDelete(ctx context.Context, admissionID string) error {
	_, err := c.Invoke(ctx, constvars.WSAPIFnAdmissionDelete, param("admission", admissionID))
	return err
}

// AdmissionGetTaskList lists the tasks of an admission. A non-positive
// maxRes or offset is left to the server default.
func (c *Client) AdmissionGetTaskList(ctx context.Context, admissionID string, maxRes, offset int, filter *wsapi_dto.TaskFilter, ascending bool) ([]*wsapi_dto.Task, error) {
	return c.taskList(ctx, constvars.WSAPIFnAdmissionGetTaskList, param("admission", admissionID), maxRes, offset, filter, ascending)
}

func (c *Client) taskList(ctx context.Context, function string, owner contracts.WSAPIParam, maxRes, offset int, filter *wsapi_dto.TaskFilter, ascending bool) ([]*wsapi_dto.Task, error) {
	ascendingFlag := "0"
	if ascending {
		ascendingFlag = "1"
	}
	response, err := c.Invoke(ctx, function,
		owner,
		countParam("max_res", maxRes),
		countParam("offset", offset),
		optionalParam("filter", filter.String()),
		param("ascending", ascendingFlag),
	)
	if err != nil {
		return nil, err
	}

	tasks := []*wsapi_dto.Task{}
	for _, node := range c.parseResult(ctx, function, response).Children("task") {
		if task := wsapi_dto.ParseTask(node); task != nil {
			tasks = append(tasks, c.withClassifier(task))
		}
	}
	return tasks, nil
}
