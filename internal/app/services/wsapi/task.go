package wsapi

import (
	"context"

	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/lcxml"
	"linkcare-service/internal/pkg/wsapi_dto"
)

func (c *Client) TaskGet(ctx context.Context, taskID string) (*wsapi_dto.Task, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnTaskGet,
		param("task", taskID),
		param("context", ""),
	)
	if err != nil {
		return nil, err
	}
	return c.withClassifier(wsapi_dto.ParseTask(c.parseResult(ctx, constvars.WSAPIFnTaskGet, response))), nil
}

func (c *Client) TaskSet(ctx context.Context, task *wsapi_dto.Task) error {
	doc := lcxml.NewDocument("task")
	task.ToXML(doc, nil)
	_, err := c.Invoke(ctx, constvars.WSAPIFnTaskSet, param("task", doc.String()))
	return err
}

// TaskActivityList returns the forms of a task. Activities of any other
// type are skipped.
func (c *Client) TaskActivityList(ctx context.Context, taskID string) ([]*wsapi_dto.Form, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnTaskActivityList, param("task_id", taskID))
	if err != nil {
		return nil, err
	}

	forms := []*wsapi_dto.Form{}
	for _, node := range c.parseResult(ctx, constvars.WSAPIFnTaskActivityList, response).Children("activity") {
		if node.Text("type") != "form" {
			continue
		}
		if form := wsapi_dto.ParseForm(node); form != nil {
			forms = append(forms, form)
		}
	}
	return forms, nil
}

// TaskInsertByTaskCode returns the raw result, i.e. the id of the new task.
func (c *Client) TaskInsertByTaskCode(ctx context.Context, admissionID, taskCode, date string) (string, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnTaskInsertByTaskCode,
		param("admission", admissionID),
		param("task_code", taskCode),
		optionalParam("date", date),
	)
	if err != nil {
		return "", err
	}
	return response.Result, nil
}
