package wsapi

import (
	"context"

	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/lcxml"
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// CaseInsert creates a case from contact and returns its id, which is empty
// when the server does not report one.
func (c *Client) CaseInsert(ctx context.Context, contact *wsapi_dto.Contact, subscriptionID string, allowIncomplete bool) (string, error) {
	doc := lcxml.NewDocument("case")
	contact.ToXML(doc, nil)

	response, err := c.Invoke(ctx, constvars.WSAPIFnCaseInsert,
		param("case", doc.String()),
		optionalParam("subscription", subscriptionID),
		param("allow_incomplete", utils.BoolToText(allowIncomplete)),
	)
	if err != nil {
		return "", err
	}
	return utils.IntToText(utils.NullableInt(c.parseResult(ctx, constvars.WSAPIFnCaseInsert, response).Text("case"))), nil
}

func (c *Client) CaseGet(ctx context.Context, caseID, admissionID string) (*wsapi_dto.Case, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnCaseGet,
		param("case", caseID),
		optionalParam("admission", admissionID),
	)
	if err != nil {
		return nil, err
	}
	return wsapi_dto.ParseCase(c.parseResult(ctx, constvars.WSAPIFnCaseGet, response)), nil
}

func (c *Client) CaseGetContact(ctx context.Context, caseID, subscriptionID, admissionID string) (*wsapi_dto.Contact, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnCaseGetContact,
		param("case", caseID),
		optionalParam("subscription", subscriptionID),
		optionalParam("admission", admissionID),
	)
	if err != nil {
		return nil, err
	}
	return wsapi_dto.ParseContact(c.parseResult(ctx, constvars.WSAPIFnCaseGetContact, response)), nil
}

// CaseSetContact updates the contact data of caseID. The id of contact is
// overwritten with caseID.
func (c *Client) CaseSetContact(ctx context.Context, caseID string, contact *wsapi_dto.Contact, admissionID string) error {
	contact.ID = caseID
	doc := lcxml.NewDocument("contact")
	contact.ToXML(doc, doc.Root())

	_, err := c.Invoke(ctx, constvars.WSAPIFnCaseSetContact,
		param("case", doc.String()),
		optionalParam("admission", admissionID),
	)
	return err
}

func (c *Client) CaseDelete(ctx context.Context, caseID string) error {
	_, err := c.Invoke(ctx, constvars.WSAPIFnCaseDelete,
		param("case", caseID),
		param("type", "DELETE"),
	)
	return err
}

func (c *Client) CaseSearch(ctx context.Context, searchText string) ([]*wsapi_dto.Case, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnCaseSearch, param("search_str", searchText))
	if err != nil {
		return nil, err
	}

	cases := []*wsapi_dto.Case{}
	for _, node := range c.parseResult(ctx, constvars.WSAPIFnCaseSearch, response).Children("case") {
		if found := wsapi_dto.ParseCase(node); found != nil {
			cases = append(cases, found)
		}
	}
	return cases, nil
}

func (c *Client) CaseAdmissionList(ctx context.Context, caseID string, get bool, subscriptionID, searchText string) ([]*wsapi_dto.Admission, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnCaseAdmissionList,
		param("case", caseID),
		param("get", utils.BoolToFlag(get)),
		optionalParam("subscription", subscriptionID),
		param("search_str", searchText),
	)
	if err != nil {
		return nil, err
	}

	admissions := []*wsapi_dto.Admission{}
	for _, node := range c.parseResult(ctx, constvars.WSAPIFnCaseAdmissionList, response).Children("admission") {
		if admission := wsapi_dto.ParseAdmission(node); admission != nil {
			admissions = append(admissions, admission)
		}
	}
	return admissions, nil
}

func (c *Client) CaseGetTaskList(ctx context.Context, caseID string, maxRes, offset int, filter *wsapi_dto.TaskFilter, ascending bool) ([]*wsapi_dto.Task, error) {
	return c.taskList(ctx, constvars.WSAPIFnCaseGetTaskList, param("case", caseID), maxRes, offset, filter, ascending)
}
