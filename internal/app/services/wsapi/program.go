package wsapi

import (
	"context"

	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/wsapi_dto"
)

func (c *Client) ProgramGet(ctx context.Context, programID, subscriptionID string) (*wsapi_dto.Program, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnProgramGet,
		param("program_id", programID),
		optionalParam("subscription", subscriptionID),
	)
	if err != nil {
		return nil, err
	}
	return wsapi_dto.ParseProgram(c.parseResult(ctx, constvars.WSAPIFnProgramGet, response)), nil
}

func (c *Client) TeamGet(ctx context.Context, teamID string) (*wsapi_dto.Team, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnTeamGet, param("team", teamID))
	if err != nil {
		return nil, err
	}
	return wsapi_dto.ParseTeam(c.parseResult(ctx, constvars.WSAPIFnTeamGet, response).Child("data")), nil
}

func (c *Client) SubscriptionGet(ctx context.Context, programID, teamID, subscriptionID string) (*wsapi_dto.Subscription, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnSubscriptionGet,
		optionalParam("program", programID),
		optionalParam("team", teamID),
		optionalParam("subscription", subscriptionID),
	)
	if err != nil {
		return nil, err
	}
	return wsapi_dto.ParseSubscription(c.parseResult(ctx, constvars.WSAPIFnSubscriptionGet, response)), nil
}

// SubscriptionList sends filter as a JSON object, or nil when empty.
func (c *Client) SubscriptionList(ctx context.Context, filter map[string]string) ([]*wsapi_dto.Subscription, error) {
	filterParam := optionalParam("filter", "")
	if len(filter) > 0 {
		filterParam = jsonParam("filter", filter)
	}
	response, err := c.Invoke(ctx, constvars.WSAPIFnSubscriptionList, filterParam)
	if err != nil {
		return nil, err
	}

	subscriptions := []*wsapi_dto.Subscription{}
	for _, node := range c.parseResult(ctx, constvars.WSAPIFnSubscriptionList, response).Children("subscription") {
		if subscription := wsapi_dto.ParseSubscription(node); subscription != nil {
			subscriptions = append(subscriptions, subscription)
		}
	}
	return subscriptions, nil
}
