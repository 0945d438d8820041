package wsapi

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/lcxml"
	"linkcare-service/internal/pkg/soap"
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// SessionInit opens a new session. It is the only call sent without a
// session token.
func (c *Client) SessionInit(ctx context.Context, user, password, timezone string, reuseExistingSession bool) (*wsapi_dto.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("wsapiClient.SessionInit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserKey, user),
	)

	if c.transport == nil {
		return nil, exceptions.ErrEndpointMissing()
	}

	reuse := "0"
	if reuseExistingSession {
		reuse = "1"
	}
	params := []contracts.WSAPIParam{
		param("user", user),
		param("password", password),
		{Name: "IP", Null: true},
		{Name: "host", Null: true},
		{Name: "language", Null: true},
		param("version", constvars.WSAPIVersion),
		param("reuse_existing", reuse),
		param("current_date", utils.CurrentDate(timezone)),
	}

	response, err := c.transport.Call(ctx, constvars.WSAPIFnSessionInit, params)
	if err != nil {
		c.Log.Error("wsapiClient.SessionInit error calling transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, c.sessionFault(err, "Error starting session!")
	}
	if response.ErrorCode != "" {
		c.Log.Error("wsapiClient.SessionInit service reported an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorCodeKey, response.ErrorCode),
			zap.String(constvars.LoggingErrorMessageKey, response.ErrorMsg),
		)
		return nil, exceptions.NewAPIError(response.ErrorCode, response.ErrorMsg, "")
	}

	session := parseSessionResponse(response, "")
	c.setSession(session)

	c.Log.Info("wsapiClient.SessionInit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserKey, session.UserID),
		zap.String(constvars.LoggingTeamKey, session.TeamID),
		zap.String(constvars.LoggingRoleKey, session.RoleID),
	)
	return c.Session(), nil
}

// SessionJoin attaches the client to the existing session identified by
// token.
func (c *Client) SessionJoin(ctx context.Context, token string) (*wsapi_dto.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("wsapiClient.SessionJoin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if c.transport == nil {
		return nil, exceptions.ErrEndpointMissing()
	}

	response, err := c.transport.Call(ctx, constvars.WSAPIFnSessionGet, []contracts.WSAPIParam{param("token", token)})
	if err != nil {
		c.Log.Error("wsapiClient.SessionJoin error calling transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, c.sessionFault(err, "Error registering session!")
	}
	if response.ErrorCode != "" {
		c.serviceLogf("session_get error %s", response.ErrorMsg)
		c.Log.Error("wsapiClient.SessionJoin service reported an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorCodeKey, response.ErrorCode),
			zap.String(constvars.LoggingErrorMessageKey, response.ErrorMsg),
		)
		return nil, exceptions.NewAPIError(response.ErrorCode, response.ErrorMsg, "")
	}

	session := parseSessionResponse(response, token)
	c.setSession(session)

	c.Log.Info("wsapiClient.SessionJoin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserKey, session.UserID),
	)
	return c.Session(), nil
}

// sessionFault turns a transport fault of the session calls into SOAP_ERROR.
func (c *Client) sessionFault(err error, message string) error {
	var fault *soap.Fault
	if !errors.As(err, &fault) {
		return err
	}
	errorMsg := fmt.Sprintf("ERROR: SOAP Fault: (faultcode: %s, faultstring: %s)", fault.Code, fault.String)
	c.serviceLogf("%s %s", message, errorMsg)
	return exceptions.NewAPIError(constvars.WSAPIErrSOAPError, errorMsg, "")
}

// parseSessionResponse merges the top level fields with those found in an
// XML result. The token falls back to knownToken when the server omits it.
func parseSessionResponse(response *contracts.WSAPIResponse, knownToken string) *wsapi_dto.Session {
	fields := map[string]string{}
	if node, err := lcxml.Parse(response.Result); err == nil {
		for _, child := range node.Elements() {
			fields[child.Name()] = child.Text()
		}
	}
	for key, value := range response.Fields {
		if _, exists := fields[key]; !exists || value != "" {
			fields[key] = value
		}
	}
	session := wsapi_dto.ParseSession(fields)
	if session.Token == "" {
		session.Token = knownToken
	}
	return session
}

// SessionSetTeam changes the active team of the session.
func (c *Client) SessionSetTeam(ctx context.Context, team string) error {
	if _, err := c.Invoke(ctx, constvars.WSAPIFnSessionSetTeam, param("team", team)); err != nil {
		return err
	}
	c.updateSession(func(session *wsapi_dto.Session) {
		session.TeamID = team
	})
	return nil
}

// SessionRole changes the active role of the session.
func (c *Client) SessionRole(ctx context.Context, role string) error {
	if _, err := c.Invoke(ctx, constvars.WSAPIFnSessionRole, param("role", role)); err != nil {
		return err
	}
	c.updateSession(func(session *wsapi_dto.Session) {
		session.RoleID = role
	})
	return nil
}
