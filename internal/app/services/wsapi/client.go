package wsapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/lcxml"
	"linkcare-service/internal/pkg/soap"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// Client exposes one method per WS-API function. Every call carries the
// token of the client's session as its first parameter.
type Client struct {
	transport  contracts.WSAPITransport
	classifier wsapi_dto.StatusClassifier
	Log        *zap.Logger
	ServiceLog *logrus.Logger

	mu      sync.RWMutex
	session *wsapi_dto.Session
}

var _ contracts.WSAPIClient = (*Client)(nil)

type Option func(*Client)

// WithStatusClassifier sets the classifier attached to every parsed task.
func WithStatusClassifier(classifier wsapi_dto.StatusClassifier) Option {
	return func(c *Client) {
		c.classifier = classifier
	}
}

// WithServiceLog records transport faults in the service log.
func WithServiceLog(serviceLog *logrus.Logger) Option {
	return func(c *Client) {
		c.ServiceLog = serviceLog
	}
}

// NewClient builds a client without session. A nil transport makes every
// call fail with ENDPOINT_MISSING.
func NewClient(transport contracts.WSAPITransport, logger *zap.Logger, options ...Option) *Client {
	client := &Client{
		transport:  transport,
		classifier: wsapi_dto.DefaultStatusSets,
		Log:        logger,
		session:    &wsapi_dto.Session{},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// Session returns a copy of the active session.
func (c *Client) Session() *wsapi_dto.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	session := *c.session
	return &session
}

func (c *Client) setSession(session *wsapi_dto.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = session
}

func (c *Client) updateSession(update func(session *wsapi_dto.Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	update(c.session)
}

func (c *Client) serviceLogf(format string, args ...interface{}) {
	if c.ServiceLog == nil {
		return
	}
	c.ServiceLog.Errorf(format, args...)
}

func param(name, value string) contracts.WSAPIParam {
	return contracts.WSAPIParam{Name: name, Value: value}
}

// optionalParam sends an empty value as nil.
func optionalParam(name, value string) contracts.WSAPIParam {
	if value == "" {
		return contracts.WSAPIParam{Name: name, Null: true}
	}
	return param(name, value)
}

func countParam(name string, value int) contracts.WSAPIParam {
	if value <= 0 {
		return contracts.WSAPIParam{Name: name, Null: true}
	}
	return param(name, strconv.Itoa(value))
}

func jsonParam(name string, value interface{}) contracts.WSAPIParam {
	encoded, err := json.Marshal(value)
	if err != nil {
		return contracts.WSAPIParam{Name: name, Null: true}
	}
	return param(name, string(encoded))
}

// call converts transport faults into fault-shaped responses.
func (c *Client) call(ctx context.Context, function string, params []contracts.WSAPIParam) (*contracts.WSAPIResponse, error) {
	if c.transport == nil {
		return nil, exceptions.ErrEndpointMissing()
	}

	args := make([]contracts.WSAPIParam, 0, len(params)+1)
	args = append(args, param(constvars.WSAPISessionParamName, c.Session().Token))
	args = append(args, params...)

	response, err := c.transport.Call(ctx, function, args)
	if err != nil {
		var fault *soap.Fault
		if !errors.As(err, &fault) {
			return nil, err
		}
		c.serviceLogf("Error invoking function %s! (faultcode: %s, faultstring: %s)", function, fault.Code, fault.String)
		apiErr := exceptions.ErrSOAPFault(fault.Code, fault.String)
		return &contracts.WSAPIResponse{ErrorCode: apiErr.ErrorCode, ErrorMsg: apiErr.ErrorMsg}, nil
	}
	return response, nil
}

// Invoke calls function and fails with an *exceptions.APIError when the
// service reports an error code.
func (c *Client) Invoke(ctx context.Context, function string, params ...contracts.WSAPIParam) (*contracts.WSAPIResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Debug("wsapiClient.Invoke called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWSAPIFunctionKey, function),
	)

	response, err := c.call(ctx, function, params)
	if err != nil {
		c.Log.Error("wsapiClient.Invoke error calling transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWSAPIFunctionKey, function),
			zap.Error(err),
		)
		return nil, err
	}

	if response.ErrorCode != "" {
		apiErr := exceptions.NewAPIError(response.ErrorCode, response.ErrorMsg, response.Result)
		c.Log.Error("wsapiClient.Invoke service reported an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWSAPIFunctionKey, function),
			zap.String(constvars.LoggingErrorCodeKey, response.ErrorCode),
			zap.String(constvars.LoggingErrorMessageKey, response.ErrorMsg),
		)
		return nil, apiErr
	}

	c.Log.Debug("wsapiClient.Invoke succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWSAPIFunctionKey, function),
	)
	return response, nil
}

// InvokeRaw never fails: any error is folded into the returned response,
// and the service error code is left for the caller to inspect.
func (c *Client) InvokeRaw(ctx context.Context, function string, params ...contracts.WSAPIParam) *contracts.WSAPIResponse {
	response, err := c.call(ctx, function, params)
	if err == nil {
		return response
	}
	if apiErr, ok := exceptions.AsAPIError(err); ok {
		return &contracts.WSAPIResponse{ErrorCode: apiErr.ErrorCode, ErrorMsg: apiErr.ErrorMsg}
	}
	return &contracts.WSAPIResponse{
		ErrorCode: constvars.WSAPIErrSOAPFault,
		ErrorMsg:  fmt.Sprintf("ERROR: %s", err.Error()),
	}
}

// parseResult reads the XML document of a response. An unparsable result
// is logged and yields nil.
func (c *Client) parseResult(ctx context.Context, function string, response *contracts.WSAPIResponse) *lcxml.Node {
	node, err := lcxml.Parse(response.Result)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		c.Log.Warn("wsapiClient.parseResult result is not an XML document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWSAPIFunctionKey, function),
			zap.Error(err),
		)
		return nil
	}
	return node
}

func (c *Client) withClassifier(task *wsapi_dto.Task) *wsapi_dto.Task {
	if task != nil {
		task.SetStatusClassifier(c.classifier)
	}
	return task
}
