package wsapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/soap"
)

// SOAPTransport posts RPC envelopes to the WS-API endpoint. It never
// retries a call.
type SOAPTransport struct {
	endpoint   string
	namespace  string
	httpClient *resty.Client
	limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewSOAPTransport validates endpoint and derives the call namespace from
// its scheme and host. An empty endpoint is an ENDPOINT_MISSING error. A
// positive maxCallsPerSecond throttles outbound calls.
func NewSOAPTransport(endpoint string, maxCallsPerSecond float64, logger *zap.Logger) (*SOAPTransport, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, exceptions.ErrEndpointMissing()
	}

	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, exceptions.NewAPIError(constvars.WSAPIErrSOAPError, fmt.Sprintf("ERROR: invalid WS-API endpoint %q", endpoint), "")
	}

	dialer := &net.Dialer{Timeout: constvars.WSAPIConnectTimeout * time.Second}
	httpClient := resty.New().
		SetTransport(&http.Transport{
			Proxy:       http.ProxyFromEnvironment,
			DialContext: dialer.DialContext,
		}).
		SetHeader(constvars.HeaderContentType, constvars.MIMETextXML)

	transport := &SOAPTransport{
		endpoint:   endpoint,
		namespace:  fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host),
		httpClient: httpClient,
		Log:        logger,
	}
	if maxCallsPerSecond > 0 {
		transport.limiter = rate.NewLimiter(rate.Limit(maxCallsPerSecond), 1)
	}
	return transport, nil
}

func (t *SOAPTransport) Endpoint() string {
	return t.endpoint
}

// Call returns a *soap.Fault for every failure of the exchange itself,
// including network errors and non-SOAP answers.
func (t *SOAPTransport) Call(ctx context.Context, function string, params []contracts.WSAPIParam) (*contracts.WSAPIResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := t.httpClient.R().
		SetContext(ctx).
		SetHeader(constvars.HeaderSOAPAction, fmt.Sprintf("%s#%s", t.namespace, function)).
		SetBody(soap.BuildRequest(t.namespace, function, params)).
		Post(t.endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		t.Log.Error("soapTransport.Call error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWSAPIFunctionKey, function),
			zap.Error(err),
		)
		return nil, &soap.Fault{Code: "HTTP", String: err.Error()}
	}

	fields, err := soap.ParseResponse(resp.Body())
	if err != nil {
		var fault *soap.Fault
		if errors.As(err, &fault) {
			return nil, fault
		}
		t.Log.Error("soapTransport.Call error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWSAPIFunctionKey, function),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
			zap.Error(err),
		)
		if resp.IsError() {
			return nil, &soap.Fault{Code: "HTTP", String: resp.Status()}
		}
		return nil, &soap.Fault{Code: "Client", String: "looks like we got no XML document"}
	}

	return &contracts.WSAPIResponse{
		Result:    fields["result"],
		ErrorCode: fields["ErrorCode"],
		ErrorMsg:  fields["ErrorMsg"],
		Fields:    fields,
	}, nil
}
