package exceptions

import (
	"errors"
	"fmt"
	"linkcare-service/internal/pkg/constvars"
)

// APIError is the failure reported by the WS-API, or synthesized by the
// client when the endpoint is missing or the transport faults.
type APIError struct {
	ErrorCode string
	ErrorMsg  string
	Result    string
}

func (e *APIError) Error() string {
	if e.ErrorMsg == "" {
		return e.ErrorCode
	}
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.ErrorMsg)
}

func NewAPIError(errorCode, errorMsg, result string) *APIError {
	return &APIError{
		ErrorCode: errorCode,
		ErrorMsg:  errorMsg,
		Result:    result,
	}
}

func ErrEndpointMissing() *APIError {
	return NewAPIError(constvars.WSAPIErrEndpointMissing, "ERROR: the WS-API endpoint is not configured", "")
}

func ErrSOAPFault(faultCode, faultString string) *APIError {
	return NewAPIError(constvars.WSAPIErrSOAPFault, fmt.Sprintf("ERROR: SOAP Fault: (faultcode: %s, faultstring: %s)", faultCode, faultString), "")
}

// AsAPIError reports whether err carries an APIError anywhere in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrorMessage renders err the way outward callers receive it.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsAPIError(err); ok {
		if apiErr.ErrorMsg != "" {
			return apiErr.ErrorMsg
		}
		return apiErr.ErrorCode
	}
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}
