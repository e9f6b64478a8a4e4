package paylane

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/paylane/paylane-go/core"
	"github.com/paylane/paylane-go/shared"
)

var ErrMissingAPIKey = errors.New("paylane: missing API key")

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
	// Body is the decoded error envelope, nil when the body was not one.
	Body *shared.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("paylane: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("paylane: %d: %s", e.StatusCode, e.Message)
}

func newAPIError(status int, raw []byte) *APIError {
	ae := &APIError{StatusCode: status, Message: http.StatusText(status)}
	env, err := core.Deserialize[shared.ErrorResponse](raw)
	if err != nil {
		return ae
	}
	ae.Body = env
	opt, err := env.Body()
	body, ok := opt.Get()
	if err != nil || !ok {
		return ae
	}
	if code, _ := body.Code(); code.IsPresent() {
		ae.Code = code.Value()
	}
	if msg, _ := body.Message(); msg.IsPresent() && msg.Value() != "" {
		ae.Message = msg.Value()
	}
	if rid, _ := body.RequestID(); rid.IsPresent() {
		ae.RequestID = rid.Value()
	}
	return ae
}
