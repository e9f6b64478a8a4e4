package shared

import (
	"encoding/json"

	"github.com/paylane/paylane-go/core"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct{ core.Object }

var (
	errorResponseBody   = core.NewField[ErrorBody]("ErrorResponse", "error", core.Required)
	errorResponseSchema = core.NewSchema("ErrorResponse", errorResponseBody)
)

// ErrorResponseParams holds the named arguments of NewErrorResponse. Fields left
// unspecified are not written to the wire.
type ErrorResponseParams struct {
	Body core.Optional[ErrorBody]
}

func NewErrorResponse(p ErrorResponseParams) *ErrorResponse {
	m := &ErrorResponse{}
	errorResponseBody.Assign(&m.Object, p.Body)
	return m
}

func (m *ErrorResponse) Body() (core.Optional[ErrorBody], error) {
	return errorResponseBody.Get(&m.Object)
}
func (m *ErrorResponse) SetBody(v ErrorBody) { errorResponseBody.Set(&m.Object, v) }
func (m *ErrorResponse) UnsetBody() { errorResponseBody.Unset(&m.Object) }

func (m *ErrorResponse) Validate() error { return errorResponseSchema.Validate(&m.Object) }
func (m *ErrorResponse) Clone() *ErrorResponse { return core.Clone(m) }
func (m *ErrorResponse) Equal(o *ErrorResponse) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields ErrorResponse does not declare.
func (m *ErrorResponse) AdditionalProperties() map[string]json.RawMessage {
	return errorResponseSchema.AdditionalProperties(&m.Object)
}

// ErrorBody describes an API failure.
type ErrorBody struct{ core.Object }

var (
	errorBodyCode      = core.NewField[string]("ErrorBody", "code", core.Required)
	errorBodyMessage   = core.NewField[string]("ErrorBody", "message", core.Required)
	errorBodyDetails   = core.NewField[map[string]any]("ErrorBody", "details", core.Nullable)
	errorBodyRequestID = core.NewField[string]("ErrorBody", "request_id", core.Nullable)
	errorBodySchema    = core.NewSchema("ErrorBody",
		errorBodyCode,
		errorBodyMessage,
		errorBodyDetails,
		errorBodyRequestID,
	)
)

// ErrorBodyParams holds the named arguments of NewErrorBody. Fields left
// unspecified are not written to the wire.
type ErrorBodyParams struct {
	Code      core.Optional[string]
	Message   core.Optional[string]
	Details   core.Optional[map[string]any]
	RequestID core.Optional[string]
}

func NewErrorBody(p ErrorBodyParams) *ErrorBody {
	m := &ErrorBody{}
	errorBodyCode.Assign(&m.Object, p.Code)
	errorBodyMessage.Assign(&m.Object, p.Message)
	errorBodyDetails.Assign(&m.Object, p.Details)
	errorBodyRequestID.Assign(&m.Object, p.RequestID)
	return m
}

// Code is a stable machine-readable identifier such as VALIDATION_ERROR.
func (m *ErrorBody) Code() (core.Optional[string], error) { return errorBodyCode.Get(&m.Object) }
func (m *ErrorBody) SetCode(v string) { errorBodyCode.Set(&m.Object, v) }
func (m *ErrorBody) UnsetCode() { errorBodyCode.Unset(&m.Object) }

func (m *ErrorBody) Message() (core.Optional[string], error) {
	return errorBodyMessage.Get(&m.Object)
}
func (m *ErrorBody) SetMessage(v string) { errorBodyMessage.Set(&m.Object, v) }
func (m *ErrorBody) UnsetMessage() { errorBodyMessage.Unset(&m.Object) }

func (m *ErrorBody) Details() (core.Optional[map[string]any], error) {
	return errorBodyDetails.Get(&m.Object)
}
func (m *ErrorBody) SetDetails(v map[string]any) { errorBodyDetails.Set(&m.Object, v) }
func (m *ErrorBody) SetDetailsNull() { errorBodyDetails.SetNull(&m.Object) }
func (m *ErrorBody) UnsetDetails() { errorBodyDetails.Unset(&m.Object) }

func (m *ErrorBody) RequestID() (core.Optional[string], error) {
	return errorBodyRequestID.Get(&m.Object)
}
func (m *ErrorBody) SetRequestID(v string) { errorBodyRequestID.Set(&m.Object, v) }
func (m *ErrorBody) SetRequestIDNull() { errorBodyRequestID.SetNull(&m.Object) }
func (m *ErrorBody) UnsetRequestID() { errorBodyRequestID.Unset(&m.Object) }

func (m *ErrorBody) Validate() error { return errorBodySchema.Validate(&m.Object) }
func (m *ErrorBody) Clone() *ErrorBody { return core.Clone(m) }
func (m *ErrorBody) Equal(o *ErrorBody) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields ErrorBody does not declare.
func (m *ErrorBody) AdditionalProperties() map[string]json.RawMessage {
	return errorBodySchema.AdditionalProperties(&m.Object)
}

// NewError builds an ErrorResponse envelope. Empty details and requestID are omitted.
func NewError(code, message string, details map[string]any, requestID string) *ErrorResponse {
	body := NewErrorBody(ErrorBodyParams{Code: core.Some(code), Message: core.Some(message)})
	if details != nil {
		body.SetDetails(details)
	}
	if requestID != "" {
		body.SetRequestID(requestID)
	}
	return NewErrorResponse(ErrorResponseParams{Body: core.Some(*body)})
}
