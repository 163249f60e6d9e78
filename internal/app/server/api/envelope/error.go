package envelope

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Stable error codes. Clients branch on these, never on messages.
const (
	CodeNotFound   = "RESOURCE_NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

const (
	msgNotFound   = "Requested resource not found"
	msgValidation = "The request contains invalid data"
	msgInternal   = "An unexpected error occurred"
)

// FieldViolation is one invalid field inside a validation error.
type FieldViolation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorDetail is the error object inside an error envelope.
type ErrorDetail struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Details []FieldViolation `json:"details,omitempty"`
}

// Error is the error envelope. It mirrors the success envelope shape,
// so clients branch on the success flag rather than on structure. It
// satisfies huma.StatusError and is returned directly from handlers.
type Error struct {
	status int

	Success bool        `json:"success"`
	Detail  ErrorDetail `json:"error"`
	Meta    Meta        `json:"meta"`
}

func (e *Error) Error() string {
	return e.Detail.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// ContentType keeps error responses on plain JSON instead of huma's
// default problem+json.
func (e *Error) ContentType(string) string {
	return "application/json"
}

func NotFound(ctx context.Context) *Error {
	return newError(ctx, http.StatusNotFound, CodeNotFound, msgNotFound, nil)
}

func Validation(ctx context.Context, details []FieldViolation) *Error {
	return newError(ctx, http.StatusUnprocessableEntity, CodeValidation, msgValidation, details)
}

// Internal deliberately drops the underlying error from the payload;
// whatever failed is logged server-side, not leaked to the client.
func Internal(ctx context.Context) *Error {
	return newError(ctx, http.StatusInternalServerError, CodeInternal, msgInternal, nil)
}

func newError(ctx context.Context, status int, code, message string, details []FieldViolation) *Error {
	return &Error{
		status:  status,
		Success: false,
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: NewMeta(ctx),
	}
}

// init reroutes every error huma produces on its own (body decoding,
// schema validation, unknown operations) through the same envelope.
func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		var details []FieldViolation
		for _, err := range errs {
			if err == nil {
				continue
			}
			violation := FieldViolation{Code: "invalid", Message: err.Error()}
			if d, ok := err.(huma.ErrorDetailer); ok {
				detail := d.ErrorDetail()
				violation.Field = trimLocation(detail.Location)
				violation.Message = detail.Message
			}
			details = append(details, violation)
		}

		e := &Error{status: status, Success: false, Meta: metaNow()}
		switch {
		case status == http.StatusNotFound:
			e.Detail = ErrorDetail{Code: CodeNotFound, Message: msgNotFound}
		case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
			e.Detail = ErrorDetail{Code: CodeValidation, Message: msgValidation, Details: details}
		case status >= http.StatusInternalServerError:
			e.Detail = ErrorDetail{Code: CodeInternal, Message: msgInternal}
		default:
			e.Detail = ErrorDetail{Code: CodeInternal, Message: message, Details: details}
		}
		return e
	}
}

func metaNow() Meta {
	return NewMeta(context.Background())
}

// trimLocation turns huma's "body.data.attributes.name" locations into
// the field path clients see in their request payloads.
func trimLocation(location string) string {
	return strings.TrimPrefix(location, "body.")
}
