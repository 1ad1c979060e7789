package transport

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

type ErrorKind int

const (
	ConfigurationError ErrorKind = iota + 1
	ValidationError
	MethodError
	DependencyError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration"
	case ValidationError:
		return "validation"
	case MethodError:
		return "method"
	case DependencyError:
		return "dependency"
	}
	return "unknown"
}

// HTTPError is the only error type handlers hand to SendError. Message is
// safe to show a caller, Err (if any) becomes the "details" field.
type HTTPError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) Status() int {
	switch e.Kind {
	case ValidationError:
		return http.StatusBadRequest
	case MethodError:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func (e *HTTPError) Body() ErrorBody {
	body := ErrorBody{Error: e.Message}
	if e.Err != nil {
		body.Details = e.Err.Error()
	}
	return body
}

func NewConfigurationError(message string) *HTTPError {
	return &HTTPError{Kind: ConfigurationError, Message: message}
}

func NewValidationError(message string, cause error) *HTTPError {
	return &HTTPError{Kind: ValidationError, Message: message, Err: cause}
}

func NewMethodError() *HTTPError {
	return &HTTPError{Kind: MethodError, Message: http.StatusText(http.StatusMethodNotAllowed)}
}

func NewDependencyError(message string, cause error) *HTTPError {
	return &HTTPError{Kind: DependencyError, Message: message, Err: cause}
}

// SendError shapes err into a JSON error response. Anything that isn't an
// *HTTPError is reported as a bare 500 without leaking its text.
func SendError(err error, origin string) Response {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		log.Printf("ERR (%d): %v", http.StatusInternalServerError, err)
		return JSONResponse(http.StatusInternalServerError, ErrorBody{
			Error: http.StatusText(http.StatusInternalServerError),
		}, origin)
	}

	status := httpErr.Status()
	log.Printf("ERR (%d): %v", status, httpErr)
	return JSONResponse(status, httpErr.Body(), origin)
}
