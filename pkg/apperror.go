package pkg

import "fmt"

// AppError is the structured error surfaced by HTTP handlers. Expected
// failures are mapped to one of these; the JSON body keeps the
// {ok:false, error:{...}} shape consumed by the widget.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

type HTTPErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HTTPError struct {
	OK    bool          `json:"ok"`
	Error HTTPErrorBody `json:"error"`
}

// ToHTTPError renders the wire shape. The wrapped cause is intentionally not
// serialized.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{OK: false, Error: HTTPErrorBody{Code: e.Code, Message: e.Message}}
}
