package serverutils

// ApiError carries an HTTP status alongside a user-facing message. Services
// return it for request-scoped failures (unknown ids, busy documents);
// anything else falls through to 500 in the error middleware.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code int, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}
