package apperrors

// ErrorCode identifies a failure class in API responses.
type ErrorCode string

const (
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
	ErrorCodeValidationError  ErrorCode = "VALIDATION_ERROR"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodeNothingFound     ErrorCode = "NOTHING_FOUND"
	ErrorCodeAllBanned        ErrorCode = "ALL_CANDIDATES_BANNED"
	ErrorCodeCatalogError     ErrorCode = "CATALOG_ERROR"
	ErrorCodeDeviceTimeout    ErrorCode = "DEVICE_TIMEOUT"
	ErrorCodeDeviceUnreached  ErrorCode = "DEVICE_UNREACHABLE"
	ErrorCodeDeviceRejected   ErrorCode = "DEVICE_REJECTED"
	ErrorCodeRegionRestricted ErrorCode = "REGION_RESTRICTED"
)

// ErrorBody is the serialized error payload.
type ErrorBody struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// AppError is the base error type for HTTP responses.
type AppError struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    map[string]any
}

func (err *AppError) Error() string {
	return err.Message
}

func (err *AppError) ErrorBody() ErrorBody {
	return ErrorBody{
		Code:    err.Code,
		Message: err.Message,
		Details: err.Details,
	}
}

func NewAppError(code ErrorCode, message string, statusCode int, details map[string]any) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

func NewValidationError(message string, details map[string]any) *AppError {
	return NewAppError(ErrorCodeValidationError, message, 400, details)
}

func NewNotFoundError(message string, details map[string]any) *AppError {
	return NewAppError(ErrorCodeNotFound, message, 404, details)
}

func NewConflictError(message string, details map[string]any) *AppError {
	return NewAppError(ErrorCodeConflict, message, 409, details)
}

func NewInternalError(message string) *AppError {
	return NewAppError(ErrorCodeInternalError, message, 500, nil)
}

// NewNothingFoundError reports an aggregation that produced zero candidates.
func NewNothingFoundError(query string) *AppError {
	return NewAppError(ErrorCodeNothingFound, "no results for query", 404, map[string]any{
		"query": query,
	})
}

// NewAllBannedError reports a batch rejected because every candidate matched
// the blacklist. Distinct from NOTHING_FOUND so callers can explain why
// nothing was queued.
func NewAllBannedError(count int) *AppError {
	return NewAppError(ErrorCodeAllBanned, "every candidate matched the blacklist", 422, map[string]any{
		"banned_count": count,
	})
}

// EnsureAppError converts an arbitrary error into an AppError.
func EnsureAppError(err error) *AppError {
	if err == nil {
		return NewInternalError("Unknown error")
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewInternalError("Internal server error")
}
