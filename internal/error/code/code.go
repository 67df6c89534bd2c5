package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: conflict.
	StatusConflict = 409
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request parameter binding error.
	ErrBind
	// ErrValidation - 400: request parameter validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Operator account error codes (101xxx).
const (
	// ErrAdminNotFound - 404: operator account not found.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 400: operator account already exists.
	ErrAdminAlreadyExist
	// ErrAdminPasswordIncorrect - 401: incorrect password.
	ErrAdminPasswordIncorrect
)

// House error codes (102xxx).
const (
	// ErrHouseNotFound - 404: house not found.
	ErrHouseNotFound int = iota + 102000
	// ErrHouseAlreadyExist - 400: house number already registered.
	ErrHouseAlreadyExist
	// ErrInvalidHouseSize - 400: malformed house size descriptor.
	ErrInvalidHouseSize
)

// Bill error codes (103xxx).
const (
	// ErrBillNotFound - 404: bill not found.
	ErrBillNotFound int = iota + 103000
	// ErrInvalidBillDate - 400: malformed billing month or due date.
	ErrInvalidBillDate
	// ErrInvalidBillStatus - 400: unknown bill status value.
	ErrInvalidBillStatus
	// ErrNoBills - 404: house has no bills to aggregate.
	ErrNoBills
)

// Fine error codes (104xxx).
const (
	// ErrFineNotFound - 404: fine not found.
	ErrFineNotFound int = iota + 104000
	// ErrPartialSync - 500: some fine status updates failed during synchronization.
	ErrPartialSync
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
