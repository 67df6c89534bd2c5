package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "request parameter binding error",
	ErrValidation:      "request parameter validation error",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "request rate too high",

	// Operator account error codes
	ErrAdminNotFound:          "operator account not found",
	ErrAdminAlreadyExist:      "operator account already exists",
	ErrAdminPasswordIncorrect: "incorrect password",

	// House error codes
	ErrHouseNotFound:     "house not found",
	ErrHouseAlreadyExist: "house number already registered",
	ErrInvalidHouseSize:  "invalid house size format",

	// Bill error codes
	ErrBillNotFound:      "bill not found",
	ErrInvalidBillDate:   "invalid billing date",
	ErrInvalidBillStatus: "invalid bill status",
	ErrNoBills:           "no bills found for this house",

	// Fine error codes
	ErrFineNotFound: "fine not found",
	ErrPartialSync:  "some fine status updates failed",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Operator account error codes
	ErrAdminNotFound:          StatusNotFound,
	ErrAdminAlreadyExist:      StatusBadRequest,
	ErrAdminPasswordIncorrect: StatusUnauthorized,

	// House error codes
	ErrHouseNotFound:     StatusNotFound,
	ErrHouseAlreadyExist: StatusBadRequest,
	ErrInvalidHouseSize:  StatusBadRequest,

	// Bill error codes
	ErrBillNotFound:      StatusNotFound,
	ErrInvalidBillDate:   StatusBadRequest,
	ErrInvalidBillStatus: StatusBadRequest,
	ErrNoBills:           StatusNotFound,

	// Fine error codes
	ErrFineNotFound: StatusNotFound,
	ErrPartialSync:  StatusInternalServerError,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
