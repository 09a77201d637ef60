package errors

// ErrorCode is a machine-readable error identifier returned to API clients
type ErrorCode int32

const (
	ErrorCode_UNKNOWN          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2
	ErrorCode_NOT_FOUND        ErrorCode = 3
	ErrorCode_ALREADY_EXISTS   ErrorCode = 4
	ErrorCode_FORBIDDEN        ErrorCode = 5

	// Meeting lifecycle
	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 100
	ErrorCode_MEETING_NOT_ACTIVE    ErrorCode = 101
	ErrorCode_MEETING_ALREADY_ENDED ErrorCode = 102
	ErrorCode_PARTICIPANT_NOT_FOUND ErrorCode = 103

	// Generation
	ErrorCode_GENERATION_FAILED      ErrorCode = 200
	ErrorCode_PROVIDER_UNSUPPORTED   ErrorCode = 201
	ErrorCode_SUMMARY_FAILED         ErrorCode = 202
	ErrorCode_EXTRACTION_FAILED      ErrorCode = 203
	ErrorCode_PROVIDER_UNAVAILABLE   ErrorCode = 204

	// Storage and infrastructure
	ErrorCode_UPLOAD_FAILED         ErrorCode = 300
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 301
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 302
	ErrorCode_STORAGE_FAILED        ErrorCode = 303
	ErrorCode_CACHE_FAILED          ErrorCode = 304

	// Validation
	ErrorCode_INVALID_PAYLOAD ErrorCode = 400
	ErrorCode_INVALID_MENTION ErrorCode = 401
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:          "UNKNOWN",
	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_ARGUMENT: "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:   "ALREADY_EXISTS",
	ErrorCode_FORBIDDEN:        "FORBIDDEN",

	ErrorCode_MEETING_NOT_FOUND:     "MEETING_NOT_FOUND",
	ErrorCode_MEETING_NOT_ACTIVE:    "MEETING_NOT_ACTIVE",
	ErrorCode_MEETING_ALREADY_ENDED: "MEETING_ALREADY_ENDED",
	ErrorCode_PARTICIPANT_NOT_FOUND: "PARTICIPANT_NOT_FOUND",

	ErrorCode_GENERATION_FAILED:    "GENERATION_FAILED",
	ErrorCode_PROVIDER_UNSUPPORTED: "PROVIDER_UNSUPPORTED",
	ErrorCode_SUMMARY_FAILED:       "SUMMARY_FAILED",
	ErrorCode_EXTRACTION_FAILED:    "EXTRACTION_FAILED",
	ErrorCode_PROVIDER_UNAVAILABLE: "PROVIDER_UNAVAILABLE",

	ErrorCode_UPLOAD_FAILED:         "UPLOAD_FAILED",
	ErrorCode_DB_QUERY_FAILED:       "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED: "DB_TRANSACTION_FAILED",
	ErrorCode_STORAGE_FAILED:        "STORAGE_FAILED",
	ErrorCode_CACHE_FAILED:          "CACHE_FAILED",

	ErrorCode_INVALID_PAYLOAD: "INVALID_PAYLOAD",
	ErrorCode_INVALID_MENTION: "INVALID_MENTION",
}

// String returns the stable name of the code for logs and API responses
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
