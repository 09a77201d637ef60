package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Company errors
var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrStaffNotFound   = errors.New("staff not found")
	ErrStaffInactive   = errors.New("staff is not active")
)

// Meeting errors
var (
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrMeetingNotActive    = errors.New("meeting is not active")
	ErrMeetingAlreadyEnded = errors.New("meeting has already ended")
	ErrNoParticipants      = errors.New("meeting has no participants")
	ErrNotParticipant      = errors.New("staff is not a participant of this meeting")
)

// Generation errors
var (
	ErrUnsupportedProvider = errors.New("unsupported llm provider")
	ErrGenerationFailed    = errors.New("response generation failed")
	ErrEmptyMessage        = errors.New("message content is empty")
)

// Image and asset errors
var (
	ErrImageNotFound    = errors.New("meeting image not found")
	ErrAssetNotFound    = errors.New("company asset not found")
	ErrInvalidImageData = errors.New("invalid image data")
)
