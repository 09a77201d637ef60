package meeting

// ParticipantRequest configures one staff persona for a meeting
type ParticipantRequest struct {
	StaffID     string  `json:"staff_id" validate:"required,uuid"`
	LLMProvider string  `json:"llm_provider" validate:"omitempty,oneof=gemini ollama"`
	LLMModel    *string `json:"llm_model,omitempty"`
}

// CreateMeetingRequest represents the meeting creation payload
type CreateMeetingRequest struct {
	Title        string               `json:"title" validate:"required,max=255"`
	MeetingType  string               `json:"meeting_type" validate:"omitempty,max=50"`
	Participants []ParticipantRequest `json:"participants" validate:"omitempty,dive"`
}

// SendMessageRequest represents a user message aimed at one persona or at
// the whole meeting
type SendMessageRequest struct {
	Content    string `json:"content" validate:"required"`
	SenderName string `json:"sender_name" validate:"omitempty,max=255"`
}

// UpdateStatusRequest closes a meeting. The optional provider/model pair
// overrides the configured summary backend for this one request.
type UpdateStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=ended"`
	SummaryProvider string `json:"summary_provider" validate:"omitempty,oneof=gemini ollama"`
	SummaryModel    string `json:"summary_model,omitempty"`
}

// UploadImageRequest carries a base64 image, with or without a data URL header
type UploadImageRequest struct {
	ImageData   string  `json:"image_data" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// CreateActionItemRequest adds a manual action item to a meeting
type CreateActionItemRequest struct {
	Description string  `json:"description" validate:"required"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
}
