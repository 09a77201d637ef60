package meeting

import "github.com/johnquangdev/virtual-office/internal/domain/entities"

// ListMeetingsResponse pages through a company's meetings
type ListMeetingsResponse struct {
	Meetings []*entities.Meeting `json:"meetings"`
	Total    int64               `json:"total"`
}

// TranscriptResponse is the full message history of a meeting
type TranscriptResponse struct {
	Messages []*entities.Message `json:"messages"`
}

// ImagesResponse lists a meeting's images in display order
type ImagesResponse struct {
	Images []*entities.MeetingImage `json:"images"`
}

// ActionItemsResponse lists a meeting's action items
type ActionItemsResponse struct {
	ActionItems []*entities.ActionItem `json:"action_items"`
}
