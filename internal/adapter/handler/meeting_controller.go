package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/errors"
	meetingDto "github.com/johnquangdev/virtual-office/internal/adapter/dto/meeting"
	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
	chatUsecase "github.com/johnquangdev/virtual-office/internal/usecase/chat"
	meetingUsecase "github.com/johnquangdev/virtual-office/internal/usecase/meeting"
)

// Meeting handles meeting lifecycle and conversation HTTP requests
type Meeting struct {
	meetingService *meetingUsecase.Service
	chatService    *chatUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService *meetingUsecase.Service, chatService *chatUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		chatService:    chatService,
		logger:         logger,
	}
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(name + " must be a valid UUID")
	}
	return id, nil
}

// CreateMeeting handles POST /companies/:companyID/meetings
// @Summary      Create a meeting
// @Description  Creates an active meeting with AI staff participants and their generation config
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        companyID  path      string                           true  "Company ID"
// @Param        request    body      meeting.CreateMeetingRequest     true  "Meeting creation request"
// @Success      201        {object}  entities.Meeting
// @Failure      400        {object}  map[string]interface{}
// @Failure      404        {object}  map[string]interface{}
// @Router       /companies/{companyID}/meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	companyID, err := parseUUIDParam(c, "companyID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input := meetingUsecase.CreateMeetingInput{
		Title:       req.Title,
		MeetingType: req.MeetingType,
	}
	for _, p := range req.Participants {
		staffID, err := uuid.Parse(p.StaffID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("staff_id must be a valid UUID"))
		}
		input.Participants = append(input.Participants, meetingUsecase.ParticipantConfig{
			StaffID:     staffID,
			LLMProvider: p.LLMProvider,
			LLMModel:    p.LLMModel,
		})
	}

	created, err := h.meetingService.CreateMeeting(c.Request().Context(), companyID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, created)
}

// ListMeetings handles GET /companies/:companyID/meetings
// @Summary      List meetings
// @Tags         Meetings
// @Produce      json
// @Param        companyID  path      string  true   "Company ID"
// @Param        status     query     string  false  "Filter by status (active|ended)"
// @Param        limit      query     int     false  "Page size"
// @Param        offset     query     int     false  "Page offset"
// @Success      200        {object}  meeting.ListMeetingsResponse
// @Router       /companies/{companyID}/meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	companyID, err := parseUUIDParam(c, "companyID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := repositories.MeetingFilters{CompanyID: companyID}
	if raw := c.QueryParam("status"); raw != "" {
		status := entities.MeetingStatus(raw)
		if status != entities.MeetingStatusActive && status != entities.MeetingStatusEnded {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("status must be active or ended"))
		}
		filters.Status = &status
	}
	filters.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filters.Offset, _ = strconv.Atoi(c.QueryParam("offset"))

	meetings, total, err := h.meetingService.ListMeetings(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingDto.ListMeetingsResponse{
		Meetings: meetings,
		Total:    total,
	})
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  entities.Meeting
// @Failure      404  {object}  map[string]interface{}
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, m)
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Description  Removes the meeting, its transcript, images and stored files
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// GetTranscript handles GET /meetings/:id/messages
// @Summary      Get the meeting transcript
// @Tags         Messages
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.TranscriptResponse
// @Router       /meetings/{id}/messages [get]
func (h *Meeting) GetTranscript(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	messages, err := h.meetingService.GetTranscript(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingDto.TranscriptResponse{Messages: messages})
}

// SendMessage handles POST /meetings/:id/messages
// @Summary      Send a message to one persona
// @Description  Streams the persona's reply as plain text. The staff_id query
// @Description  parameter selects the participant; save_user_message=false skips
// @Description  recording the user message (for sequential fan-out clients).
// @Tags         Messages
// @Accept       json
// @Produce      plain
// @Param        id                 path      string                      true   "Meeting ID"
// @Param        staff_id           query     string                      true   "Participant staff ID"
// @Param        save_user_message  query     bool                        false  "Record the user message (default true)"
// @Param        request            body      meeting.SendMessageRequest  true   "Message"
// @Success      200  {string}  string  "Streamed reply"
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /meetings/{id}/messages [post]
func (h *Meeting) SendMessage(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	staffID, err := uuid.Parse(c.QueryParam("staff_id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("staff_id must be a valid UUID"))
	}

	var req meetingDto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	saveUserMessage := c.QueryParam("save_user_message") != "false"

	w := newStreamWriter(c)
	err = h.chatService.SendMessage(c.Request().Context(), id, staffID, req.SenderName, req.Content, saveUserMessage, w)
	if err != nil && !w.Started() {
		return HandleError(h.logger, c, err)
	}
	if err != nil {
		// The stream already carried an error notice; nothing more to send.
		h.logger.Error("message turn ended with error after streaming began",
			zap.String("meeting_id", id.String()),
			zap.Error(err))
	}
	return nil
}

// AskAll handles POST /meetings/:id/ask-all
// @Summary      Broadcast a message to every participant
// @Description  Streams each persona's reply in join order, delimited by ---STAFF:<name>--- lines
// @Tags         Messages
// @Accept       json
// @Produce      plain
// @Param        id       path      string                      true  "Meeting ID"
// @Param        request  body      meeting.SendMessageRequest  true  "Message"
// @Success      200  {string}  string  "Streamed replies"
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /meetings/{id}/ask-all [post]
func (h *Meeting) AskAll(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	w := newStreamWriter(c)
	err = h.chatService.AskAll(c.Request().Context(), id, req.SenderName, req.Content, w)
	if err != nil && !w.Started() {
		return HandleError(h.logger, c, err)
	}
	if err != nil {
		h.logger.Error("broadcast ended with error after streaming began",
			zap.String("meeting_id", id.String()),
			zap.Error(err))
	}
	return nil
}

// UpdateStatus handles PUT /meetings/:id/status
// @Summary      End a meeting
// @Description  Transitions the meeting to ended, generates the summary and extracts action items
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Meeting ID"
// @Param        request  body      meeting.UpdateStatusRequest  true  "Status update"
// @Success      200  {object}  entities.Meeting
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /meetings/{id}/status [put]
func (h *Meeting) UpdateStatus(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	ended, err := h.meetingService.EndMeeting(c.Request().Context(), id, meetingUsecase.EndMeetingOptions{
		SummaryProvider: req.SummaryProvider,
		SummaryModel:    req.SummaryModel,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, ended)
}

// UploadImage handles POST /meetings/:id/images
// @Summary      Upload a meeting image
// @Description  Accepts base64 image data (raw or data URL) and assigns the next @img number
// @Tags         Images
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Meeting ID"
// @Param        request  body      meeting.UploadImageRequest  true  "Image payload"
// @Success      201  {object}  entities.MeetingImage
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /meetings/{id}/images [post]
func (h *Meeting) UploadImage(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDto.UploadImageRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	img, err := h.meetingService.UploadImage(c.Request().Context(), id, req.ImageData, req.Description)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, img)
}

// ListImages handles GET /meetings/:id/images
// @Summary      List meeting images
// @Tags         Images
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.ImagesResponse
// @Router       /meetings/{id}/images [get]
func (h *Meeting) ListImages(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	images, err := h.meetingService.ListImages(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingDto.ImagesResponse{Images: images})
}

// ListActionItems handles GET /meetings/:id/action-items
// @Summary      List action items
// @Tags         ActionItems
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.ActionItemsResponse
// @Router       /meetings/{id}/action-items [get]
func (h *Meeting) ListActionItems(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items, err := h.meetingService.GetActionItems(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingDto.ActionItemsResponse{ActionItems: items})
}

// CreateActionItem handles POST /meetings/:id/action-items
// @Summary      Create a manual action item
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Meeting ID"
// @Param        request  body      meeting.CreateActionItemRequest  true  "Action item"
// @Success      201  {object}  entities.ActionItem
// @Failure      404  {object}  map[string]interface{}
// @Router       /meetings/{id}/action-items [post]
func (h *Meeting) CreateActionItem(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDto.CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	item, err := h.meetingService.CreateActionItem(c.Request().Context(), id, req.Description, req.AssignedTo)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, item)
}

// CompleteActionItem handles PUT /action-items/:id/complete
// @Summary      Complete an action item
// @Tags         ActionItems
// @Produce      json
// @Param        id   path      string  true  "Action item ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /action-items/{id}/complete [put]
func (h *Meeting) CompleteActionItem(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.CompleteActionItem(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
