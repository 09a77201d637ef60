package meeting

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/virtual-office/internal/usecase/errors"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

const (
	summarySystemPrompt = "You are a professional meeting summarizer. Create a concise summary of the meeting " +
		"highlighting key points, decisions made, and action items."

	emptyMeetingSummary = "No discussion took place."

	// placeholder stored when the summary call keeps failing; the meeting
	// still closes
	summaryFailedPlaceholder = "Summary could not be generated."
)

// BlobStore persists uploaded attachment bytes and yields the relative
// path stored in the database.
type BlobStore interface {
	SaveMeetingImage(meetingID uuid.UUID, data []byte) (string, error)
	Remove(relPath string) error
}

// Archiver mirrors attachments to object storage. Best effort only.
type Archiver interface {
	Archive(ctx context.Context, relPath string, data []byte) error
}

// Service handles meeting lifecycle business logic
type Service struct {
	meetings     repositories.MeetingRepository
	participants repositories.ParticipantRepository
	messages     repositories.MessageRepository
	images       repositories.MeetingImageRepository
	actionItems  repositories.ActionItemRepository
	companies    repositories.CompanyRepository
	staff        repositories.StaffRepository
	registry     *llm.Registry
	store        BlobStore
	archiver     Archiver

	summaryProvider llm.Provider
	summaryModel    string
	logger          *zap.Logger
}

// NewService creates a meeting service. archiver may be nil when object
// storage mirroring is disabled.
func NewService(
	meetings repositories.MeetingRepository,
	participants repositories.ParticipantRepository,
	messages repositories.MessageRepository,
	images repositories.MeetingImageRepository,
	actionItems repositories.ActionItemRepository,
	companies repositories.CompanyRepository,
	staff repositories.StaffRepository,
	registry *llm.Registry,
	store BlobStore,
	archiver Archiver,
	summaryProvider llm.Provider,
	summaryModel string,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings:        meetings,
		participants:    participants,
		messages:        messages,
		images:          images,
		actionItems:     actionItems,
		companies:       companies,
		staff:           staff,
		registry:        registry,
		store:           store,
		archiver:        archiver,
		summaryProvider: summaryProvider,
		summaryModel:    summaryModel,
		logger:          logger,
	}
}

// ParticipantConfig selects one staff member and the generation backend
// they use in the meeting
type ParticipantConfig struct {
	StaffID     uuid.UUID
	LLMProvider string
	LLMModel    *string
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title        string
	MeetingType  string
	Participants []ParticipantConfig
}

// CreateMeeting creates an active meeting with its participants
func (s *Service) CreateMeeting(ctx context.Context, companyID uuid.UUID, input CreateMeetingInput) (*entities.Meeting, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrCompanyNotFound
		}
		return nil, err
	}

	meeting := &entities.Meeting{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Title:       input.Title,
		MeetingType: input.MeetingType,
		Status:      entities.MeetingStatusActive,
	}
	if meeting.MeetingType == "" {
		meeting.MeetingType = "general"
	}

	now := time.Now()
	for _, pc := range input.Participants {
		st, err := s.staff.FindByID(ctx, pc.StaffID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, usecaseErrors.ErrStaffNotFound
			}
			return nil, err
		}
		if st.CompanyID != companyID || !st.IsActive {
			return nil, usecaseErrors.ErrStaffInactive
		}

		provider := pc.LLMProvider
		if provider == "" {
			provider = string(llm.ProviderGemini)
		}
		if _, err := llm.ParseProvider(provider); err != nil {
			return nil, usecaseErrors.ErrUnsupportedProvider
		}

		meeting.Participants = append(meeting.Participants, entities.Participant{
			ID:          uuid.New(),
			MeetingID:   meeting.ID,
			StaffID:     st.ID,
			LLMProvider: provider,
			LLMModel:    pc.LLMModel,
			JoinedAt:    now,
		})
	}

	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// GetMeeting retrieves a meeting with participants and their staff
func (s *Service) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetings.FindByIDWithParticipants(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, err
	}
	return meeting, nil
}

// ListMeetings retrieves the meetings of a company
func (s *Service) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return s.meetings.List(ctx, filters)
}

// GetTranscript retrieves the full transcript of a meeting in order
func (s *Service) GetTranscript(ctx context.Context, meetingID uuid.UUID) ([]*entities.Message, error) {
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	return s.messages.FindByMeetingID(ctx, meetingID)
}

// EndMeetingOptions optionally overrides the summary backend
type EndMeetingOptions struct {
	SummaryProvider string
	SummaryModel    string
}

// EndMeeting closes an active meeting: it records the close timestamp,
// generates a transcript summary and extracts action items. Summary
// failure stores a placeholder instead of blocking closure; extraction
// failure is logged and swallowed.
func (s *Service) EndMeeting(ctx context.Context, id uuid.UUID, opts EndMeetingOptions) (*entities.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, err
	}
	if meeting.IsEnded() {
		return nil, usecaseErrors.ErrMeetingAlreadyEnded
	}

	transcript, err := s.messages.FindByMeetingID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := s.generateSummary(ctx, transcript, opts)
	meeting.End()
	meeting.Summary = &summary

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}

	s.extractActionItems(ctx, meeting.ID, transcript, opts)
	return meeting, nil
}

func renderTranscript(transcript []*entities.Message) string {
	lines := make([]string, 0, len(transcript))
	for _, m := range transcript {
		lines = append(lines, m.SenderName+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

func (s *Service) summaryClient(opts EndMeetingOptions) (llm.Client, string, error) {
	provider := s.summaryProvider
	model := s.summaryModel
	if opts.SummaryProvider != "" {
		p, err := llm.ParseProvider(opts.SummaryProvider)
		if err != nil {
			return nil, "", usecaseErrors.ErrUnsupportedProvider
		}
		provider = p
	}
	if opts.SummaryModel != "" {
		model = opts.SummaryModel
	}
	client, err := s.registry.Client(provider)
	if err != nil {
		return nil, "", usecaseErrors.ErrUnsupportedProvider
	}
	return client, model, nil
}

func (s *Service) generateSummary(ctx context.Context, transcript []*entities.Message, opts EndMeetingOptions) string {
	if len(transcript) == 0 {
		return emptyMeetingSummary
	}

	client, model, err := s.summaryClient(opts)
	if err != nil {
		s.logger.Error("summary backend unavailable", zap.Error(err))
		return summaryFailedPlaceholder
	}

	req := llm.GenerateRequest{
		Prompt:       "Please summarize this meeting:\n\n" + renderTranscript(transcript),
		SystemPrompt: summarySystemPrompt,
		Model:        model,
	}

	var summary string
	generate := func() error {
		text, err := client.Complete(ctx, req)
		if err != nil {
			return err
		}
		summary = text
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(generate, backoff.WithContext(bo, ctx)); err != nil {
		s.logger.Error("summary generation failed after retries", zap.Error(err))
		return summaryFailedPlaceholder
	}
	return summary
}

// extractActionItems is best effort: any failure leaves the meeting
// closed with zero items.
func (s *Service) extractActionItems(ctx context.Context, meetingID uuid.UUID, transcript []*entities.Message, opts EndMeetingOptions) {
	if len(transcript) == 0 {
		return
	}

	client, model, err := s.summaryClient(opts)
	if err != nil {
		s.logger.Warn("action item extraction skipped", zap.Error(err))
		return
	}

	raw, err := client.Complete(ctx, llm.GenerateRequest{
		Prompt:       "Extract the action items from this meeting:\n\n" + renderTranscript(transcript),
		SystemPrompt: extractionSystemPrompt,
		Model:        model,
	})
	if err != nil {
		s.logger.Warn("action item extraction failed",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		return
	}

	drafts, err := ParseActionItems(raw)
	if err != nil {
		s.logger.Warn("action item parsing failed",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		return
	}
	if len(drafts) == 0 {
		return
	}

	items := make([]*entities.ActionItem, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, &entities.ActionItem{
			ID:          uuid.New(),
			MeetingID:   meetingID,
			Description: d.Description,
			AssignedTo:  d.AssignedTo,
			Status:      entities.ActionItemStatusPending,
		})
	}
	if err := s.actionItems.CreateBatch(ctx, items); err != nil {
		s.logger.Warn("failed to store action items",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
	}
}

// DeleteMeeting removes a meeting, its database children via cascade and
// its image files on disk. File removal failures are logged and skipped.
func (s *Service) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetMeeting(ctx, id); err != nil {
		return err
	}

	images, err := s.images.FindByMeetingID(ctx, id)
	if err == nil {
		for _, img := range images {
			if err := s.store.Remove(img.FilePath); err != nil {
				s.logger.Warn("failed to remove image file",
					zap.String("path", img.FilePath),
					zap.Error(err))
			}
		}
	}

	return s.meetings.Delete(ctx, id)
}

// UploadImage decodes a base64 payload (with or without a data: header),
// stores the file and registers it with the next display order.
func (s *Service) UploadImage(ctx context.Context, meetingID uuid.UUID, imageData string, description *string) (*entities.MeetingImage, error) {
	meeting, err := s.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	encoded := imageData
	if idx := strings.Index(encoded, ","); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(data) == 0 {
		return nil, usecaseErrors.ErrInvalidImageData
	}

	relPath, err := s.store.SaveMeetingImage(meeting.ID, data)
	if err != nil {
		return nil, err
	}

	image := &entities.MeetingImage{
		ID:          uuid.New(),
		MeetingID:   meeting.ID,
		FilePath:    relPath,
		Description: description,
	}
	if err := s.images.Create(ctx, image); err != nil {
		// don't leave an orphaned file behind
		if rmErr := s.store.Remove(relPath); rmErr != nil {
			s.logger.Warn("failed to clean up orphaned upload", zap.Error(rmErr))
		}
		return nil, err
	}

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, relPath, data); err != nil {
			s.logger.Warn("image archival failed",
				zap.String("path", relPath),
				zap.Error(err))
		}
	}
	return image, nil
}

// ListImages retrieves the images of a meeting in display order
func (s *Service) ListImages(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingImage, error) {
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	return s.images.FindByMeetingID(ctx, meetingID)
}

// GetActionItems retrieves the action items of a meeting
func (s *Service) GetActionItems(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	return s.actionItems.FindByMeetingID(ctx, meetingID)
}

// CreateActionItem adds a manually entered action item to a meeting
func (s *Service) CreateActionItem(ctx context.Context, meetingID uuid.UUID, description string, assignedTo *string) (*entities.ActionItem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return nil, err
	}

	item := &entities.ActionItem{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Description: description,
		AssignedTo:  assignedTo,
		Status:      entities.ActionItemStatusPending,
	}
	if err := s.actionItems.CreateBatch(ctx, []*entities.ActionItem{item}); err != nil {
		return nil, err
	}
	return item, nil
}

// CompleteActionItem marks an action item as completed
func (s *Service) CompleteActionItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.actionItems.UpdateStatus(ctx, itemID, entities.ActionItemStatusCompleted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrNotFound
		}
		return err
	}
	return nil
}
