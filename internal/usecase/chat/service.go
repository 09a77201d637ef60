package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/virtual-office/internal/usecase/errors"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

// finalizeTimeout bounds the persistence step that runs after streaming,
// on a context detached from the caller's so a disconnect cannot abort it.
const finalizeTimeout = 10 * time.Second

// conversationTemperature is sent with every persona turn
const conversationTemperature = 0.7

// Service orchestrates message turns: it validates the meeting state,
// assembles context, streams the persona reply to the caller and persists
// the transcript.
type Service struct {
	meetings     repositories.MeetingRepository
	participants repositories.ParticipantRepository
	messages     repositories.MessageRepository
	companies    repositories.CompanyRepository
	resolver     *MentionResolver
	assembler    *ContextAssembler
	registry     *llm.Registry
	logger       *zap.Logger
}

// NewService creates a chat service
func NewService(
	meetings repositories.MeetingRepository,
	participants repositories.ParticipantRepository,
	messages repositories.MessageRepository,
	companies repositories.CompanyRepository,
	resolver *MentionResolver,
	assembler *ContextAssembler,
	registry *llm.Registry,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings:     meetings,
		participants: participants,
		messages:     messages,
		companies:    companies,
		resolver:     resolver,
		assembler:    assembler,
		registry:     registry,
		logger:       logger,
	}
}

// turn is a plain-value snapshot of everything one generation needs.
// Snapshotting happens before streaming starts so no database-backed
// object is touched while the response is being written out.
type turn struct {
	staffID      uuid.UUID
	staffName    string
	provider     llm.Provider
	model        string
	systemPrompt string
	prompt       string
	attachments  []string
}

// promptInputs are the context blocks shared by every turn of one request
type promptInputs struct {
	conversation  string
	knowledge     string
	imageAdvisory string
	attachments   []string
	missing       []string
	companyName   string
	companyDesc   string
}

// SendMessage records the user's message and streams one participant's
// reply to sink. The reply is persisted after the stream completes, even
// when the caller disconnects mid-stream. saveUserMessage is normally
// true; clients that fan the same message out to several personas one
// request at a time pass false after the first turn to avoid duplicate
// transcript rows.
func (s *Service) SendMessage(ctx context.Context, meetingID, staffID uuid.UUID, senderName, content string, saveUserMessage bool, sink io.Writer) error {
	if strings.TrimSpace(content) == "" {
		return usecaseErrors.ErrEmptyMessage
	}

	meeting, err := s.activeMeeting(ctx, meetingID)
	if err != nil {
		return err
	}

	participant, err := s.participants.FindByMeetingAndStaff(ctx, meetingID, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrNotParticipant
		}
		return err
	}
	if participant.Staff == nil {
		return usecaseErrors.ErrStaffNotFound
	}

	if saveUserMessage {
		if err := s.recordUserMessage(ctx, meeting, senderName, content); err != nil {
			return err
		}
	} else {
		// Linking is idempotent, so repeated turns over the same message
		// still surface mentioned assets without duplicating them.
		s.resolver.LinkMentionedAssets(ctx, meeting.ID, meeting.CompanyID, content)
	}

	inputs, err := s.assembleInputs(ctx, meeting, content)
	if err != nil {
		return err
	}

	t, err := s.snapshotTurn(participant, inputs, content)
	if err != nil {
		return err
	}

	w := &guardedWriter{w: sink}
	return s.runTurn(ctx, meetingID, t, w)
}

// AskAll records the user's message once and streams every participant's
// reply in join order, each preceded by a ---STAFF:<name>--- delimiter
// line. Every participant is attempted: one whose backend cannot be used
// still gets its delimiter followed by an error line, and the broadcast
// goes on.
func (s *Service) AskAll(ctx context.Context, meetingID uuid.UUID, senderName, content string, sink io.Writer) error {
	if strings.TrimSpace(content) == "" {
		return usecaseErrors.ErrEmptyMessage
	}

	meeting, err := s.activeMeeting(ctx, meetingID)
	if err != nil {
		return err
	}

	parts, err := s.participants.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return usecaseErrors.ErrNoParticipants
	}

	if err := s.recordUserMessage(ctx, meeting, senderName, content); err != nil {
		return err
	}

	// Context is assembled once: every participant answers the same
	// snapshot of the conversation, not each other's replies.
	inputs, err := s.assembleInputs(ctx, meeting, content)
	if err != nil {
		return err
	}

	// Turns are snapshotted before streaming starts so no database-backed
	// object is touched while the response is being written out. A failed
	// snapshot is kept so the participant still shows up in the stream.
	type broadcastEntry struct {
		t        turn
		provider string
		err      error
	}
	entries := make([]broadcastEntry, 0, len(parts))
	for _, p := range parts {
		if p.Staff == nil {
			s.logger.Warn("participant without staff record skipped",
				zap.String("participant_id", p.ID.String()))
			continue
		}
		t, err := s.snapshotTurn(p, inputs, content)
		if err != nil {
			entries = append(entries, broadcastEntry{
				t:        turn{staffName: p.Staff.Name},
				provider: p.LLMProvider,
				err:      err,
			})
			continue
		}
		entries = append(entries, broadcastEntry{t: t})
	}

	w := &guardedWriter{w: sink}
	for _, e := range entries {
		w.write(fmt.Sprintf("---STAFF:%s---\n", e.t.staffName))
		if e.err != nil {
			s.logger.Warn("participant backend unusable",
				zap.String("staff", e.t.staffName),
				zap.String("provider", e.provider),
				zap.Error(e.err))
			w.write(fmt.Sprintf("Error: unsupported provider %q\n", e.provider))
			continue
		}
		if err := s.runTurn(ctx, meetingID, e.t, w); err != nil {
			s.logger.Error("participant turn failed",
				zap.String("meeting_id", meetingID.String()),
				zap.String("staff", e.t.staffName),
				zap.Error(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return nil
}

func (s *Service) activeMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, err
	}
	if !meeting.IsActive() {
		return nil, usecaseErrors.ErrMeetingNotActive
	}
	return meeting, nil
}

func (s *Service) recordUserMessage(ctx context.Context, meeting *entities.Meeting, senderName, content string) error {
	if senderName == "" {
		senderName = "User"
	}
	msg := entities.NewUserMessage(meeting.ID, senderName, content)
	if err := s.messages.Create(ctx, msg); err != nil {
		return err
	}
	// Mentioned company assets become visible in the meeting's image list
	s.resolver.LinkMentionedAssets(ctx, meeting.ID, meeting.CompanyID, content)
	return nil
}

func (s *Service) assembleInputs(ctx context.Context, meeting *entities.Meeting, content string) (promptInputs, error) {
	conversation, err := s.assembler.ConversationContext(ctx, meeting.ID)
	if err != nil {
		return promptInputs{}, err
	}

	// Knowledge context is advisory: a failing knowledge query degrades
	// the prompt instead of failing the turn.
	knowledge, err := s.assembler.KnowledgeContext(ctx, meeting.CompanyID)
	if err != nil {
		s.logger.Warn("knowledge context unavailable",
			zap.String("company_id", meeting.CompanyID.String()),
			zap.Error(err))
		knowledge = ""
	}

	// The advisory lists stored images regardless of mentions; failures
	// degrade the prompt only.
	advisory, err := s.assembler.ImageAdvisory(ctx, meeting.ID)
	if err != nil {
		s.logger.Warn("image advisory unavailable",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err))
		advisory = ""
	}

	resolution := s.resolver.ResolveAll(ctx, meeting.ID, meeting.CompanyID, content)
	if len(resolution.Missing) > 0 {
		s.logger.Warn("unresolved mentions in message",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Strings("missing", resolution.Missing))
	}

	inputs := promptInputs{
		conversation:  conversation,
		knowledge:     knowledge,
		imageAdvisory: advisory,
		attachments:   resolution.Paths,
		missing:       resolution.Missing,
	}

	company, err := s.companies.FindByID(ctx, meeting.CompanyID)
	if err == nil {
		inputs.companyName = company.DisplayName()
		if company.Description != nil {
			inputs.companyDesc = *company.Description
		}
	} else {
		inputs.companyName = "the company"
	}
	return inputs, nil
}

func (s *Service) snapshotTurn(p *entities.Participant, inputs promptInputs, content string) (turn, error) {
	provider, err := llm.ParseProvider(p.LLMProvider)
	if err != nil {
		return turn{}, usecaseErrors.ErrUnsupportedProvider
	}
	if _, err := s.registry.Client(provider); err != nil {
		return turn{}, usecaseErrors.ErrUnsupportedProvider
	}

	systemPrompt := BuildSystemPrompt(PromptParams{
		StaffName:           p.Staff.Name,
		Role:                p.Staff.Role,
		Personality:         p.Staff.PersonalityText(),
		Expertise:           p.Staff.ExpertiseList(),
		CompanyName:         inputs.companyName,
		CompanyDescription:  inputs.companyDesc,
		KnowledgeContext:    inputs.knowledge,
		ConversationContext: inputs.conversation,
		ImageAdvisory:       inputs.imageAdvisory,
	})

	return turn{
		staffID:      p.StaffID,
		staffName:    p.Staff.Name,
		provider:     provider,
		model:        p.ModelName(),
		systemPrompt: systemPrompt,
		prompt:       content,
		attachments:  inputs.attachments,
	}, nil
}

// runTurn streams one persona's reply into w and persists whatever text
// was produced. Provider failures surface as visible text in the stream
// and are persisted like any other reply; only a persistence failure is
// returned as an error.
func (s *Service) runTurn(ctx context.Context, meetingID uuid.UUID, t turn, w *guardedWriter) error {
	client, err := s.registry.Client(t.provider)
	if err != nil {
		return usecaseErrors.ErrUnsupportedProvider
	}

	var full strings.Builder
	ch, err := client.Stream(ctx, llm.GenerateRequest{
		Prompt:          t.prompt,
		SystemPrompt:    t.systemPrompt,
		Model:           t.model,
		Temperature:     conversationTemperature,
		AttachmentPaths: t.attachments,
	})
	if err != nil {
		text := "Error generating response: " + err.Error()
		w.write(text)
		full.WriteString(text)
	} else {
		for chunk := range ch {
			if chunk.Err != nil {
				text := "Error generating response: " + chunk.Err.Error()
				w.write(text)
				full.WriteString(text)
				break
			}
			w.write(chunk.Text)
			full.WriteString(chunk.Text)
		}
	}

	// Persistence runs on a detached context so a caller disconnect after
	// partial output still leaves the transcript consistent.
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	msg := entities.NewStaffMessage(meetingID, t.staffID, t.staffName, full.String())
	if err := s.messages.Create(fctx, msg); err != nil {
		s.logger.Error("failed to persist staff reply",
			zap.String("meeting_id", meetingID.String()),
			zap.String("staff", t.staffName),
			zap.Error(err))
		w.write("\n[error: failed to save response]")
		return err
	}
	return nil
}

// guardedWriter writes until the first failure, then swallows the rest.
// A broken client connection must not abort generation or persistence.
type guardedWriter struct {
	w   io.Writer
	err error
}

func (g *guardedWriter) write(text string) {
	if g.err != nil || text == "" {
		return
	}
	if _, err := io.WriteString(g.w, text); err != nil {
		g.err = err
	}
}
