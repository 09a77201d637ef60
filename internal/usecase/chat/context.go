package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
)

const (
	conversationWindow = 10
	knowledgeWindow    = 5
	knowledgeSnippet   = 200
)

// ContextAssembler builds the textual context blocks fed into prompts
type ContextAssembler struct {
	messages  repositories.MessageRepository
	knowledge repositories.KnowledgeRepository
	images    repositories.MeetingImageRepository
	logger    *zap.Logger
}

// NewContextAssembler creates a context assembler
func NewContextAssembler(
	messages repositories.MessageRepository,
	knowledge repositories.KnowledgeRepository,
	images repositories.MeetingImageRepository,
	logger *zap.Logger,
) *ContextAssembler {
	return &ContextAssembler{
		messages:  messages,
		knowledge: knowledge,
		images:    images,
		logger:    logger,
	}
}

// ConversationContext renders the most recent messages of a meeting in
// chronological order. An empty transcript yields a fixed opener line so
// the model knows the meeting just started.
func (a *ContextAssembler) ConversationContext(ctx context.Context, meetingID uuid.UUID) (string, error) {
	recent, err := a.messages.FindRecent(ctx, meetingID, conversationWindow)
	if err != nil {
		return "", err
	}
	if len(recent) == 0 {
		return "This is the start of the meeting.", nil
	}

	lines := make([]string, 0, len(recent)+1)
	lines = append(lines, "Recent conversation:")
	// recent is newest first; walk backwards for chronological order
	for i := len(recent) - 1; i >= 0; i-- {
		lines = append(lines, recent[i].SenderName+": "+recent[i].Content)
	}
	return strings.Join(lines, "\n"), nil
}

// KnowledgeContext renders the latest knowledge base entries of a company.
// Returns an empty string when the knowledge base is empty.
func (a *ContextAssembler) KnowledgeContext(ctx context.Context, companyID uuid.UUID) (string, error) {
	entries, err := a.knowledge.FindRecentByCompanyID(ctx, companyID, knowledgeWindow)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "Company Knowledge Base:")
	for _, entry := range entries {
		lines = append(lines, "- "+entry.Title+": "+entry.Snippet(knowledgeSnippet))
	}
	return strings.Join(lines, "\n"), nil
}

// ImageAdvisory tells the persona which images the meeting holds, whether
// or not the current message mentions any of them. Empty when the meeting
// has no images.
func (a *ContextAssembler) ImageAdvisory(ctx context.Context, meetingID uuid.UUID) (string, error) {
	images, err := a.images.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(images)+1)
	lines = append(lines, "This meeting has attached images the user may reference by @img<number>:")
	for _, img := range images {
		line := fmt.Sprintf("- img%d", img.DisplayOrder)
		if desc := img.DescriptionText(); desc != "" {
			line += ": " + desc
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
