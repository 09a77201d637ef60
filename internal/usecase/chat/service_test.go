package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/virtual-office/internal/usecase/errors"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

type serviceFixture struct {
	svc      *Service
	meetings *fakeMeetingRepo
	messages *fakeMessageRepo
	gemini   *fakeLLM
	ollama   *fakeLLM

	meetingID uuid.UUID
	companyID uuid.UUID
	staff     []*entities.Staff
}

func ptr(s string) *string { return &s }

// newServiceFixture wires a service over in-memory fakes with an active
// meeting and the given number of gemini-backed participants.
func newServiceFixture(t *testing.T, participantCount int) *serviceFixture {
	t.Helper()

	companyID := uuid.New()
	meetingID := uuid.New()

	meetings := newFakeMeetingRepo()
	meetings.meetings[meetingID] = &entities.Meeting{
		ID:        meetingID,
		CompanyID: companyID,
		Title:     "Standup",
		Status:    entities.MeetingStatusActive,
	}

	participants := &fakeParticipantRepo{}
	var staffList []*entities.Staff
	names := []string{"Maya", "Felix", "Iris", "Omar"}
	for i := 0; i < participantCount; i++ {
		st := &entities.Staff{
			ID:          uuid.New(),
			CompanyID:   companyID,
			Name:        names[i%len(names)],
			Role:        "Engineer",
			Personality: ptr("calm"),
		}
		staffList = append(staffList, st)
		participants.participants = append(participants.participants, &entities.Participant{
			ID:          uuid.New(),
			MeetingID:   meetingID,
			StaffID:     st.ID,
			Staff:       st,
			LLMProvider: "gemini",
		})
	}

	messages := &fakeMessageRepo{}
	companies := &fakeCompanyRepo{companies: map[uuid.UUID]*entities.Company{
		companyID: {ID: companyID, Name: "Acme", Description: ptr("Acme builds rockets.")},
	}}

	gemini := &fakeLLM{chunks: []llm.Chunk{{Text: "Hello "}, {Text: "from Maya"}}}
	ollama := &fakeLLM{chunks: []llm.Chunk{{Text: "local reply"}}}
	registry := llm.NewRegistry(map[llm.Provider]llm.Client{
		llm.ProviderGemini: gemini,
		llm.ProviderOllama: ollama,
	})

	resolver := NewMentionResolver(&fakeImageRepo{}, &fakeAssetRepo{}, t.TempDir(), zap.NewNop())
	assembler := NewContextAssembler(messages, &fakeKnowledgeRepo{}, &fakeImageRepo{}, zap.NewNop())

	svc := NewService(meetings, participants, messages, companies, resolver, assembler, registry, zap.NewNop())
	return &serviceFixture{
		svc:       svc,
		meetings:  meetings,
		messages:  messages,
		gemini:    gemini,
		ollama:    ollama,
		meetingID: meetingID,
		companyID: companyID,
		staff:     staffList,
	}
}

func TestSendMessage_StreamsAndPersists(t *testing.T) {
	f := newServiceFixture(t, 1)
	var out bytes.Buffer

	err := f.svc.SendMessage(context.Background(), f.meetingID, f.staff[0].ID, "User", "hello @img1", true, &out)
	require.NoError(t, err)

	assert.Equal(t, "Hello from Maya", out.String())

	userMsgs := f.messages.byType(entities.SenderTypeUser)
	require.Len(t, userMsgs, 1)
	assert.Equal(t, "hello @img1", userMsgs[0].Content)

	staffMsgs := f.messages.byType(entities.SenderTypeStaff)
	require.Len(t, staffMsgs, 1)
	assert.Equal(t, "Hello from Maya", staffMsgs[0].Content)
	assert.Equal(t, "Maya", staffMsgs[0].SenderName)
	require.NotNil(t, staffMsgs[0].StaffID)
	assert.Equal(t, f.staff[0].ID, *staffMsgs[0].StaffID)

	// the persona prompt carries identity and context
	assert.Contains(t, f.gemini.lastReq.SystemPrompt, "You are Maya, a Engineer at Acme.")
	assert.Contains(t, f.gemini.lastReq.SystemPrompt, "Acme builds rockets.")
	assert.InDelta(t, 0.7, f.gemini.lastReq.Temperature, 1e-9)
}

func TestSendMessage_Preconditions(t *testing.T) {
	f := newServiceFixture(t, 1)
	var out bytes.Buffer

	err := f.svc.SendMessage(context.Background(), f.meetingID, f.staff[0].ID, "User", "   ", true, &out)
	assert.ErrorIs(t, err, usecaseErrors.ErrEmptyMessage)

	err = f.svc.SendMessage(context.Background(), uuid.New(), f.staff[0].ID, "User", "hi", true, &out)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	err = f.svc.SendMessage(context.Background(), f.meetingID, uuid.New(), "User", "hi", true, &out)
	assert.ErrorIs(t, err, usecaseErrors.ErrNotParticipant)

	f.meetings.meetings[f.meetingID].End()
	err = f.svc.SendMessage(context.Background(), f.meetingID, f.staff[0].ID, "User", "hi", true, &out)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotActive)

	// no messages should have been recorded by the failed calls
	assert.Empty(t, f.messages.messages)
	assert.Empty(t, out.String())
}

func TestSendMessage_ProviderFailureIsVisibleText(t *testing.T) {
	f := newServiceFixture(t, 1)
	f.gemini.streamErr = errors.New("quota exceeded")
	var out bytes.Buffer

	err := f.svc.SendMessage(context.Background(), f.meetingID, f.staff[0].ID, "User", "hi", true, &out)
	require.NoError(t, err)

	assert.Equal(t, "Error generating response: quota exceeded", out.String())
	// the error text is persisted like a normal reply
	staffMsgs := f.messages.byType(entities.SenderTypeStaff)
	require.Len(t, staffMsgs, 1)
	assert.Equal(t, "Error generating response: quota exceeded", staffMsgs[0].Content)
}

func TestSendMessage_MidStreamFailureKeepsPartial(t *testing.T) {
	f := newServiceFixture(t, 1)
	f.gemini.chunks = []llm.Chunk{{Text: "partial "}, {Err: errors.New("connection reset")}}
	var out bytes.Buffer

	err := f.svc.SendMessage(context.Background(), f.meetingID, f.staff[0].ID, "User", "hi", true, &out)
	require.NoError(t, err)

	assert.Equal(t, "partial Error generating response: connection reset", out.String())
	staffMsgs := f.messages.byType(entities.SenderTypeStaff)
	require.Len(t, staffMsgs, 1)
	assert.Equal(t, "partial Error generating response: connection reset", staffMsgs[0].Content)
}

func TestSendMessage_PersistFailureNotifiesStream(t *testing.T) {
	f := newServiceFixture(t, 1)
	f.messages.failCreate = true
	f.messages.failStaffOnly = true
	var out bytes.Buffer

	err := f.svc.SendMessage(context.Background(), f.meetingID, f.staff[0].ID, "User", "hi", true, &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "[error: failed to save response]")
}

func TestAskAll_BroadcastOrderAndIsolation(t *testing.T) {
	f := newServiceFixture(t, 3)
	// participant 2 uses a provider that fails
	f.svc.participants.(*fakeParticipantRepo).participants[1].LLMProvider = "ollama"
	f.ollama.streamErr = errors.New("model not loaded")
	var out bytes.Buffer

	err := f.svc.AskAll(context.Background(), f.meetingID, "User", "status?", &out)
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "---STAFF:"))

	// delimiters appear in participant order
	first := strings.Index(text, "---STAFF:Maya---\n")
	second := strings.Index(text, "---STAFF:Felix---\n")
	third := strings.Index(text, "---STAFF:Iris---\n")
	require.True(t, first >= 0 && second > first && third > second, text)

	// participant 2's section carries the forwarded error text
	felixSection := text[second:third]
	assert.Contains(t, felixSection, "Error generating response: model not loaded")

	// 1 user message + 3 staff messages persisted
	assert.Len(t, f.messages.byType(entities.SenderTypeUser), 1)
	assert.Len(t, f.messages.byType(entities.SenderTypeStaff), 3)
}

func TestAskAll_NoParticipants(t *testing.T) {
	f := newServiceFixture(t, 0)
	var out bytes.Buffer
	err := f.svc.AskAll(context.Background(), f.meetingID, "User", "anyone?", &out)
	assert.ErrorIs(t, err, usecaseErrors.ErrNoParticipants)
}

func TestAskAll_SharedContextSnapshot(t *testing.T) {
	f := newServiceFixture(t, 2)
	var out bytes.Buffer

	require.NoError(t, f.svc.AskAll(context.Background(), f.meetingID, "User", "question", &out))

	// both participants saw the same conversation snapshot: the user's
	// message only, not each other's replies
	assert.Contains(t, f.gemini.lastReq.SystemPrompt, "Recent conversation:\nUser: question")
	assert.NotContains(t, f.gemini.lastReq.SystemPrompt, "Hello from Maya")
}

func TestAskAll_UnknownProviderReportedInline(t *testing.T) {
	f := newServiceFixture(t, 2)
	f.svc.participants.(*fakeParticipantRepo).participants[0].LLMProvider = "openai"
	var out bytes.Buffer

	err := f.svc.AskAll(context.Background(), f.meetingID, "User", "hi", &out)
	require.NoError(t, err)

	// both participants get a delimiter; the broken one carries an
	// inline error line instead of a reply
	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "---STAFF:"))
	mayaEnd := strings.Index(text, "---STAFF:Felix---")
	require.True(t, mayaEnd > 0, text)
	assert.Contains(t, text[:mayaEnd], `Error: unsupported provider "openai"`)

	// only the valid participant persisted a reply
	assert.Len(t, f.messages.byType(entities.SenderTypeStaff), 1)
}

func TestSendMessage_SkipUserMessage(t *testing.T) {
	f := newServiceFixture(t, 1)
	var out bytes.Buffer

	err := f.svc.SendMessage(context.Background(), f.meetingID, f.staff[0].ID, "User", "hi again", false, &out)
	require.NoError(t, err)

	// only the staff reply was added to the transcript
	assert.Empty(t, f.messages.byType(entities.SenderTypeUser))
	assert.Len(t, f.messages.byType(entities.SenderTypeStaff), 1)
}
