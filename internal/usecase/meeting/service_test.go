package meeting

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/virtual-office/internal/usecase/errors"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

type fixture struct {
	svc         *Service
	meetings    *fakeMeetingRepo
	messages    *fakeMessageRepo
	images      *fakeImageRepo
	actionItems *fakeActionItemRepo
	store       *fakeStore
	archiver    *fakeArchiver
	gemini      *fakeLLM

	companyID uuid.UUID
	staffID   uuid.UUID
}

func ptr(s string) *string { return &s }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	companyID := uuid.New()
	staffID := uuid.New()

	meetings := newFakeMeetingRepo()
	messages := &fakeMessageRepo{}
	images := &fakeImageRepo{}
	actionItems := &fakeActionItemRepo{}
	store := newFakeStore()
	archiver := &fakeArchiver{}
	gemini := &fakeLLM{responses: []string{"The team aligned on the launch plan."}}

	companies := &fakeCompanyRepo{companies: map[uuid.UUID]*entities.Company{
		companyID: {ID: companyID, Name: "Acme"},
	}}
	staff := &fakeStaffRepo{staff: map[uuid.UUID]*entities.Staff{
		staffID: {ID: staffID, CompanyID: companyID, Name: "Maya", Role: "Engineer", IsActive: true},
	}}

	registry := llm.NewRegistry(map[llm.Provider]llm.Client{llm.ProviderGemini: gemini})

	svc := NewService(meetings, &fakeParticipantRepo{}, messages, images, actionItems,
		companies, staff, registry, store, archiver, llm.ProviderGemini, "", zap.NewNop())

	return &fixture{
		svc:         svc,
		meetings:    meetings,
		messages:    messages,
		images:      images,
		actionItems: actionItems,
		store:       store,
		archiver:    archiver,
		gemini:      gemini,
		companyID:   companyID,
		staffID:     staffID,
	}
}

func (f *fixture) addActiveMeeting(t *testing.T) *entities.Meeting {
	t.Helper()
	m := &entities.Meeting{
		ID:        uuid.New(),
		CompanyID: f.companyID,
		Title:     "Standup",
		Status:    entities.MeetingStatusActive,
	}
	require.NoError(t, f.meetings.Create(context.Background(), m))
	return m
}

func TestCreateMeeting(t *testing.T) {
	f := newFixture(t)

	m, err := f.svc.CreateMeeting(context.Background(), f.companyID, CreateMeetingInput{
		Title: "Kickoff",
		Participants: []ParticipantConfig{
			{StaffID: f.staffID, LLMProvider: "gemini", LLMModel: ptr("gemini-pro")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.MeetingStatusActive, m.Status)
	assert.Equal(t, "general", m.MeetingType)
	require.Len(t, m.Participants, 1)
	assert.Equal(t, f.staffID, m.Participants[0].StaffID)
	assert.Equal(t, "gemini", m.Participants[0].LLMProvider)
}

func TestCreateMeeting_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateMeeting(context.Background(), uuid.New(), CreateMeetingInput{Title: "x"})
	assert.ErrorIs(t, err, usecaseErrors.ErrCompanyNotFound)

	_, err = f.svc.CreateMeeting(context.Background(), f.companyID, CreateMeetingInput{
		Title:        "x",
		Participants: []ParticipantConfig{{StaffID: uuid.New()}},
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrStaffNotFound)

	_, err = f.svc.CreateMeeting(context.Background(), f.companyID, CreateMeetingInput{
		Title:        "x",
		Participants: []ParticipantConfig{{StaffID: f.staffID, LLMProvider: "openai"}},
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrUnsupportedProvider)
}

func TestEndMeeting_GeneratesSummaryAndActionItems(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)
	require.NoError(t, f.messages.Create(context.Background(),
		entities.NewUserMessage(m.ID, "User", "ship it friday")))

	f.gemini.responses = []string{
		"The team agreed to ship on Friday.",
		`[{"description":"Ship the release","assigned_to":"Maya"},{"description":"","assigned_to":null}]`,
	}

	ended, err := f.svc.EndMeeting(context.Background(), m.ID, EndMeetingOptions{})
	require.NoError(t, err)
	assert.True(t, ended.IsEnded())
	require.NotNil(t, ended.EndedAt)
	require.NotNil(t, ended.Summary)
	assert.Equal(t, "The team agreed to ship on Friday.", *ended.Summary)

	// summary prompt carries the full transcript
	assert.Equal(t, 2, f.gemini.calls)

	// the blank-description draft was dropped
	items, err := f.svc.GetActionItems(context.Background(), m.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ship the release", items[0].Description)
	assert.Equal(t, entities.ActionItemStatusPending, items[0].Status)
}

func TestEndMeeting_EmptyTranscript(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)

	ended, err := f.svc.EndMeeting(context.Background(), m.ID, EndMeetingOptions{})
	require.NoError(t, err)
	require.NotNil(t, ended.Summary)
	assert.Equal(t, "No discussion took place.", *ended.Summary)
	assert.Zero(t, f.gemini.calls)
}

func TestEndMeeting_AlreadyEnded(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)

	first, err := f.svc.EndMeeting(context.Background(), m.ID, EndMeetingOptions{})
	require.NoError(t, err)
	endedAt := *first.EndedAt
	summary := *first.Summary

	_, err = f.svc.EndMeeting(context.Background(), m.ID, EndMeetingOptions{})
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingAlreadyEnded)

	// nothing was mutated by the rejected second close
	current, err := f.svc.GetMeeting(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, endedAt, *current.EndedAt)
	assert.Equal(t, summary, *current.Summary)
}

func TestEndMeeting_SummaryFailureStoresPlaceholder(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)
	require.NoError(t, f.messages.Create(context.Background(),
		entities.NewUserMessage(m.ID, "User", "hello")))
	f.gemini.completeErr = errors.New("provider down")

	// bound the retry loop so the test stays fast
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	ended, err := f.svc.EndMeeting(ctx, m.ID, EndMeetingOptions{})
	require.NoError(t, err)
	assert.True(t, ended.IsEnded())
	require.NotNil(t, ended.Summary)
	assert.Equal(t, "Summary could not be generated.", *ended.Summary)
	// no action items were stored
	assert.Empty(t, f.actionItems.items)
}

func TestEndMeeting_UnknownSummaryProvider(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)
	require.NoError(t, f.messages.Create(context.Background(),
		entities.NewUserMessage(m.ID, "User", "hello")))

	ended, err := f.svc.EndMeeting(context.Background(), m.ID, EndMeetingOptions{
		SummaryProvider: "openai",
	})
	require.NoError(t, err)
	require.NotNil(t, ended.Summary)
	assert.Equal(t, "Summary could not be generated.", *ended.Summary)
}

func TestUploadImage(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)
	payload := base64.StdEncoding.EncodeToString([]byte("png bytes"))

	img1, err := f.svc.UploadImage(context.Background(), m.ID, "data:image/png;base64,"+payload, ptr("diagram"))
	require.NoError(t, err)
	assert.Equal(t, 1, img1.DisplayOrder)
	require.NotNil(t, img1.Description)
	assert.Equal(t, "diagram", *img1.Description)

	img2, err := f.svc.UploadImage(context.Background(), m.ID, payload, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, img2.DisplayOrder)

	assert.Len(t, f.store.saved, 2)
	assert.Len(t, f.archiver.archived, 2)
}

func TestUploadImage_InvalidData(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)

	_, err := f.svc.UploadImage(context.Background(), m.ID, "not base64!!!", nil)
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidImageData)

	_, err = f.svc.UploadImage(context.Background(), uuid.New(), "aGVsbG8=", nil)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestDeleteMeeting_RemovesFiles(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)
	payload := base64.StdEncoding.EncodeToString([]byte("png bytes"))
	_, err := f.svc.UploadImage(context.Background(), m.ID, payload, nil)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteMeeting(context.Background(), m.ID))
	assert.Len(t, f.store.removed, 1)
	_, err = f.svc.GetMeeting(context.Background(), m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestActionItems_ManualLifecycle(t *testing.T) {
	f := newFixture(t)
	m := f.addActiveMeeting(t)

	item, err := f.svc.CreateActionItem(context.Background(), m.ID, "Write release notes", ptr("Felix"))
	require.NoError(t, err)
	assert.Equal(t, entities.ActionItemStatusPending, item.Status)

	require.NoError(t, f.svc.CompleteActionItem(context.Background(), item.ID))
	items, err := f.svc.GetActionItems(context.Background(), m.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entities.ActionItemStatusCompleted, items[0].Status)

	err = f.svc.CompleteActionItem(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrNotFound)

	_, err = f.svc.CreateActionItem(context.Background(), m.ID, "  ", nil)
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
}
