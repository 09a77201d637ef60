package chat

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

// In-memory fakes for the repository interfaces the chat service touches.

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[uuid.UUID]*entities.Meeting{}}
}

func (f *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMeetingRepo) FindByIDWithParticipants(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeMeetingRepo) List(_ context.Context, _ repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (f *fakeMeetingRepo) Update(_ context.Context, m *entities.Meeting) error {
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.meetings, id)
	return nil
}

type fakeParticipantRepo struct {
	participants []*entities.Participant
}

func (f *fakeParticipantRepo) FindByMeetingID(_ context.Context, meetingID uuid.UUID) ([]*entities.Participant, error) {
	var out []*entities.Participant
	for _, p := range f.participants {
		if p.MeetingID == meetingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) FindByMeetingAndStaff(_ context.Context, meetingID, staffID uuid.UUID) (*entities.Participant, error) {
	for _, p := range f.participants {
		if p.MeetingID == meetingID && p.StaffID == staffID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeMessageRepo struct {
	mu         sync.Mutex
	messages   []*entities.Message
	failCreate bool
	// fail only staff-message creates so the user message still lands
	failStaffOnly bool
}

func (f *fakeMessageRepo) Create(_ context.Context, m *entities.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate && (!f.failStaffOnly || m.SenderType == entities.SenderTypeStaff) {
		return errors.New("db unavailable")
	}
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeMessageRepo) FindRecent(_ context.Context, meetingID uuid.UUID, limit int) ([]*entities.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entities.Message
	for _, m := range f.messages {
		if m.MeetingID == meetingID {
			all = append(all, m)
		}
	}
	// newest first
	var out []*entities.Message
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (f *fakeMessageRepo) FindByMeetingID(_ context.Context, meetingID uuid.UUID) ([]*entities.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entities.Message
	for _, m := range f.messages {
		if m.MeetingID == meetingID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) byType(t entities.SenderType) []*entities.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entities.Message
	for _, m := range f.messages {
		if m.SenderType == t {
			out = append(out, m)
		}
	}
	return out
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*entities.Company
}

func (f *fakeCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

type fakeKnowledgeRepo struct {
	entries []*entities.Knowledge
	err     error
}

func (f *fakeKnowledgeRepo) Create(_ context.Context, e *entities.Knowledge) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeKnowledgeRepo) FindRecentByCompanyID(_ context.Context, companyID uuid.UUID, limit int) ([]*entities.Knowledge, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []*entities.Knowledge
	for _, e := range f.entries {
		if e.CompanyID == companyID {
			all = append(all, e)
		}
	}
	var out []*entities.Knowledge
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (f *fakeKnowledgeRepo) FindByCompanyID(_ context.Context, companyID uuid.UUID, limit, offset int) ([]*entities.Knowledge, int64, error) {
	return nil, 0, nil
}

func (f *fakeKnowledgeRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeImageRepo struct {
	images []*entities.MeetingImage
	// per-meeting counter, never decremented, mirroring the image_seq
	// column: a deleted image's order is not handed out again
	seq map[uuid.UUID]int
}

func (f *fakeImageRepo) Create(_ context.Context, img *entities.MeetingImage) error {
	if f.seq == nil {
		f.seq = map[uuid.UUID]int{}
	}
	f.seq[img.MeetingID]++
	img.DisplayOrder = f.seq[img.MeetingID]
	f.images = append(f.images, img)
	return nil
}

func (f *fakeImageRepo) FindByDisplayOrder(_ context.Context, meetingID uuid.UUID, order int) (*entities.MeetingImage, error) {
	for _, img := range f.images {
		if img.MeetingID == meetingID && img.DisplayOrder == order {
			return img, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeImageRepo) FindByFilePath(_ context.Context, meetingID uuid.UUID, path string) (*entities.MeetingImage, error) {
	for _, img := range f.images {
		if img.MeetingID == meetingID && img.FilePath == path {
			return img, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeImageRepo) FindByMeetingID(_ context.Context, meetingID uuid.UUID) ([]*entities.MeetingImage, error) {
	var out []*entities.MeetingImage
	for _, img := range f.images {
		if img.MeetingID == meetingID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, img := range f.images {
		if img.ID == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeAssetRepo struct {
	assets []*entities.CompanyAsset
}

func (f *fakeAssetRepo) Create(_ context.Context, a *entities.CompanyAsset) error {
	f.assets = append(f.assets, a)
	return nil
}

func (f *fakeAssetRepo) FindBySlug(_ context.Context, companyID uuid.UUID, name string) (*entities.CompanyAsset, error) {
	for _, a := range f.assets {
		if a.CompanyID == companyID && a.AssetName == name {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssetRepo) FindByCompanyID(_ context.Context, companyID uuid.UUID) ([]*entities.CompanyAsset, error) {
	var out []*entities.CompanyAsset
	for _, a := range f.assets {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

// fakeLLM implements llm.Client with canned chunks
type fakeLLM struct {
	chunks    []llm.Chunk
	streamErr error
	lastReq   llm.GenerateRequest
}

func (f *fakeLLM) Stream(_ context.Context, req llm.GenerateRequest) (<-chan llm.Chunk, error) {
	f.lastReq = req
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	out := make(chan llm.Chunk, len(f.chunks))
	for _, c := range f.chunks {
		out <- c
	}
	close(out)
	return out, nil
}

func (f *fakeLLM) Complete(_ context.Context, req llm.GenerateRequest) (string, error) {
	f.lastReq = req
	var text string
	for _, c := range f.chunks {
		if c.Err != nil {
			return "", c.Err
		}
		text += c.Text
	}
	return text, nil
}

func (f *fakeLLM) ListModels(_ context.Context) []string { return []string{} }
