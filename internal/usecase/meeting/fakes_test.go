package meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

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

func (f *fakeMeetingRepo) List(_ context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	var out []*entities.Meeting
	for _, m := range f.meetings {
		if m.CompanyID == filters.CompanyID {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
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
	messages []*entities.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, m *entities.Message) error {
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeMessageRepo) FindRecent(_ context.Context, meetingID uuid.UUID, limit int) ([]*entities.Message, error) {
	var all []*entities.Message
	for _, m := range f.messages {
		if m.MeetingID == meetingID {
			all = append(all, m)
		}
	}
	var out []*entities.Message
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (f *fakeMessageRepo) FindByMeetingID(_ context.Context, meetingID uuid.UUID) ([]*entities.Message, error) {
	var out []*entities.Message
	for _, m := range f.messages {
		if m.MeetingID == meetingID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeImageRepo struct {
	images    []*entities.MeetingImage
	nextOrder map[uuid.UUID]int
}

func (f *fakeImageRepo) Create(_ context.Context, img *entities.MeetingImage) error {
	if f.nextOrder == nil {
		f.nextOrder = map[uuid.UUID]int{}
	}
	f.nextOrder[img.MeetingID]++
	img.DisplayOrder = f.nextOrder[img.MeetingID]
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

type fakeActionItemRepo struct {
	items       []*entities.ActionItem
	batchErr    error
	statusCalls int
}

func (f *fakeActionItemRepo) CreateBatch(_ context.Context, items []*entities.ActionItem) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeActionItemRepo) FindByMeetingID(_ context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var out []*entities.ActionItem
	for _, it := range f.items {
		if it.MeetingID == meetingID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeActionItemRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ActionItemStatus) error {
	f.statusCalls++
	for _, it := range f.items {
		if it.ID == id {
			it.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
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

type fakeStaffRepo struct {
	staff map[uuid.UUID]*entities.Staff
}

func (f *fakeStaffRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) FindActiveByCompanyID(_ context.Context, companyID uuid.UUID) ([]*entities.Staff, error) {
	var out []*entities.Staff
	for _, s := range f.staff {
		if s.CompanyID == companyID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeLLM returns canned completions in order, then keeps returning the
// last one. A non-nil completeErr fails every call.
type fakeLLM struct {
	responses   []string
	completeErr error
	calls       int
	lastReq     llm.GenerateRequest
}

func (f *fakeLLM) Stream(_ context.Context, _ llm.GenerateRequest) (<-chan llm.Chunk, error) {
	return nil, errors.New("not used")
}

func (f *fakeLLM) Complete(_ context.Context, req llm.GenerateRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.completeErr != nil {
		return "", f.completeErr
	}
	if len(f.responses) == 0 {
		return "", errors.New("no canned response")
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeLLM) ListModels(_ context.Context) []string { return []string{} }

type fakeStore struct {
	saved   map[string][]byte
	removed []string
	saveErr error
	seq     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: map[string][]byte{}}
}

func (f *fakeStore) SaveMeetingImage(meetingID uuid.UUID, data []byte) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.seq++
	path := fmt.Sprintf("uploads/meeting_images/%s_%d.png", meetingID, f.seq)
	f.saved[path] = data
	return path, nil
}

func (f *fakeStore) Remove(relPath string) error {
	f.removed = append(f.removed, relPath)
	delete(f.saved, relPath)
	return nil
}

type fakeArchiver struct {
	archived []string
	err      error
}

func (f *fakeArchiver) Archive(_ context.Context, relPath string, _ []byte) error {
	if f.err != nil {
		return f.err
	}
	f.archived = append(f.archived, relPath)
	return nil
}
