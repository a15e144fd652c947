package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/vbls/standconsole/internal/domain"
	"github.com/vbls/standconsole/internal/repository"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type entryKey struct {
	standID  uint
	presetID uint
}

// memStore is an in-memory stand and preset store. SaveEntries commits all
// entries or none of them.
type memStore struct {
	mu sync.Mutex

	stands       []domain.Stand
	presets      map[domain.PresetType]domain.AfternoonPreset
	entries      map[entryKey]domain.AfternoonPresetEntry
	nextPresetID uint

	failEntryAt  int
	findLocksErr error
	calls        int
}

func newMemStore(stands ...domain.Stand) *memStore {
	s := &memStore{
		presets:     map[domain.PresetType]domain.AfternoonPreset{},
		entries:     map[entryKey]domain.AfternoonPresetEntry{},
		failEntryAt: -1,
	}
	for _, st := range stands {
		s.addStand(st)
	}
	return s
}

func (s *memStore) addStand(stand domain.Stand) domain.Stand {
	s.mu.Lock()
	defer s.mu.Unlock()
	stand.ID = uint(len(s.stands) + 1)
	s.stands = append(s.stands, stand)
	return stand
}

func (s *memStore) Create(_ context.Context, input domain.StandCreateInput) (domain.Stand, error) {
	s.mu.Lock()
	s.calls++
	for _, st := range s.stands {
		if st.Label == input.Label {
			s.mu.Unlock()
			return domain.Stand{}, repository.ErrStandLabelExists
		}
	}
	s.mu.Unlock()

	return s.addStand(domain.Stand{
		Label:           input.Label,
		Zone:            input.Zone,
		SupportsAS:      input.SupportsAS,
		NeverSupportsAS: input.NeverSupportsAS,
	}), nil
}

func (s *memStore) FindAll(context.Context) ([]domain.Stand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]domain.Stand, len(s.stands))
	copy(out, s.stands)
	return out, nil
}

func (s *memStore) FindLocks(context.Context) ([]domain.StandLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.findLocksErr != nil {
		return nil, s.findLocksErr
	}
	locks := make([]domain.StandLock, len(s.stands))
	for i, st := range s.stands {
		locks[i] = st.Lock()
	}
	return locks, nil
}

func (s *memStore) FindByID(_ context.Context, id uint) (domain.Stand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for _, st := range s.stands {
		if st.ID == id {
			return st, nil
		}
	}
	return domain.Stand{}, repository.ErrStandNotFound
}

func (s *memStore) UpdateSupportsAS(_ context.Context, id uint, supportsAS bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for i, st := range s.stands {
		if st.ID == id && !st.NeverSupportsAS {
			s.stands[i].SupportsAS = supportsAS
			s.stands[i].UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) UpdateDoubleStaffed(_ context.Context, id uint, doubleStaffed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for i, st := range s.stands {
		if st.ID == id {
			s.stands[i].DoubleStaffed = doubleStaffed
			s.stands[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repository.ErrStandNotFound
}

func (s *memStore) GetOrCreate(_ context.Context, presetType domain.PresetType) (domain.AfternoonPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if p, ok := s.presets[presetType]; ok {
		return p, nil
	}
	s.nextPresetID++
	p := domain.AfternoonPreset{ID: s.nextPresetID, PresetType: presetType}
	s.presets[presetType] = p
	return p, nil
}

func (s *memStore) FindByType(_ context.Context, presetType domain.PresetType) (domain.AfternoonPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if p, ok := s.presets[presetType]; ok {
		return p, nil
	}
	return domain.AfternoonPreset{}, repository.ErrPresetNotFound
}

func (s *memStore) SaveEntries(_ context.Context, entries []domain.AfternoonPresetEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	staged := make(map[entryKey]domain.AfternoonPresetEntry, len(s.entries))
	for k, v := range s.entries {
		staged[k] = v
	}
	for i, e := range entries {
		if i == s.failEntryAt {
			return errors.New("deadlock detected")
		}
		staged[entryKey{standID: e.StandID, presetID: e.PresetID}] = e
	}
	s.entries = staged
	return nil
}

func (s *memStore) FindEntries(_ context.Context, presetID uint) ([]domain.AfternoonPresetEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.entriesFor(presetID), nil
}

func (s *memStore) entriesFor(presetID uint) []domain.AfternoonPresetEntry {
	var out []domain.AfternoonPresetEntry
	for k, v := range s.entries {
		if k.presetID == presetID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StandID < out[j].StandID })
	return out
}

func (s *memStore) snapshot(presetType domain.PresetType) []domain.AfternoonPresetEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.presets[presetType]
	if !ok {
		return nil
	}
	return s.entriesFor(p.ID)
}

func baselineStands() []domain.Stand {
	return []domain.Stand{
		{Label: "Cro 1", Zone: domain.ZoneCroatan, NeverSupportsAS: true},
		{Label: "16", Zone: domain.ZoneResortMiddle, SupportsAS: true},
		{Label: "17", Zone: domain.ZoneResortMiddle, SupportsAS: true},
		{Label: "57", Zone: domain.ZoneFiftySeventh, NeverSupportsAS: true},
	}
}
