package storage

import (
	"GymAttendanceTracker/internal/models"
	"sort"
	"sync"
	"time"
)

type gymClassEntry struct {
	record models.GymClass
	seq    uint64
}

// MemoryStorage keeps users and gym classes in process memory only.
type MemoryStorage struct {
	mu         sync.RWMutex
	users      map[string]models.User
	gymClasses map[string]gymClassEntry
	nextSeq    uint64
	clock      clock
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:      make(map[string]models.User),
		gymClasses: make(map[string]gymClassEntry),
	}
}

// WithClock replaces the time source, mainly for tests.
func (s *MemoryStorage) WithClock(now func() time.Time) *MemoryStorage {
	s.clock = now
	return s
}

func (s *MemoryStorage) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, exists := s.users[id]
	if !exists {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *MemoryStorage) UpsertUser(input models.UpsertUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := input.ID
	if id == "" {
		id = DefaultUserID
	}
	now := s.clock.now()
	user := models.User{
		ID:              id,
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ProfileImageURL: input.ProfileImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if existing, exists := s.users[id]; exists {
		user.CreatedAt = existing.CreatedAt
	}
	s.users[id] = user
	return user, nil
}

func (s *MemoryStorage) ListGymClasses(userID string) ([]models.GymClass, error) {
	s.mu.RLock()
	entries := make([]gymClassEntry, 0, len(s.gymClasses))
	for _, e := range s.gymClasses {
		if e.record.UserID == userID {
			entries = append(entries, e)
		}
	}
	s.mu.RUnlock()

	// 날짜 내림차순, 같은 날짜는 생성 순서 유지
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].record.Date != entries[j].record.Date {
			return entries[i].record.Date > entries[j].record.Date
		}
		return entries[i].seq < entries[j].seq
	})

	classes := make([]models.GymClass, len(entries))
	for i, e := range entries {
		classes[i] = e.record
	}
	return classes, nil
}

func (s *MemoryStorage) GetGymClass(id string) (models.GymClass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, exists := s.gymClasses[id]
	if !exists {
		return models.GymClass{}, ErrGymClassNotFound
	}
	return e.record, nil
}

func (s *MemoryStorage) CreateGymClass(input models.NewGymClass, userID string) (models.GymClass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gymClass := models.GymClass{
		ID:         newGymClassID(),
		UserID:     userID,
		Date:       input.Date,
		Attendance: input.Attendance,
		Notes:      input.Notes,
		CreatedAt:  s.clock.now(),
	}
	s.nextSeq++
	s.gymClasses[gymClass.ID] = gymClassEntry{record: gymClass, seq: s.nextSeq}
	return gymClass, nil
}

func (s *MemoryStorage) UpdateGymClass(id string, patch models.GymClassPatch) (models.GymClass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.gymClasses[id]
	if !exists {
		return models.GymClass{}, ErrGymClassNotFound
	}
	e.record = patch.Apply(e.record)
	s.gymClasses[id] = e
	return e.record, nil
}

func (s *MemoryStorage) DeleteGymClass(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.gymClasses[id]; !exists {
		return false, nil
	}
	delete(s.gymClasses, id)
	return true, nil
}

func (s *MemoryStorage) Close() error { return nil }
