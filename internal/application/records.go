package application

import (
	"sync"

	"baco/internal/domain/entities"
)

// RecordStore holds the client's view of participation records, keyed by
// record id. Entries are only ever replaced wholesale with values the server
// returned; there is no optimistic merge of partial fields.
type RecordStore struct {
	mu      sync.RWMutex
	records map[uint]entities.ParticipantRecord
}

func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[uint]entities.ParticipantRecord)}
}

// Get returns a copy of the record, if cached.
func (s *RecordStore) Get(id uint) (*entities.ParticipantRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

// ByEventAndUser returns the record for the (eventID, userID) pair, if
// cached. There is at most one.
func (s *RecordStore) ByEventAndUser(eventID, userID uint) (*entities.ParticipantRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.EventID == eventID && r.UserID == userID {
			r := r
			return &r, true
		}
	}
	return nil, false
}

func (s *RecordStore) Put(r entities.ParticipantRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = r
}

// PutAll replaces the cached copies of every given record.
func (s *RecordStore) PutAll(records []entities.ParticipantRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records[r.ID] = r
	}
}

func (s *RecordStore) Delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
}
