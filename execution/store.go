package execution

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is an in-memory table of execution records. It is constructed once at
// startup and shared by reference between the executor and the HTTP facade.
//
// All access goes through a single RWMutex, so concurrent Execute, Cancel and
// GetStatus calls on the same id are serialized here rather than racing on a
// bare map. Records are never evicted; the table grows for the life of the
// process.
type Store struct {
	mutex   sync.RWMutex
	records map[string]*Record
	order   []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]*Record),
	}
}

// Create inserts a new pending record for the given request and returns its
// generated id. Create never fails.
func (s *Store) Create(request Request) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := uuid.NewString()
	s.records[id] = &Record{
		ID:        id,
		Status:    StatusPending,
		Request:   request,
		StartTime: time.Now().UTC(),
	}
	s.order = append(s.order, id)
	return id
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id string) (Record, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return Record{}, false
	}
	return *record, true
}

// Update applies fn to the record with the given id while holding the store
// lock, making read-check-write sequences atomic. The store performs no
// state-machine validation; callers are responsible for respecting terminal
// states. Returns false if the id is unknown.
func (s *Store) Update(id string, fn func(*Record)) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.records[id]
	if !ok {
		return false
	}
	fn(record)
	return true
}

// List returns copies of all records in insertion order.
func (s *Store) List() []Record {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, *s.records[id])
	}
	return records
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.records)
}
