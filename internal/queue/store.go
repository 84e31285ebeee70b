package queue

import (
	"sync"

	"clinic-front-desk/internal/domain/entity"
)

// Store holds the working set of appointments for the active query window.
// It is the only mutable shared state in the queue engine: the set is
// replaced wholesale by Load after a window fetch and patched in place after
// a confirmed remote write. All reads work on snapshots, so derived views
// (stats, pipeline pages) stay deterministic.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Appointment
	order []string
}

// Patch is a partial in-place update to one record. Nil fields are left
// untouched, so patching one axis never disturbs the other.
type Patch struct {
	Status        *entity.AppointmentStatus
	PaymentStatus *entity.PaymentStatus
	BillID        *string
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*entity.Appointment)}
}

// Load replaces the working set. Records keep their fetch order, which makes
// Snapshot stable across calls; duplicate ids keep the last occurrence.
func (s *Store) Load(records []entity.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]*entity.Appointment, len(records))
	s.order = make([]string, 0, len(records))
	for i := range records {
		rec := records[i]
		if _, seen := s.byID[rec.ID]; !seen {
			s.order = append(s.order, rec.ID)
		}
		s.byID[rec.ID] = &rec
	}
}

// Patch applies a partial update to one record in place. It returns false
// when the id is no longer in the working set - a stale reference after a
// concurrent window change, which the caller handles as a result, not an
// error. Unrelated records are never touched or reallocated.
func (s *Store) Patch(id string, p Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return false
	}
	if p.Status != nil {
		rec.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		rec.PaymentStatus = *p.PaymentStatus
	}
	if p.BillID != nil {
		rec.BillID = *p.BillID
	}
	return true
}

// Get returns a copy of one record by id
func (s *Store) Get(id string) (entity.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return entity.Appointment{}, false
	}
	return *rec, true
}

// Snapshot returns copies of all records in load order
func (s *Store) Snapshot() []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Appointment, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Len returns the current working-set size
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
