package mem

import (
	"sync"

	"reviewfeed/internal/models/db_models"
)

// ChangeLog keeps the most recent change events in memory.
type ChangeLog interface {
	Append(events ...db_models.ChangeEvent)

	// Page returns events newest first, skipping offset of them.
	Page(offset, limit int) []db_models.ChangeEvent

	Len() int
}

type ChangeEvents struct {
	mu       sync.RWMutex
	data     []db_models.ChangeEvent
	capacity int
}

func NewChangeEvents(capacity int) *ChangeEvents {
	if capacity < 1 {
		capacity = 1
	}
	return &ChangeEvents{
		data:     make([]db_models.ChangeEvent, 0, capacity),
		capacity: capacity,
	}
}

func (s *ChangeEvents) Append(events ...db_models.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append(s.data, events...)
	if over := len(s.data) - s.capacity; over > 0 {
		s.data = append(s.data[:0], s.data[over:]...) // drop oldest
	}
}

func (s *ChangeEvents) Page(offset, limit int) []db_models.ChangeEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 || limit <= 0 || offset >= len(s.data) {
		return []db_models.ChangeEvent{}
	}

	end := len(s.data) - offset
	start := end - limit
	if start < 0 {
		start = 0
	}

	out := make([]db_models.ChangeEvent, 0, end-start)
	for i := end - 1; i >= start; i-- {
		out = append(out, s.data[i])
	}
	return out
}

func (s *ChangeEvents) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
