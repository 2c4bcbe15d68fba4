package feed

import "reviewfeed/internal/models/domain_models"

// State is the published review feed plus the id counter.
// It is not safe for concurrent use; callers serialise access.
type State struct {
	reviews []domain_models.Review
	nextID  int64
}

func NewState() *State {
	return &State{nextID: 1}
}

// AllocateID hands out the next review id.
func (s *State) AllocateID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *State) NextID() int64 {
	return s.nextID
}

func (s *State) Len() int {
	return len(s.reviews)
}

// Reviews returns a copy of the published feed in display order.
func (s *State) Reviews() []domain_models.Review {
	out := make([]domain_models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *State) review(i int) *domain_models.Review {
	return &s.reviews[i]
}

// Publish moves pending reviews to the front of the feed one at a time,
// so the last pending review ends up first.
func (s *State) Publish(pending []domain_models.Review) {
	if len(pending) == 0 {
		return
	}
	merged := make([]domain_models.Review, 0, len(pending)+len(s.reviews))
	for i := len(pending) - 1; i >= 0; i-- {
		merged = append(merged, pending[i])
	}
	s.reviews = append(merged, s.reviews...)
}
