package feed

import (
	"go.uber.org/zap"

	"reviewfeed/internal/models/domain_models"
)

const (
	minEdits  = 1
	maxEdits  = 3
	minRating = 1
	maxRating = 5
)

// insert : delete : change
var (
	actions       = []domain_models.Action{domain_models.ActionInsert, domain_models.ActionDelete, domain_models.ActionChange}
	actionWeights = []int{1, 1, 2}
)

// body : title : rating
var (
	fields       = []domain_models.Field{domain_models.FieldBody, domain_models.FieldTitle, domain_models.FieldRating}
	fieldWeights = []int{1, 1, 2}
)

// Text produces placeholder review text.
type Text interface {
	Sentence() string
	Paragraph() string
}

// Mutator applies random edits to a feed State.
type Mutator struct {
	rnd  Random
	text Text
	log  *zap.Logger
}

func NewMutator(rnd Random, log *zap.Logger) *Mutator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mutator{
		rnd:  rnd,
		text: NewLorem(rnd),
		log:  log,
	}
}

// Apply runs one request's worth of edits against state and publishes the
// reviews inserted along the way.
func (m *Mutator) Apply(state *State) []domain_models.Change {
	n := m.rnd.IntRange(minEdits, maxEdits)
	m.log.Debug("Applying feed edits", zap.Int("count", n))

	var pending []domain_models.Review
	changes := make([]domain_models.Change, 0, n)

	for i := 0; i < n; i++ {
		var change domain_models.Change
		switch actions[m.rnd.Weighted(actionWeights)] {
		case domain_models.ActionInsert:
			pending, change = m.Insert(state, pending)
		case domain_models.ActionDelete:
			pending, change = m.Delete(pending)
		case domain_models.ActionChange:
			change = m.Change(state)
		}
		changes = append(changes, change)
	}

	state.Publish(pending)
	return changes
}

// Insert creates a review with a fresh id and stages it in pending.
func (m *Mutator) Insert(state *State, pending []domain_models.Review) ([]domain_models.Review, domain_models.Change) {
	review := domain_models.Review{
		ID:     state.AllocateID(),
		Rating: m.rnd.IntRange(minRating, maxRating),
	}
	review.Body = m.text.Paragraph()
	review.Title = m.text.Sentence()
	review.Author = m.text.Sentence()

	m.log.Debug("Adding review", zap.Int64("review_id", review.ID))
	return append(pending, review), domain_models.Change{
		Action:   domain_models.ActionInsert,
		ReviewID: review.ID,
		Position: len(pending),
	}
}

// Delete drops a random staged review. Published reviews are never removed.
func (m *Mutator) Delete(pending []domain_models.Review) ([]domain_models.Review, domain_models.Change) {
	if len(pending) == 0 {
		return pending, domain_models.Change{Action: domain_models.ActionDelete, Skipped: true}
	}

	idx := m.rnd.IntRange(0, len(pending)-1)
	removed := pending[idx]
	m.log.Debug("Removing staged review", zap.Int("position", idx), zap.Int64("review_id", removed.ID))

	pending = append(pending[:idx], pending[idx+1:]...)
	return pending, domain_models.Change{
		Action:   domain_models.ActionDelete,
		ReviewID: removed.ID,
		Position: idx,
	}
}

// Change rewrites one field of a random published review.
func (m *Mutator) Change(state *State) domain_models.Change {
	if state.Len() == 0 {
		return domain_models.Change{Action: domain_models.ActionChange, Skipped: true}
	}

	idx := m.rnd.IntRange(0, state.Len()-1)
	review := state.review(idx)
	field := fields[m.rnd.Weighted(fieldWeights)]

	switch field {
	case domain_models.FieldBody:
		review.Body = m.text.Paragraph()
	case domain_models.FieldTitle:
		review.Title = m.text.Sentence()
	case domain_models.FieldRating:
		review.Rating = m.rnd.IntRange(minRating, maxRating)
	}

	m.log.Debug("Changing review", zap.String("field", string(field)), zap.Int64("review_id", review.ID))
	return domain_models.Change{
		Action:   domain_models.ActionChange,
		ReviewID: review.ID,
		Field:    field,
		Position: idx,
	}
}
