package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"reviewfeed/internal/feed"
	"reviewfeed/internal/models/db_models"
	"reviewfeed/internal/models/domain_models"
	"reviewfeed/internal/models/response_models"
	"reviewfeed/internal/repositories"
	"reviewfeed/pkg/utils"
)

type FeedServiceInterface interface {
	// Snapshot mutates the feed once and returns the rendered document.
	Snapshot(ctx context.Context, traceID string) ([]byte, error)
	Stats(ctx context.Context) response_models.FeedStatsResponse
}

type FeedService struct {
	mu       sync.Mutex
	state    *feed.State
	mutator  *feed.Mutator
	requests int64

	changeRepo repositories.ChangeRepositoryInterface
	log        *zap.Logger
}

func NewFeedService(
	state *feed.State,
	mutator *feed.Mutator,
	changeRepo repositories.ChangeRepositoryInterface,
	log *zap.Logger,
) *FeedService {
	return &FeedService{
		state:      state,
		mutator:    mutator,
		changeRepo: changeRepo,
		log:        log,
	}
}

func (s *FeedService) Snapshot(ctx context.Context, traceID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests++
	seq := s.requests
	changes := s.mutator.Apply(s.state)

	// Journal entries are written in sequence order and survive a
	// cancelled request, since the feed has already changed.
	if err := s.changeRepo.Append(context.WithoutCancel(ctx), toChangeEvents(seq, traceID, changes)); err != nil {
		s.log.Warn("Failed to record feed changes",
			zap.Error(err),
			zap.Int64("sequence", seq),
			zap.String(utils.TraceIDKey, traceID))
	}

	body, err := feed.Render(s.state.Reviews())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRenderFailed, err)
	}

	s.log.Debug("Feed snapshot served",
		zap.Int64("sequence", seq),
		zap.Int("changes", len(changes)),
		zap.Int("published", s.state.Len()))

	return body, nil
}

func (s *FeedService) Stats(_ context.Context) response_models.FeedStatsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return response_models.FeedStatsResponse{
		Requests:         s.requests,
		NextReviewID:     s.state.NextID(),
		PublishedReviews: s.state.Len(),
	}
}

func toChangeEvents(seq int64, traceID string, changes []domain_models.Change) []db_models.ChangeEvent {
	events := make([]db_models.ChangeEvent, 0, len(changes))
	for i, c := range changes {
		events = append(events, db_models.ChangeEvent{
			Sequence: seq,
			Step:     i + 1,
			TraceID:  traceID,
			Action:   string(c.Action),
			ReviewID: c.ReviewID,
			Field:    string(c.Field),
			Position: c.Position,
			Skipped:  c.Skipped,
		})
	}
	return events
}
