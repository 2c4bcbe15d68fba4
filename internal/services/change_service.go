package services

import (
	"context"
	"fmt"

	"reviewfeed/internal/models/response_models"
	"reviewfeed/internal/repositories"
	"reviewfeed/pkg/utils"
)

const (
	maxPageSize = 100
	maxPage     = 1_000_000 // keeps (page-1)*pageSize far from overflow
)

type ChangeServiceInterface interface {
	ListChanges(ctx context.Context, page, pageSize int) ([]response_models.ChangeEventResponse, error)
}

type ChangeService struct {
	changeRepo repositories.ChangeRepositoryInterface
}

func NewChangeService(changeRepo repositories.ChangeRepositoryInterface) ChangeServiceInterface {
	return &ChangeService{changeRepo: changeRepo}
}

func (s *ChangeService) ListChanges(ctx context.Context, page, pageSize int) ([]response_models.ChangeEventResponse, error) {
	if page < 1 || page > maxPage {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	events, err := s.changeRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.ChangeEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, response_models.ChangeEventResponse{
			ID:        e.ID.String(),
			Sequence:  e.Sequence,
			Step:      e.Step,
			TraceID:   e.TraceID,
			Action:    e.Action,
			ReviewID:  e.ReviewID,
			Field:     e.Field,
			Position:  e.Position,
			Skipped:   e.Skipped,
			CreatedAt: utils.FormatRFC3339UTC(e.CreatedAt),
		})
	}
	return out, nil
}
