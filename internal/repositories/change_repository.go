package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"reviewfeed/internal/models/db_models"
	mem "reviewfeed/pkg/memcache"
)

type ChangeRepositoryInterface interface {
	Append(ctx context.Context, events []db_models.ChangeEvent) error
	List(ctx context.Context, page, pageSize int) ([]db_models.ChangeEvent, error)
}

type ChangeRepository struct {
	db *gorm.DB
}

func NewChangeRepository(db *gorm.DB) *ChangeRepository {
	return &ChangeRepository{db: db}
}

func (r *ChangeRepository) Append(ctx context.Context, events []db_models.ChangeEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}

func (r *ChangeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.ChangeEvent, error) {
	var events []db_models.ChangeEvent
	err := listChangesQuery(r.db.WithContext(ctx), page, pageSize).Find(&events).Error
	return events, err
}

// listChangesQuery selects one page of the journal, newest first.
func listChangesQuery(tx *gorm.DB, page, pageSize int) *gorm.DB {
	return tx.
		Order("sequence DESC, step DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize)
}

// MemoryChangeRepository keeps the journal in process memory only.
type MemoryChangeRepository struct {
	store mem.ChangeLog
}

func NewMemoryChangeRepository(store mem.ChangeLog) *MemoryChangeRepository {
	return &MemoryChangeRepository{store: store}
}

func (r *MemoryChangeRepository) Append(ctx context.Context, events []db_models.ChangeEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now()
	for i := range events {
		events[i].Stamp(now)
	}
	r.store.Append(events...)
	return nil
}

func (r *MemoryChangeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.ChangeEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Page((page-1)*pageSize, pageSize), nil
}
