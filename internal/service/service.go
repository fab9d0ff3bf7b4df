package service

import (
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/internal/repository"
	"go.uber.org/zap"
)

// Enqueuer publishes messages on the event bus.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer Enqueuer
}

func NewService(repo repository.Repository, enqueuer Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		enqueuer: enqueuer,
	}
}

const (
	defaultLimit = 20
	maxLimit     = 20

	reviewPageLimit = 10
)

// normalizePaging clamps the client's paging params: page is 1-based, limit
// falls back to def and never exceeds maxLimit.
func normalizePaging(page, limit, def int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = def
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func paginate(page, limit, total int) model.Pagination {
	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	return model.Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
