package service

import (
	"context"

	"github.com/bookburst/bookburst-service/internal/model"
)

// Timeline groups the user's finished books by completion month, newest month
// first.
func (s *Service) Timeline(ctx context.Context, username string) ([]model.TimelineBucket, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.FinishedBooks(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return buildTimeline(entries), nil
}

// buildTimeline buckets entries by (year, month) of finish_date. Entries
// arrive ordered by finish_date descending, so buckets appear in descending
// chronological order and keep that order within each bucket.
func buildTimeline(entries []model.ShelfEntry) []model.TimelineBucket {
	buckets := make([]model.TimelineBucket, 0)
	index := make(map[[2]int]int)

	for _, entry := range entries {
		if entry.FinishDate == nil {
			continue
		}
		year, month := entry.FinishDate.Year(), int(entry.FinishDate.Month())
		key := [2]int{year, month}
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, model.TimelineBucket{Year: year, Month: month})
		}
		buckets[i].Books = append(buckets[i].Books, entry)
	}

	return buckets
}
