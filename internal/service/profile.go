package service

import (
	"context"

	"github.com/bookburst/bookburst-service/internal/model"
	"golang.org/x/sync/errgroup"
)

const profileRecentReviews = 5

// Profile assembles the public view of a user: full shelf, five most recent
// reviews and derived stats. Credential fields never appear in the output.
func (s *Service) Profile(ctx context.Context, username string) (model.Profile, error) {
	user, err := s.repo.GetPublicUser(ctx, username)
	if err != nil {
		return model.Profile{}, err
	}

	var (
		shelf        []model.ShelfEntry
		reviews      []model.FeedReview
		totalReviews int
	)

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		shelf, err = s.repo.ListShelf(ctx, user.ID, "")
		return err
	})
	gg.Go(func() error {
		var err error
		reviews, totalReviews, err = s.repo.ListUserReviews(ctx, user.ID, 1, profileRecentReviews)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Profile{}, err
	}

	return model.Profile{
		User: model.ProfileUser{
			Username:    user.Username,
			DisplayName: user.DisplayName,
			Bio:         user.Bio,
			CreatedAt:   user.CreatedAt,
		},
		Bookshelf: shelf,
		Reviews:   reviews,
		Stats:     profileStats(shelf, totalReviews),
	}, nil
}

func profileStats(shelf []model.ShelfEntry, totalReviews int) model.ProfileStats {
	stats := model.ProfileStats{
		TotalBooks:   len(shelf),
		TotalReviews: totalReviews,
	}
	for _, entry := range shelf {
		switch entry.Status {
		case model.StatusFinished:
			stats.BooksRead++
		case model.StatusReading:
			stats.CurrentlyReading++
		}
	}
	return stats
}
