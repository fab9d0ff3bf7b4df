package service

import (
	"context"
	"testing"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/bookburst/bookburst-service/internal/repository/mocks"
)

func TestProfileStats(t *testing.T) {
	t.Parallel()
	shelf := []model.ShelfEntry{
		{UserBook: model.UserBook{Status: model.StatusFinished}},
		{UserBook: model.UserBook{Status: model.StatusFinished}},
		{UserBook: model.UserBook{Status: model.StatusReading}},
		{UserBook: model.UserBook{Status: model.StatusWantToRead}},
	}
	stats := profileStats(shelf, 3)
	require.Equal(t, model.ProfileStats{
		TotalBooks:       4,
		BooksRead:        2,
		CurrentlyReading: 1,
		TotalReviews:     3,
	}, stats)
}

func TestService_Profile(t *testing.T) {
	t.Parallel()
	user := model.User{ID: 1, Username: "alice", DisplayName: "Alice", IsPublic: true}
	shelf := []model.ShelfEntry{
		{UserBook: model.UserBook{ID: 1, Status: model.StatusFinished}},
		{UserBook: model.UserBook{ID: 2, Status: model.StatusReading}},
	}
	reviews := []model.FeedReview{
		{BookReview: model.BookReview{Review: model.Review{ID: 5}}},
	}

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetPublicUser(gomock.Any(), user.Username).Return(user, nil)
	repo.EXPECT().ListShelf(gomock.Any(), user.ID, model.Status("")).Return(shelf, nil)
	repo.EXPECT().ListUserReviews(gomock.Any(), user.ID, 1, profileRecentReviews).Return(reviews, 9, nil)

	svc := NewService(repo, nil, zap.NewNop())
	profile, err := svc.Profile(context.Background(), user.Username)
	require.NoError(t, err)
	require.Equal(t, "alice", profile.User.Username)
	require.Equal(t, shelf, profile.Bookshelf)
	require.Equal(t, reviews, profile.Reviews)
	require.Equal(t, model.ProfileStats{
		TotalBooks:       2,
		BooksRead:        1,
		CurrentlyReading: 1,
		TotalReviews:     9,
	}, profile.Stats)
}

func TestService_Profile_Private(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetPublicUser(gomock.Any(), "bob").Return(model.User{}, errs.ErrNotFound)

	svc := NewService(repo, nil, zap.NewNop())
	_, err := svc.Profile(context.Background(), "bob")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
