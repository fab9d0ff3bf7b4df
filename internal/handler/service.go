package handler

import (
	"context"

	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookburstService interface {
	SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error)
	AddBook(ctx context.Context, username string, req model.AddBookRequest) (model.Book, bool, error)
	GetBook(ctx context.Context, bookUid string) (model.BookDetail, error)
	RescanBookRating(ctx context.Context, bookUid string) (model.Book, error)

	UpsertShelf(ctx context.Context, username string, req model.UpsertShelfRequest) (model.ShelfEntry, bool, error)
	ListShelf(ctx context.Context, username string, status model.Status) ([]model.ShelfEntry, error)
	UpdateShelfEntry(ctx context.Context, username, userBookUid string, req model.UpdateShelfRequest) (model.ShelfEntry, error)
	DeleteShelfEntry(ctx context.Context, username, userBookUid string) error
	Timeline(ctx context.Context, username string) ([]model.TimelineBucket, error)

	CreateReview(ctx context.Context, username string, req model.CreateReviewRequest) (model.FeedReview, error)
	ListBookReviews(ctx context.Context, bookUid string, page, limit int) (model.BookReviews, error)
	ListUserReviews(ctx context.Context, username string, page, limit int) (model.UserReviews, error)

	Trending(ctx context.Context, genre string, page, limit int) ([]model.TrendingBook, error)
	TopRated(ctx context.Context, genre string, page, limit int) ([]model.Book, error)
	MostWishlisted(ctx context.Context, page, limit int) ([]model.Book, error)
	RecentReviews(ctx context.Context, page, limit int) ([]model.FeedReview, error)

	Profile(ctx context.Context, username string) (model.Profile, error)
}

var _ BookburstService = (*service.Service)(nil)
