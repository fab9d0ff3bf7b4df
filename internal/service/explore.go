package service

import (
	"context"

	"github.com/bookburst/bookburst-service/internal/model"
)

func (s *Service) Trending(ctx context.Context, genre string, page, limit int) ([]model.TrendingBook, error) {
	page, limit = normalizePaging(page, limit, defaultLimit)
	return s.repo.TrendingBooks(ctx, genre, page, limit)
}

func (s *Service) TopRated(ctx context.Context, genre string, page, limit int) ([]model.Book, error) {
	page, limit = normalizePaging(page, limit, defaultLimit)
	return s.repo.TopRatedBooks(ctx, genre, page, limit)
}

func (s *Service) MostWishlisted(ctx context.Context, page, limit int) ([]model.Book, error) {
	page, limit = normalizePaging(page, limit, defaultLimit)
	return s.repo.MostWishlistedBooks(ctx, page, limit)
}

func (s *Service) RecentReviews(ctx context.Context, page, limit int) ([]model.FeedReview, error) {
	page, limit = normalizePaging(page, limit, defaultLimit)
	return s.repo.RecentReviews(ctx, page, limit)
}
