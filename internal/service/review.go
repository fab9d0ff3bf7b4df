package service

import (
	"context"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateReview inserts a review and recomputes the book's cached rating
// fields from a full scan of its reviews. The recompute is not transactional
// with the insert; when it fails a rescan request is enqueued so the consumer
// repairs the fields later.
func (s *Service) CreateReview(ctx context.Context, username string, req model.CreateReviewRequest) (model.FeedReview, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.FeedReview{}, err
	}
	book, err := s.repo.GetBookByUid(ctx, req.BookUid)
	if err != nil {
		return model.FeedReview{}, err
	}

	if _, err := s.repo.GetShelfEntry(ctx, user.ID, book.ID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.FeedReview{}, errs.ErrNotShelved
		}
		return model.FeedReview{}, err
	}

	if _, err := s.repo.GetReview(ctx, user.ID, book.ID); err == nil {
		return model.FeedReview{}, errs.ErrConflict
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.FeedReview{}, err
	}

	created, err := s.repo.CreateReview(ctx, model.Review{
		UserID:         user.ID,
		BookID:         book.ID,
		Rating:         req.Rating,
		Content:        req.Content,
		WouldRecommend: req.WouldRecommend,
	})
	if err != nil {
		return model.FeedReview{}, err
	}

	if err := s.rescanRating(ctx, book.ID); err != nil {
		s.log.Error("rating recompute", zap.String("bookUid", book.BookUid), zap.Error(err))
		s.enqueueRescan(book.BookUid)
	}

	review, err := s.repo.GetFeedReviewByUid(ctx, created.ReviewUid)
	if err != nil {
		return model.FeedReview{}, err
	}
	s.publishActivity(kafka.ActivityReviewCreated, username, book.BookUid)
	return review, nil
}

// rescanRating rewrites avg_rating and rating_count from all reviews of the
// book. A full rescan rather than an incremental bump keeps the fields
// correct under concurrent review creation.
func (s *Service) rescanRating(ctx context.Context, bookID int) error {
	avg, count, err := s.repo.BookRatingStats(ctx, bookID)
	if err != nil {
		return err
	}
	return s.repo.UpdateBookRating(ctx, bookID, avg, count)
}

// RescanBookRating is the maintenance entry point, reachable over HTTP and
// from the rescan consumer.
func (s *Service) RescanBookRating(ctx context.Context, bookUid string) (model.Book, error) {
	book, err := s.repo.GetBookByUid(ctx, bookUid)
	if err != nil {
		return model.Book{}, err
	}
	if err := s.rescanRating(ctx, book.ID); err != nil {
		return model.Book{}, err
	}
	return s.repo.GetBookByUid(ctx, bookUid)
}

func (s *Service) enqueueRescan(bookUid string) {
	if s.enqueuer == nil {
		return
	}
	if err := s.enqueuer.Enqueue(kafka.RescanTopic, kafka.RescanRequest{BookUid: bookUid}); err != nil {
		s.log.Error("enqueue rescan", zap.String("bookUid", bookUid), zap.Error(err))
	}
}

func (s *Service) ListBookReviews(ctx context.Context, bookUid string, page, limit int) (model.BookReviews, error) {
	page, limit = normalizePaging(page, limit, reviewPageLimit)

	book, err := s.repo.GetBookByUid(ctx, bookUid)
	if err != nil {
		return model.BookReviews{}, err
	}

	reviews, total, err := s.repo.ListBookReviews(ctx, book.ID, page, limit)
	if err != nil {
		return model.BookReviews{}, err
	}

	return model.BookReviews{
		Reviews:    reviews,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (s *Service) ListUserReviews(ctx context.Context, username string, page, limit int) (model.UserReviews, error) {
	page, limit = normalizePaging(page, limit, reviewPageLimit)

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.UserReviews{}, err
	}

	reviews, total, err := s.repo.ListUserReviews(ctx, user.ID, page, limit)
	if err != nil {
		return model.UserReviews{}, err
	}

	return model.UserReviews{
		Reviews:    reviews,
		Pagination: paginate(page, limit, total),
	}, nil
}
