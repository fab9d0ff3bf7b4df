package repository

import (
	"context"
	"database/sql"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

var reviewCols = []string{
	"id", "review_uid", "user_id", "book_id", "rating", "content",
	"would_recommend", "created_at",
}

var publicUserCols = []string{"username", "display_name"}

func reviewUserJoinCols() []string {
	cols := make([]string, 0, len(reviewCols)+len(publicUserCols))
	for _, col := range reviewCols {
		cols = append(cols, "rv."+col)
	}
	return append(cols, joinCols("u", "user", publicUserCols)...)
}

func feedReviewJoinCols() []string {
	return append(reviewUserJoinCols(), joinCols("b", "book", bookCols)...)
}

func (r *repository) GetReview(ctx context.Context, userID, bookID int) (model.Review, error) {
	q, args, err := qb.Select(reviewCols...).
		From(reviewsTableName).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var review model.Review
	if err := r.db.GetContext(ctx, &review, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

func (r *repository) CreateReview(ctx context.Context, review model.Review) (model.Review, error) {
	q, args, err := qb.Insert(reviewsTableName).
		Columns("review_uid", "user_id", "book_id", "rating", "content", "would_recommend").
		Values(uuid.New(), review.UserID, review.BookID, review.Rating, review.Content, review.WouldRecommend).
		Suffix("returning " + sqSelectList(reviewCols)).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var created model.Review
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Review{}, errs.ErrConflict
		}
		r.log.Error("CreateReview", zap.String("q", q), zap.Any("args", args))
		return model.Review{}, err
	}
	return created, nil
}

func (r *repository) GetFeedReviewByUid(ctx context.Context, reviewUid string) (model.FeedReview, error) {
	q, args, err := qb.Select(feedReviewJoinCols()...).
		From(reviewsTableName + " rv").
		Join(usersTableName + " u on u.id = rv.user_id").
		Join(booksTableName + " b on b.id = rv.book_id").
		Where(sq.Eq{"rv.review_uid": reviewUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.FeedReview{}, err
	}

	var review model.FeedReview
	if err := r.db.GetContext(ctx, &review, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FeedReview{}, errs.ErrNotFound
		}
		return model.FeedReview{}, err
	}
	return review, nil
}

func (r *repository) ListBookReviews(ctx context.Context, bookID, page, limit int) ([]model.BookReview, int, error) {
	q, args, err := qb.Select(reviewUserJoinCols()...).
		From(reviewsTableName + " rv").
		Join(usersTableName + " u on u.id = rv.user_id").
		Where(sq.Eq{"rv.book_id": bookID}).
		OrderBy("rv.created_at desc").
		Limit(uint64(limit)).
		Offset(offset(page, limit)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	reviews := make([]model.BookReview, 0)
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, 0, err
	}

	var total int
	countQ := `select count(*) from reviews where book_id = $1`
	if err := r.db.QueryRowContext(ctx, countQ, bookID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *repository) ListUserReviews(ctx context.Context, userID, page, limit int) ([]model.FeedReview, int, error) {
	q, args, err := qb.Select(feedReviewJoinCols()...).
		From(reviewsTableName + " rv").
		Join(usersTableName + " u on u.id = rv.user_id").
		Join(booksTableName + " b on b.id = rv.book_id").
		Where(sq.Eq{"rv.user_id": userID}).
		OrderBy("rv.created_at desc").
		Limit(uint64(limit)).
		Offset(offset(page, limit)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	reviews := make([]model.FeedReview, 0)
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, 0, err
	}

	total, err := r.CountUserReviews(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *repository) CountUserReviews(ctx context.Context, userID int) (int, error) {
	q := `select count(*) from reviews where user_id = $1`
	var count int
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
