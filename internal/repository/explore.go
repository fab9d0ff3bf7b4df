package repository

import (
	"context"

	"github.com/bookburst/bookburst-service/internal/model"

	sq "github.com/Masterminds/squirrel"
)

// TrendingBooks ranks books by how many shelves they sit on, regardless of
// status. Books nobody has shelved are excluded by the inner join.
func (r *repository) TrendingBooks(ctx context.Context, genre string, page, limit int) ([]model.TrendingBook, error) {
	cols := make([]string, 0, len(bookCols)+1)
	for _, col := range bookCols {
		cols = append(cols, "b."+col)
	}
	cols = append(cols, "count(ub.id) as popularity")

	query := qb.Select(cols...).
		From(booksTableName + " b").
		Join(userBooksTableName + " ub on ub.book_id = b.id").
		GroupBy("b.id").
		OrderBy("popularity desc", "b.created_at desc").
		Limit(uint64(limit)).
		Offset(offset(page, limit))

	if genre != "" {
		query = query.Where(sq.Eq{"b.genre": genre})
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.TrendingBook, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) TopRatedBooks(ctx context.Context, genre string, page, limit int) ([]model.Book, error) {
	query := qb.Select(bookCols...).
		From(booksTableName).
		Where(sq.GtOrEq{"rating_count": minRatingsForTopRated}).
		OrderBy("avg_rating desc", "rating_count desc").
		Limit(uint64(limit)).
		Offset(offset(page, limit))

	if genre != "" {
		query = query.Where(sq.Eq{"genre": genre})
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

// minRatingsForTopRated keeps one-review wonders out of the top-rated feed.
const minRatingsForTopRated = 3

func (r *repository) MostWishlistedBooks(ctx context.Context, page, limit int) ([]model.Book, error) {
	cols := make([]string, 0, len(bookCols))
	for _, col := range bookCols {
		cols = append(cols, "b."+col)
	}

	q, args, err := qb.Select(cols...).
		From(userBooksTableName + " ub").
		Join(booksTableName + " b on b.id = ub.book_id").
		Where(sq.Eq{"ub.status": model.StatusWantToRead}).
		GroupBy("b.id").
		OrderBy("count(ub.id) desc", "b.id").
		Limit(uint64(limit)).
		Offset(offset(page, limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) RecentReviews(ctx context.Context, page, limit int) ([]model.FeedReview, error) {
	q, args, err := qb.Select(feedReviewJoinCols()...).
		From(reviewsTableName + " rv").
		Join(usersTableName + " u on u.id = rv.user_id").
		Join(booksTableName + " b on b.id = rv.book_id").
		OrderBy("rv.created_at desc").
		Limit(uint64(limit)).
		Offset(offset(page, limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	reviews := make([]model.FeedReview, 0)
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}
