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

func (r *repository) SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error) {
	pattern := "%" + query + "%"
	q, args, err := qb.Select(bookCols...).
		From(booksTableName).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		}).
		OrderBy("created_at desc").
		Limit(uint64(limit)).
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

func (r *repository) GetBookByUid(ctx context.Context, bookUid string) (model.Book, error) {
	q, args, err := qb.Select(bookCols...).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByTitleAuthor(ctx context.Context, title, author string) (model.Book, error) {
	q, args, err := qb.Select(bookCols...).
		From(booksTableName).
		Where(sq.Eq{"title": title}).
		Where(sq.Eq{"author": author}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, userID int, req model.AddBookRequest) (model.Book, error) {
	genre := req.Genre
	if genre == "" {
		genre = "Fiction"
	}
	q, args, err := qb.Insert(booksTableName).
		Columns("book_uid", "title", "author", "isbn", "description", "cover_image",
			"genre", "published_year", "page_count", "added_by").
		Values(uuid.New(), req.Title, req.Author, req.ISBN, req.Description, req.CoverImage,
			genre, req.PublishedYear, req.PageCount, userID).
		Suffix("returning " + sqSelectList(bookCols)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrConflict
		}
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) BookRatingStats(ctx context.Context, bookID int) (float64, int, error) {
	q := `
	select coalesce(round(avg(rating)::numeric, 1), 0), count(*) from reviews
	where book_id = $1
`
	var (
		avg   float64
		count int
	)
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

func (r *repository) UpdateBookRating(ctx context.Context, bookID int, avg float64, count int) error {
	q := `
update books
    set avg_rating = $2, rating_count = $3
where id = $1`
	res, err := r.db.ExecContext(ctx, q, bookID, avg, count)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
