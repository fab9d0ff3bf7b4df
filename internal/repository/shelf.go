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

var userBookCols = []string{
	"id", "user_book_uid", "user_id", "book_id", "status", "rating", "notes",
	"start_date", "finish_date", "created_at", "updated_at",
}

func shelfJoinCols() []string {
	cols := make([]string, 0, len(userBookCols)+len(bookCols))
	for _, col := range userBookCols {
		cols = append(cols, "ub."+col)
	}
	return append(cols, joinCols("b", "book", bookCols)...)
}

func (r *repository) GetShelfEntry(ctx context.Context, userID, bookID int) (model.UserBook, error) {
	q, args, err := qb.Select(userBookCols...).
		From(userBooksTableName).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.UserBook{}, err
	}

	var entry model.UserBook
	if err := r.db.GetContext(ctx, &entry, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UserBook{}, errs.ErrNotFound
		}
		return model.UserBook{}, err
	}
	return entry, nil
}

func (r *repository) GetShelfEntryByUid(ctx context.Context, userID int, userBookUid string) (model.ShelfEntry, error) {
	q, args, err := qb.Select(shelfJoinCols()...).
		From(userBooksTableName + " ub").
		Join(booksTableName + " b on b.id = ub.book_id").
		Where(sq.Eq{"ub.user_id": userID}).
		Where(sq.Eq{"ub.user_book_uid": userBookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.ShelfEntry{}, err
	}

	var entry model.ShelfEntry
	if err := r.db.GetContext(ctx, &entry, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ShelfEntry{}, errs.ErrNotFound
		}
		return model.ShelfEntry{}, err
	}
	return entry, nil
}

func (r *repository) CreateShelfEntry(ctx context.Context, entry model.UserBook) (model.UserBook, error) {
	q, args, err := qb.Insert(userBooksTableName).
		Columns("user_book_uid", "user_id", "book_id", "status", "rating", "notes",
			"start_date", "finish_date").
		Values(uuid.New(), entry.UserID, entry.BookID, entry.Status, entry.Rating, entry.Notes,
			entry.StartDate, entry.FinishDate).
		Suffix("returning " + sqSelectList(userBookCols)).
		ToSql()
	if err != nil {
		return model.UserBook{}, err
	}

	var created model.UserBook
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.UserBook{}, errs.ErrConflict
		}
		r.log.Error("CreateShelfEntry", zap.String("q", q), zap.Any("args", args))
		return model.UserBook{}, err
	}
	return created, nil
}

func (r *repository) UpdateShelfEntry(ctx context.Context, id int, patch map[string]any) error {
	q, args, err := qb.Update(userBooksTableName).
		SetMap(patch).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteShelfEntry(ctx context.Context, userID int, userBookUid string) error {
	q, args, err := qb.Delete(userBooksTableName).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"user_book_uid": userBookUid}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListShelf(ctx context.Context, userID int, status model.Status) ([]model.ShelfEntry, error) {
	query := qb.Select(shelfJoinCols()...).
		From(userBooksTableName + " ub").
		Join(booksTableName + " b on b.id = ub.book_id").
		Where(sq.Eq{"ub.user_id": userID}).
		OrderBy("ub.updated_at desc")

	if status != "" {
		query = query.Where(sq.Eq{"ub.status": status})
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	shelf := make([]model.ShelfEntry, 0)
	if err := r.db.SelectContext(ctx, &shelf, q, args...); err != nil {
		return nil, err
	}
	return shelf, nil
}

// FinishedBooks returns finished entries with a finish date, newest finish
// first; ties keep insertion order.
func (r *repository) FinishedBooks(ctx context.Context, userID int) ([]model.ShelfEntry, error) {
	q, args, err := qb.Select(shelfJoinCols()...).
		From(userBooksTableName + " ub").
		Join(booksTableName + " b on b.id = ub.book_id").
		Where(sq.Eq{"ub.user_id": userID}).
		Where(sq.Eq{"ub.status": model.StatusFinished}).
		Where("ub.finish_date is not null").
		OrderBy("ub.finish_date desc", "ub.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	entries := make([]model.ShelfEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, q, args...); err != nil {
		return nil, err
	}
	return entries, nil
}
