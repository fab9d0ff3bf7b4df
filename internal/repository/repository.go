package repository

import (
	"context"
	"strings"

	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// users
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetPublicUser(ctx context.Context, username string) (model.User, error)

	// books
	SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error)
	GetBookByUid(ctx context.Context, bookUid string) (model.Book, error)
	GetBookByTitleAuthor(ctx context.Context, title, author string) (model.Book, error)
	CreateBook(ctx context.Context, userID int, req model.AddBookRequest) (model.Book, error)
	BookRatingStats(ctx context.Context, bookID int) (avg float64, count int, err error)
	UpdateBookRating(ctx context.Context, bookID int, avg float64, count int) error

	// shelf
	GetShelfEntry(ctx context.Context, userID, bookID int) (model.UserBook, error)
	GetShelfEntryByUid(ctx context.Context, userID int, userBookUid string) (model.ShelfEntry, error)
	CreateShelfEntry(ctx context.Context, entry model.UserBook) (model.UserBook, error)
	UpdateShelfEntry(ctx context.Context, id int, patch map[string]any) error
	DeleteShelfEntry(ctx context.Context, userID int, userBookUid string) error
	ListShelf(ctx context.Context, userID int, status model.Status) ([]model.ShelfEntry, error)
	FinishedBooks(ctx context.Context, userID int) ([]model.ShelfEntry, error)

	// reviews
	GetReview(ctx context.Context, userID, bookID int) (model.Review, error)
	CreateReview(ctx context.Context, review model.Review) (model.Review, error)
	GetFeedReviewByUid(ctx context.Context, reviewUid string) (model.FeedReview, error)
	ListBookReviews(ctx context.Context, bookID, page, limit int) ([]model.BookReview, int, error)
	ListUserReviews(ctx context.Context, userID, page, limit int) ([]model.FeedReview, int, error)
	CountUserReviews(ctx context.Context, userID int) (int, error)

	// explore
	TrendingBooks(ctx context.Context, genre string, page, limit int) ([]model.TrendingBook, error)
	TopRatedBooks(ctx context.Context, genre string, page, limit int) ([]model.Book, error)
	MostWishlistedBooks(ctx context.Context, page, limit int) ([]model.Book, error)
	RecentReviews(ctx context.Context, page, limit int) ([]model.FeedReview, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName     = `users`
	booksTableName     = `books`
	userBooksTableName = `user_books`
	reviewsTableName   = `reviews`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func offset(page, limit int) uint64 {
	if page < 1 {
		page = 1
	}
	return uint64((page - 1) * limit)
}

var bookCols = []string{
	"id", "book_uid", "title", "author", "isbn", "description", "cover_image",
	"genre", "published_year", "page_count", "avg_rating", "rating_count",
	"added_by", "created_at",
}

func sqSelectList(cols []string) string {
	return strings.Join(cols, ", ")
}

// joinCols aliases a table's columns into a nested struct path, e.g.
// b.title -> "book.title", so sqlx can scan joined rows.
func joinCols(alias, path string, cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		out = append(out, alias+`.`+col+` as "`+path+`.`+col+`"`)
	}
	return out
}
