package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/migrations"
	"github.com/bookburst/bookburst-service/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	postgresTC "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// setupTestRepo starts a throwaway postgres instance and runs the embedded
// goose migrations against it.
func setupTestRepo(t *testing.T) (*repository, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgresTC.Run(ctx,
		"postgres:16-alpine",
		postgresTC.WithDatabase("bookburst"),
		postgresTC.WithUsername("postgres"),
		postgresTC.WithPassword("postgres"),
		postgresTC.BasicWaitStrategies(),
	)
	require.NoError(t, err, "Failed to start postgres container")

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := postgres.NewPostgresDB(ctx, &postgres.DB{
		Host:     host,
		Port:     port.Port(),
		User:     "postgres",
		Password: "postgres",
		Name:     "bookburst",
		SSLMode:  "disable",
	}, migrations.MigrationFiles)
	require.NoError(t, err, "Failed to connect and migrate")

	repo, err := NewRepository(db, zap.NewNop())
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return repo, cleanup
}

func seedUser(t *testing.T, r *repository, username string) model.User {
	t.Helper()
	var user model.User
	q := `insert into users (username, display_name) values ($1, $2) returning *`
	require.NoError(t, r.db.GetContext(context.Background(), &user, q, username, username))
	return user
}

func seedBook(t *testing.T, r *repository, userID int, title, genre string) model.Book {
	t.Helper()
	book, err := r.CreateBook(context.Background(), userID, model.AddBookRequest{
		Title:  title,
		Author: "Author of " + title,
		Genre:  genre,
	})
	require.NoError(t, err)
	return book
}

func shelve(t *testing.T, r *repository, userID, bookID int, status model.Status) model.UserBook {
	t.Helper()
	entry, err := r.CreateShelfEntry(context.Background(), model.UserBook{
		UserID: userID,
		BookID: bookID,
		Status: status,
	})
	require.NoError(t, err)
	return entry
}

func review(t *testing.T, r *repository, userID, bookID, rating int) model.Review {
	t.Helper()
	created, err := r.CreateReview(context.Background(), model.Review{
		UserID:         userID,
		BookID:         bookID,
		Rating:         rating,
		Content:        "long enough to pass the length check",
		WouldRecommend: true,
	})
	require.NoError(t, err)
	return created
}

func TestRepository_TrendingBooks(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	carol := seedUser(t, repo, "carol")

	fantasyHit := seedBook(t, repo, alice.ID, "Fantasy Hit", "Fantasy")
	fantasyNiche := seedBook(t, repo, alice.ID, "Fantasy Niche", "Fantasy")
	mystery := seedBook(t, repo, alice.ID, "Mystery", "Mystery")
	unshelved := seedBook(t, repo, alice.ID, "Unshelved", "Fantasy")

	// popularity counts every status
	shelve(t, repo, alice.ID, fantasyHit.ID, model.StatusReading)
	shelve(t, repo, bob.ID, fantasyHit.ID, model.StatusFinished)
	shelve(t, repo, carol.ID, fantasyHit.ID, model.StatusWantToRead)
	shelve(t, repo, alice.ID, mystery.ID, model.StatusReading)
	shelve(t, repo, bob.ID, mystery.ID, model.StatusReading)
	shelve(t, repo, carol.ID, fantasyNiche.ID, model.StatusReading)

	t.Run("orders by shelf count, excludes unshelved", func(t *testing.T) {
		books, err := repo.TrendingBooks(ctx, "", 1, 20)
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, fantasyHit.ID, books[0].ID)
		assert.Equal(t, 3, books[0].Popularity)
		assert.Equal(t, mystery.ID, books[1].ID)
		assert.Equal(t, 2, books[1].Popularity)
		assert.Equal(t, fantasyNiche.ID, books[2].ID)
		assert.Equal(t, 1, books[2].Popularity)
		for _, b := range books {
			assert.NotEqual(t, unshelved.ID, b.ID)
		}
	})

	t.Run("genre filter", func(t *testing.T) {
		books, err := repo.TrendingBooks(ctx, "Fantasy", 1, 20)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, fantasyHit.ID, books[0].ID)
		assert.Equal(t, fantasyNiche.ID, books[1].ID)
	})

	t.Run("paging", func(t *testing.T) {
		books, err := repo.TrendingBooks(ctx, "", 2, 1)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, mystery.ID, books[0].ID)
	})

	t.Run("unknown genre is empty, not error", func(t *testing.T) {
		books, err := repo.TrendingBooks(ctx, "Cooking", 1, 20)
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestRepository_MostWishlistedBooks(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")

	wanted := seedBook(t, repo, alice.ID, "Everyone Wants It", "Fantasy")
	alsoWanted := seedBook(t, repo, alice.ID, "One Wants It", "Fantasy")
	beingRead := seedBook(t, repo, alice.ID, "Being Read", "Fantasy")

	shelve(t, repo, alice.ID, wanted.ID, model.StatusWantToRead)
	shelve(t, repo, bob.ID, wanted.ID, model.StatusWantToRead)
	shelve(t, repo, alice.ID, alsoWanted.ID, model.StatusWantToRead)
	shelve(t, repo, bob.ID, beingRead.ID, model.StatusReading)

	books, err := repo.MostWishlistedBooks(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, wanted.ID, books[0].ID)
	assert.Equal(t, alsoWanted.ID, books[1].ID)
}

func TestRepository_TopRatedBooks(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	alice := seedUser(t, repo, "alice")

	solid := seedBook(t, repo, alice.ID, "Solid", "Fantasy")
	wonder := seedBook(t, repo, alice.ID, "One Review Wonder", "Fantasy")
	steady := seedBook(t, repo, alice.ID, "Steady", "Mystery")

	require.NoError(t, repo.UpdateBookRating(ctx, solid.ID, 4.8, 5))
	require.NoError(t, repo.UpdateBookRating(ctx, wonder.ID, 5.0, 2))
	require.NoError(t, repo.UpdateBookRating(ctx, steady.ID, 4.5, 10))

	t.Run("needs at least three ratings, avg desc", func(t *testing.T) {
		books, err := repo.TopRatedBooks(ctx, "", 1, 20)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, solid.ID, books[0].ID)
		assert.Equal(t, 4.8, books[0].AvgRating)
		assert.Equal(t, steady.ID, books[1].ID)
	})

	t.Run("genre filter", func(t *testing.T) {
		books, err := repo.TopRatedBooks(ctx, "Mystery", 1, 20)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, steady.ID, books[0].ID)
	})
}

func TestRepository_BookRatingStats(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	carol := seedUser(t, repo, "carol")

	book := seedBook(t, repo, alice.ID, "Rated", "Fantasy")

	t.Run("no reviews", func(t *testing.T) {
		avg, count, err := repo.BookRatingStats(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, avg)
		assert.Equal(t, 0, count)
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		review(t, repo, alice.ID, book.ID, 5)
		review(t, repo, bob.ID, book.ID, 4)
		review(t, repo, carol.ID, book.ID, 4)

		// (5+4+4)/3 = 4.333...
		avg, count, err := repo.BookRatingStats(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.3, avg)
		assert.Equal(t, 3, count)
	})

	t.Run("written back to the book row", func(t *testing.T) {
		avg, count, err := repo.BookRatingStats(ctx, book.ID)
		require.NoError(t, err)
		require.NoError(t, repo.UpdateBookRating(ctx, book.ID, avg, count))

		got, err := repo.GetBookByUid(ctx, book.BookUid)
		require.NoError(t, err)
		assert.Equal(t, 4.3, got.AvgRating)
		assert.Equal(t, 3, got.RatingCount)
	})
}

func TestRepository_ShelfJoins(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	alice := seedUser(t, repo, "alice")
	book := seedBook(t, repo, alice.ID, "Joined", "Fantasy")

	entry := shelve(t, repo, alice.ID, book.ID, model.StatusReading)

	t.Run("nested book scan", func(t *testing.T) {
		got, err := repo.GetShelfEntryByUid(ctx, alice.ID, entry.UserBookUid)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, got.ID)
		assert.Equal(t, book.ID, got.Book.ID)
		assert.Equal(t, "Joined", got.Book.Title)
		assert.Equal(t, book.BookUid, got.Book.BookUid)

		shelf, err := repo.ListShelf(ctx, alice.ID, "")
		require.NoError(t, err)
		require.Len(t, shelf, 1)
		assert.Equal(t, "Joined", shelf[0].Book.Title)
	})

	t.Run("finished books newest first", func(t *testing.T) {
		older := seedBook(t, repo, alice.ID, "Finished Earlier", "Fantasy")
		newer := seedBook(t, repo, alice.ID, "Finished Later", "Fantasy")

		jan := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
		mar := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
		_, err := repo.CreateShelfEntry(ctx, model.UserBook{
			UserID: alice.ID, BookID: older.ID, Status: model.StatusFinished, FinishDate: &jan,
		})
		require.NoError(t, err)
		_, err = repo.CreateShelfEntry(ctx, model.UserBook{
			UserID: alice.ID, BookID: newer.ID, Status: model.StatusFinished, FinishDate: &mar,
		})
		require.NoError(t, err)

		entries, err := repo.FinishedBooks(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Finished Later", entries[0].Book.Title)
		assert.Equal(t, "Finished Earlier", entries[1].Book.Title)
	})
}

func TestRepository_RecentReviews(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	book := seedBook(t, repo, alice.ID, "Reviewed", "Fantasy")

	review(t, repo, alice.ID, book.ID, 5)
	review(t, repo, bob.ID, book.ID, 3)

	reviews, err := repo.RecentReviews(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	// both joins populated
	assert.NotEmpty(t, reviews[0].User.Username)
	assert.Equal(t, "Reviewed", reviews[0].Book.Title)
	assert.Equal(t, "Reviewed", reviews[1].Book.Title)
}
