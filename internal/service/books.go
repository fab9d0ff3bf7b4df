package service

import (
	"context"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error) {
	_, limit = normalizePaging(1, limit, defaultLimit)
	return s.repo.SearchBooks(ctx, query, limit)
}

// AddBook deduplicates by exact (title, author): when the book is already in
// the catalog the existing record is returned and created is false.
func (s *Service) AddBook(ctx context.Context, username string, req model.AddBookRequest) (model.Book, bool, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.Book{}, false, err
	}

	existing, err := s.repo.GetBookByTitleAuthor(ctx, req.Title, req.Author)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Book{}, false, err
	}

	book, err := s.repo.CreateBook(ctx, user.ID, req)
	if errors.Is(err, errs.ErrConflict) {
		// lost the insert race; the winner's record is the canonical one
		book, err = s.repo.GetBookByTitleAuthor(ctx, req.Title, req.Author)
		return book, false, err
	}
	if err != nil {
		return model.Book{}, false, err
	}
	return book, true, nil
}

// GetBook returns a book with its 10 most recent reviews.
func (s *Service) GetBook(ctx context.Context, bookUid string) (model.BookDetail, error) {
	book, err := s.repo.GetBookByUid(ctx, bookUid)
	if err != nil {
		return model.BookDetail{}, err
	}

	reviews, _, err := s.repo.ListBookReviews(ctx, book.ID, 1, reviewPageLimit)
	if err != nil {
		return model.BookDetail{}, err
	}

	return model.BookDetail{Book: book, Reviews: reviews}, nil
}
