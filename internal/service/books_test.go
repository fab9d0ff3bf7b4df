package service

import (
	"context"
	"testing"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/bookburst/bookburst-service/internal/repository/mocks"
)

func TestService_AddBook(t *testing.T) {
	t.Parallel()
	const username = "alice"
	user := model.User{ID: 1, Username: username}
	req := model.AddBookRequest{Title: "Dune", Author: "Frank Herbert"}
	existing := model.Book{ID: 7, BookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27", Title: "Dune", Author: "Frank Herbert"}

	type mockBehavior func(r *repo_mocks.MockRepository)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		wantBookID   int
		wantCreated  bool
		wantErr      bool
	}{
		{
			name: "new book created",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserByUsername(gomock.Any(), username).Return(user, nil)
				r.EXPECT().GetBookByTitleAuthor(gomock.Any(), req.Title, req.Author).
					Return(model.Book{}, errs.ErrNotFound)
				r.EXPECT().CreateBook(gomock.Any(), user.ID, req).Return(existing, nil)
			},
			wantBookID:  7,
			wantCreated: true,
		},
		{
			name: "duplicate returns existing",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserByUsername(gomock.Any(), username).Return(user, nil)
				r.EXPECT().GetBookByTitleAuthor(gomock.Any(), req.Title, req.Author).
					Return(existing, nil)
			},
			wantBookID:  7,
			wantCreated: false,
		},
		{
			name: "insert race falls back to winner",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserByUsername(gomock.Any(), username).Return(user, nil)
				r.EXPECT().GetBookByTitleAuthor(gomock.Any(), req.Title, req.Author).
					Return(model.Book{}, errs.ErrNotFound)
				r.EXPECT().CreateBook(gomock.Any(), user.ID, req).
					Return(model.Book{}, errs.ErrConflict)
				r.EXPECT().GetBookByTitleAuthor(gomock.Any(), req.Title, req.Author).
					Return(existing, nil)
			},
			wantBookID:  7,
			wantCreated: false,
		},
		{
			name: "unknown user",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserByUsername(gomock.Any(), username).
					Return(model.User{}, errs.ErrNotFound)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo)

			svc := NewService(repo, nil, zap.NewNop())
			book, created, err := svc.AddBook(context.Background(), username, req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantBookID, book.ID)
			require.Equal(t, tt.wantCreated, created)
		})
	}
}

func TestService_GetBook(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: 7, BookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27", Title: "Dune"}
	reviews := []model.BookReview{{Review: model.Review{ID: 1, Rating: 5}}}

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetBookByUid(gomock.Any(), book.BookUid).Return(book, nil)
	repo.EXPECT().ListBookReviews(gomock.Any(), book.ID, 1, reviewPageLimit).Return(reviews, 1, nil)

	svc := NewService(repo, nil, zap.NewNop())
	detail, err := svc.GetBook(context.Background(), book.BookUid)
	require.NoError(t, err)
	require.Equal(t, book, detail.Book)
	require.Equal(t, reviews, detail.Reviews)
}
