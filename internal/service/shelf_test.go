package service

import (
	"context"
	"testing"
	"time"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/bookburst/bookburst-service/internal/repository/mocks"
)

func intPtr(v int) *int              { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestShelfPatch(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC)

	var tests = []struct {
		name     string
		existing model.UserBook
		status   model.Status
		rating   *int
		notes    *string
		want     map[string]any
	}{
		{
			name:     "first transition to finished stamps finish_date",
			existing: model.UserBook{Status: model.StatusReading},
			status:   model.StatusFinished,
			want:     map[string]any{"status": model.StatusFinished, "finish_date": now},
		},
		{
			name:     "repeat finished keeps original finish_date",
			existing: model.UserBook{Status: model.StatusFinished, FinishDate: timePtr(earlier)},
			status:   model.StatusFinished,
			want:     map[string]any{"status": model.StatusFinished},
		},
		{
			name:     "reading stamps start_date when unset",
			existing: model.UserBook{Status: model.StatusWantToRead},
			status:   model.StatusReading,
			want:     map[string]any{"status": model.StatusReading, "start_date": now},
		},
		{
			name:     "reading keeps existing start_date",
			existing: model.UserBook{Status: model.StatusReading, StartDate: timePtr(earlier)},
			status:   model.StatusReading,
			want:     map[string]any{"status": model.StatusReading},
		},
		{
			name:     "rating and notes only when provided",
			existing: model.UserBook{Status: model.StatusFinished, FinishDate: timePtr(earlier)},
			status:   model.StatusFinished,
			rating:   intPtr(4),
			notes:    strPtr("solid"),
			want:     map[string]any{"status": model.StatusFinished, "rating": 4, "notes": "solid"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, shelfPatch(tt.existing, tt.status, tt.rating, tt.notes, now))
		})
	}
}

func TestService_UpsertShelf(t *testing.T) {
	t.Parallel()
	const (
		username = "alice"
		bookUid  = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	)
	user := model.User{ID: 1, Username: username}
	book := model.Book{ID: 7, BookUid: bookUid, Title: "Dune"}

	type mockBehavior func(r *repo_mocks.MockRepository)

	var tests = []struct {
		name         string
		req          model.UpsertShelfRequest
		mockBehavior mockBehavior
		wantCreated  bool
		wantErr      error
		wantEvents   int
	}{
		{
			name: "new entry created",
			req:  model.UpsertShelfRequest{BookUid: bookUid, Status: model.StatusReading},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserByUsername(gomock.Any(), username).Return(user, nil)
				r.EXPECT().GetBookByUid(gomock.Any(), bookUid).Return(book, nil)
				r.EXPECT().GetShelfEntry(gomock.Any(), user.ID, book.ID).
					Return(model.UserBook{}, errs.ErrNotFound)
				r.EXPECT().CreateShelfEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry model.UserBook) (model.UserBook, error) {
						require.Equal(t, model.StatusReading, entry.Status)
						require.NotNil(t, entry.StartDate)
						require.Nil(t, entry.FinishDate)
						entry.ID = 11
						entry.UserBookUid = "a0a0a0a0-0000-0000-0000-000000000001"
						return entry, nil
					})
				r.EXPECT().GetShelfEntryByUid(gomock.Any(), user.ID, "a0a0a0a0-0000-0000-0000-000000000001").
					Return(model.ShelfEntry{UserBook: model.UserBook{ID: 11, Status: model.StatusReading}, Book: book}, nil)
			},
			wantCreated: true,
			wantEvents:  1,
		},
		{
			name: "existing entry updated, finish_date stamped once",
			req:  model.UpsertShelfRequest{BookUid: bookUid, Status: model.StatusFinished, Rating: intPtr(5)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				existing := model.UserBook{ID: 11, UserBookUid: "a0a0a0a0-0000-0000-0000-000000000001", Status: model.StatusReading}
				r.EXPECT().GetUserByUsername(gomock.Any(), username).Return(user, nil)
				r.EXPECT().GetBookByUid(gomock.Any(), bookUid).Return(book, nil)
				r.EXPECT().GetShelfEntry(gomock.Any(), user.ID, book.ID).Return(existing, nil)
				r.EXPECT().UpdateShelfEntry(gomock.Any(), existing.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, patch map[string]any) error {
						require.Equal(t, model.StatusFinished, patch["status"])
						require.Equal(t, 5, patch["rating"])
						require.Contains(t, patch, "finish_date")
						return nil
					})
				r.EXPECT().GetShelfEntryByUid(gomock.Any(), user.ID, existing.UserBookUid).
					Return(model.ShelfEntry{UserBook: model.UserBook{ID: 11, Status: model.StatusFinished}, Book: book}, nil)
			},
			wantCreated: false,
			wantEvents:  1,
		},
		{
			name: "unknown book",
			req:  model.UpsertShelfRequest{BookUid: bookUid, Status: model.StatusReading},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserByUsername(gomock.Any(), username).Return(user, nil)
				r.EXPECT().GetBookByUid(gomock.Any(), bookUid).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
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

			enq := &enqueueRecorder{}
			svc := NewService(repo, enq, zap.NewNop())

			_, created, err := svc.UpsertShelf(context.Background(), username, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantCreated, created)
			require.Len(t, enq.topics, tt.wantEvents)
			if tt.wantEvents > 0 {
				require.Equal(t, kafka.ActivityTopic, enq.topics[0])
			}
		})
	}
}

type enqueueRecorder struct {
	topics []string
	msgs   []any
	err    error
}

func (e *enqueueRecorder) Enqueue(topic string, v any) error {
	e.topics = append(e.topics, topic)
	e.msgs = append(e.msgs, v)
	return e.err
}
