package service

import (
	"context"
	"time"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// UpsertShelf creates or updates the caller's shelf entry for a book. At most
// one entry per (user, book) exists; repeated calls with the same status only
// refresh updated_at.
func (s *Service) UpsertShelf(ctx context.Context, username string, req model.UpsertShelfRequest) (model.ShelfEntry, bool, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.ShelfEntry{}, false, err
	}
	book, err := s.repo.GetBookByUid(ctx, req.BookUid)
	if err != nil {
		return model.ShelfEntry{}, false, err
	}

	now := time.Now().UTC()

	existing, err := s.repo.GetShelfEntry(ctx, user.ID, book.ID)
	if err == nil {
		patch := shelfPatch(existing, req.Status, req.Rating, req.Notes, now)
		if err := s.repo.UpdateShelfEntry(ctx, existing.ID, patch); err != nil {
			return model.ShelfEntry{}, false, err
		}
		entry, err := s.repo.GetShelfEntryByUid(ctx, user.ID, existing.UserBookUid)
		if err != nil {
			return model.ShelfEntry{}, false, err
		}
		s.publishActivity(kafka.ActivityShelfUpsert, username, book.BookUid)
		return entry, false, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.ShelfEntry{}, false, err
	}

	created, err := s.repo.CreateShelfEntry(ctx, newShelfEntry(user.ID, book.ID, req, now))
	if err != nil {
		return model.ShelfEntry{}, false, err
	}
	entry, err := s.repo.GetShelfEntryByUid(ctx, user.ID, created.UserBookUid)
	if err != nil {
		return model.ShelfEntry{}, false, err
	}
	s.publishActivity(kafka.ActivityShelfUpsert, username, book.BookUid)
	return entry, true, nil
}

// shelfPatch computes the partial update for an existing entry: only provided
// fields change, finish_date is written once on the first transition to
// finished, start_date once when the status becomes reading.
func shelfPatch(existing model.UserBook, status model.Status, rating *int, notes *string, now time.Time) map[string]any {
	patch := map[string]any{"status": status}
	if rating != nil {
		patch["rating"] = *rating
	}
	if notes != nil {
		patch["notes"] = *notes
	}
	if status == model.StatusFinished && existing.FinishDate == nil {
		patch["finish_date"] = now
	}
	if status == model.StatusReading && existing.StartDate == nil {
		patch["start_date"] = now
	}
	return patch
}

func newShelfEntry(userID, bookID int, req model.UpsertShelfRequest, now time.Time) model.UserBook {
	entry := model.UserBook{
		UserID: userID,
		BookID: bookID,
		Status: req.Status,
		Rating: req.Rating,
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	switch req.Status {
	case model.StatusReading:
		entry.StartDate = &now
	case model.StatusFinished:
		entry.FinishDate = &now
	}
	return entry
}

func (s *Service) ListShelf(ctx context.Context, username string, status model.Status) ([]model.ShelfEntry, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListShelf(ctx, user.ID, status)
}

func (s *Service) UpdateShelfEntry(ctx context.Context, username, userBookUid string, req model.UpdateShelfRequest) (model.ShelfEntry, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.ShelfEntry{}, err
	}
	entry, err := s.repo.GetShelfEntryByUid(ctx, user.ID, userBookUid)
	if err != nil {
		return model.ShelfEntry{}, err
	}

	status := entry.Status
	if req.Status != nil {
		status = *req.Status
	}
	patch := shelfPatch(entry.UserBook, status, req.Rating, req.Notes, time.Now().UTC())
	if err := s.repo.UpdateShelfEntry(ctx, entry.ID, patch); err != nil {
		return model.ShelfEntry{}, err
	}
	return s.repo.GetShelfEntryByUid(ctx, user.ID, userBookUid)
}

func (s *Service) DeleteShelfEntry(ctx context.Context, username, userBookUid string) error {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.repo.DeleteShelfEntry(ctx, user.ID, userBookUid)
}

func (s *Service) publishActivity(event, username, bookUid string) {
	if s.enqueuer == nil {
		return
	}
	if err := s.enqueuer.Enqueue(kafka.ActivityTopic, kafka.ActivityEvent{
		Type:     event,
		Username: username,
		BookUid:  bookUid,
		At:       time.Now().UTC(),
	}); err != nil {
		s.log.Warn("publish activity", zap.String("event", event), zap.Error(err))
	}
}
