package repository

import (
	"context"
	"database/sql"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
)

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query, args, err := qb.Select("id", "username", "display_name", "bio", "is_public", "created_at").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *repository) GetPublicUser(ctx context.Context, username string) (model.User, error) {
	query, args, err := qb.Select("id", "username", "display_name", "bio", "is_public", "created_at").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Where(sq.Eq{"is_public": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}

	return user, nil
}
