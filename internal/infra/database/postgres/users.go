package postgres

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/olexandrd/contacts-api/internal/domain"
)

const userCols = "id, username, email, pass_hash, avatar, confirmed, created_at"

func (r *PGRepo) CreateUser(ctx context.Context, username, email string, passHash []byte, avatar string) (domain.User, error) {
	q := r.qb().Insert(r.usersTable()).
		Columns("username", "email", "pass_hash", "avatar").
		Values(username, email, passHash, avatar).
		Suffix("RETURNING " + userCols)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateUser", sqlStr, args)

	start := time.Now()
	u, err := r.scanUser(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		// уникальный конфликт по username/email
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Printf("CreateUser conflict after %s: %v", time.Since(start), err)
			return domain.User{}, domain.ErrConflict
		}
		r.logger.Printf("CreateUser scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("CreateUser ok in %s id=%s username=%s", time.Since(start), u.ID, u.Username)
	return u, nil
}

func (r *PGRepo) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.userBy(ctx, "UserByUsername", sq.Eq{"username": username})
}

func (r *PGRepo) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.userBy(ctx, "UserByEmail", sq.Eq{"email": email})
}

func (r *PGRepo) UserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	return r.userBy(ctx, "UserByID", sq.Eq{"id": id})
}

func (r *PGRepo) userBy(ctx context.Context, op string, where sq.Eq) (domain.User, error) {
	q := r.qb().Select(userCols).From(r.usersTable()).Where(where)

	sqlStr, args, _ := q.ToSql()
	r.logSQL(op, sqlStr, args)

	start := time.Now()
	u, err := r.scanUser(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		r.logger.Printf("%s scan error after %s: %v", op, time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("%s ok in %s id=%s", op, time.Since(start), u.ID)
	return u, nil
}

func (r *PGRepo) SetAvatar(ctx context.Context, id domain.UserID, url string) error {
	q := r.qb().Update(r.usersTable()).
		Set("avatar", url).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SetAvatar", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("SetAvatar exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("SetAvatar ok in %s id=%s", time.Since(start), id)
	return nil
}

func (r *PGRepo) scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PassHash, &u.Avatar, &u.Confirmed, &u.CreatedAt)
	return u, err
}
