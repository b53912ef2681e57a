package postgres

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/olexandrd/contacts-api/internal/domain"
)

const contactCols = "id, owner_id, name, surname, email, phone, birthday, notes, created_at, updated_at"

func (r *PGRepo) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	q := r.qb().Insert(r.contactsTable()).
		Columns("owner_id", "name", "surname", "email", "phone", "birthday", "notes").
		Values(c.OwnerID, c.Name, c.Surname, c.Email, c.Phone, c.Birthday, c.Notes).
		Suffix("RETURNING " + contactCols)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateContact", sqlStr, args)

	start := time.Now()
	out, err := r.scanContact(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("CreateContact scan error after %s: %v", time.Since(start), err)
		return domain.Contact{}, err
	}
	r.logger.Printf("CreateContact ok in %s id=%d owner=%s", time.Since(start), out.ID, out.OwnerID)
	return out, nil
}

func (r *PGRepo) ContactByID(ctx context.Context, id domain.ContactID, owner domain.UserID) (domain.Contact, error) {
	q := r.qb().Select(contactCols).From(r.contactsTable()).
		Where(sq.Eq{"id": id, "owner_id": owner})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("ContactByID", sqlStr, args)

	start := time.Now()
	out, err := r.scanContact(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Contact{}, domain.ErrNotFound
		}
		r.logger.Printf("ContactByID scan error after %s: %v", time.Since(start), err)
		return domain.Contact{}, err
	}
	r.logger.Printf("ContactByID ok in %s id=%d", time.Since(start), out.ID)
	return out, nil
}

func (r *PGRepo) ContactsList(ctx context.Context, owner domain.UserID, f domain.ContactFilter) ([]domain.Contact, error) {
	sb := r.qb().Select(contactCols).From(r.contactsTable()).
		Where(sq.Eq{"owner_id": owner})

	if f.Search != "" {
		pat := "%" + f.Search + "%"
		sb = sb.Where(sq.Or{
			sq.ILike{"name": pat},
			sq.ILike{"surname": pat},
			sq.ILike{"email": pat},
		})
	}

	skip := f.Skip
	if skip < 0 {
		skip = 0
	}
	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	sb = sb.OrderBy("id ASC").Offset(uint64(skip)).Limit(uint64(limit))

	sqlStr, args, _ := sb.ToSql()
	r.logSQL("ContactsList", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("ContactsList query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	res, err := r.collectContacts(rows)
	if err != nil {
		r.logger.Printf("ContactsList rows error: %v", err)
		return nil, err
	}
	r.logger.Printf("ContactsList ok in %s count=%d", time.Since(start), len(res))
	return res, nil
}

func (r *PGRepo) UpdateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	q := r.qb().Update(r.contactsTable()).
		SetMap(map[string]any{
			"name":       c.Name,
			"surname":    c.Surname,
			"email":      c.Email,
			"phone":      c.Phone,
			"birthday":   c.Birthday,
			"notes":      c.Notes,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": c.ID, "owner_id": c.OwnerID}).
		Suffix("RETURNING " + contactCols)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UpdateContact", sqlStr, args)

	start := time.Now()
	out, err := r.scanContact(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Contact{}, domain.ErrNotFound
		}
		r.logger.Printf("UpdateContact scan error after %s: %v", time.Since(start), err)
		return domain.Contact{}, err
	}
	r.logger.Printf("UpdateContact ok in %s id=%d", time.Since(start), out.ID)
	return out, nil
}

func (r *PGRepo) DeleteContact(ctx context.Context, id domain.ContactID, owner domain.UserID) error {
	q := r.qb().Delete(r.contactsTable()).
		Where(sq.Eq{"id": id, "owner_id": owner})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteContact", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteContact exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("DeleteContact no rows in %s (not found or not owner)", time.Since(start))
		return domain.ErrNotFound
	}
	r.logger.Printf("DeleteContact ok in %s id=%d", time.Since(start), id)
	return nil
}

func (r *PGRepo) scanContact(row pgx.Row) (domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Surname, &c.Email, &c.Phone,
		&c.Birthday, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *PGRepo) collectContacts(rows pgx.Rows) ([]domain.Contact, error) {
	var res []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Surname, &c.Email, &c.Phone,
			&c.Birthday, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
