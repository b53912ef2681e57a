package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/olexandrd/contacts-api/internal/domain"
)

// Ensure: PGRepo implements domain.BirthdaysRepo
var _ domain.BirthdaysRepo = (*PGRepo)(nil)

// ContactsByBirthdayRange выбирает контакты владельца, чей день рождения
// (по номеру дня в году, EXTRACT(DOY ...)) попадает в окно w.
// При переходе через границу года условие становится дизъюнкцией двух хвостов.
func (r *PGRepo) ContactsByBirthdayRange(ctx context.Context, owner domain.UserID, w domain.Window, skip, limit int) ([]domain.Contact, error) {
	const doy = "EXTRACT(DOY FROM birthday)"

	sb := r.qb().Select(contactCols).From(r.contactsTable()).
		Where(sq.Eq{"owner_id": owner})

	if w.Wraps() {
		sb = sb.Where(sq.Or{
			sq.Expr(doy+" >= ?", w.StartDay),
			sq.Expr(doy+" <= ?", w.EndDay),
		})
	} else {
		sb = sb.Where(sq.Expr(doy+" BETWEEN ? AND ?", w.StartDay, w.EndDay))
	}

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	sb = sb.OrderBy("id ASC").Offset(uint64(skip)).Limit(uint64(limit))

	sqlStr, args, _ := sb.ToSql()
	r.logSQL("ContactsByBirthdayRange", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("ContactsByBirthdayRange query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	res, err := r.collectContacts(rows)
	if err != nil {
		r.logger.Printf("ContactsByBirthdayRange rows error: %v", err)
		return nil, err
	}
	r.logger.Printf("ContactsByBirthdayRange ok in %s window=[%d,%d] count=%d",
		time.Since(start), w.StartDay, w.EndDay, len(res))
	return res, nil
}
