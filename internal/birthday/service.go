// Package birthday отвечает за выборку контактов, у которых день
// рождения попадает в ближайшее окно, со сквозным кэшем поверх БД.
package birthday

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/olexandrd/contacts-api/internal/domain"
)

const (
	DefaultDayGap = 7
	DefaultLimit  = 100
	MaxLimit      = 1000

	// TTL записи кэша по умолчанию, секунд
	DefaultTTL = 3600
)

type Service struct {
	contacts domain.BirthdaysRepo
	cache    domain.Cache
	log      *log.Logger
	ttl      int
	now      func() time.Time // подменяется в тестах
}

func New(contacts domain.BirthdaysRepo, cache domain.Cache, logger *log.Logger, ttlSeconds int) *Service {
	if ttlSeconds <= 0 {
		ttlSeconds = DefaultTTL
	}
	return &Service{
		contacts: contacts,
		cache:    cache,
		log:      logger,
		ttl:      ttlSeconds,
		now:      time.Now,
	}
}

// Upcoming возвращает страницу контактов владельца, чьи дни рождения
// попадают в окно [сегодня, сегодня+dayGap] по номеру дня в году.
//
// Путь кэш-попадания не считает окно и не ходит в БД. На промахе
// результат сериализуется в снимки и кладётся в кэш с TTL; любая
// ошибка кэша приравнивается к промаху и наружу не отдаётся.
// Обе ветки возвращают одну и ту же форму — []domain.ContactView.
func (s *Service) Upcoming(ctx context.Context, user domain.User, skip, limit, dayGap int) ([]domain.ContactView, error) {
	skip, limit, dayGap = clamp(skip, limit, dayGap)

	key := domain.CacheKeyBirthdays(user.ID, skip, limit, dayGap)
	if b, err := s.cache.Get(ctx, key); err != nil {
		s.log.Printf("cache get %q: %v", key, err)
	} else if len(b) > 0 {
		var views []domain.ContactView
		if err := json.Unmarshal(b, &views); err == nil {
			return views, nil
		}
		// битая запись — игнорируем и перечитываем из БД
		s.log.Printf("cache entry %q is not decodable, falling through", key)
	}

	w := domain.BirthdayWindow(s.now(), dayGap)
	contacts, err := s.contacts.ContactsByBirthdayRange(ctx, user.ID, w, skip, limit)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ContactView, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, c.View())
	}

	if buf, err := json.Marshal(views); err == nil {
		if err := s.cache.Set(ctx, key, buf, s.ttl); err != nil {
			s.log.Printf("cache set %q: %v", key, err)
		}
	}
	return views, nil
}

// clamp нормализует параметры запроса; ключ кэша строится уже по
// нормализованным значениям, чтобы эквивалентные запросы делили запись.
func clamp(skip, limit, dayGap int) (int, int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if dayGap < 0 {
		dayGap = 0
	}
	return skip, limit, dayGap
}
