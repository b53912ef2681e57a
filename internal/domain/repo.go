package domain

import "context"

// Фильтр списка контактов: подстрочный поиск + offset/limit пагинация
type ContactFilter struct {
	Search string // ищем по name/surname/email (ILIKE)
	Skip   int
	Limit  int
}

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	CreateUser(ctx context.Context, username, email string, passHash []byte, avatar string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
	SetAvatar(ctx context.Context, id UserID, url string) error
}

type ContactsRepo interface {
	CreateContact(ctx context.Context, c Contact) (Contact, error)
	// Все выборки жёстко ограничены владельцем — чужие контакты не видны
	ContactByID(ctx context.Context, id ContactID, owner UserID) (Contact, error)
	ContactsList(ctx context.Context, owner UserID, f ContactFilter) ([]Contact, error)
	UpdateContact(ctx context.Context, c Contact) (Contact, error)
	DeleteContact(ctx context.Context, id ContactID, owner UserID) error
}

// Выборка контактов по окну дней рождения.
// Порядок стабильный: по первичному ключу по возрастанию.
type BirthdaysRepo interface {
	ContactsByBirthdayRange(ctx context.Context, owner UserID, w Window, skip, limit int) ([]Contact, error)
}
