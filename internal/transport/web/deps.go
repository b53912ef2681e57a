package web

import (
	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/birthday"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/user"
)

type Repos struct {
	Users    domain.UsersRepo
	Contacts domain.ContactsRepo
}

type AuthDeps struct {
	Hasher    domain.PasswordHasher
	Tokens    domain.TokenManager
	Blacklist domain.TokenBlacklist
}

// Deps — всё, что нужно серверу от внешнего мира
type Deps struct {
	Repos     Repos
	Auth      AuthDeps
	Storage   user.AvatarStorage
	Birthdays birthday.Upcomer
}
