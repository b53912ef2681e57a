package contact

import (
	"log"

	"github.com/olexandrd/contacts-api/internal/domain"
)

type Handler struct {
	Log      *log.Logger
	Contacts domain.ContactsRepo
}
