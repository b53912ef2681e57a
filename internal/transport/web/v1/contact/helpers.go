package contact

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/olexandrd/contacts-api/internal/domain"
)

// Тело create/update: дата рождения приходит строкой YYYY-MM-DD
type contactRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Notes    string `json:"notes"`
}

func decodeContact(r *http.Request, owner domain.UserID) (domain.Contact, error) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.Contact{}, domain.ErrBadParams
	}
	bday, err := time.Parse(domain.BirthdayDateFormat, req.Birthday)
	if err != nil {
		return domain.Contact{}, domain.ErrBadParams
	}
	c := domain.Contact{
		OwnerID:  owner,
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Phone:    req.Phone,
		Birthday: bday,
		Notes:    req.Notes,
	}
	if !domain.ValidContact(c) {
		return domain.Contact{}, domain.ErrBadParams
	}
	return c, nil
}

// id из path-параметра {id}
func contactIDFromPath(r *http.Request) (domain.ContactID, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadParams
	}
	return id, nil
}
