package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID
type ContactID = int64

// Пользователь
type User struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	PassHash  []byte    `json:"-"` // никогда не отдаём наружу
	Avatar    string    `json:"avatar,omitempty"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

// Контакт: принадлежит ровно одному пользователю
type Contact struct {
	ID        ContactID `json:"id"`
	OwnerID   UserID    `json:"-"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Birthday  time.Time `json:"birthday"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// Формат даты рождения в сериализованном снимке
const BirthdayDateFormat = "2006-01-02"

// ContactView — плоский снимок контакта: только примитивные поля,
// всё непримитивное (даты, ссылка на владельца) приводится к строке.
// Единая форма ответа и для кэша, и для живой выборки из БД.
type ContactView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Notes    string `json:"notes,omitempty"`
	Owner    string `json:"owner"`
}

// View приводит контакт к сериализуемому снимку
func (c Contact) View() ContactView {
	return ContactView{
		ID:       c.ID,
		Name:     c.Name,
		Surname:  c.Surname,
		Email:    c.Email,
		Phone:    c.Phone,
		Birthday: c.Birthday.Format(BirthdayDateFormat),
		Notes:    c.Notes,
		Owner:    c.OwnerID.String(),
	}
}
