package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("egor_77"))
	assert.True(t, ValidUsername("abc"))
	assert.False(t, ValidUsername("ab"))
	assert.False(t, ValidUsername("имя"))
	assert.False(t, ValidUsername("with space"))
	assert.False(t, ValidUsername(strings.Repeat("a", 51)))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.False(t, ValidEmail("user@example"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(strings.Repeat("a", 45)+"@ex.com"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+380501234567"))
	assert.True(t, ValidPhone("0501234567"))
	assert.False(t, ValidPhone("123"))
	assert.False(t, ValidPhone("+38 050 123 45 67"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Sup3rSecret"))
	assert.False(t, ValidPassword("short1A"))
	assert.False(t, ValidPassword("alllowercase1"))
	assert.False(t, ValidPassword("ALLUPPERCASE1"))
	assert.False(t, ValidPassword("NoDigitsHere"))
}

func TestValidContact(t *testing.T) {
	ok := Contact{
		Name:     "Ivan",
		Surname:  "Petrov",
		Email:    "ivan@example.com",
		Phone:    "+380501234567",
		Birthday: date(1990, time.May, 17),
	}
	assert.True(t, ValidContact(ok))

	t.Run("empty name", func(t *testing.T) {
		c := ok
		c.Name = ""
		assert.False(t, ValidContact(c))
	})
	t.Run("name too long", func(t *testing.T) {
		c := ok
		c.Name = strings.Repeat("x", 51)
		assert.False(t, ValidContact(c))
	})
	t.Run("optional email and phone may be empty", func(t *testing.T) {
		c := ok
		c.Email, c.Phone = "", ""
		assert.True(t, ValidContact(c))
	})
	t.Run("bad email", func(t *testing.T) {
		c := ok
		c.Email = "nope"
		assert.False(t, ValidContact(c))
	})
	t.Run("notes too long", func(t *testing.T) {
		c := ok
		c.Notes = strings.Repeat("n", 501)
		assert.False(t, ValidContact(c))
	})
	t.Run("birthday is required", func(t *testing.T) {
		c := ok
		c.Birthday = time.Time{}
		assert.False(t, ValidContact(c))
	})
	t.Run("birthday in the future", func(t *testing.T) {
		c := ok
		c.Birthday = time.Now().AddDate(1, 0, 0)
		assert.False(t, ValidContact(c))
	})
	t.Run("birthday before 1900", func(t *testing.T) {
		c := ok
		c.Birthday = date(1850, time.January, 1)
		assert.False(t, ValidContact(c))
	})
}

func TestCacheKeyBirthdays(t *testing.T) {
	id := UserID{}
	key := CacheKeyBirthdays(id, 0, 100, 7)
	assert.Equal(t, "birthdays:00000000-0000-0000-0000-000000000000:0:100:7", key)
}

func TestContactView(t *testing.T) {
	c := Contact{
		ID:       42,
		Name:     "Ivan",
		Surname:  "Petrov",
		Email:    "ivan@example.com",
		Phone:    "+380501234567",
		Birthday: date(1990, time.May, 17),
		Notes:    "друг",
	}
	v := c.View()
	assert.Equal(t, int64(42), v.ID)
	assert.Equal(t, "1990-05-17", v.Birthday)
	assert.Equal(t, c.OwnerID.String(), v.Owner)
}
