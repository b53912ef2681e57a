package domain

import (
	"regexp"
	"time"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,50}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Телефон в духе E.164: плюс (опционально) и 7..15 цифр
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

func ValidUsername(s string) bool { return usernameRe.MatchString(s) }

func ValidEmail(s string) bool { return len(s) <= 50 && emailRe.MatchString(s) }

func ValidPhone(s string) bool { return phoneRe.MatchString(s) }

// Пароль: мин 8, буквы в обоих регистрах, хотя бы одна цифра
func ValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	return upperRe.MatchString(s) && lowerRe.MatchString(s) && digitRe.MatchString(s)
}

// ValidContact проверяет обязательные поля и длины по схеме
func ValidContact(c Contact) bool {
	if c.Name == "" || len(c.Name) > 50 || c.Surname == "" || len(c.Surname) > 50 {
		return false
	}
	if c.Email != "" && !ValidEmail(c.Email) {
		return false
	}
	if c.Phone != "" && !ValidPhone(c.Phone) {
		return false
	}
	if len(c.Notes) > 500 {
		return false
	}
	return !c.Birthday.IsZero() && c.Birthday.Year() >= 1900 && c.Birthday.Before(time.Now().AddDate(0, 0, 1))
}
