package domain

import (
	"context"
	"fmt"
)

// Ключи кэша — единое место, чтобы не расползались по коду.
// Ключ дней рождения включает все параметры, влияющие на результат.
func CacheKeyBirthdays(user UserID, skip, limit, dayGap int) string {
	return fmt.Sprintf("birthdays:%s:%d:%d:%d", user.String(), skip, limit, dayGap)
}
func CacheKeyTokenJTI(jti string) string { return "jti:" + jti }

// Простой k/v интерфейс. Реализация — Redis.
// Get возвращает nil без ошибки, если ключа нет.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	SetNX(ctx context.Context, key string, val []byte, ttlSeconds int) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	Ping(context.Context) error
	Close()
}
