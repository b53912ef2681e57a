package mw

import (
	"context"
	"net/http"
	"strings"

	"github.com/olexandrd/contacts-api/internal/domain"
)

const userKey ctxKey = "auth_user"

type AuthDeps struct {
	Tokens    domain.TokenManager
	Blacklist domain.TokenBlacklist
}

// RequireAuth пропускает дальше только запросы с валидным неотозванным Bearer-токеном
func RequireAuth(deps AuthDeps, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			writeUnauth(w)
			return
		}
		claims, err := deps.Tokens.Parse(r.Context(), raw)
		if err != nil {
			writeUnauth(w)
			return
		}
		if revoked, _ := deps.Blacklist.IsRevoked(r.Context(), claims.JTI); revoked {
			writeUnauth(w)
			return
		}
		u := domain.User{ID: claims.UserID, Username: claims.Username}
		ctx := context.WithValue(r.Context(), userKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromCtx(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok
}

// ClaimsFromRequest парсит Bearer-токен без проверки блэклиста (нужно для logout)
func ClaimsFromRequest(deps AuthDeps, r *http.Request) (domain.TokenClaims, error) {
	raw := extractBearer(r.Header.Get("Authorization"))
	if raw == "" {
		return domain.TokenClaims{}, domain.ErrUnauth
	}
	return deps.Tokens.Parse(r.Context(), raw)
}

func writeUnauth(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	http.Error(w, `{"error":{"code":401,"text":"unauthorized"}}`, http.StatusUnauthorized)
}

func extractBearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
