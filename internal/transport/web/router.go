package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/olexandrd/contacts-api/internal/docs"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/auth"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/birthday"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/contact"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/health"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/user"
)

type handlers struct {
	health    *health.Handler
	register  *auth.HandlerRegister
	login     *auth.HandlerLogin
	logout    *auth.HandlerLogout
	users     *user.Handler
	contacts  *contact.Handler
	birthdays *birthday.Handler
}

func newRouter(h handlers, authDeps mw.AuthDeps, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	requireAuth := func(hf http.HandlerFunc) http.Handler {
		return mw.RequireAuth(authDeps, hf)
	}

	// health
	mux.HandleFunc("GET /v1/healthz", h.health.Liveness)
	mux.HandleFunc("GET /v1/readyz", h.health.Readiness)

	// auth
	mux.HandleFunc("POST /api/v1/auth/register", h.register.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.login.Login)
	mux.HandleFunc("DELETE /api/v1/auth/logout", h.logout.Logout)

	// users
	mux.Handle("GET /api/v1/users/me", requireAuth(h.users.Me))
	mux.Handle("PATCH /api/v1/users/avatar", requireAuth(limitBody(8<<20, h.users.UpdateAvatar)))

	// contacts
	mux.Handle("GET /api/v1/contacts", requireAuth(h.contacts.List))
	mux.Handle("POST /api/v1/contacts", requireAuth(h.contacts.Create))
	mux.Handle("GET /api/v1/contacts/{id}", requireAuth(h.contacts.GetOne))
	mux.Handle("PUT /api/v1/contacts/{id}", requireAuth(h.contacts.Update))
	mux.Handle("DELETE /api/v1/contacts/{id}", requireAuth(h.contacts.Delete))

	// birthdays
	mux.Handle("GET /api/v1/birthdays/nearest", requireAuth(h.birthdays.Nearest))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
