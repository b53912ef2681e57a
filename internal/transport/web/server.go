package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/olexandrd/contacts-api/internal/config"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/auth"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/birthday"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/contact"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/health"
	"github.com/olexandrd/contacts-api/internal/transport/web/v1/user"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

// dbPinger сужает UsersRepo до Ping для health-хендлера
type dbPinger interface {
	Ping(context.Context) error
}

func New(logger *log.Logger, cfg *config.Config, deps Deps, db dbPinger, cachePing dbPinger, storagePing dbPinger) *Server {
	sub := func(name string) *log.Logger {
		return log.New(logger.Writer(), logger.Prefix()+"["+name+"] ", logger.Flags())
	}

	authMW := mw.AuthDeps{Tokens: deps.Auth.Tokens, Blacklist: deps.Auth.Blacklist}

	healthHandler := &health.Handler{Log: sub("health"), DB: db, Cache: cachePing, Storage: storagePing}
	registerHandler := &auth.HandlerRegister{Log: sub("auth"), Users: deps.Repos.Users, Hasher: deps.Auth.Hasher}
	loginHandler := &auth.HandlerLogin{Log: sub("auth"), Users: deps.Repos.Users, Hasher: deps.Auth.Hasher, Tokens: deps.Auth.Tokens}
	logoutHandler := &auth.HandlerLogout{Log: sub("auth"), Auth: authMW, Blacklist: deps.Auth.Blacklist}
	userHandler := &user.Handler{Log: sub("users"), Users: deps.Repos.Users, Storage: deps.Storage}
	contactHandler := &contact.Handler{Log: sub("contacts"), Contacts: deps.Repos.Contacts}
	birthdayHandler := &birthday.Handler{Log: sub("birthdays"), Service: deps.Birthdays}

	h := handlers{
		health:    healthHandler,
		register:  registerHandler,
		login:     loginHandler,
		logout:    logoutHandler,
		users:     userHandler,
		contacts:  contactHandler,
		birthdays: birthdayHandler,
	}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(h, authMW, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
