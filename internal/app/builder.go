package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/olexandrd/contacts-api/internal/auth/blacklist"
	"github.com/olexandrd/contacts-api/internal/auth/password"
	"github.com/olexandrd/contacts-api/internal/auth/token"
	"github.com/olexandrd/contacts-api/internal/birthday"
	"github.com/olexandrd/contacts-api/internal/config"
	"github.com/olexandrd/contacts-api/internal/domain"
	redisx "github.com/olexandrd/contacts-api/internal/infra/cache/redis"
	"github.com/olexandrd/contacts-api/internal/infra/database/postgres"
	s3storage "github.com/olexandrd/contacts-api/internal/infra/storage/s3"
	"github.com/olexandrd/contacts-api/internal/transport/web"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	cache  domain.Cache
	repo   *postgres.PGRepo
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	s3Log := log.New(base.Writer(), base.Prefix()+"[s3] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())
	birthdayLog := log.New(base.Writer(), base.Prefix()+"[birthdays] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Println("init S3 storage")
	s3, err := s3storage.New(s3storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		PathStyle: cfg.S3PathStyle,
	}, s3Log)
	if err != nil {
		return nil, fmt.Errorf("failed init s3: %w", err)
	}

	base.Println("init Redis")
	rc := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := rc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	// Auth primitives
	hasher := password.NewDefault()
	tm := token.New(cfg.AuthJWTSecret, cfg.AuthIssuer, cfg.AuthTokenTTL)
	bl := blacklist.NewStore(rc)

	// Сервис ближайших дней рождения поверх БД + Redis
	birthdays := birthday.New(pgRepo, rc, birthdayLog, cfg.BirthdaysTTL)

	base.Println("init Server")
	deps := web.Deps{
		Repos:     web.Repos{Users: pgRepo, Contacts: pgRepo},
		Auth:      web.AuthDeps{Hasher: hasher, Tokens: tm, Blacklist: bl},
		Storage:   s3,
		Birthdays: birthdays,
	}
	server := web.New(serverLog, cfg, deps, pgRepo, rc, s3)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		cache:  rc,
		repo:   pgRepo,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.repo.Close()
	a.cache.Close()

	return nil
}
