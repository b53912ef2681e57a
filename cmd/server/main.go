package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/olexandrd/contacts-api/internal/app"
)

// @title           Contacts API
// @version         1.0
// @description     Бэкенд книги контактов: аутентификация, CRUD контактов и ближайшие дни рождения.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
