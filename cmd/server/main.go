package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rachtours/tour-reservation/internal/catalog"
	"github.com/rachtours/tour-reservation/internal/config"
	"github.com/rachtours/tour-reservation/internal/database"
	"github.com/rachtours/tour-reservation/internal/handler"
	"github.com/rachtours/tour-reservation/internal/notify"
	"github.com/rachtours/tour-reservation/internal/queue"
	"github.com/rachtours/tour-reservation/internal/repository"
	"github.com/rachtours/tour-reservation/internal/router"
	"github.com/rachtours/tour-reservation/internal/selection"
	queue_publisher "github.com/rachtours/tour-reservation/internal/service"
)

func main() {
	// .env is optional; production sets real environment variables.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(database.Config{
		User: cfg.DBUser, Pass: cfg.DBPass,
		Host: cfg.DBHost, Port: cfg.DBPort, Name: cfg.DBName,
		MaxConns: cfg.DBMaxConns,
	})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb := config.NewRedisClient()

	cat := catalog.Default()

	var selProvider selection.StoreProvider
	if rdb != nil {
		selProvider = &selection.RedisProvider{RDB: rdb, TTL: 30 * 24 * time.Hour}
	} else {
		log.Println("redis unavailable; selection state held in memory only")
		selProvider = selection.NewMemoryProvider()
	}

	resRepo := repository.NewReservationRepo(db)
	tokRepo := repository.NewTokenRepo(db)

	messenger := notify.NewWhatsApp(cfg.WhatsAppToken, cfg.WhatsAppPhoneID)
	sheets := notify.NewSheetsWebhook(cfg.SheetURL, cfg.SheetToken)

	h := router.Handlers{
		Catalog:   handler.NewCatalogHandler(cat),
		Selection: handler.NewSelectionHandler(cat, selProvider),
		Reservation: handler.NewReservationHandler(cfg, cat, resRepo,
			messenger, sheets, queue_publisher.PublishReservationCreated),
		Auth:  handler.NewAuthHandler(cfg, tokRepo),
		Admin: handler.NewAdminHandler(resRepo),
	}

	// Hourly sweep keeps the refresh token table bounded.
	go func() {
		for {
			n, err := tokRepo.PurgeExpired(context.Background())
			if err != nil {
				log.Printf("token purge failed: %v", err)
			} else if n > 0 {
				log.Printf("purged %d expired refresh tokens", n)
			}
			time.Sleep(time.Hour)
		}
	}()

	// Audit log consumer; returns immediately when no broker is set.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, h, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
