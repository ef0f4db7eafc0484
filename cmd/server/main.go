package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/obakeng/academy-meals/internal/config"
	"github.com/obakeng/academy-meals/internal/database"
	"github.com/obakeng/academy-meals/internal/handler"
	"github.com/obakeng/academy-meals/internal/middleware"
	"github.com/obakeng/academy-meals/internal/queue"
	"github.com/obakeng/academy-meals/internal/repository"
	"github.com/obakeng/academy-meals/internal/router"
	"github.com/obakeng/academy-meals/internal/service"
)

func main() {
	// A .env file is optional; real deployments set the environment.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBType, cfg.DBPath, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)
	menus := repository.NewMenuRepo(db)
	cards := repository.NewCardRepo(db)
	reminders := repository.NewReminderRepo(db)

	// Booking confirmations flow through the broker and come back as
	// reminder rows.
	publisher := service.NewEventPublisher()
	go func() {
		if err := queue.StartBookingConsumer(reminders); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	auth := handler.NewAuthHandler(cfg, users, bookings)
	student := handler.NewStudentHandler(bookings, menus, reminders, publisher)
	manager := handler.NewManagerHandler(bookings, menus)
	accommodation := handler.NewAccommodationHandler(users, cards)

	loginLimiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient())

	e := echo.New()
	router.Register(e, auth, student, manager, accommodation, cfg.JWTSecret, loginLimiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBType)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
