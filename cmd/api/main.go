package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/auth"
	"github.com/campuscare/campuscare-api/internal/config"
	"github.com/campuscare/campuscare-api/internal/database"
	"github.com/campuscare/campuscare-api/internal/handler"
	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
	"github.com/campuscare/campuscare-api/internal/router"
	"github.com/campuscare/campuscare-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Book{},
		&models.Event{},
		&models.InfrastructureItem{},
		&models.Notice{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not set, login throttling disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := service.NewLoginThrottle(redisClient, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow, logger)

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	bookRepo := repository.NewBookRepository(db)
	eventRepo := repository.NewEventRepository(db)
	infraRepo := repository.NewInfrastructureRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)

	authService := service.NewAuthService(userRepo, tokens, throttle, validate, cfg.TeacherEmailDomain, logger)
	studentService := service.NewStudentService(studentRepo, validate, logger)
	teacherLeaveService := service.NewTeacherLeaveService(userRepo, logger)
	teacherSalaryService := service.NewTeacherSalaryService(userRepo, logger)
	bookService := service.NewBookService(bookRepo, validate, logger)
	eventService := service.NewEventService(eventRepo, logger)
	infraService := service.NewInfrastructureService(infraRepo, logger)
	noticeService := service.NewNoticeService(noticeRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AllowOrigins: cfg.CORSOrigins})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:           handler.NewAuthHandler(authService, logger),
		StudentHandler:        handler.NewStudentHandler(studentService, logger),
		TeacherHandler:        handler.NewTeacherHandler(teacherLeaveService, teacherSalaryService, logger),
		BookHandler:           handler.NewBookHandler(bookService, logger),
		EventHandler:          handler.NewEventHandler(eventService, logger),
		InfrastructureHandler: handler.NewInfrastructureHandler(infraService, logger),
		NoticeHandler:         handler.NewNoticeHandler(noticeService, logger),
		JWTMiddleware:         middleware.JWTProtected(tokens),
		DB:                    db,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
