package main

import (
	"log"
	"net/http"

	_ "citamed/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"citamed/internal/auth"
	"citamed/internal/cache"
	"citamed/internal/config"
	"citamed/internal/db"
	"citamed/internal/handler"
	"citamed/internal/model"
	"citamed/internal/repository"
	"citamed/internal/router"
	"citamed/internal/service"
)

// @title Sistema Médico API
// @version 1.0
// @description Clinic appointment API: login, specialty/doctor catalog and appointment booking.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Keep the externally-owned schema in sync with the models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Specialty{},
		&model.Doctor{},
		&model.Patient{},
		&model.Administrator{},
		&model.Appointment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	specialtyRepo := repository.NewSpecialtyRepository(gormDB)
	doctorRepo := repository.NewDoctorRepository(gormDB)
	patientRepo := repository.NewPatientRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, patientRepo, doctorRepo, jwtService)
	catalogService := service.NewCatalogService(specialtyRepo, doctorRepo, cacheClient)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// Register routes
	router.Register(e, cfg, authHandler, catalogHandler, appointmentHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
