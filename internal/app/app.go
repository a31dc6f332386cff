package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/profiles/internal/config"
	"github.com/templui/profiles/internal/db"
	"github.com/templui/profiles/internal/repository"
	"github.com/templui/profiles/internal/service"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AuthService    *service.AuthService
	UserService    *service.UserService
	ProfileService *service.ProfileService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database and run migrations
	database, err := db.Open(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewWithDB(cfg, database), nil
}

// NewWithDB wires repositories and services onto an open database.
func NewWithDB(cfg *config.Config, database *sqlx.DB) *App {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
		cfg.AdminEmail,
	)
	userService := service.NewUserService(userRepository)
	profileService := service.NewProfileService(profileRepository, userRepository, cfg.ProfilePageSize)

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		UserService:    userService,
		ProfileService: profileService,
	}
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
