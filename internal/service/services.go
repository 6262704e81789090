package service

import (
	"context"

	"github.com/lifedrawing-art/backend/internal/config"
	"github.com/lifedrawing-art/backend/internal/export"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	RegisterModel(ctx context.Context, req *models.ModelRegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	VerifyToken(token string) (*TokenClaims, error)
}

// SeedService defines the interface for the destructive reset-and-import
type SeedService interface {
	Reset(ctx context.Context, tables *export.Tables, sourcePath string) (*models.ImportRun, error)
}

// StatsService defines the interface for dashboard aggregates
type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

// Services holds all service interfaces
type Services struct {
	Auth  AuthService
	Seed  SeedService
	Stats StatsService

	Repos *repository.Repositories
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:  newAuthService(repos.User, repos.Model, cfg, log),
		Seed:  newSeedService(repos, log),
		Stats: newStatsService(repos),
		Repos: repos,
	}
}
