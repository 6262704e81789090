package service

import (
	"context"
	"fmt"

	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/repository"
)

// statsService is the concrete implementation of StatsService
type statsService struct {
	repos *repository.Repositories
}

func newStatsService(repos *repository.Repositories) StatsService {
	return &statsService{repos: repos}
}

// Dashboard collects entity counts and the last import run
func (s *statsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	counts := []struct {
		name  string
		count func(context.Context) (int, error)
		dst   *int
	}{
		{"users", s.repos.User.Count, &stats.Users},
		{"models", s.repos.Model.Count, &stats.Models},
		{"venues", s.repos.Venue.Count, &stats.Venues},
		{"events", s.repos.Event.Count, &stats.Events},
		{"sessions", s.repos.Calendar.Count, &stats.Sessions},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	run, err := s.repos.Run.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest import run: %w", err)
	}
	stats.LastImport = run

	return stats, nil
}
