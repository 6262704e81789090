package repository

import (
	"context"

	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
	ListProfiles(ctx context.Context) ([]*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
}

// VenueRepository defines the interface for venue data operations
type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int64) (*models.Venue, error)
	GetByName(ctx context.Context, name string) (*models.Venue, error)
	List(ctx context.Context) ([]*models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// ModelRepository defines the interface for model profile data operations
type ModelRepository interface {
	Create(ctx context.Context, model *models.ModelProfile) error
	GetByID(ctx context.Context, id int64) (*models.ModelProfile, error)
	List(ctx context.Context) ([]*models.ModelProfile, error)
	Update(ctx context.Context, model *models.ModelProfile) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// HostRepository defines the read surface over imported host metadata
type HostRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Host, error)
	List(ctx context.Context) ([]*models.Host, error)
	Count(ctx context.Context) (int, error)
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// CalendarRepository defines the interface for calendar session operations
type CalendarRepository interface {
	Create(ctx context.Context, session *models.CalendarSession) error
	GetByID(ctx context.Context, id int64) (*models.CalendarSession, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*models.CalendarSession, error)
	List(ctx context.Context) ([]*models.CalendarSession, error)
	Update(ctx context.Context, session *models.CalendarSession) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// RateRepository defines the interface for exchange rate operations
type RateRepository interface {
	List(ctx context.Context) ([]*models.ExchangeRate, error)
	ReplaceAll(ctx context.Context, rates []*models.ExchangeRate) (int, error)
}

// RunRepository defines the interface for import run bookkeeping
type RunRepository interface {
	Create(ctx context.Context, run *models.ImportRun) error
	Update(ctx context.Context, run *models.ImportRun) error
	GetLatest(ctx context.Context) (*models.ImportRun, error)
}

// Seeder defines the destructive bulk-load operations used by the reset
// driver. Loads are non-transactional across tables.
type Seeder interface {
	TruncateAll(ctx context.Context) error
	LoadUsers(ctx context.Context, users []*models.User) (map[string]int64, error)
	LoadProfiles(ctx context.Context, profiles []*models.UserProfile) (int, error)
	LoadVenues(ctx context.Context, venues []*models.Venue) (map[string]int64, error)
	LoadModels(ctx context.Context, profiles []*models.ModelProfile) (int, error)
	LoadHosts(ctx context.Context, hosts []*models.Host) (int, error)
	LoadEvents(ctx context.Context, events []*models.Event) (int, error)
	LoadSessions(ctx context.Context, sessions []*models.CalendarSession) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Venue    VenueRepository
	Model    ModelRepository
	Host     HostRepository
	Event    EventRepository
	Calendar CalendarRepository
	Rate     RateRepository
	Run      RunRepository
	Seed     Seeder
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepo(db),
		Venue:    NewVenueRepo(db),
		Model:    NewModelRepo(db),
		Host:     NewHostRepo(db),
		Event:    NewEventRepo(db),
		Calendar: NewCalendarRepo(db),
		Rate:     NewRateRepo(db),
		Run:      NewRunRepo(db),
		Seed:     NewSeedRepo(db),
	}
}
