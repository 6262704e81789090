package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifedrawing-art/backend/internal/config"
	"github.com/lifedrawing-art/backend/internal/export"
	"github.com/lifedrawing-art/backend/internal/mocks"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/repository"
	"github.com/rs/zerolog"
)

var testLog = zerolog.Nop()

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
	}
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	users := mocks.NewMockUserRepository()
	auth := newAuthService(users, mocks.NewMockModelRepository(), testAuthConfig(), testLog)

	resp, err := auth.Register(context.Background(), &models.RegisterRequest{
		Email:    "First@Example.com",
		Password: "secret-password",
		Fullname: "First User",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !resp.User.IsAdmin {
		t.Error("first user should be admin")
	}
	if resp.User.Email != "first@example.com" {
		t.Errorf("email should be normalized, got %q", resp.User.Email)
	}
	if resp.Token == "" {
		t.Error("a token should be issued on registration")
	}

	profile := users.Profiles[resp.User.ID]
	if profile == nil || profile.Handle != "first-user" {
		t.Errorf("profile should be created with a slug handle, got %+v", profile)
	}

	second, err := auth.Register(context.Background(), &models.RegisterRequest{
		Email:    "second@example.com",
		Password: "secret-password",
		Fullname: "Second User",
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.User.IsAdmin {
		t.Error("later users must not be admin")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := mocks.NewMockUserRepository()
	auth := newAuthService(users, mocks.NewMockModelRepository(), testAuthConfig(), testLog)

	req := &models.RegisterRequest{Email: "dup@example.com", Password: "secret-password", Fullname: "Dup"}
	if _, err := auth.Register(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Register(context.Background(), req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterModel(t *testing.T) {
	users := mocks.NewMockUserRepository()
	modelRepo := mocks.NewMockModelRepository()
	auth := newAuthService(users, modelRepo, testAuthConfig(), testLog)

	resp, err := auth.RegisterModel(context.Background(), &models.ModelRegisterRequest{
		Email:       "Model@Example.com",
		Password:    "secret-password",
		Fullname:    "Maya Model",
		PhoneNumber: "+44 7700 900456",
	})
	if err != nil {
		t.Fatal(err)
	}

	if resp.User.IsAdmin {
		t.Error("model sign-ups must never be admin, even into an empty database")
	}
	if resp.User.Email != "model@example.com" {
		t.Errorf("email should be normalized, got %q", resp.User.Email)
	}
	if resp.Token == "" {
		t.Error("a token should be issued on registration")
	}

	profile := users.Profiles[resp.User.ID]
	if profile == nil || profile.Handle != "maya-model" || profile.PhoneNumber != "+44 7700 900456" {
		t.Errorf("profile = %+v", profile)
	}

	model := modelRepo.Models[1]
	if model == nil {
		t.Fatal("a model profile should be created")
	}
	if model.UserID != resp.User.ID {
		t.Errorf("model.UserID = %d, want %d", model.UserID, resp.User.ID)
	}
	if model.DisplayName != "Maya Model" {
		t.Errorf("display name should default to the fullname, got %q", model.DisplayName)
	}
	if model.Sex != "unspecified" {
		t.Errorf("sex should default to unspecified, got %q", model.Sex)
	}
}

func TestRegisterModelDuplicateEmail(t *testing.T) {
	users := mocks.NewMockUserRepository()
	modelRepo := mocks.NewMockModelRepository()
	auth := newAuthService(users, modelRepo, testAuthConfig(), testLog)

	req := &models.ModelRegisterRequest{Email: "dup@example.com", Password: "secret-password", Fullname: "Dup"}
	if _, err := auth.RegisterModel(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.RegisterModel(context.Background(), req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
	if len(modelRepo.Models) != 1 {
		t.Errorf("model profiles = %d, want 1", len(modelRepo.Models))
	}
}

func TestLoginVerifiesSeededDigest(t *testing.T) {
	users := mocks.NewMockUserRepository()
	// a user as the import seeds it: digest of lowercased email and the
	// shared default password
	users.Create(context.Background(), &models.User{
		Email:          "jane@test.com",
		PasswordHash:   export.HashPassword("jane@test.com", ""),
		IsGlobalActive: true,
	})

	auth := newAuthService(users, mocks.NewMockModelRepository(), testAuthConfig(), testLog)

	resp, err := auth.Login(context.Background(), &models.LoginRequest{
		Email:    "  Jane@Test.COM ",
		Password: export.DefaultPassword,
	})
	if err != nil {
		t.Fatalf("seeded account should log in with the default password: %v", err)
	}
	if resp.User.Email != "jane@test.com" {
		t.Errorf("user = %+v", resp.User)
	}
}

func TestLoginFailures(t *testing.T) {
	users := mocks.NewMockUserRepository()
	users.Create(context.Background(), &models.User{
		Email:          "jane@test.com",
		PasswordHash:   export.HashPassword("jane@test.com", "right-password"),
		IsGlobalActive: true,
	})
	users.Create(context.Background(), &models.User{
		Email:          "inactive@test.com",
		PasswordHash:   export.HashPassword("inactive@test.com", "right-password"),
		IsGlobalActive: false,
	})

	auth := newAuthService(users, mocks.NewMockModelRepository(), testAuthConfig(), testLog)

	tests := []struct {
		name  string
		email string
		pass  string
		want  error
	}{
		{"wrong password", "jane@test.com", "wrong", ErrInvalidCredentials},
		{"unknown email", "nobody@test.com", "right-password", ErrInvalidCredentials},
		{"deactivated account", "inactive@test.com", "right-password", ErrAccountInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(context.Background(), &models.LoginRequest{Email: tt.email, Password: tt.pass})
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	users := mocks.NewMockUserRepository()
	auth := newAuthService(users, mocks.NewMockModelRepository(), testAuthConfig(), testLog)

	resp, err := auth.Register(context.Background(), &models.RegisterRequest{
		Email:    "claims@example.com",
		Password: "secret-password",
		Fullname: "Claims User",
	})
	if err != nil {
		t.Fatal(err)
	}

	claims, err := auth.VerifyToken(resp.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != resp.User.ID || claims.Email != "claims@example.com" {
		t.Errorf("claims = %+v", claims)
	}
	if !claims.IsAdmin {
		t.Error("admin flag should be carried in claims")
	}

	if _, err := auth.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	users := mocks.NewMockUserRepository()
	auth := newAuthService(users, mocks.NewMockModelRepository(), testAuthConfig(), testLog)

	resp, err := auth.Register(context.Background(), &models.RegisterRequest{
		Email:    "other@example.com",
		Password: "secret-password",
		Fullname: "Other",
	})
	if err != nil {
		t.Fatal(err)
	}

	otherCfg := testAuthConfig()
	otherCfg.Auth.JWTSecret = "different-secret"
	other := newAuthService(users, mocks.NewMockModelRepository(), otherCfg, testLog)

	if _, err := other.VerifyToken(resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("cross-secret token err = %v, want ErrInvalidToken", err)
	}
}

func seedRepos() (*repository.Repositories, *mocks.MockSeeder, *mocks.MockRunRepository, *mocks.MockRateRepository) {
	seeder := mocks.NewMockSeeder()
	runs := mocks.NewMockRunRepository()
	rates := mocks.NewMockRateRepository()
	repos := &repository.Repositories{
		User:     mocks.NewMockUserRepository(),
		Venue:    mocks.NewMockVenueRepository(),
		Model:    mocks.NewMockModelRepository(),
		Event:    mocks.NewMockEventRepository(),
		Calendar: mocks.NewMockCalendarRepository(),
		Rate:     rates,
		Run:      runs,
		Seed:     seeder,
	}
	return repos, seeder, runs, rates
}

func seedTables() *export.Tables {
	return &export.Tables{
		Users: []export.UserRow{
			{Email: "host@venue.com", PasswordHash: "digest-a", IsGlobalActive: true},
			{Email: "jane@test.com", PasswordHash: "digest-b", IsGlobalActive: true},
		},
		UserProfiles: []export.UserProfileRow{
			{Rel: export.Rel{Email: "host@venue.com"}, Handle: "host", Fullname: "Host"},
			{Rel: export.Rel{Email: "jane@test.com"}, Handle: "jane-doe", Fullname: "Jane Doe"},
			{Rel: export.Rel{Email: "ghost@test.com"}, Handle: "ghost", Fullname: "Ghost"},
		},
		Venues: []export.VenueRow{
			{Rel: export.Rel{Email: "host@venue.com"}, Name: "Crypt Gallery", TZ: "Europe/London"},
		},
		Models: []export.ModelRow{
			{Rel: export.Rel{Email: "jane@test.com"}, DisplayName: "Jane Doe", Sex: "female"},
		},
		Hosts: []export.HostRow{
			{Rel: export.HostRel{Email: "host@venue.com", Key: "host"}, Name: "Host",
				DefaultDateTime: "1970-01-06T19:00:00.000Z"},
		},
		Events: []export.EventRow{
			{Rel: export.EventRel{Email: "host@venue.com", Key: strPtr("Crypt Gallery")}, Name: "Drink and Draw"},
		},
		Calendar: []export.CalendarRow{
			{Rel: export.CalendarRel{Email: "jane@test.com", N: 0}, EventID: 1,
				Status: "confirmed", DateTime: "2024-03-05T19:00:00.000Z", Duration: 2},
		},
		ExchangeRates: []export.ExchangeRate{
			{CurrencyCode: "GBP", RateToUSD: 1.27, UpdatedAt: "2024-03-05T12:00:00Z"},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestSeedReset(t *testing.T) {
	repos, seeder, runs, rates := seedRepos()
	svc := newSeedService(repos, testLog)

	run, err := svc.Reset(context.Background(), seedTables(), "parsed-database.json")
	if err != nil {
		t.Fatal(err)
	}

	if !seeder.Truncated {
		t.Error("reset must truncate before loading")
	}
	if run.Status != models.RunStatusCompleted {
		t.Errorf("run status = %q", run.Status)
	}
	if len(runs.Runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(runs.Runs))
	}

	if len(seeder.Users) != 2 {
		t.Errorf("users loaded = %d", len(seeder.Users))
	}
	// the ghost profile has no user and is skipped
	if len(seeder.Profiles) != 2 {
		t.Errorf("profiles loaded = %d, want 2", len(seeder.Profiles))
	}

	if len(seeder.Hosts) != 1 {
		t.Fatalf("hosts loaded = %d", len(seeder.Hosts))
	}
	host := seeder.Hosts[0]
	if host.UserID == nil || host.DefaultDateTime == nil {
		t.Errorf("host join or schedule not resolved: %+v", host)
	}

	if len(seeder.Events) != 1 {
		t.Fatalf("events loaded = %d", len(seeder.Events))
	}
	event := seeder.Events[0]
	if event.HostUserID == nil || event.VenueID == nil {
		t.Errorf("event joins not resolved: %+v", event)
	}

	if len(seeder.Sessions) != 1 {
		t.Fatalf("sessions loaded = %d", len(seeder.Sessions))
	}
	session := seeder.Sessions[0]
	if session.ModelUserID == nil {
		t.Error("session model join not resolved")
	}
	if session.EventID != 1 {
		t.Errorf("session event id = %d", session.EventID)
	}
	if !session.DateTime.Equal(time.Date(2024, 3, 5, 19, 0, 0, 0, time.UTC)) {
		t.Errorf("session date = %v", session.DateTime)
	}

	if len(rates.Rates) != 1 || rates.Rates[0].CurrencyCode != "GBP" {
		t.Errorf("rates not loaded: %+v", rates.Rates)
	}
}

func TestSeedResetSkipsUnanchoredSessions(t *testing.T) {
	repos, seeder, _, _ := seedRepos()
	svc := newSeedService(repos, testLog)

	tables := seedTables()
	tables.Calendar = append(tables.Calendar, export.CalendarRow{
		Rel: export.CalendarRel{Email: "jane@test.com", N: 1}, EventID: 0,
		Status: "confirmed", DateTime: "2024-03-12T19:00:00.000Z", Duration: 2,
	})

	if _, err := svc.Reset(context.Background(), tables, "x.json"); err != nil {
		t.Fatal(err)
	}
	if len(seeder.Sessions) != 1 {
		t.Errorf("unanchored sessions must be skipped, loaded %d", len(seeder.Sessions))
	}
}

func TestSeedResetRecordsFailure(t *testing.T) {
	repos, seeder, runs, _ := seedRepos()
	seeder.Err = errors.New("copy failed")
	svc := newSeedService(repos, testLog)

	run, err := svc.Reset(context.Background(), seedTables(), "x.json")
	if err == nil {
		t.Fatal("load failure must propagate")
	}
	if run.Status != models.RunStatusFailed || run.Error == "" {
		t.Errorf("run should record the failure: %+v", run)
	}
	if len(runs.Runs) != 1 {
		t.Errorf("failed run should still be recorded")
	}
}

func TestDashboardStats(t *testing.T) {
	repos, _, runs, _ := seedRepos()
	repos.User.Create(context.Background(), &models.User{Email: "a@b.c"})
	repos.Venue.Create(context.Background(), &models.Venue{Name: "V"})
	runs.Create(context.Background(), &models.ImportRun{ID: "run-1", Status: models.RunStatusCompleted})

	svc := newStatsService(repos)
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Users != 1 || stats.Venues != 1 {
		t.Errorf("counts wrong: %+v", stats)
	}
	if stats.LastImport == nil || stats.LastImport.ID != "run-1" {
		t.Errorf("last import missing: %+v", stats.LastImport)
	}
}
