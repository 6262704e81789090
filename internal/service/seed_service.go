package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifedrawing-art/backend/internal/export"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/repository"
	"github.com/rs/zerolog"
)

// seedService is the concrete implementation of SeedService
type seedService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newSeedService(repos *repository.Repositories, log zerolog.Logger) SeedService {
	return &seedService{
		repos: repos,
		log:   log.With().Str("component", "seed").Logger(),
	}
}

// Legacy date strings come in several shapes; unparseable values load as
// null rather than failing the row.
var seedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2 Jan 2006",
	"02/01/2006",
}

// Reset truncates the destination tables and bulk-loads the parsed tables
// document. The load is not transactional across tables; a partial failure
// leaves partial state, recorded on the run row.
func (s *seedService) Reset(ctx context.Context, tables *export.Tables, sourcePath string) (*models.ImportRun, error) {
	run := &models.ImportRun{
		ID:         uuid.New().String(),
		Status:     models.RunStatusRunning,
		SourcePath: sourcePath,
		TotalRows: len(tables.Users) + len(tables.UserProfiles) + len(tables.Venues) +
			len(tables.Models) + len(tables.Hosts) + len(tables.Events) +
			len(tables.Calendar) + len(tables.ExchangeRates),
		StartedAt: time.Now(),
	}
	if err := s.repos.Run.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("record import run: %w", err)
	}

	loaded, err := s.load(ctx, tables)
	run.LoadedRows = loaded
	now := time.Now()
	run.CompletedAt = &now

	if err != nil {
		run.Status = models.RunStatusFailed
		run.Error = err.Error()
		if uerr := s.repos.Run.Update(ctx, run); uerr != nil {
			s.log.Error().Err(uerr).Msg("Could not record failed run")
		}
		return run, err
	}

	run.Status = models.RunStatusCompleted
	if err := s.repos.Run.Update(ctx, run); err != nil {
		return run, fmt.Errorf("record completed run: %w", err)
	}

	s.log.Info().Str("run_id", run.ID).Int("rows", loaded).Msg("Import run complete")
	return run, nil
}

func (s *seedService) load(ctx context.Context, tables *export.Tables) (int, error) {
	loaded := 0

	s.log.Warn().Msg("Truncating destination tables")
	if err := s.repos.Seed.TruncateAll(ctx); err != nil {
		return loaded, fmt.Errorf("truncate: %w", err)
	}

	users := make([]*models.User, 0, len(tables.Users))
	for _, row := range tables.Users {
		users = append(users, &models.User{
			Email:          row.Email,
			PasswordHash:   row.PasswordHash,
			IsGlobalActive: row.IsGlobalActive,
			IsAdmin:        row.IsAdmin,
			DateCreated:    parseSeedDate(row.DateCreated),
		})
	}
	userIDs, err := s.repos.Seed.LoadUsers(ctx, users)
	if err != nil {
		return loaded, fmt.Errorf("load users: %w", err)
	}
	loaded += len(userIDs)
	s.log.Info().Int("rows", len(userIDs)).Msg("Loaded users")

	profiles := make([]*models.UserProfile, 0, len(tables.UserProfiles))
	for _, row := range tables.UserProfiles {
		userID, ok := userIDs[row.Rel.Email]
		if !ok {
			s.log.Warn().Str("email", row.Rel.Email).Msg("Profile has no user, skipping")
			continue
		}
		profiles = append(profiles, &models.UserProfile{
			UserID:      userID,
			Handle:      row.Handle,
			Fullname:    row.Fullname,
			PhoneNumber: row.PhoneNumber,
			AvatarURL:   row.AvatarURL,
		})
	}
	n, err := s.repos.Seed.LoadProfiles(ctx, profiles)
	if err != nil {
		return loaded, fmt.Errorf("load profiles: %w", err)
	}
	loaded += n

	venues := make([]*models.Venue, 0, len(tables.Venues))
	for _, row := range tables.Venues {
		venue := &models.Venue{
			Name:            row.Name,
			AddressLine1:    row.AddressLine1,
			AddressLine2:    row.AddressLine2,
			AddressCity:     row.AddressCity,
			AddressCounty:   row.AddressCounty,
			AddressPostcode: row.AddressPostcode,
			AddressArea:     row.AddressArea,
			TZ:              row.TZ,
			Latitude:        row.Latitude,
			Longitude:       row.Longitude,
			DateCreated:     parseSeedDate(row.DateCreated),
		}
		if id, ok := userIDs[row.Rel.Email]; ok {
			venue.UserID = &id
		}
		venues = append(venues, venue)
	}
	venueIDs, err := s.repos.Seed.LoadVenues(ctx, venues)
	if err != nil {
		return loaded, fmt.Errorf("load venues: %w", err)
	}
	loaded += len(venueIDs)
	s.log.Info().Int("rows", len(venueIDs)).Msg("Loaded venues")

	modelProfiles := make([]*models.ModelProfile, 0, len(tables.Models))
	for _, row := range tables.Models {
		userID, ok := userIDs[row.Rel.Email]
		if !ok {
			s.log.Warn().Str("email", row.Rel.Email).Msg("Model has no user, skipping")
			continue
		}
		modelProfiles = append(modelProfiles, &models.ModelProfile{
			UserID:        userID,
			DisplayName:   row.DisplayName,
			WebsiteURLs:   row.WebsiteURLs,
			SocialHandles: row.SocialHandles,
			PortraitURLs:  row.PortraitURLs,
			Sex:           row.Sex,
			DateCreated:   parseSeedDate(row.DateCreated),
		})
	}
	n, err = s.repos.Seed.LoadModels(ctx, modelProfiles)
	if err != nil {
		return loaded, fmt.Errorf("load models: %w", err)
	}
	loaded += n

	hosts := make([]*models.Host, 0, len(tables.Hosts))
	for _, row := range tables.Hosts {
		host := &models.Host{
			Name:            row.Name,
			Description:     row.Description,
			Summary:         row.Summary,
			SocialHandles:   row.SocialHandles,
			HostTags:        row.HostTags,
			DefaultDateTime: parseSeedDate(row.DefaultDateTime),
			DefaultDuration: row.DefaultDuration,
			DateCreated:     parseSeedDate(row.DateCreated),
		}
		if id, ok := userIDs[row.Rel.Email]; ok {
			host.UserID = &id
		}
		hosts = append(hosts, host)
	}
	n, err = s.repos.Seed.LoadHosts(ctx, hosts)
	if err != nil {
		return loaded, fmt.Errorf("load hosts: %w", err)
	}
	loaded += n

	events := make([]*models.Event, 0, len(tables.Events))
	for _, row := range tables.Events {
		event := &models.Event{
			Name:         row.Name,
			Description:  row.Description,
			Frequency:    row.Frequency,
			WeekDay:      row.WeekDay,
			Images:       row.Images,
			PricingTable: row.PricingTable,
			PricingText:  row.PricingText,
			PricingTags:  row.PricingTags,
			PoseFormat:   row.PoseFormat,
		}
		if id, ok := userIDs[row.Rel.Email]; ok {
			event.HostUserID = &id
		}
		if row.Rel.Key != nil {
			if id, ok := venueIDs[*row.Rel.Key]; ok {
				event.VenueID = &id
			} else {
				s.log.Warn().Str("venue", *row.Rel.Key).Msg("Event venue not loaded, leaving unattached")
			}
		}
		events = append(events, event)
	}
	n, err = s.repos.Seed.LoadEvents(ctx, events)
	if err != nil {
		return loaded, fmt.Errorf("load events: %w", err)
	}
	loaded += n
	s.log.Info().Int("rows", n).Msg("Loaded events")

	sessions := make([]*models.CalendarSession, 0, len(tables.Calendar))
	for _, row := range tables.Calendar {
		if row.EventID == 0 {
			s.log.Warn().Int("row", row.Rel.N).Msg("Session has no anchor event, skipping")
			continue
		}
		dateTime := parseSeedDate(row.DateTime)
		if dateTime == nil {
			s.log.Warn().Int("row", row.Rel.N).Str("value", row.DateTime).Msg("Session date unparseable, skipping")
			continue
		}
		session := &models.CalendarSession{
			EventID:            int64(row.EventID),
			Status:             models.SessionStatus(row.Status),
			AttendanceInPerson: row.AttendanceInPerson,
			AttendanceOnline:   row.AttendanceOnline,
			DateTime:           *dateTime,
			Duration:           row.Duration,
			PoseFormat:         row.PoseFormat,
		}
		if id, ok := userIDs[row.Rel.Email]; ok {
			session.ModelUserID = &id
		}
		sessions = append(sessions, session)
	}
	n, err = s.repos.Seed.LoadSessions(ctx, sessions)
	if err != nil {
		return loaded, fmt.Errorf("load sessions: %w", err)
	}
	loaded += n
	s.log.Info().Int("rows", n).Msg("Loaded calendar sessions")

	rates := make([]*models.ExchangeRate, 0, len(tables.ExchangeRates))
	for _, row := range tables.ExchangeRates {
		updatedAt := time.Now()
		if parsed := parseSeedDate(row.UpdatedAt); parsed != nil {
			updatedAt = *parsed
		}
		rates = append(rates, &models.ExchangeRate{
			CurrencyCode: row.CurrencyCode,
			RateToUSD:    row.RateToUSD,
			UpdatedAt:    updatedAt,
		})
	}
	n, err = s.repos.Rate.ReplaceAll(ctx, rates)
	if err != nil {
		return loaded, fmt.Errorf("load exchange rates: %w", err)
	}
	loaded += n

	return loaded, nil
}

func parseSeedDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range seedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
