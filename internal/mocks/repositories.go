package mocks

import (
	"context"
	"sort"

	"github.com/lifedrawing-art/backend/internal/models"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users    map[int64]*models.User
	Profiles map[int64]*models.UserProfile
	NextID   int64
	Err      error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:    make(map[int64]*models.User),
		Profiles: make(map[int64]*models.UserProfile),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	m.NextID++
	user.ID = m.NextID
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return m.Users[id], m.Err
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	u, err := m.GetByEmail(ctx, email)
	return u != nil, err
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(m.Users))
	for id := range m.Users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, m.Users[id])
	}
	return users, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Users, id)
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), m.Err
}

func (m *MockUserRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	if m.Err != nil {
		return m.Err
	}
	profile.ID = int64(len(m.Profiles) + 1)
	m.Profiles[profile.UserID] = profile
	return nil
}

func (m *MockUserRepository) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return m.Profiles[userID], m.Err
}

func (m *MockUserRepository) ListProfiles(ctx context.Context) ([]*models.UserProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(m.Profiles))
	for id := range m.Profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	profiles := make([]*models.UserProfile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, m.Profiles[id])
	}
	return profiles, nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	if m.Err != nil {
		return m.Err
	}
	m.Profiles[profile.UserID] = profile
	return nil
}

// MockVenueRepository is a mock implementation of VenueRepository
type MockVenueRepository struct {
	Venues map[int64]*models.Venue
	NextID int64
	Err    error
}

func NewMockVenueRepository() *MockVenueRepository {
	return &MockVenueRepository{Venues: make(map[int64]*models.Venue)}
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	if m.Err != nil {
		return m.Err
	}
	m.NextID++
	venue.ID = m.NextID
	m.Venues[venue.ID] = venue
	return nil
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	return m.Venues[id], m.Err
}

func (m *MockVenueRepository) GetByName(ctx context.Context, name string) (*models.Venue, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, v := range m.Venues {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, nil
}

func (m *MockVenueRepository) List(ctx context.Context) ([]*models.Venue, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(m.Venues))
	for id := range m.Venues {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	venues := make([]*models.Venue, 0, len(ids))
	for _, id := range ids {
		venues = append(venues, m.Venues[id])
	}
	return venues, nil
}

func (m *MockVenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	if m.Err != nil {
		return m.Err
	}
	m.Venues[venue.ID] = venue
	return nil
}

func (m *MockVenueRepository) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Venues, id)
	return nil
}

func (m *MockVenueRepository) Count(ctx context.Context) (int, error) {
	return len(m.Venues), m.Err
}

// MockModelRepository is a mock implementation of ModelRepository
type MockModelRepository struct {
	Models map[int64]*models.ModelProfile
	NextID int64
	Err    error
}

func NewMockModelRepository() *MockModelRepository {
	return &MockModelRepository{Models: make(map[int64]*models.ModelProfile)}
}

func (m *MockModelRepository) Create(ctx context.Context, profile *models.ModelProfile) error {
	if m.Err != nil {
		return m.Err
	}
	m.NextID++
	profile.ID = m.NextID
	m.Models[profile.ID] = profile
	return nil
}

func (m *MockModelRepository) GetByID(ctx context.Context, id int64) (*models.ModelProfile, error) {
	return m.Models[id], m.Err
}

func (m *MockModelRepository) List(ctx context.Context) ([]*models.ModelProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(m.Models))
	for id := range m.Models {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	profiles := make([]*models.ModelProfile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, m.Models[id])
	}
	return profiles, nil
}

func (m *MockModelRepository) Update(ctx context.Context, profile *models.ModelProfile) error {
	if m.Err != nil {
		return m.Err
	}
	m.Models[profile.ID] = profile
	return nil
}

func (m *MockModelRepository) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Models, id)
	return nil
}

func (m *MockModelRepository) Count(ctx context.Context) (int, error) {
	return len(m.Models), m.Err
}

// MockHostRepository is a mock implementation of HostRepository
type MockHostRepository struct {
	Hosts map[int64]*models.Host
	Err   error
}

func NewMockHostRepository() *MockHostRepository {
	return &MockHostRepository{Hosts: make(map[int64]*models.Host)}
}

func (m *MockHostRepository) GetByID(ctx context.Context, id int64) (*models.Host, error) {
	return m.Hosts[id], m.Err
}

func (m *MockHostRepository) List(ctx context.Context) ([]*models.Host, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(m.Hosts))
	for id := range m.Hosts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	hosts := make([]*models.Host, 0, len(ids))
	for _, id := range ids {
		hosts = append(hosts, m.Hosts[id])
	}
	return hosts, nil
}

func (m *MockHostRepository) Count(ctx context.Context) (int, error) {
	return len(m.Hosts), m.Err
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	Events map[int64]*models.Event
	NextID int64
	Err    error
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{Events: make(map[int64]*models.Event)}
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.Event) error {
	if m.Err != nil {
		return m.Err
	}
	m.NextID++
	event.ID = m.NextID
	m.Events[event.ID] = event
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return m.Events[id], m.Err
}

func (m *MockEventRepository) List(ctx context.Context) ([]*models.Event, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(m.Events))
	for id := range m.Events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	events := make([]*models.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, m.Events[id])
	}
	return events, nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *models.Event) error {
	if m.Err != nil {
		return m.Err
	}
	m.Events[event.ID] = event
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Events, id)
	return nil
}

func (m *MockEventRepository) Count(ctx context.Context) (int, error) {
	return len(m.Events), m.Err
}

// MockCalendarRepository is a mock implementation of CalendarRepository
type MockCalendarRepository struct {
	Sessions map[int64]*models.CalendarSession
	NextID   int64
	Err      error
}

func NewMockCalendarRepository() *MockCalendarRepository {
	return &MockCalendarRepository{Sessions: make(map[int64]*models.CalendarSession)}
}

func (m *MockCalendarRepository) Create(ctx context.Context, session *models.CalendarSession) error {
	if m.Err != nil {
		return m.Err
	}
	m.NextID++
	session.ID = m.NextID
	m.Sessions[session.ID] = session
	return nil
}

func (m *MockCalendarRepository) GetByID(ctx context.Context, id int64) (*models.CalendarSession, error) {
	return m.Sessions[id], m.Err
}

func (m *MockCalendarRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.CalendarSession, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []*models.CalendarSession
	for _, s := range all {
		if s.EventID == eventID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (m *MockCalendarRepository) List(ctx context.Context) ([]*models.CalendarSession, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(m.Sessions))
	for id := range m.Sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	sessions := make([]*models.CalendarSession, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, m.Sessions[id])
	}
	return sessions, nil
}

func (m *MockCalendarRepository) Update(ctx context.Context, session *models.CalendarSession) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sessions[session.ID] = session
	return nil
}

func (m *MockCalendarRepository) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Sessions, id)
	return nil
}

func (m *MockCalendarRepository) Count(ctx context.Context) (int, error) {
	return len(m.Sessions), m.Err
}

// MockRateRepository is a mock implementation of RateRepository
type MockRateRepository struct {
	Rates []*models.ExchangeRate
	Err   error
}

func NewMockRateRepository() *MockRateRepository {
	return &MockRateRepository{}
}

func (m *MockRateRepository) List(ctx context.Context) ([]*models.ExchangeRate, error) {
	return m.Rates, m.Err
}

func (m *MockRateRepository) ReplaceAll(ctx context.Context, rates []*models.ExchangeRate) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.Rates = rates
	return len(rates), nil
}

// MockRunRepository is a mock implementation of RunRepository
type MockRunRepository struct {
	Runs []*models.ImportRun
	Err  error
}

func NewMockRunRepository() *MockRunRepository {
	return &MockRunRepository{}
}

func (m *MockRunRepository) Create(ctx context.Context, run *models.ImportRun) error {
	if m.Err != nil {
		return m.Err
	}
	m.Runs = append(m.Runs, run)
	return nil
}

func (m *MockRunRepository) Update(ctx context.Context, run *models.ImportRun) error {
	if m.Err != nil {
		return m.Err
	}
	for i, r := range m.Runs {
		if r.ID == run.ID {
			m.Runs[i] = run
		}
	}
	return nil
}

func (m *MockRunRepository) GetLatest(ctx context.Context) (*models.ImportRun, error) {
	if m.Err != nil || len(m.Runs) == 0 {
		return nil, m.Err
	}
	return m.Runs[len(m.Runs)-1], nil
}

// MockSeeder is a mock implementation of Seeder
type MockSeeder struct {
	Truncated bool
	Users     []*models.User
	Profiles  []*models.UserProfile
	Venues    []*models.Venue
	Models    []*models.ModelProfile
	Hosts     []*models.Host
	Events    []*models.Event
	Sessions  []*models.CalendarSession
	Err       error
}

func NewMockSeeder() *MockSeeder {
	return &MockSeeder{}
}

func (m *MockSeeder) TruncateAll(ctx context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	m.Truncated = true
	return nil
}

func (m *MockSeeder) LoadUsers(ctx context.Context, users []*models.User) (map[string]int64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Users = users
	ids := make(map[string]int64, len(users))
	for i, u := range users {
		u.ID = int64(i + 1)
		ids[u.Email] = u.ID
	}
	return ids, nil
}

func (m *MockSeeder) LoadProfiles(ctx context.Context, profiles []*models.UserProfile) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.Profiles = profiles
	return len(profiles), nil
}

func (m *MockSeeder) LoadVenues(ctx context.Context, venues []*models.Venue) (map[string]int64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Venues = venues
	ids := make(map[string]int64, len(venues))
	for i, v := range venues {
		v.ID = int64(i + 1)
		ids[v.Name] = v.ID
	}
	return ids, nil
}

func (m *MockSeeder) LoadModels(ctx context.Context, profiles []*models.ModelProfile) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.Models = profiles
	return len(profiles), nil
}

func (m *MockSeeder) LoadHosts(ctx context.Context, hosts []*models.Host) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.Hosts = hosts
	return len(hosts), nil
}

func (m *MockSeeder) LoadEvents(ctx context.Context, events []*models.Event) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.Events = events
	return len(events), nil
}

func (m *MockSeeder) LoadSessions(ctx context.Context, sessions []*models.CalendarSession) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.Sessions = sessions
	return len(sessions), nil
}
