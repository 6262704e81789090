package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/lifedrawing-art/backend/internal/config"
	"github.com/lifedrawing-art/backend/internal/export"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/repository"
	"github.com/rs/zerolog"
)

// Authentication failures are deliberately indistinct: a wrong password and
// an unknown email both surface ErrInvalidCredentials.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAccountInactive    = errors.New("account is deactivated")
)

// TokenClaims is the JWT payload for an authenticated user.
type TokenClaims struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// authService is the concrete implementation of AuthService
type authService struct {
	users  repository.UserRepository
	models repository.ModelRepository
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

func newAuthService(users repository.UserRepository, modelRepo repository.ModelRepository, cfg *config.Config, log zerolog.Logger) AuthService {
	return &authService{
		users:  users,
		models: modelRepo,
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
		log:    log.With().Str("component", "auth").Logger(),
	}
}

// Register creates a new account. The very first account in an empty
// database becomes the admin.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	user := &models.User{
		Email:          email,
		PasswordHash:   export.HashPassword(email, req.Password),
		IsGlobalActive: true,
		IsAdmin:        count == 0,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	profile := &models.UserProfile{
		UserID:   user.ID,
		Handle:   export.Slugify(req.Fullname),
		Fullname: req.Fullname,
	}
	if err := s.users.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.log.Info().Str("email", email).Bool("admin", user.IsAdmin).Msg("User registered")

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// RegisterModel creates an account together with its model listing, the
// public sign-up flow the add-model form posts to. Model sign-ups are never
// admins, even into an empty database.
func (s *authService) RegisterModel(ctx context.Context, req *models.ModelRegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		Email:          email,
		PasswordHash:   export.HashPassword(email, req.Password),
		IsGlobalActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	profile := &models.UserProfile{
		UserID:      user.ID,
		Handle:      export.Slugify(req.Fullname),
		Fullname:    req.Fullname,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.users.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Fullname
	}
	sex := req.Sex
	if sex == "" {
		sex = "unspecified"
	}
	model := &models.ModelProfile{
		UserID:        user.ID,
		DisplayName:   displayName,
		WebsiteURLs:   req.WebsiteURLs,
		SocialHandles: req.SocialHandles,
		PortraitURLs:  req.PortraitURLs,
		Sex:           sex,
	}
	if err := s.models.Create(ctx, model); err != nil {
		return nil, fmt.Errorf("create model profile: %w", err)
	}

	s.log.Info().Str("email", email).Str("display_name", displayName).Msg("Model registered")

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials against the stored digest. Seeded legacy
// accounts authenticate with the same email-salted digest scheme the import
// wrote, so no migration of old hashes is needed.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash != export.HashPassword(email, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsGlobalActive {
		return nil, ErrAccountInactive
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// VerifyToken parses and validates a bearer token
func (s *authService) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
