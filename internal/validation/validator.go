package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/lifedrawing-art/backend/internal/models"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	handleRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// MinPasswordLength applies to newly registered accounts only; seeded legacy
// accounts keep whatever digest they were imported with.
const MinPasswordLength = 8

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateRegister validates a registration payload
func ValidateRegister(req *models.RegisterRequest) []ValidationError {
	var errors []ValidationError

	if req.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(req.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: req.Email})
	}

	if req.Password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	} else if len(req.Password) < MinPasswordLength {
		errors = append(errors, ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
		})
	}

	if req.Fullname == "" {
		errors = append(errors, ValidationError{Field: "fullname", Message: "fullname is required"})
	}

	return errors
}

// ValidateModelRegister validates a public model sign-up payload
func ValidateModelRegister(req *models.ModelRegisterRequest) []ValidationError {
	errors := ValidateRegister(&models.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Fullname: req.Fullname,
	})

	if req.Sex != "" && !models.ValidSexes[req.Sex] {
		errors = append(errors, ValidationError{
			Field:   "sex",
			Message: "invalid sex, must be one of: male, female, unspecified",
			Value:   req.Sex,
		})
	}

	return errors
}

// ValidateLogin validates a login payload
func ValidateLogin(req *models.LoginRequest) []ValidationError {
	var errors []ValidationError

	if req.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	}

	return errors
}

// ValidateVenue validates a venue payload
func ValidateVenue(req *models.VenueRequest) []ValidationError {
	var errors []ValidationError

	if req.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if req.TZ != "" {
		if _, err := time.LoadLocation(req.TZ); err != nil {
			errors = append(errors, ValidationError{Field: "tz", Message: "invalid IANA timezone", Value: req.TZ})
		}
	}

	return errors
}

// ValidateModel validates a model profile payload
func ValidateModel(req *models.ModelRequest) []ValidationError {
	var errors []ValidationError

	if req.UserID == 0 {
		errors = append(errors, ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if req.DisplayName == "" {
		errors = append(errors, ValidationError{Field: "display_name", Message: "display_name is required"})
	}
	if req.Sex != "" && !models.ValidSexes[req.Sex] {
		errors = append(errors, ValidationError{
			Field:   "sex",
			Message: "invalid sex, must be one of: male, female, unspecified",
			Value:   req.Sex,
		})
	}

	return errors
}

// ValidateEvent validates an event payload
func ValidateEvent(req *models.EventRequest) []ValidationError {
	var errors []ValidationError

	if req.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}

	return errors
}

// ValidateSession validates a calendar session payload
func ValidateSession(req *models.SessionRequest) []ValidationError {
	var errors []ValidationError

	if req.EventID == 0 {
		errors = append(errors, ValidationError{Field: "event_id", Message: "event_id is required"})
	}
	if req.Status != "" && !models.ValidSessionStatuses[models.SessionStatus(req.Status)] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: pending, opencall, confirmed, closed",
			Value:   req.Status,
		})
	}
	if req.DateTime == "" {
		errors = append(errors, ValidationError{Field: "date_time", Message: "date_time is required"})
	} else if _, err := time.Parse(time.RFC3339, req.DateTime); err != nil {
		errors = append(errors, ValidationError{Field: "date_time", Message: "invalid ISO 8601 date format", Value: req.DateTime})
	}
	if req.Duration < 0 {
		errors = append(errors, ValidationError{Field: "duration", Message: "duration must not be negative", Value: req.Duration})
	}

	return errors
}

// IsValidHandle reports whether a handle is kebab-case
func IsValidHandle(handle string) bool {
	return handleRegex.MatchString(handle)
}
