package export

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// CalendarRel carries the join keys for a seeded calendar row: the resolved
// user's email (empty on a directory miss) and the source row ordinal.
type CalendarRel struct {
	Email string `json:"email"`
	N     int    `json:"n"`
}

// CalendarRow is the destination calendar table row shape.
type CalendarRow struct {
	Rel CalendarRel `json:"REL"`

	EventID            int     `json:"event_id"`
	Status             string  `json:"status"`
	AttendanceInPerson float64 `json:"attendance_inperson"`
	AttendanceOnline   float64 `json:"attendance_online"`
	DateTime           string  `json:"date_time"`
	Duration           float64 `json:"duration"`
	PoseFormat         string  `json:"pose_format"`
}

var openRowRe = regexp.MustCompile(`(?i)open`)

// Session date formats observed in the legacy sheet.
var sessionDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2 Jan 2006 15:04:05",
	"Mon, 2 Jan 06 15:04:05",
	"02/01/2006 15:04:05",
}

// MakeCalendar binds each historical session row to a resolved user and the
// fixed anchor event id. Rows flagged as currently-open placeholders are
// dropped; a user miss degrades to empty join fields rather than failing the
// row.
func MakeCalendar(records []Row, dir *Directory, eventID int, log zerolog.Logger) ([]CalendarRow, []Issue) {
	log.Info().Int("records", len(records)).Int("event_id", eventID).Msg("Mapping calendar sessions")

	var rows []CalendarRow
	var issues []Issue

	for n, record := range records {
		if openRowRe.MatchString(record.Get("pk")) {
			continue
		}

		dateTime, err := parseSessionDate(record.Get("date"), record.Get("start"))
		if err != nil {
			log.Warn().Err(err).Int("row", n).Msg("Unparseable session date, dropping row")
			issues = append(issues, Issue{Sheet: "calendar", Field: "date", Message: err.Error()})
			continue
		}

		slug := Slugify(record.Get("fullname"))
		var email, fullname string
		if entry, ok := dir.Get(slug); ok {
			email = entry.Email
			fullname = entry.Fullname
		} else {
			log.Warn().Str("slug", slug).Msg("Calendar session user not in directory")
			issues = append(issues, Issue{Sheet: "calendar", Slug: slug, Field: "fullname", Message: "no matching directory entry"})
		}

		rows = append(rows, CalendarRow{
			Rel: CalendarRel{Email: email, N: n},

			EventID:            eventID,
			Status:             sessionStatus(record.Get("pk")),
			AttendanceInPerson: numberOr(record.Get("inperson"), 0),
			AttendanceOnline:   numberOr(record.Get("attendance_online"), 0),
			DateTime:           dateTime.UTC().Format(isoMillis),
			Duration:           numberOr(record.Get("duration"), 2),
			PoseFormat:         strings.TrimSpace(record.Get("date")) + " with " + fullname + ", mixed poses from 90 seconds to 25 minutes.",
		})
	}

	return rows, issues
}

// sessionStatus derives the status tag from the free-text key column. First
// matching marker wins, never multiple; no marker means confirmed.
func sessionStatus(pk string) string {
	switch {
	case strings.Contains(pk, "TBC"):
		return "pending"
	case strings.Contains(pk, "OPEN CALL"):
		return "opencall"
	case strings.Contains(pk, "Closed"):
		return "closed"
	default:
		return "confirmed"
	}
}

func parseSessionDate(date, startHour string) (time.Time, error) {
	stamp := date + " " + startHour + ":00:00"
	var lastErr error
	for _, layout := range sessionDateLayouts {
		t, err := time.Parse(layout, stamp)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func numberOr(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return v
}
