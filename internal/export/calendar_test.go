package export

import (
	"strings"
	"testing"
)

func calendarDirectory() *Directory {
	dir := NewDirectory()
	dir.Put(&Entry{Slug: "jane-doe", Fullname: "Jane Doe", Email: "jane@test.com", Kind: KindModel})
	return dir
}

func TestMakeCalendarStatusPrecedence(t *testing.T) {
	tests := []struct {
		name string
		pk   string
		want string
	}{
		{"tbc wins over other markers", "TBC Closed", "pending"},
		{"closed", "Closed", "closed"},
		{"plain row", "LD101", "confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, _ := MakeCalendar([]Row{
				{"pk": tt.pk, "fullname": "Jane Doe", "date": "2024-03-05", "start": "19"},
			}, calendarDirectory(), 7, testLog)

			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}
			if rows[0].Status != tt.want {
				t.Errorf("status = %q, want %q", rows[0].Status, tt.want)
			}
		})
	}
}

func TestMakeCalendarDropsOpenPlaceholders(t *testing.T) {
	rows, _ := MakeCalendar([]Row{
		{"pk": "(open)", "fullname": "Jane Doe", "date": "2024-03-05", "start": "19"},
		{"pk": "OPEN CALL", "fullname": "Jane Doe", "date": "2024-03-05", "start": "19"},
		{"pk": "LD101", "fullname": "Jane Doe", "date": "2024-03-05", "start": "19"},
	}, calendarDirectory(), 7, testLog)

	if len(rows) != 1 {
		t.Fatalf("open-flagged rows must be dropped, got %d rows", len(rows))
	}
}

func TestMakeCalendarRow(t *testing.T) {
	rows, _ := MakeCalendar([]Row{
		{"pk": "LD101", "fullname": "Jane Doe", "date": "2024-03-05", "start": "19",
			"inperson": "12", "duration": "2.5"},
	}, calendarDirectory(), 7, testLog)

	row := rows[0]
	if row.EventID != 7 {
		t.Errorf("event_id = %d, want 7", row.EventID)
	}
	if row.Rel.Email != "jane@test.com" {
		t.Errorf("rel email = %q", row.Rel.Email)
	}
	if row.DateTime != "2024-03-05T19:00:00.000Z" {
		t.Errorf("date_time = %q", row.DateTime)
	}
	if row.AttendanceInPerson != 12 {
		t.Errorf("attendance = %v", row.AttendanceInPerson)
	}
	if row.Duration != 2.5 {
		t.Errorf("duration = %v", row.Duration)
	}
	if !strings.Contains(row.PoseFormat, "with Jane Doe") {
		t.Errorf("pose_format = %q", row.PoseFormat)
	}
}

func TestMakeCalendarUserMissDegradesSoftly(t *testing.T) {
	rows, issues := MakeCalendar([]Row{
		{"pk": "LD101", "fullname": "Stranger", "date": "2024-03-05", "start": "19"},
	}, calendarDirectory(), 1, testLog)

	if len(rows) != 1 {
		t.Fatal("a directory miss must not drop the row")
	}
	if rows[0].Rel.Email != "" {
		t.Errorf("miss should leave join fields empty, got %q", rows[0].Rel.Email)
	}
	if len(issues) != 1 {
		t.Errorf("expected a reported issue, got %+v", issues)
	}
}

func TestMakeCalendarDefaultDuration(t *testing.T) {
	rows, _ := MakeCalendar([]Row{
		{"pk": "LD101", "fullname": "Jane Doe", "date": "2024-03-05", "start": "19"},
	}, calendarDirectory(), 1, testLog)

	if rows[0].Duration != 2 {
		t.Errorf("missing duration should default to 2, got %v", rows[0].Duration)
	}
}

func TestSessionStatus(t *testing.T) {
	if sessionStatus("TBC with OPEN CALL") != "pending" {
		t.Error("TBC must take precedence over later markers")
	}
	if sessionStatus("tbc") != "confirmed" {
		t.Error("marker match is case-sensitive like the source sheet")
	}
}
