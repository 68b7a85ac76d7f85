package reminders

import (
	"testing"

	"github.com/rolandomc/MiAhorroBot/pkg/internal/testutil"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "08:00", want: "08:00"},
		{input: "8:5", want: "08:05"},
		{input: " 23:59 ", want: "23:59"},
		{input: "0:0", want: "00:00"},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "-1:30", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "12", wantErr: true},
		{input: "12:30:00", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSetScheduleLastWriteWins(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := SetSchedule(1, "08:00"); err != nil {
		t.Fatalf("failed to set schedule: %v", err)
	}
	if err := SetSchedule(1, "21:30"); err != nil {
		t.Fatalf("failed to replace schedule: %v", err)
	}

	timeOfDay, ok, err := GetSchedule(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a configured schedule")
	}
	if timeOfDay != "21:30" {
		t.Fatalf("expected last write to win, got %q", timeOfDay)
	}
}

func TestSetScheduleNormalizesInput(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := SetSchedule(2, "7:5"); err != nil {
		t.Fatalf("failed to set schedule: %v", err)
	}

	timeOfDay, ok, err := GetSchedule(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || timeOfDay != "07:05" {
		t.Fatalf("expected normalized 07:05, got %q (ok=%v)", timeOfDay, ok)
	}
}

func TestSetScheduleRejectsInvalidInput(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := SetSchedule(3, "25:00"); err == nil {
		t.Fatal("expected an error for an invalid time")
	}
	if _, ok, err := GetSchedule(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if ok {
		t.Fatal("expected no schedule after a rejected submission")
	}
}

func TestGetScheduleUnconfigured(t *testing.T) {
	testutil.SetupTestDB(t)

	if _, ok, err := GetSchedule(404); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if ok {
		t.Fatal("expected no schedule for an unknown user")
	}
}

func TestClearSchedule(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := SetSchedule(4, "09:15"); err != nil {
		t.Fatalf("failed to set schedule: %v", err)
	}
	if err := ClearSchedule(4); err != nil {
		t.Fatalf("failed to clear schedule: %v", err)
	}
	if _, ok, err := GetSchedule(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if ok {
		t.Fatal("expected schedule to be gone")
	}

	if err := ClearSchedule(4); err != nil {
		t.Fatalf("expected second clear to be a no-op, got: %v", err)
	}
}
