package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskOverdue(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	todayMidnight := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"due yesterday, pending", Task{DueDate: &yesterday}, true},
		{"due yesterday, completed", Task{DueDate: &yesterday, Done: true}, false},
		{"due today, pending", Task{DueDate: &todayMidnight}, false},
		{"due tomorrow, pending", Task{DueDate: &tomorrow}, false},
		{"no due date, pending", Task{}, false},
		{"no due date, completed", Task{Done: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.task.Overdue(today))
		})
	}
}

func TestTaskOverdueAcrossZones(t *testing.T) {
	due := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	west := time.FixedZone("UTC-10", -10*60*60)
	east := time.FixedZone("UTC+12", 12*60*60)

	tests := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{"due today, afternoon west of UTC", time.Date(2026, 8, 28, 15, 0, 0, 0, west), false},
		{"due today, early morning east of UTC", time.Date(2026, 8, 28, 1, 0, 0, 0, east), false},
		{"locally past the due date east of UTC", time.Date(2026, 8, 29, 1, 0, 0, 0, east), true},
		{"locally a day before the due date west of UTC", time.Date(2026, 8, 27, 23, 0, 0, 0, west), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Task{DueDate: &due}.Overdue(tt.today))
		})
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	require.False(t, Session{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	require.True(t, Session{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
	require.False(t, Session{ExpiresAt: now}.Expired(now), "expiry is exclusive")
}
