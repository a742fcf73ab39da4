package reminder

import (
	"testing"
	"time"
)

func TestFormatMessage(t *testing.T) {
	due := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	tcs := map[string]struct {
		note Notification
		want string
	}{
		"exact time": {
			note: Notification{ChoreName: "Feed cat", DueDate: due, TimeOfDay: "any", ExactTime: "18:30"},
			want: "Reminder: Feed cat is due Fri 3 May at 18:30",
		},
		"slot": {
			note: Notification{ChoreName: "Water plants", DueDate: due, TimeOfDay: "morning"},
			want: "Reminder: Water plants is due Fri 3 May (morning)",
		},
		"any time": {
			note: Notification{ChoreName: "Dishes", DueDate: due, TimeOfDay: "any"},
			want: "Reminder: Dishes is due Fri 3 May",
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if got := FormatMessage(tc.note); got != tc.want {
				t.Errorf("FormatMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatMessageInLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Stored as UTC, the previous evening.
	due := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)

	got := FormatMessage(Notification{ChoreName: "Bins", DueDate: due, Location: tokyo, ExactTime: "07:15"})
	if want := "Reminder: Bins is due Thu 2 May at 07:15"; got != want {
		t.Errorf("FormatMessage() = %q, want %q", got, want)
	}
}
