package reminder

import (
	"context"
	"fmt"
	"time"

	"chorechum/pkg/log"
)

// LogNotifier writes notifications to the service log. It stands in for a
// push transport.
type LogNotifier struct {
	l log.Logger
}

func NewLogNotifier(l log.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(ctx context.Context, note Notification) error {
	who := note.MemberID
	if who == "" {
		who = "household"
	}
	n.l.Infof(ctx, "%s [chore=%s member=%s household=%s]", FormatMessage(note), note.ChoreID, who, note.HouseholdID)
	return nil
}

// FormatMessage renders a notification as one line of text, with the due
// day taken in the household's location.
func FormatMessage(note Notification) string {
	loc := note.Location
	if loc == nil {
		loc = time.UTC
	}
	when := note.DueDate.In(loc).Format("Mon 2 Jan")
	switch {
	case note.ExactTime != "":
		when += " at " + note.ExactTime
	case note.TimeOfDay != "" && note.TimeOfDay != "any":
		when += " (" + note.TimeOfDay + ")"
	}
	return fmt.Sprintf("Reminder: %s is due %s", note.ChoreName, when)
}
