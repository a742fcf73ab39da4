package smartinput_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"chorechum/pkg/datemath"
	"chorechum/pkg/recurrence"
	"chorechum/pkg/smartinput"
)

// Wednesday, May 1, 2024.
var now = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newParser(t *testing.T) *smartinput.Parser {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return smartinput.NewParser(dates)
}

func rulePtr(r recurrence.Rule) *recurrence.Rule { return &r }

func TestParse(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name          string
		text          string
		members       []smartinput.Member
		rooms         []smartinput.Room
		currentUserID string
		want          smartinput.Draft
	}{
		{
			name:  "implicit kitchen from oven",
			text:  "Clean the oven tomorrow",
			rooms: []smartinput.Room{{ID: "1", Name: "Kitchen"}},
			want: smartinput.Draft{
				Name: "Clean the oven", RoomID: "1", DueDate: "2024-05-02", TimeOfDay: smartinput.AnyTime,
			},
		},
		{
			name:    "named assignee and weekly",
			text:    "Take out trash for Ben every week",
			members: []smartinput.Member{{ID: "b1", Name: "Ben Smith"}},
			want: smartinput.Draft{
				Name: "Take out trash", AssigneeID: "b1", Recurrence: rulePtr(recurrence.Simple(recurrence.Weekly)),
			},
		},
		{
			name:          "self reference tonight",
			text:          "Vacuum my room tonight",
			members:       []smartinput.Member{{ID: "u1", Name: "Me Myself"}},
			rooms:         []smartinput.Room{{ID: "2", Name: "Bedroom"}},
			currentUserID: "u1",
			want: smartinput.Draft{
				Name: "Vacuum my room", AssigneeID: "u1", DueDate: "2024-05-01", TimeOfDay: smartinput.Evening,
			},
		},
		{
			name: "empty input",
			text: "",
			want: smartinput.Draft{},
		},
		{
			name:    "name inside a longer word is ignored",
			text:    "Fix the bench",
			members: []smartinput.Member{{ID: "b1", Name: "Ben"}},
			want:    smartinput.Draft{Name: "Fix the bench"},
		},
		{
			name:          "pronoun wins over a named member",
			text:          "Ben and I wash the car",
			members:       []smartinput.Member{{ID: "b1", Name: "Ben"}},
			currentUserID: "u1",
			want:          smartinput.Draft{Name: "Ben and I wash the car", AssigneeID: "u1"},
		},
		{
			name: "member order breaks ties",
			text: "Alex and Sam clean up",
			members: []smartinput.Member{
				{ID: "sam", Name: "Sam Lee"},
				{ID: "alex", Name: "Alex Kim"},
			},
			want: smartinput.Draft{Name: "Alex and clean up", AssigneeID: "sam"},
		},
		{
			name:    "member names are matched literally",
			text:    "Ask J.R. about rent",
			members: []smartinput.Member{{ID: "jr", Name: "J.R. Ewing"}},
			want:    smartinput.Draft{Name: "Ask about rent", AssigneeID: "jr"},
		},
		{
			name:    "non-ascii member name",
			text:    "Dishes for Zoë",
			members: []smartinput.Member{{ID: "z", Name: "Zoë"}},
			want:    smartinput.Draft{Name: "Dishes", AssigneeID: "z"},
		},
		{
			name:  "explicit room with preposition",
			text:  "Mop floor in the kitchen",
			rooms: []smartinput.Room{{ID: "k", Name: "Kitchen"}},
			want:  smartinput.Draft{Name: "Mop floor", RoomID: "k"},
		},
		{
			name: "room order breaks ties",
			text: "Tidy garage and attic",
			rooms: []smartinput.Room{
				{ID: "attic", Name: "Attic"},
				{ID: "garage", Name: "Garage"},
			},
			want: smartinput.Draft{Name: "Tidy garage and", RoomID: "attic"},
		},
		{
			name:  "implicit room must exist",
			text:  "Clean the oven",
			rooms: []smartinput.Room{{ID: "2", Name: "Bathroom"}},
			want:  smartinput.Draft{Name: "Clean the oven"},
		},
		{
			name: "in N days",
			text: "Water plants in 3 days",
			want: smartinput.Draft{Name: "Water plants", DueDate: "2024-05-04", TimeOfDay: smartinput.AnyTime},
		},
		{
			name: "next weekday",
			text: "Pay rent next monday",
			want: smartinput.Draft{Name: "Pay rent", DueDate: "2024-05-06", TimeOfDay: smartinput.AnyTime},
		},
		{
			name: "next weekday on that weekday rolls a full week",
			text: "Pay rent next Wednesday",
			want: smartinput.Draft{Name: "Pay rent", DueDate: "2024-05-08", TimeOfDay: smartinput.AnyTime},
		},
		{
			name: "tonight keeps an explicit date",
			text: "Clean sink tomorrow tonight",
			want: smartinput.Draft{Name: "Clean sink", DueDate: "2024-05-02", TimeOfDay: smartinput.Evening},
		},
		{
			name: "morning without a date",
			text: "Walk the dog in the morning",
			want: smartinput.Draft{Name: "Walk the dog", TimeOfDay: smartinput.Morning},
		},
		{
			name: "exact time with meridiem",
			text: "Feed cat at 7pm tomorrow",
			want: smartinput.Draft{Name: "Feed cat", DueDate: "2024-05-02", TimeOfDay: smartinput.Evening, ExactTime: "19:00"},
		},
		{
			name: "bare 24h time is not a list",
			text: "Take meds 7:30",
			want: smartinput.Draft{Name: "Take meds", TimeOfDay: smartinput.Morning, ExactTime: "07:30"},
		},
		{
			name: "out of range clock keeps its colon",
			text: "Reset timer 25:00",
			want: smartinput.Draft{Name: "Reset timer 25:00"},
		},
		{
			name: "exact 24h time",
			text: "Call plumber at 14:30",
			want: smartinput.Draft{Name: "Call plumber", TimeOfDay: smartinput.Afternoon, ExactTime: "14:30"},
		},
		{
			name: "every N weeks",
			text: "Water plants every 2 weeks",
			want: smartinput.Draft{Name: "Water plants", Recurrence: rulePtr(recurrence.Custom(recurrence.Weekly, 2, time.Time{}))},
		},
		{
			name: "every other day",
			text: "Feed fish every other day",
			want: smartinput.Draft{Name: "Feed fish", Recurrence: rulePtr(recurrence.Custom(recurrence.Daily, 2, time.Time{}))},
		},
		{
			name: "every 1 month is simple",
			text: "Change filter every 1 month",
			want: smartinput.Draft{Name: "Change filter", Recurrence: rulePtr(recurrence.Simple(recurrence.Monthly))},
		},
		{
			name: "instances",
			text: "Do pushups 3 times daily",
			want: smartinput.Draft{Name: "Do pushups", Instances: 3, Recurrence: rulePtr(recurrence.Simple(recurrence.Daily))},
		},
		{
			name: "tags",
			text: "Clean garage #weekend #Chores #weekend",
			want: smartinput.Draft{Name: "Clean garage", Tags: []string{"weekend", "chores"}},
		},
		{
			name: "subtasks after a colon",
			text: "Clean garage: sweep floor, sort tools and take out boxes",
			want: smartinput.Draft{Name: "Clean garage", Subtasks: []string{"Sweep floor", "Sort tools", "Take out boxes"}},
		},
		{
			name: "shopping list",
			text: "Buy milk, eggs and bread",
			want: smartinput.Draft{
				Name: "Buy milk, eggs and bread", Subtasks: []string{"Milk", "Eggs", "Bread"}, IsShoppingList: true,
			},
		},
		{
			name: "leading filler word",
			text: "to do the laundry weekly",
			want: smartinput.Draft{Name: "Do the laundry", Recurrence: rulePtr(recurrence.Simple(recurrence.Weekly))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want.Tags == nil {
				tt.want.Tags = []string{}
			}
			got := p.Parse(tt.text, tt.members, tt.rooms, tt.currentUserID, now)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	p := newParser(t)
	members := []smartinput.Member{{ID: "b1", Name: "Ben"}, {ID: "a1", Name: "Ann"}}
	rooms := []smartinput.Room{{ID: "k", Name: "Kitchen"}, {ID: "b", Name: "Bathroom"}}

	inputs := []string{
		"Clean the shower for Ann every week next friday #deep",
		"Buy milk, eggs and bread tomorrow morning",
		"Wipe the fridge in 2 days at 9am",
		"",
		"my turn",
	}
	for _, in := range inputs {
		first := p.Parse(in, members, rooms, "u1", now)
		second := p.Parse(in, members, rooms, "u1", now)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Parse(%q) not deterministic:\n%s", in, diff)
		}
	}
}

func TestParseStripsMatchedTriggers(t *testing.T) {
	p := newParser(t)
	members := []smartinput.Member{{ID: "b1", Name: "Ben Smith"}}

	tests := []struct {
		text     string
		triggers []string
	}{
		{text: "Take out trash for Ben every week", triggers: []string{"for ben", "every week"}},
		{text: "Mow lawn by Ben in 4 days", triggers: []string{"by ben", "in 4 days"}},
		{text: "Dust shelves next saturday monthly", triggers: []string{"next saturday", "monthly"}},
		{text: "Sweep porch tomorrow daily", triggers: []string{"tomorrow", "daily"}},
	}

	for _, tt := range tests {
		d := p.Parse(tt.text, members, nil, "", now)
		for _, trig := range tt.triggers {
			if strings.Contains(strings.ToLower(d.Name), trig) {
				t.Errorf("Parse(%q).Name = %q still contains %q", tt.text, d.Name, trig)
			}
		}
	}
}

func TestParseUsesParserTimezone(t *testing.T) {
	dates, err := datemath.NewParser("Pacific/Auckland")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	p := smartinput.NewParser(dates)

	// 15:30 UTC on May 1 is already May 2 in Auckland.
	d := p.Parse("Laundry tomorrow", nil, nil, "", now)
	if d.DueDate != "2024-05-03" {
		t.Errorf("DueDate = %q, want 2024-05-03", d.DueDate)
	}
}

func BenchmarkParse(b *testing.B) {
	dates, _ := datemath.NewParser("UTC")
	p := smartinput.NewParser(dates)
	members := []smartinput.Member{{ID: "1", Name: "Ben"}, {ID: "2", Name: "Ann"}, {ID: "3", Name: "Zoë"}}
	rooms := []smartinput.Room{{ID: "k", Name: "Kitchen"}, {ID: "l", Name: "Living Room"}, {ID: "b", Name: "Bathroom"}}

	for i := 0; i < b.N; i++ {
		p.Parse("Clean the couch for Ann every 2 weeks next friday at 6pm #deep", members, rooms, "u1", now)
	}
}
