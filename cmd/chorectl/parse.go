package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"chorechum/pkg/datemath"
	"chorechum/pkg/smartinput"
)

var (
	parseMembers  []string
	parseRooms    []string
	parseTimezone string
	parseMe       string
	parseNow      string
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Turn one line of text into a chore draft",
	Long: `Parse free text the way the add-chore form does and print the draft as JSON.

Members and rooms are given as id=Name pairs:
  chorectl parse "vacuum living room every week for sam" \
    --member m1=Sam --room r1="Living Room"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringArrayVar(&parseMembers, "member", nil, "household member as id=Name (repeatable)")
	parseCmd.Flags().StringArrayVar(&parseRooms, "room", nil, "household room as id=Name (repeatable)")
	parseCmd.Flags().StringVar(&parseTimezone, "tz", "UTC", "IANA timezone used to resolve relative dates")
	parseCmd.Flags().StringVar(&parseMe, "me", "", "member id that \"me\" and \"I\" refer to")
	parseCmd.Flags().StringVar(&parseNow, "now", "", "reference time in RFC3339 (default: current time)")
}

func runParse(cmd *cobra.Command, args []string) error {
	dates, err := datemath.NewParser(parseTimezone)
	if err != nil {
		return fmt.Errorf("invalid --tz: %w", err)
	}

	now := time.Now()
	if parseNow != "" {
		now, err = time.Parse(time.RFC3339, parseNow)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
	}

	members := make([]smartinput.Member, 0, len(parseMembers))
	for _, raw := range parseMembers {
		id, name, err := splitPair(raw)
		if err != nil {
			return fmt.Errorf("--member: %w", err)
		}
		members = append(members, smartinput.Member{ID: id, Name: name})
	}
	rooms := make([]smartinput.Room, 0, len(parseRooms))
	for _, raw := range parseRooms {
		id, name, err := splitPair(raw)
		if err != nil {
			return fmt.Errorf("--room: %w", err)
		}
		rooms = append(rooms, smartinput.Room{ID: id, Name: name})
	}

	draft := smartinput.NewParser(dates).Parse(strings.Join(args, " "), members, rooms, parseMe, now)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(draft)
}

func splitPair(raw string) (string, string, error) {
	id, name, ok := strings.Cut(raw, "=")
	id, name = strings.TrimSpace(id), strings.TrimSpace(name)
	if !ok || id == "" || name == "" {
		return "", "", fmt.Errorf("expected id=Name, got %q", raw)
	}
	return id, name, nil
}
