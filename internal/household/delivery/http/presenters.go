package http

import (
	"time"

	"chorechum/internal/household"
	"chorechum/internal/model"
	"chorechum/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name      string `json:"name"       binding:"required,max=120"`
	Timezone  string `json:"timezone"   binding:"max=64"`
	OwnerName string `json:"owner_name" binding:"max=80"`
}

func (r createReq) toInput() household.CreateInput {
	return household.CreateInput{Name: r.Name, Timezone: r.Timezone, OwnerName: r.OwnerName}
}

type addMemberReq struct {
	HouseholdID string `json:"-"`
	UserID      string `json:"user_id" binding:"required,max=128"`
	Name        string `json:"name"    binding:"required,max=80"`
}

func (r addMemberReq) toInput() household.AddMemberInput {
	return household.AddMemberInput{HouseholdID: r.HouseholdID, UserID: r.UserID, Name: r.Name}
}

type addRoomReq struct {
	HouseholdID string `json:"-"`
	Name        string `json:"name" binding:"required,max=80"`
}

func (r addRoomReq) toInput() household.AddRoomInput {
	return household.AddRoomInput{HouseholdID: r.HouseholdID, Name: r.Name}
}

// --- Response DTOs ---

type householdResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Timezone  string            `json:"timezone"`
	CreatedAt response.DateTime `json:"created_at"`
}

type memberResp struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type roomResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newHouseholdResp(h model.Household) householdResp {
	return householdResp{
		ID:        h.ID,
		Name:      h.Name,
		Timezone:  h.Timezone,
		CreatedAt: response.DateTime(h.CreatedAt),
	}
}

func newMemberResp(m model.Member) memberResp {
	return memberResp{ID: m.ID, UserID: m.UserID, Name: m.Name}
}

func newRoomResp(r model.Room) roomResp {
	return roomResp{ID: r.ID, Name: r.Name}
}

type createResp struct {
	Household householdResp `json:"household"`
	Owner     memberResp    `json:"owner"`
}

func (h *handler) newCreateResp(out household.CreateOutput) createResp {
	return createResp{
		Household: newHouseholdResp(out.Household),
		Owner:     newMemberResp(out.Owner),
	}
}

type detailResp struct {
	Household householdResp `json:"household"`
	Members   []memberResp  `json:"members"`
	Rooms     []roomResp    `json:"rooms"`
}

func (h *handler) newDetailResp(out household.DetailOutput) detailResp {
	resp := detailResp{
		Household: newHouseholdResp(out.Household),
		Members:   make([]memberResp, len(out.Members)),
		Rooms:     make([]roomResp, len(out.Rooms)),
	}
	for i, m := range out.Members {
		resp.Members[i] = newMemberResp(m)
	}
	for i, r := range out.Rooms {
		resp.Rooms[i] = newRoomResp(r)
	}
	return resp
}

type standingResp struct {
	Rank        int    `json:"rank"`
	MemberID    string `json:"member_id"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	Completions int    `json:"completions"`
	Streak      int    `json:"streak"`
	Bonus       int    `json:"bonus"`
	Total       int    `json:"total"`
}

type leaderboardResp struct {
	Standings   []standingResp `json:"standings"`
	Since       *time.Time     `json:"since,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

func (h *handler) newLeaderboardResp(out household.LeaderboardOutput) leaderboardResp {
	resp := leaderboardResp{
		Standings:   make([]standingResp, len(out.Standings)),
		GeneratedAt: out.GeneratedAt,
	}
	if !out.Since.IsZero() {
		since := out.Since
		resp.Since = &since
	}
	for i, s := range out.Standings {
		resp.Standings[i] = standingResp{
			Rank:        s.Rank,
			MemberID:    s.MemberID,
			Name:        s.Name,
			Points:      s.Points,
			Completions: s.Completions,
			Streak:      s.Streak,
			Bonus:       s.Bonus,
			Total:       s.Total,
		}
	}
	return resp
}
