package http

import (
	"time"

	"chorechum/internal/checklist"
	"chorechum/internal/chore"
	"chorechum/internal/model"
	"chorechum/pkg/response"
	"chorechum/pkg/smartinput"
)

// --- Request DTOs ---

type parseReq struct {
	HouseholdID string `json:"-"`
	Text        string `json:"text" binding:"max=500"`
}

func (r parseReq) toInput() chore.ParseInput {
	return chore.ParseInput{HouseholdID: r.HouseholdID, Text: r.Text}
}

type recurrenceReq struct {
	Unit     string `json:"unit"     binding:"omitempty,oneof=none daily weekly monthly"`
	Interval int    `json:"interval" binding:"min=0,max=365"`
	Until    string `json:"until"`
}

func (r *recurrenceReq) toInput() chore.RecurrenceInput {
	if r == nil {
		return chore.RecurrenceInput{}
	}
	return chore.RecurrenceInput{Unit: r.Unit, Interval: r.Interval, Until: r.Until}
}

type createReq struct {
	HouseholdID     string         `json:"-"`
	Name            string         `json:"name"             binding:"required,max=200"`
	RoomID          string         `json:"room_id"`
	AssigneeID      string         `json:"assignee_id"`
	Recurrence      *recurrenceReq `json:"recurrence"`
	DueDate         string         `json:"due_date"`
	TimeOfDay       string         `json:"time_of_day"`
	ExactTime       string         `json:"exact_time"`
	Points          int            `json:"points"`
	TargetInstances int            `json:"target_instances"`
	IsShoppingList  bool           `json:"is_shopping_list"`
	Subtasks        []string       `json:"subtasks"         binding:"max=100"`
	Tags            []string       `json:"tags"             binding:"max=20"`
}

func (r createReq) toInput() chore.CreateInput {
	return chore.CreateInput{
		HouseholdID:     r.HouseholdID,
		Name:            r.Name,
		RoomID:          r.RoomID,
		AssigneeID:      r.AssigneeID,
		Recurrence:      r.Recurrence.toInput(),
		DueDate:         r.DueDate,
		TimeOfDay:       r.TimeOfDay,
		ExactTime:       r.ExactTime,
		Points:          r.Points,
		TargetInstances: r.TargetInstances,
		IsShoppingList:  r.IsShoppingList,
		Subtasks:        r.Subtasks,
		Tags:            r.Tags,
	}
}

type listReq struct {
	HouseholdID string `form:"-"`
	Status      string `form:"status"      binding:"omitempty,oneof=pending complete"`
	AssigneeID  string `form:"assignee_id"`
	RoomID      string `form:"room_id"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

func (r listReq) toInput() chore.ListInput {
	return chore.ListInput{
		HouseholdID: r.HouseholdID,
		Status:      model.ChoreStatus(r.Status),
		AssigneeID:  r.AssigneeID,
		RoomID:      r.RoomID,
		Limit:       r.Limit,
		Offset:      r.Offset,
	}
}

// updateReq uses pointers so omitted fields stay untouched.
type updateReq struct {
	ID              string         `json:"-"`
	Name            *string        `json:"name"`
	RoomID          *string        `json:"room_id"`
	AssigneeID      *string        `json:"assignee_id"`
	Recurrence      *recurrenceReq `json:"recurrence"`
	DueDate         *string        `json:"due_date"`
	TimeOfDay       *string        `json:"time_of_day"`
	ExactTime       *string        `json:"exact_time"`
	Points          *int           `json:"points"`
	TargetInstances *int           `json:"target_instances"`
	IsShoppingList  *bool          `json:"is_shopping_list"`
	Subtasks        *[]string      `json:"subtasks"`
	Tags            *[]string      `json:"tags"`
}

func (r updateReq) toInput() chore.UpdateInput {
	in := chore.UpdateInput{
		ID:              r.ID,
		Name:            r.Name,
		RoomID:          r.RoomID,
		AssigneeID:      r.AssigneeID,
		DueDate:         r.DueDate,
		TimeOfDay:       r.TimeOfDay,
		ExactTime:       r.ExactTime,
		Points:          r.Points,
		TargetInstances: r.TargetInstances,
		IsShoppingList:  r.IsShoppingList,
		Subtasks:        r.Subtasks,
		Tags:            r.Tags,
	}
	if r.Recurrence != nil {
		rec := r.Recurrence.toInput()
		in.Recurrence = &rec
	}
	return in
}

type toggleSubtaskReq struct {
	ChoreID string `json:"-"`
	Text    string `json:"text" binding:"required_without=All"`
	All     bool   `json:"all"`
	Done    bool   `json:"done"`
}

func (r toggleSubtaskReq) toInput() chore.ToggleSubtaskInput {
	return chore.ToggleSubtaskInput{ChoreID: r.ChoreID, Text: r.Text, All: r.All, Done: r.Done}
}

// --- Response DTOs ---

type recurrenceResp struct {
	Rule     string `json:"rule"`
	Unit     string `json:"unit,omitempty"`
	Interval int    `json:"interval,omitempty"`
	Until    string `json:"until,omitempty"`
}

func newRecurrenceResp(c model.Chore) recurrenceResp {
	r := c.Recurrence
	resp := recurrenceResp{Rule: r.String()}
	if r.IsNone() {
		return resp
	}
	resp.Unit = string(r.Unit)
	resp.Interval = max(r.Interval, 1)
	if r.HasUntil() {
		resp.Until = r.Until.Format("2006-01-02")
	}
	return resp
}

type subtaskResp struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type choreResp struct {
	ID                 string            `json:"id"`
	HouseholdID        string            `json:"household_id"`
	Name               string            `json:"name"`
	RoomID             string            `json:"room_id,omitempty"`
	AssigneeID         string            `json:"assignee_id,omitempty"`
	Recurrence         recurrenceResp    `json:"recurrence"`
	DueDate            *time.Time        `json:"due_date,omitempty"`
	TimeOfDay          string            `json:"time_of_day"`
	ExactTime          string            `json:"exact_time,omitempty"`
	Points             int               `json:"points"`
	CompletedInstances int               `json:"completed_instances"`
	TargetInstances    int               `json:"target_instances"`
	Status             string            `json:"status"`
	IsShoppingList     bool              `json:"is_shopping_list"`
	Subtasks           []subtaskResp     `json:"subtasks"`
	Tags               []string          `json:"tags"`
	CreatedBy          string            `json:"created_by,omitempty"`
	CreatedAt          response.DateTime `json:"created_at"`
	UpdatedAt          response.DateTime `json:"updated_at"`
}

func newChoreResp(c model.Chore) choreResp {
	resp := choreResp{
		ID:                 c.ID,
		HouseholdID:        c.HouseholdID,
		Name:               c.Name,
		RoomID:             c.RoomID,
		AssigneeID:         c.AssigneeID,
		Recurrence:         newRecurrenceResp(c),
		DueDate:            c.DueDate,
		TimeOfDay:          c.TimeOfDay,
		ExactTime:          c.ExactTime,
		Points:             c.Points,
		CompletedInstances: c.CompletedInstances,
		TargetInstances:    c.TargetInstances,
		Status:             string(c.Status),
		IsShoppingList:     c.IsShoppingList,
		Subtasks:           make([]subtaskResp, len(c.Subtasks)),
		Tags:               c.Tags,
		CreatedBy:          c.CreatedBy,
		CreatedAt:          response.DateTime(c.CreatedAt),
		UpdatedAt:          response.DateTime(c.UpdatedAt),
	}
	for i, st := range c.Subtasks {
		resp.Subtasks[i] = subtaskResp{Text: st.Text, Done: st.Done}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

type statsResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}

func newStatsResp(s checklist.ChecklistStats) statsResp {
	return statsResp{Total: s.Total, Completed: s.Completed, Pending: s.Pending, Progress: s.Progress}
}

type parseResp struct {
	Draft smartinput.Draft `json:"draft"`
}

type listResp struct {
	Chores []choreResp `json:"chores"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out chore.ListOutput) listResp {
	resp := listResp{
		Chores: make([]choreResp, len(out.Chores)),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
	for i, c := range out.Chores {
		resp.Chores[i] = newChoreResp(c)
	}
	return resp
}

type detailResp struct {
	Chore choreResp `json:"chore"`
	Stats statsResp `json:"stats"`
}

func (h *handler) newDetailResp(out chore.DetailOutput) detailResp {
	return detailResp{Chore: newChoreResp(out.Chore), Stats: newStatsResp(out.Stats)}
}

type completeResp struct {
	Chore        choreResp `json:"chore"`
	Rescheduled  bool      `json:"rescheduled"`
	PointsEarned int       `json:"points_earned"`
}

func (h *handler) newCompleteResp(out chore.CompleteOutput) completeResp {
	return completeResp{
		Chore:        newChoreResp(out.Chore),
		Rescheduled:  out.Rescheduled,
		PointsEarned: out.Completion.Points,
	}
}

type toggleSubtaskResp struct {
	Chore   choreResp `json:"chore"`
	Matched int       `json:"matched"`
	Stats   statsResp `json:"stats"`
	AllDone bool      `json:"all_done"`
}

func (h *handler) newToggleSubtaskResp(out chore.ToggleSubtaskOutput) toggleSubtaskResp {
	return toggleSubtaskResp{
		Chore:   newChoreResp(out.Chore),
		Matched: out.Matched,
		Stats:   newStatsResp(out.Stats),
		AllDone: out.AllDone,
	}
}
