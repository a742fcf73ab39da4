package http

import (
	"github.com/gin-gonic/gin"

	"chorechum/pkg/response"
)

// Parse godoc
// @Summary     Parse chore text
// @Description Extracts a chore draft (assignee, room, recurrence, due date, subtasks, tags) from one line of text. Nothing is stored.
// @Tags        Chores
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Acting user"
// @Param       id        path   string   true "Household ID"
// @Param       body      body   parseReq true "Text to parse"
// @Success     200 {object} parseResp
// @Failure     403 {object} response.Resp "Not a member"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/households/{id}/chores/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ParseInput(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "chore.http.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, parseResp{Draft: out.Draft})
}

// Create godoc
// @Summary     Create a chore
// @Tags        Chores
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Acting user"
// @Param       id        path   string    true "Household ID"
// @Param       body      body   createReq true "Chore data"
// @Success     201 {object} choreResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Not a member"
// @Router      /api/v1/households/{id}/chores [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ch, err := h.uc.Create(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "chore.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.Created(c, newChoreResp(ch))
}

// List godoc
// @Summary     List chores
// @Tags        Chores
// @Produce     json
// @Param       X-User-ID   header string true  "Acting user"
// @Param       id          path   string true  "Household ID"
// @Param       status      query  string false "pending or complete"
// @Param       assignee_id query  string false "Member ID"
// @Param       room_id     query  string false "Room ID"
// @Param       limit       query  int    false "Page size (default: 20)"
// @Param       offset      query  int    false "Page offset"
// @Success     200 {object} listResp
// @Router      /api/v1/households/{id}/chores [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "chore.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a chore
// @Tags        Chores
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Chore ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chores/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, h.scope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "chore.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newDetailResp(out))
}

// Update godoc
// @Summary     Update a chore
// @Description Partial update. Omitted fields are left unchanged; an empty due_date clears it.
// @Tags        Chores
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Acting user"
// @Param       id        path   string    true "Chore ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} choreResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chores/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ch, err := h.uc.Update(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "chore.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newChoreResp(ch))
}

// Delete godoc
// @Summary     Delete a chore
// @Tags        Chores
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Chore ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chores/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, h.scope(c), c.Param("id")); err != nil {
		h.l.Warnf(ctx, "chore.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Complete godoc
// @Summary     Complete a chore
// @Description Records one completion by the caller. Recurring chores move to their next due date.
// @Tags        Chores
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Chore ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already complete"
// @Router      /api/v1/chores/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Complete(ctx, h.scope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "chore.http.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newCompleteResp(out))
}

// ToggleSubtask godoc
// @Summary     Check or uncheck subtasks
// @Description Matches subtasks by partial, case-insensitive text. Set all to toggle every item.
// @Tags        Chores
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string           true "Acting user"
// @Param       id        path   string           true "Chore ID"
// @Param       body      body   toggleSubtaskReq true "Subtask change"
// @Success     200 {object} toggleSubtaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chores/{id}/subtasks [PATCH]
func (h *handler) ToggleSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleSubtaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ToggleSubtask(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "chore.http.ToggleSubtask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newToggleSubtaskResp(out))
}
