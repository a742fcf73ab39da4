package http

import (
	"github.com/gin-gonic/gin"

	"chorechum/pkg/response"
)

// Create godoc
// @Summary     Create a household
// @Description Creates a household with the caller as its first member.
// @Tags        Households
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Acting user"
// @Param       body      body   createReq true "Household data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/households [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "household.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.Created(c, h.newCreateResp(out))
}

// Detail godoc
// @Summary     Get a household
// @Description Returns the household with its members and rooms.
// @Tags        Households
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Household ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Not a member"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/households/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, h.scope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "household.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newDetailResp(out))
}

// AddMember godoc
// @Summary     Add a member
// @Tags        Households
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string       true "Acting user"
// @Param       id        path   string       true "Household ID"
// @Param       body      body   addMemberReq true "Member data"
// @Success     201 {object} memberResp
// @Failure     409 {object} response.Resp "Already a member"
// @Router      /api/v1/households/{id}/members [POST]
func (h *handler) AddMember(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddMemberReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.uc.AddMember(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "household.http.AddMember: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.Created(c, newMemberResp(m))
}

// RemoveMember godoc
// @Summary     Remove a member
// @Tags        Households
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Household ID"
// @Param       member_id path   string true "Member ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/households/{id}/members/{member_id} [DELETE]
func (h *handler) RemoveMember(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveMember(ctx, h.scope(c), c.Param("id"), c.Param("member_id")); err != nil {
		h.l.Warnf(ctx, "household.http.RemoveMember: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// AddRoom godoc
// @Summary     Add a room
// @Tags        Households
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Acting user"
// @Param       id        path   string     true "Household ID"
// @Param       body      body   addRoomReq true "Room data"
// @Success     201 {object} roomResp
// @Failure     409 {object} response.Resp "Room exists"
// @Router      /api/v1/households/{id}/rooms [POST]
func (h *handler) AddRoom(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddRoomReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	room, err := h.uc.AddRoom(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "household.http.AddRoom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.Created(c, newRoomResp(room))
}

// RemoveRoom godoc
// @Summary     Remove a room
// @Tags        Households
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Household ID"
// @Param       room_id   path   string true "Room ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/households/{id}/rooms/{room_id} [DELETE]
func (h *handler) RemoveRoom(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveRoom(ctx, h.scope(c), c.Param("id"), c.Param("room_id")); err != nil {
		h.l.Warnf(ctx, "household.http.RemoveRoom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Leaderboard godoc
// @Summary     Household leaderboard
// @Description Ranks members by points and streak bonus.
// @Tags        Households
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Household ID"
// @Success     200 {object} leaderboardResp
// @Router      /api/v1/households/{id}/leaderboard [GET]
func (h *handler) Leaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Leaderboard(ctx, h.scope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "household.http.Leaderboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newLeaderboardResp(out))
}
