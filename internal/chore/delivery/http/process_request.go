package http

import (
	"github.com/gin-gonic/gin"

	"chorechum/internal/model"
	pkgErrors "chorechum/pkg/errors"
)

// scope returns the acting user. The auth middleware guarantees it is set.
func (h *handler) scope(c *gin.Context) model.Scope {
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	return sc
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.HouseholdID = c.Param("id")
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.HouseholdID = c.Param("id")
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.HouseholdID = c.Param("id")
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) processToggleSubtaskReq(c *gin.Context) (toggleSubtaskReq, error) {
	var req toggleSubtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ChoreID = c.Param("id")
	return req, nil
}
