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

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAddMemberReq(c *gin.Context) (addMemberReq, error) {
	var req addMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.HouseholdID = c.Param("id")
	if req.HouseholdID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) processAddRoomReq(c *gin.Context) (addRoomReq, error) {
	var req addRoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.HouseholdID = c.Param("id")
	if req.HouseholdID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
