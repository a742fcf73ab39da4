package http

import (
	"net/http"

	"chorechum/internal/household"
	pkgErrors "chorechum/pkg/errors"
)

var (
	errHouseholdNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "household not found")
	errMemberNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "member not found")
	errRoomNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, "room not found")
	errNotMember         = pkgErrors.NewHTTPError(http.StatusForbidden, "not a member of this household")
	errDuplicateMember   = pkgErrors.NewHTTPError(http.StatusConflict, "user is already a member")
	errDuplicateRoom     = pkgErrors.NewHTTPError(http.StatusConflict, "room already exists")
	errLastMember        = pkgErrors.NewHTTPError(http.StatusConflict, "cannot remove the last member")
	errInvalidTimezone   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid timezone")
	errEmptyName         = pkgErrors.NewHTTPError(http.StatusBadRequest, "name is required")
)

func (h *handler) mapError(err error) error {
	switch err {
	case household.ErrHouseholdNotFound:
		return errHouseholdNotFound
	case household.ErrMemberNotFound:
		return errMemberNotFound
	case household.ErrRoomNotFound:
		return errRoomNotFound
	case household.ErrNotMember:
		return errNotMember
	case household.ErrDuplicateMember:
		return errDuplicateMember
	case household.ErrDuplicateRoom:
		return errDuplicateRoom
	case household.ErrLastMember:
		return errLastMember
	case household.ErrInvalidTimezone:
		return errInvalidTimezone
	case household.ErrEmptyName:
		return errEmptyName
	}
	return pkgErrors.ErrInternalServerError
}
