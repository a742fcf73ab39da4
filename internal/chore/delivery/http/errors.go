package http

import (
	"errors"
	"net/http"

	"chorechum/internal/chore"
	"chorechum/internal/household"
	pkgErrors "chorechum/pkg/errors"
)

var errorMap = []struct {
	domain error
	http   *pkgErrors.HTTPError
}{
	{chore.ErrChoreNotFound, pkgErrors.NewHTTPError(http.StatusNotFound, "chore not found")},
	{household.ErrHouseholdNotFound, pkgErrors.NewHTTPError(http.StatusNotFound, "household not found")},
	{household.ErrNotMember, pkgErrors.NewHTTPError(http.StatusForbidden, "not a member of this household")},
	{chore.ErrAlreadyComplete, pkgErrors.NewHTTPError(http.StatusConflict, "chore is already complete")},
	{chore.ErrSubtaskNotFound, pkgErrors.NewHTTPError(http.StatusNotFound, "no subtask matches")},
	{chore.ErrEmptyName, pkgErrors.NewHTTPError(http.StatusBadRequest, "name is required")},
	{chore.ErrInvalidRecurrence, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid recurrence")},
	{chore.ErrInvalidDueDate, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid due date")},
	{chore.ErrInvalidTimeOfDay, pkgErrors.NewHTTPError(http.StatusBadRequest, "time_of_day must be morning, afternoon, evening or any")},
	{chore.ErrInvalidExactTime, pkgErrors.NewHTTPError(http.StatusBadRequest, "exact_time must be HH:MM")},
	{chore.ErrInvalidAssignee, pkgErrors.NewHTTPError(http.StatusBadRequest, "assignee is not a member")},
	{chore.ErrInvalidRoom, pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown room")},
	{chore.ErrInvalidInstances, pkgErrors.NewHTTPError(http.StatusBadRequest, "target_instances must be at least 1")},
	{chore.ErrInvalidPoints, pkgErrors.NewHTTPError(http.StatusBadRequest, "points must not be negative")},
}

// mapError translates usecase errors, which may be wrapped, to HTTP errors.
func (h *handler) mapError(err error) error {
	for _, m := range errorMap {
		if errors.Is(err, m.domain) {
			return m.http
		}
	}
	return pkgErrors.ErrInternalServerError
}
