package household

import "errors"

var (
	ErrHouseholdNotFound = errors.New("household not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrDuplicateMember   = errors.New("user is already a member of this household")
	ErrDuplicateRoom     = errors.New("room name already exists")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrEmptyName         = errors.New("name is empty")
	ErrNotMember         = errors.New("user is not a member of this household")
	ErrLastMember        = errors.New("cannot remove the last member")
)
