package kernel

import (
	"strings"

	"marketplace/internal/pkg/errs"
)

// maxUserIDLength bounds ids issued by the external auth provider.
const maxUserIDLength = 128

// ErrUserIDIsNotConstructed is returned by Validate for the zero UserID.
var ErrUserIDIsNotConstructed = errs.NewValueIsRequiredError("user id must be created via NewUserID")

// UserID is the opaque identifier of a buyer or seller. Authentication lives
// outside this service, so ids arrive as plain strings and are only trimmed
// and length checked here.
type UserID struct {
	value string
}

func NewUserID(value string) (UserID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return UserID{}, errs.NewValueIsRequiredError("user id")
	}
	if len(value) > maxUserIDLength {
		return UserID{}, errs.NewValueIsOutOfRangeError("user id length", len(value), 1, maxUserIDLength)
	}
	return UserID{value: value}, nil
}

func (u UserID) String() string {
	return u.value
}

func (u UserID) IsEqual(other UserID) bool {
	return u.value == other.value
}

func (u UserID) IsZero() bool {
	return u.value == ""
}

func (u UserID) Validate() error {
	if u.value == "" {
		return ErrUserIDIsNotConstructed
	}
	return nil
}
