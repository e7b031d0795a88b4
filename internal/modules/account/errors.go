package account

import "errors"

var (
	ErrForbidden         = errors.New("cannot delete another user's account")
	ErrUserGone          = errors.New("account no longer exists")
	ErrCleanupIncomplete = errors.New("account data cleanup did not finish")
)
