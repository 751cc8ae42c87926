package domain

import "errors"

// Auth errors
var (
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
)

// ErrAdminOnly is returned by operations that are gated behind the
// admin-endpoints policy flag, which is disabled in this deployment.
var ErrAdminOnly = errors.New("only for admins")
