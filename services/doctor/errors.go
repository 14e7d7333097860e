package doctor

import "errors"

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotApproved        = errors.New("account is pending approval")
	ErrNotFound           = errors.New("doctor not found")
	ErrInvalidHours       = errors.New("invalid working hours")
	ErrInvalidStatus      = errors.New("invalid doctor status")
	ErrInvalidOverride    = errors.New("invalid schedule override")
)
