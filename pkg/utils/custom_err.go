package utils

import "errors"

var (
	ErrPointNotFound      = errors.New("point not found")
	ErrInvalidPointID     = errors.New("invalid point id")
	ErrInvalidItemList    = errors.New("invalid item list")
	ErrEmptyItemList      = errors.New("empty item list")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrMissingImage       = errors.New("missing image file")
	ErrInvalidImage       = errors.New("invalid image file")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRegistrationClosed = errors.New("registration closed")
	ErrDatabaseError      = errors.New("database error")
)
