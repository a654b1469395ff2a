package domain

import "errors"

// Sentinel errors shared by every usecase. Controllers map these onto the
// HTTP taxonomy: validation, not-found, forbidden, unauthenticated.
var (
	ErrNotFound           = errors.New("entity not found")
	ErrForbidden          = errors.New("not the owner of this resource")
	ErrUnauthorized       = errors.New("authentication required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotArtistAccount   = errors.New("account type is not artist")
	ErrArtistExists       = errors.New("artist profile already exists")
	ErrNotArtist          = errors.New("no artist profile for this user")
	ErrUnsupportedAudio   = errors.New("unsupported audio format")
)
