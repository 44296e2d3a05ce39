package utils

import "errors"

var (
	ErrNoActiveJourney = errors.New("no active journey")
	ErrCountryNotFound = errors.New("country not found")
	ErrNilCountry      = errors.New("trip requires a country")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
