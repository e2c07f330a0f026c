package utils

import "errors"

var (
	ErrInvalidID          = errors.New("invalid id parameter")
	ErrInvalidPark        = errors.New("invalid park id")
	ErrInvalidMonth       = errors.New("invalid month")
	ErrInvalidDayCount    = errors.New("invalid day count")
	ErrEmptyPreferences   = errors.New("preferences must not be empty")
	ErrPreferencesTooLong = errors.New("preferences too long")

	ErrParkNotFound = errors.New("park not found")
	ErrTripNotFound = errors.New("trip not found")
	ErrNoActivities = errors.New("no activities found for this park")

	ErrGenerationFailed = errors.New("generation capability failed")

	// ErrPersistenceRolledBack means a write failed but rollback left the
	// store consistent. ErrStoreInconsistent means the rollback itself failed
	// and orphaned rows may remain; operator attention required.
	ErrPersistenceRolledBack = errors.New("itinerary could not be saved, no data retained")
	ErrStoreInconsistent     = errors.New("itinerary rollback failed, store may be inconsistent")

	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrDatabaseError        = errors.New("database error")
)
