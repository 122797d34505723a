package sheets

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/maxmeneghini/D20CharSheet/internal/repositories/sheets TimeProvider

// TimeProvider supplies timestamps so repository tests can pin the clock.
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the system clock in UTC.
type SystemTimeProvider struct{}

// Now returns the current UTC time.
func (SystemTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
