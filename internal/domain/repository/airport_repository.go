package repository

import "context"

// AirportRepository maps IATA airport codes to country names. A missing
// code yields an empty country and a nil error; "unknown" is not a failure.
type AirportRepository interface {
	CountryByCode(ctx context.Context, code string) (string, error)
	Countries(ctx context.Context) (map[string]string, error)
}
