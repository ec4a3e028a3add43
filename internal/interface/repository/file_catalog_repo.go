package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/internal/domain/repository"
)

// FileCatalogRepository loads the catalog from JSON files with a strict
// schema, validated once at load time. Malformed catalog data fails fast
// here instead of surfacing as defensive checks later.
type FileCatalogRepository struct {
	tripsPath    string
	spotsPath    string
	airportsPath string
}

// NewFileCatalogRepository creates a new file-backed catalog repository
func NewFileCatalogRepository(tripsPath, spotsPath, airportsPath string) *FileCatalogRepository {
	return &FileCatalogRepository{
		tripsPath:    tripsPath,
		spotsPath:    spotsPath,
		airportsPath: airportsPath,
	}
}

var (
	_ repository.CatalogRepository = (*FileCatalogRepository)(nil)
	_ repository.AirportRepository = (*FileCatalogRepository)(nil)
)

// Trips reads and validates the trip offerings file.
func (r *FileCatalogRepository) Trips(ctx context.Context) ([]entity.TripOffering, error) {
	b, err := os.ReadFile(r.tripsPath)
	if err != nil {
		return nil, fmt.Errorf("read trips file: %w", err)
	}
	var trips []entity.TripOffering
	if err := json.Unmarshal(b, &trips); err != nil {
		return nil, fmt.Errorf("unmarshal trips: %w", err)
	}
	for i := range trips {
		if err := trips[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid trips file: %w", err)
		}
	}
	return trips, nil
}

// Spots reads and validates the kitespot locations file.
func (r *FileCatalogRepository) Spots(ctx context.Context) ([]entity.KitespotLocation, error) {
	b, err := os.ReadFile(r.spotsPath)
	if err != nil {
		return nil, fmt.Errorf("read spots file: %w", err)
	}
	var spots []entity.KitespotLocation
	if err := json.Unmarshal(b, &spots); err != nil {
		return nil, fmt.Errorf("unmarshal spots: %w", err)
	}
	for i := range spots {
		if err := spots[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid spots file: %w", err)
		}
	}
	return spots, nil
}

// Countries reads the airport-code to country lookup table.
func (r *FileCatalogRepository) Countries(ctx context.Context) (map[string]string, error) {
	b, err := os.ReadFile(r.airportsPath)
	if err != nil {
		return nil, fmt.Errorf("read airports file: %w", err)
	}
	var countries map[string]string
	if err := json.Unmarshal(b, &countries); err != nil {
		return nil, fmt.Errorf("unmarshal airports: %w", err)
	}
	return countries, nil
}

// CountryByCode resolves one airport code from the file-backed table.
func (r *FileCatalogRepository) CountryByCode(ctx context.Context, code string) (string, error) {
	countries, err := r.Countries(ctx)
	if err != nil {
		return "", err
	}
	return countries[code], nil
}
