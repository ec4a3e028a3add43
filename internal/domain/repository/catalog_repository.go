package repository

import (
	"context"

	"kitematch-service/internal/domain/entity"
)

// CatalogRepository supplies the static trip and kitespot inventory at
// startup. Implementations must return already-validated records.
type CatalogRepository interface {
	Trips(ctx context.Context) ([]entity.TripOffering, error)
	Spots(ctx context.Context) ([]entity.KitespotLocation, error)
}
