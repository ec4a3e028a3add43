package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/internal/domain/repository"
)

// GormCatalogRepository implements the CatalogRepository interface
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{
		db: db,
	}
}

// compile-time interface check
var _ repository.CatalogRepository = (*GormCatalogRepository)(nil)

// Trips GORM model for database mapping
type Trips struct {
	ID              string             `gorm:"primaryKey"`
	Destination     string             `gorm:"column:destination"`
	StartDate       time.Time          `gorm:"column:start_date"`
	EndDate         time.Time          `gorm:"column:end_date"`
	DurationDays    int                `gorm:"column:duration_days"`
	PriceFrom       float64            `gorm:"column:price_from"`
	Currency        string             `gorm:"column:currency"`
	CabinPricing    map[string]float64 `gorm:"column:cabin_pricing;serializer:json"`
	Availability    map[string]int     `gorm:"column:availability;serializer:json"`
	SkillLevel      string             `gorm:"column:skill_level"`
	WindKnots       float64            `gorm:"column:wind_knots"`
	WindDirection   string             `gorm:"column:wind_direction"`
	WindReliability string             `gorm:"column:wind_reliability"`
	Highlights      []string           `gorm:"column:highlights;serializer:json"`
	Includes        []string           `gorm:"column:includes;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name
func (Trips) TableName() string {
	return "m_trips"
}

// Kitespots GORM model for database mapping
type Kitespots struct {
	ID          string  `gorm:"primaryKey"`
	Name        string  `gorm:"column:name"`
	AirportCode string  `gorm:"column:airport_code"`
	CountryCode string  `gorm:"column:country_code"`
	Latitude    float64 `gorm:"column:latitude"`
	Longitude   float64 `gorm:"column:longitude"`
	Timezone    string  `gorm:"column:timezone"`
	Description string  `gorm:"column:description"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Kitespots) TableName() string {
	return "m_kitespots"
}

// Trips loads all trip offerings, validated, in stored order.
func (r *GormCatalogRepository) Trips(ctx context.Context) ([]entity.TripOffering, error) {
	var rows []Trips
	result := r.db.WithContext(ctx).Order("start_date").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	trips := make([]entity.TripOffering, 0, len(rows))
	for _, row := range rows {
		trip := entity.TripOffering{
			ID:           row.ID,
			Destination:  row.Destination,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
			DurationDays: row.DurationDays,
			PriceFrom:    row.PriceFrom,
			Currency:     row.Currency,
			CabinPricing: row.CabinPricing,
			Availability: row.Availability,
			SkillLevel:   row.SkillLevel,
			Wind: entity.WindProfile{
				AverageKnots: row.WindKnots,
				Direction:    row.WindDirection,
				Reliability:  row.WindReliability,
			},
			Highlights: row.Highlights,
			Includes:   row.Includes,
		}
		if err := trip.Validate(); err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

// Spots loads all kitespot locations, validated, in stored order.
func (r *GormCatalogRepository) Spots(ctx context.Context) ([]entity.KitespotLocation, error) {
	var rows []Kitespots
	result := r.db.WithContext(ctx).Order("name").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	spots := make([]entity.KitespotLocation, 0, len(rows))
	for _, row := range rows {
		spot := entity.KitespotLocation{
			ID:          row.ID,
			Name:        row.Name,
			AirportCode: row.AirportCode,
			CountryCode: row.CountryCode,
			Latitude:    row.Latitude,
			Longitude:   row.Longitude,
			Timezone:    row.Timezone,
			Description: row.Description,
		}
		if err := spot.Validate(); err != nil {
			return nil, err
		}
		spots = append(spots, spot)
	}
	return spots, nil
}

// UpsertTrip inserts or updates one trip row. Used by the seeder.
func (r *GormCatalogRepository) UpsertTrip(ctx context.Context, trip *entity.TripOffering) error {
	row := Trips{
		ID:              trip.ID,
		Destination:     trip.Destination,
		StartDate:       trip.StartDate,
		EndDate:         trip.EndDate,
		DurationDays:    trip.DurationDays,
		PriceFrom:       trip.PriceFrom,
		Currency:        trip.Currency,
		CabinPricing:    trip.CabinPricing,
		Availability:    trip.Availability,
		SkillLevel:      trip.SkillLevel,
		WindKnots:       trip.Wind.AverageKnots,
		WindDirection:   trip.Wind.Direction,
		WindReliability: trip.Wind.Reliability,
		Highlights:      trip.Highlights,
		Includes:        trip.Includes,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

// UpsertSpot inserts or updates one kitespot row. Used by the seeder.
func (r *GormCatalogRepository) UpsertSpot(ctx context.Context, spot *entity.KitespotLocation) error {
	row := Kitespots{
		ID:          spot.ID,
		Name:        spot.Name,
		AirportCode: spot.AirportCode,
		CountryCode: spot.CountryCode,
		Latitude:    spot.Latitude,
		Longitude:   spot.Longitude,
		Timezone:    spot.Timezone,
		Description: spot.Description,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

// Migrate creates the catalog tables. Used by the seeder.
func (r *GormCatalogRepository) Migrate() error {
	return r.db.AutoMigrate(&Trips{}, &Kitespots{})
}
