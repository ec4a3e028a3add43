package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitematch-service/internal/domain/repository"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) *GormAirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

var _ repository.AirportRepository = (*GormAirportRepository)(nil)

// Airportlist GORM model for database mapping
type Airportlist struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"column:code;unique"`
	Country   string `gorm:"column:country"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airportlist) TableName() string {
	return "m_airport_list"
}

// CountryByCode resolves one airport code. A missing row means the
// country is unknown, which is not an error.
func (r *GormAirportRepository) CountryByCode(ctx context.Context, code string) (string, error) {
	var airport Airportlist
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&airport)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return airport.Country, nil
}

// Countries loads the whole lookup table into a code -> country map.
func (r *GormAirportRepository) Countries(ctx context.Context) (map[string]string, error) {
	var rows []Airportlist
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	countries := make(map[string]string, len(rows))
	for _, row := range rows {
		countries[row.Code] = row.Country
	}
	return countries, nil
}

// UpsertAirport inserts or updates one lookup row. Used by the seeder.
func (r *GormAirportRepository) UpsertAirport(ctx context.Context, code, country string) error {
	row := Airportlist{Code: code, Country: country}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, UpdateAll: true}).
		Create(&row).Error
}

// Migrate creates the airport lookup table. Used by the seeder.
func (r *GormAirportRepository) Migrate() error {
	return r.db.AutoMigrate(&Airportlist{})
}
