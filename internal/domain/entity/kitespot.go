package entity

import (
	"fmt"
	"strings"
)

// KitespotLocation is a named kiteboarding location with airport and
// country metadata. Loaded once at startup, read-only thereafter.
type KitespotLocation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AirportCode string  `json:"airport_code"`
	CountryCode string  `json:"country_code"` // ISO3
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Description string  `json:"description,omitempty"`
}

// Validate checks the record at catalog-load time.
func (k *KitespotLocation) Validate() error {
	if k.ID == "" {
		return fmt.Errorf("kitespot has empty id")
	}
	if k.Name == "" {
		return fmt.Errorf("kitespot %s: empty name", k.ID)
	}
	if len(k.AirportCode) != 3 || k.AirportCode != strings.ToUpper(k.AirportCode) {
		return fmt.Errorf("kitespot %s: airport code %q is not a 3-letter IATA code", k.ID, k.AirportCode)
	}
	if len(k.CountryCode) != 3 {
		return fmt.Errorf("kitespot %s: country code %q is not ISO3", k.ID, k.CountryCode)
	}
	return nil
}

// Catalog is the process-wide, immutable trip and kitespot inventory.
// Countries maps IATA airport codes to country names; a missing entry
// means the country is unknown, not an error.
type Catalog struct {
	Trips     []TripOffering
	Spots     []KitespotLocation
	Countries map[string]string
}

// CountryFor resolves the country name for a kitespot via the airport
// lookup table. Returns "" when no mapping exists.
func (c *Catalog) CountryFor(spot *KitespotLocation) string {
	return c.Countries[spot.AirportCode]
}

// Validate fails fast on any malformed record.
func (c *Catalog) Validate() error {
	for i := range c.Trips {
		if err := c.Trips[i].Validate(); err != nil {
			return err
		}
	}
	for i := range c.Spots {
		if err := c.Spots[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
