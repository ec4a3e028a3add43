// Seeds the Postgres catalog tables from the JSON catalog files. Run once
// against a fresh database, or again to upsert changes.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kitematch-service/internal/interface/repository"
)

func main() {
	godotenv.Load()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}
	tripsFile := envOr("TRIPS_FILE", "data/trips.json")
	spotsFile := envOr("SPOTS_FILE", "data/spots.json")
	airportsFile := envOr("AIRPORTS_FILE", "data/airports.json")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}

	ctx := context.Background()
	fileRepo := repository.NewFileCatalogRepository(tripsFile, spotsFile, airportsFile)
	catalogRepo := repository.NewGormCatalogRepository(db)
	airportRepo := repository.NewGormAirportRepository(db)

	if err := catalogRepo.Migrate(); err != nil {
		log.Fatalf("migrate catalog tables: %v", err)
	}
	if err := airportRepo.Migrate(); err != nil {
		log.Fatalf("migrate airport table: %v", err)
	}

	trips, err := fileRepo.Trips(ctx)
	if err != nil {
		log.Fatalf("load trips: %v", err)
	}
	for i := range trips {
		if err := catalogRepo.UpsertTrip(ctx, &trips[i]); err != nil {
			log.Fatalf("upsert trip %s: %v", trips[i].ID, err)
		}
	}

	spots, err := fileRepo.Spots(ctx)
	if err != nil {
		log.Fatalf("load spots: %v", err)
	}
	for i := range spots {
		if err := catalogRepo.UpsertSpot(ctx, &spots[i]); err != nil {
			log.Fatalf("upsert spot %s: %v", spots[i].ID, err)
		}
	}

	countries, err := fileRepo.Countries(ctx)
	if err != nil {
		log.Fatalf("load airports: %v", err)
	}
	for code, country := range countries {
		if err := airportRepo.UpsertAirport(ctx, code, country); err != nil {
			log.Fatalf("upsert airport %s: %v", code, err)
		}
	}

	fmt.Printf("Seeded %d trips, %d spots, %d airports\n", len(trips), len(spots), len(countries))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
