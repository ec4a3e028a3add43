package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kitematch-service/internal/domain/entity"
	domainrepo "kitematch-service/internal/domain/repository"
	"kitematch-service/internal/infrastructure/config"
	"kitematch-service/internal/infrastructure/persistence"
	"kitematch-service/internal/infrastructure/router"
	"kitematch-service/internal/interface/handler"
	"kitematch-service/internal/interface/llm"
	"kitematch-service/internal/interface/repository"
	"kitematch-service/internal/usecase"
	"kitematch-service/pkg/logger"
	"kitematch-service/pkg/metrics"
	"kitematch-service/pkg/utils"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration first so the logger level is configurable
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting KiteMatch Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the catalog once; it is immutable for the process lifetime
	catalog, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to load catalog", "error", err)
	}
	log.Info("Catalog loaded", "trips", len(catalog.Trips), "spots", len(catalog.Spots), "airports", len(catalog.Countries))

	// Conversation store: MongoDB when configured, in-memory otherwise
	var conversations domainrepo.ConversationRepository
	var mongoClient *mongodriver.Client
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		mongoClient, err = persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		db := persistence.GetDatabase(mongoClient, cfg.MongoDB)
		conversations = repository.NewMongoConversationRepository(db, log)
	} else {
		log.Warn("MONGODB_DSN not set, conversation history is in-memory only")
		conversations = repository.NewMemoryConversationRepository()
	}

	// Scoring weights: tunable configuration, defaults when no file given
	weights := usecase.DefaultWeights()
	if cfg.WeightsFile != "" {
		weights, err = usecase.LoadWeightsFromFile(cfg.WeightsFile)
		if err != nil {
			log.Fatal("Failed to load weights file", "error", err)
		}
	}

	// External model is optional; without a key the engine answers with
	// locally built summaries only
	var model usecase.ModelClient
	if cfg.ModelAPIKey != "" {
		model = llm.NewAnthropicClient(cfg.ModelBaseURL, cfg.ModelAPIKey, cfg.ModelName, cfg.ModelTimeout, log)
	} else {
		log.Warn("MODEL_API_KEY not set, running in offline mode")
	}

	// Assemble the engine
	m := metrics.NewMetrics("kitematch")
	extractor := utils.NewQueryExtractor(log)
	interpreter := usecase.NewInterpreter(router.NewDefaultIntentRouter(log), extractor, log)
	scorer := usecase.NewScorer(weights)
	formatter := usecase.NewFormatter(cfg.TopN)
	advisor := usecase.NewAdvisor(catalog, interpreter, scorer, formatter, conversations, model, cfg.ModelTimeout, log, m)

	// HTTP surface
	r := mux.NewRouter()
	handler.NewRecommendHandler(advisor, catalog, log).RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(r),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if mongoClient != nil {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("KiteMatch Service stopped")
}

// loadCatalog builds the immutable in-memory catalog from Postgres when
// configured, falling back to the JSON files otherwise. The airport
// lookup always has a file fallback so missing rows degrade to "unknown
// country" rather than startup failure.
func loadCatalog(ctx context.Context, cfg *config.Config, log logger.Logger) (*entity.Catalog, error) {
	fileRepo := repository.NewFileCatalogRepository(cfg.TripsFile, cfg.SpotsFile, cfg.AirportsFile)

	var catalogRepo domainrepo.CatalogRepository = fileRepo
	var airportRepo domainrepo.AirportRepository = fileRepo

	if cfg.PostgresDSN != "" {
		log.Info("Connecting to PostgreSQL")
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		catalogRepo = repository.NewGormCatalogRepository(gormDB)
		airportRepo = repository.NewGormAirportRepository(gormDB)
	}

	trips, err := catalogRepo.Trips(ctx)
	if err != nil {
		return nil, err
	}
	spots, err := catalogRepo.Spots(ctx)
	if err != nil {
		return nil, err
	}
	countries, err := airportRepo.Countries(ctx)
	if err != nil {
		log.Warn("Airport lookup unavailable, countries will be unknown", "error", err)
		countries = map[string]string{}
	}

	catalog := &entity.Catalog{Trips: trips, Spots: spots, Countries: countries}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
