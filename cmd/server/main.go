package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/laybeentan/portfolio-api/adapters/event"
	httpAdapter "github.com/laybeentan/portfolio-api/adapters/http"
	"github.com/laybeentan/portfolio-api/adapters/persistence"
	contactUC "github.com/laybeentan/portfolio-api/internal/application/usecase/contact"
	portfolioUC "github.com/laybeentan/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/laybeentan/portfolio-api/internal/application/usecase/profile"
	"github.com/laybeentan/portfolio-api/internal/config"
	"github.com/laybeentan/portfolio-api/pkg/logger"
	"github.com/laybeentan/portfolio-api/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.Enabled {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	mongoClient, mongoDB, err := persistence.NewMongoDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect MongoDB", err)
	}
	defer mongoClient.Disconnect(context.Background())

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	store := persistence.NewStore(mongoDB, appLogger)
	profileRepo := persistence.NewMongoProfileRepo(store)
	experienceRepo := persistence.NewMongoExperienceRepo(store)
	skillRepo := persistence.NewMongoSkillRepo(store)
	projectRepo := persistence.NewMongoProjectRepo(store)
	certificationRepo := persistence.NewMongoCertificationRepo(store)
	educationRepo := persistence.NewMongoEducationRepo(store)
	contactRepo := persistence.NewMongoContactRepo(store)

	cache := persistence.NewRedisCache(redisClient)

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, cache, appLogger)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(
		profileRepo,
		experienceRepo,
		skillRepo,
		projectRepo,
		certificationRepo,
		educationRepo,
		cache,
		appLogger,
	)
	contactUseCase := contactUC.NewContactUseCase(contactRepo, kafkaClient, appLogger)

	// HTTP Handlers
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(portfolioUseCase, appLogger)
	contactHandler := httpAdapter.NewContactHandler(contactUseCase, appLogger)
	systemHandler := httpAdapter.NewSystemHandler(store, appLogger)

	router := httpAdapter.NewRouter(cfg, appLogger, profileHandler, portfolioHandler, contactHandler, systemHandler)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
