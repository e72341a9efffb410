package main

import (
	"context"
	"log"
	"os"

	"github.com/Baaaki/gigflow/internal/config"
	"github.com/Baaaki/gigflow/internal/database"
	"github.com/Baaaki/gigflow/internal/journal"
	"github.com/Baaaki/gigflow/internal/repository"
	"github.com/Baaaki/gigflow/internal/service"
	"github.com/Baaaki/gigflow/pkg/logger"
	"go.uber.org/zap"
)

// seed creates a demo client account with one open gig.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(true); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ownerName := os.Getenv("SEED_OWNER_NAME")
	ownerEmail := os.Getenv("SEED_OWNER_EMAIL")
	ownerPassword := os.Getenv("SEED_OWNER_PASSWORD")
	if ownerName == "" || ownerEmail == "" || ownerPassword == "" {
		logger.Log.Fatal("Missing environment variables: SEED_OWNER_NAME, SEED_OWNER_EMAIL, SEED_OWNER_PASSWORD")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	lifecycle, err := journal.Open(cfg.JournalPath)
	if err != nil {
		logger.Log.Fatal("Failed to open lifecycle journal", zap.Error(err))
	}
	defer lifecycle.Close()

	ctx := context.Background()
	store := repository.NewStore(db)

	existing, err := store.Users().GetUserByEmail(ctx, ownerEmail)
	if err != nil {
		logger.Log.Fatal("Failed to look up seed owner", zap.Error(err))
	}
	if existing != nil {
		logger.Log.Info("Seed owner already exists",
			zap.String("user_id", existing.ID.String()),
			zap.String("email", existing.Email),
		)
		return
	}

	authService := service.NewAuthService(store.Users(), cfg.JWTSecret, cfg.JWTExpiry, cfg.Environment)
	owner, _, err := authService.Register(ctx, ownerName, ownerEmail, ownerPassword)
	if err != nil {
		logger.Log.Fatal("Failed to create seed owner", zap.Error(err))
	}

	gigService := service.NewGigService(store, nil, lifecycle)
	gig, err := gigService.CreateGig(ctx, owner.ID, service.CreateGigInput{
		Title:       "Design a landing page",
		Description: "One-page marketing site with a signup form. Figma files provided.",
		Budget:      500,
	})
	if err != nil {
		logger.Log.Fatal("Failed to create seed gig", zap.Error(err))
	}

	logger.Log.Info("Seed data created",
		zap.String("owner_id", owner.ID.String()),
		zap.String("email", owner.Email),
		zap.String("gig_id", gig.ID.String()),
	)
}
