package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/hog/internal/common/clock"
	"github.com/KirkDiggler/hog/internal/common/uuid"
	"github.com/KirkDiggler/hog/internal/config"
	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/handlers/discord"
	experimentRepo "github.com/KirkDiggler/hog/internal/repositories/experiment"
	tablesRepo "github.com/KirkDiggler/hog/internal/repositories/tables"
	experimentService "github.com/KirkDiggler/hog/internal/services/experiment"
	gameService "github.com/KirkDiggler/hog/internal/services/game"
	messagingService "github.com/KirkDiggler/hog/internal/services/messaging"
	"github.com/KirkDiggler/hog/internal/services/strategy"
	tablesService "github.com/KirkDiggler/hog/internal/services/tables"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	resultRepo, err := experimentRepo.NewRedis(&experimentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create experiment repository: %v", err)
	}

	var tableRepo tablesRepo.Repository
	if cfg.TableStore == config.TableStoreRedis {
		tableRepo, err = tablesRepo.NewRedis(&tablesRepo.Config{
			RedisClient: redisClient,
		})
	} else {
		var store *tablesRepo.SQLiteStore
		store, err = tablesRepo.OpenSQLite(cfg.SQLitePath)
		if err == nil {
			defer store.Close()
			tableRepo = store
		}
	}
	if err != nil {
		log.Fatalf("Failed to create table repository: %v", err)
	}

	// Warm the shared evaluator so the first /hog odds or advise is fast
	evaluator := strategy.NewEvaluator(nil)
	tablesSvc, err := tablesService.New(&tablesService.Config{
		Repository: tableRepo,
		Evaluator:  evaluator,
	})
	if err != nil {
		log.Fatalf("Failed to create tables service: %v", err)
	}
	if _, err := tablesSvc.Warm(context.Background(), &tablesService.WarmInput{}); err != nil {
		log.Fatalf("Failed to warm distribution tables: %v", err)
	}
	if _, err := tablesSvc.LoadValues(context.Background()); err != nil {
		log.Fatalf("Failed to load value table: %v", err)
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{Seed: cfg.Seed})
	catalog := strategy.NewCatalog(&strategy.Config{Evaluator: evaluator})

	gameSvc, err := gameService.New(&gameService.Config{
		GoalScore:     cfg.GoalScore,
		DiceRoller:    diceRoller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	experimentSvc, err := experimentService.New(&experimentService.Config{
		Samples:       cfg.Samples,
		DiceRoller:    diceRoller,
		GameService:   gameSvc,
		Repository:    resultRepo,
		Catalog:       catalog,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create experiment service: %v", err)
	}

	messagingSvc, err := messagingService.New(&messagingService.Config{
		DiceRoller: diceRoller,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		GameService:       gameSvc,
		ExperimentService: experimentSvc,
		MessagingService:  messagingSvc,
		Catalog:           catalog,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
