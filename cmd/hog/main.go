package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/hog/internal/common/clock"
	"github.com/KirkDiggler/hog/internal/common/uuid"
	"github.com/KirkDiggler/hog/internal/config"
	"github.com/KirkDiggler/hog/internal/dice"
	experimentRepo "github.com/KirkDiggler/hog/internal/repositories/experiment"
	tablesRepo "github.com/KirkDiggler/hog/internal/repositories/tables"
	experimentService "github.com/KirkDiggler/hog/internal/services/experiment"
	gameService "github.com/KirkDiggler/hog/internal/services/game"
	"github.com/KirkDiggler/hog/internal/services/scoring"
	"github.com/KirkDiggler/hog/internal/services/strategy"
	tablesService "github.com/KirkDiggler/hog/internal/services/tables"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		runPlan    bool
		planPath   string
		odds       string
		advise     string
		precompute bool
	)

	flag.BoolVar(&runPlan, "r", false, "run experiments (the default plan unless -plan is set)")
	flag.StringVar(&planPath, "plan", "", "YAML experiment plan to run")
	flag.StringVar(&odds, "odds", "", "print the turn total distribution for ROLLS,DICE")
	flag.StringVar(&advise, "advise", "", "print the best number of dice for SCORE,OPPONENT")
	flag.BoolVar(&precompute, "precompute", false, "precompute and store the strategy value table")
	flag.StringVar(&cfg.TableStore, "store", cfg.TableStore, "table store (redis or sqlite)")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "samples per measurement")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible experiments (0 = random)")
	flag.BoolVar(&cfg.Trace, "trace", cfg.Trace, "log every turn and strategy decision")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &app{cfg: cfg}
	defer app.close()

	switch {
	case odds != "":
		err = app.odds(ctx, odds)
	case advise != "":
		err = app.advise(ctx, advise)
	case precompute:
		err = app.precompute(ctx)
	case runPlan || planPath != "":
		err = app.run(ctx, planPath)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("hog: %v", err)
	}
}

// app lazily opens the stores a command needs
type app struct {
	cfg         *config.Config
	redisClient *redis.Client
	sqlite      *tablesRepo.SQLiteStore
	evaluator   *strategy.Evaluator
}

func (a *app) close() {
	if a.sqlite != nil {
		if err := a.sqlite.Close(); err != nil {
			log.Printf("Error closing sqlite store: %v", err)
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			log.Printf("Error closing redis client: %v", err)
		}
	}
}

func (a *app) trace() *log.Logger {
	if !a.cfg.Trace {
		return nil
	}
	return log.New(os.Stderr, "trace: ", log.Lmicroseconds)
}

func (a *app) redis(ctx context.Context) (*redis.Client, error) {
	if a.redisClient != nil {
		return a.redisClient, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	a.redisClient = client
	return client, nil
}

func (a *app) tablesRepository(ctx context.Context) (tablesRepo.Repository, error) {
	if a.cfg.TableStore == config.TableStoreRedis {
		client, err := a.redis(ctx)
		if err != nil {
			return nil, err
		}
		return tablesRepo.NewRedis(&tablesRepo.Config{RedisClient: client})
	}

	store, err := tablesRepo.OpenSQLite(a.cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	a.sqlite = store
	return store, nil
}

// tables returns a tables service whose evaluator starts from the stored
// distributions and values
func (a *app) tables(ctx context.Context) (tablesService.Service, error) {
	repo, err := a.tablesRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open table store: %w", err)
	}

	a.evaluator = strategy.NewEvaluator(nil)
	svc, err := tablesService.New(&tablesService.Config{
		Repository: repo,
		Evaluator:  a.evaluator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tables service: %w", err)
	}

	warm, err := svc.Warm(ctx, &tablesService.WarmInput{})
	if err != nil {
		return nil, err
	}
	log.Printf("Distributions: %d loaded, %d computed", warm.Loaded, warm.Computed)

	loaded, err := svc.LoadValues(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Value entries loaded: %d", loaded.Entries)

	return svc, nil
}

func (a *app) odds(ctx context.Context, raw string) error {
	rolls, sides, err := parsePair(raw)
	if err != nil {
		return fmt.Errorf("invalid -odds: %w", err)
	}
	if _, err := a.tables(ctx); err != nil {
		return err
	}

	dist, err := a.evaluator.Cache().Get(rolls, sides)
	if err != nil {
		return err
	}

	fmt.Printf("%d d%d: expected %.4f\n", rolls, sides, dist.Expected())
	for _, total := range dist.Totals() {
		fmt.Printf("%4d  %.6f\n", total, dist[total])
	}
	return nil
}

func (a *app) advise(ctx context.Context, raw string) error {
	score, opponentScore, err := parsePair(raw)
	if err != nil {
		return fmt.Errorf("invalid -advise: %w", err)
	}
	if score < 0 || score >= scoring.GoalScore || opponentScore < 0 || opponentScore >= scoring.GoalScore {
		return fmt.Errorf("scores must be between 0 and %d", scoring.GoalScore-1)
	}
	if _, err := a.tables(ctx); err != nil {
		return err
	}

	sides := scoring.SelectDice(score, opponentScore)
	numRolls, value, err := a.evaluator.BestFutureRoll(sides, score, opponentScore)
	if err != nil {
		return err
	}

	fmt.Printf("At %d to %d roll %d d%d (expected margin change %+.3f)\n", score, opponentScore, numRolls, sides, value)
	return nil
}

func (a *app) precompute(ctx context.Context) error {
	svc, err := a.tables(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := svc.PrecomputeValues(ctx, &tablesService.PrecomputeValuesInput{
		Goal: a.cfg.GoalScore,
	})
	if err != nil {
		return err
	}
	log.Printf("Stored %d value entries in %s", out.Entries, time.Since(start).Round(time.Millisecond))
	return nil
}

func (a *app) run(ctx context.Context, planPath string) error {
	plan := experimentService.DefaultPlan()
	if planPath != "" {
		var err error
		if plan, err = experimentService.LoadPlan(planPath); err != nil {
			return err
		}
	}

	if _, err := a.tables(ctx); err != nil {
		return err
	}

	client, err := a.redis(ctx)
	if err != nil {
		return err
	}
	repo, err := experimentRepo.NewRedis(&experimentRepo.Config{RedisClient: client})
	if err != nil {
		return fmt.Errorf("failed to create experiment repository: %w", err)
	}

	roller := dice.New(&dice.Config{Seed: a.cfg.Seed})
	trace := a.trace()

	games, err := gameService.New(&gameService.Config{
		GoalScore:     a.cfg.GoalScore,
		Trace:         trace,
		DiceRoller:    roller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	experiments, err := experimentService.New(&experimentService.Config{
		Samples:       a.cfg.Samples,
		Logger:        log.Default(),
		DiceRoller:    roller,
		GameService:   games,
		Repository:    repo,
		Catalog:       strategy.NewCatalog(&strategy.Config{Evaluator: a.evaluator, Trace: trace}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create experiment service: %w", err)
	}

	out, err := experiments.RunPlan(ctx, &experimentService.RunPlanInput{Plan: plan})
	if err != nil {
		return err
	}

	for _, result := range out.Results {
		switch {
		case result.Strategy != "":
			fmt.Printf("%-20s %s vs %s: win rate %.4f\n", result.Name, result.Strategy, result.Baseline, result.WinRate)
		default:
			fmt.Printf("%-20s d%d: best num rolls %d\n", result.Name, result.Dice, result.NumRolls)
		}
	}
	return nil
}

// parsePair reads "A,B" into two integers
func parsePair(raw string) (int, int, error) {
	first, second, ok := strings.Cut(raw, ",")
	if !ok {
		return 0, 0, errors.New("expected two comma separated numbers")
	}
	a, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
