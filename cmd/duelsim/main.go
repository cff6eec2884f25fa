package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gamerule/internal/config"
	"github.com/udisondev/gamerule/internal/data"
	"github.com/udisondev/gamerule/internal/db"
	"github.com/udisondev/gamerule/internal/game/guild"
	"github.com/udisondev/gamerule/internal/gamerule"
)

const (
	ConfigPath   = "config/gamerule.yaml"
	ScenarioPath = "config/duel.yaml"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	scenarioPath := flag.String("scenario", ScenarioPath, "duel scenario YAML")
	flag.Parse()

	if err := run(ctx, *scenarioPath); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, scenarioPath string) error {
	cfgPath := ConfigPath
	if p := os.Getenv("GAMERULE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("duelsim starting", "log_level", cfg.LogLevel, "data_dir", cfg.DataDir)

	sc, err := LoadScenario(scenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	var catalog *data.Catalog
	guilds := guild.NewRegistry()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := data.LoadCatalog(gctx, cfg.DataDir)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		catalog = c
		return nil
	})
	g.Go(func() error {
		return loadGuilds(gctx, cfg, guilds)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	rules := gamerule.New(cfg.Gameplay, catalog, guilds)
	rng := rand.New(rand.NewPCG(sc.Seed, sc.Seed^0x9e3779b97f4a7c15))

	res, err := RunDuel(ctx, rules, rng, sc)
	if err != nil {
		return err
	}

	slog.Info("duel finished",
		"rounds", res.Rounds,
		"winner", res.WinnerName,
		"rewarded_exp", res.RewardedExp,
		"rewarded_gold", res.RewardedGold,
		"leveled_up", res.LeveledUp,
		"exp_lost", res.ExpLost)
	return nil
}

// loadGuilds fills the registry from the seed file and, when enabled, from
// PostgreSQL. Database rows win over seed rows with the same id.
func loadGuilds(ctx context.Context, cfg config.Engine, guilds *guild.Registry) error {
	if err := guilds.LoadSeed(filepath.Join(cfg.DataDir, "guilds.yaml")); err != nil {
		return err
	}
	if !cfg.Database.Enabled {
		return nil
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if _, err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return guilds.Load(ctx, database.Guilds())
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
