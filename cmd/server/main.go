package main

import (
	"context"
	"database/sql"
	"fmt"
	"freight-dispatch-service/internal/adapters/cache"
	"freight-dispatch-service/internal/adapters/repositories"
	"freight-dispatch-service/internal/api"
	"freight-dispatch-service/internal/config"
	"freight-dispatch-service/internal/platform/db"
	"freight-dispatch-service/internal/ports"
	"freight-dispatch-service/internal/services"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, dialect, err := openDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	repo := repositories.NewSQLScenarioRepository(conn, dialect)

	// Initialize schema and seed demo scenarios on startup for local runs.
	if err := initAndSeed(conn, repo, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	scheduleCache, closeCache, err := openCache(cfg, conn, dialect)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	warmCache(repo, scheduleCache)

	router := api.NewRouter(repo, scheduleCache)

	log.Printf("Server listening addr=:%s db=%s", cfg.Port, cfg.DBDriver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(cfg config.Config) (*sql.DB, db.Dialect, error) {
	if cfg.DBDriver == string(db.Postgres) {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, db.Postgres, err
	}
	conn, err := db.OpenSQLite(cfg.DBPath)
	return conn, db.SQLite, err
}

// openCache prefers Redis when an address is configured and falls back to
// the schedule_cache table otherwise.
func openCache(cfg config.Config, conn *sql.DB, dialect db.Dialect) (ports.ScheduleCache, func(), error) {
	if cfg.RedisAddr == "" {
		log.Printf("schedule cache backend=sql ttl=%s", cfg.CacheTTL)
		return cache.NewSQLScheduleCache(conn, dialect, cfg.CacheTTL), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("open cache: ping redis at %q: %w", cfg.RedisAddr, err)
	}

	log.Printf("schedule cache backend=redis addr=%s ttl=%s", cfg.RedisAddr, cfg.CacheTTL)
	return cache.NewRedisScheduleCache(client, cfg.CacheTTL), func() { _ = client.Close() }, nil
}

func initAndSeed(conn *sql.DB, repo *repositories.SQLScenarioRepository, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(context.Background(), repo, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// warmCache plans the seeded scenarios so the first requests hit the cache.
// Failures are logged; an infeasible scenario is still served, as an error.
func warmCache(repo ports.ScenarioRepository, scheduleCache ports.ScheduleCache) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := services.WarmSchedules(ctx, repo, scheduleCache, 4)
	if err != nil {
		log.Printf("warm schedule cache failed: %v", err)
		return
	}
	for _, r := range results {
		if r.Err != nil {
			log.Printf("warm schedule scenario=%s err=%v", r.Scenario, r.Err)
			continue
		}
		log.Printf("warm schedule scenario=%s entries=%d cached=%t", r.Scenario, r.Entries, r.Cached)
	}
}
