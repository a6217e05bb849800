package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	configadapter "citybuilder/internal/adapter/config"
	httpadapter "citybuilder/internal/adapter/http"
	metricsinmem "citybuilder/internal/adapter/metrics/inmemory"
	gormrepo "citybuilder/internal/adapter/repo/gorm"
	"citybuilder/internal/adapter/repo/memory"
	"citybuilder/internal/app/build"
	"citybuilder/internal/app/inspect"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/app/replay"
	"citybuilder/internal/app/search"
	"citybuilder/internal/app/session"
	"citybuilder/internal/app/simulate"
	"citybuilder/internal/app/status"
	"citybuilder/internal/domain/city"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	store := memory.NewStore()
	cities := memory.NewCityRepo(store)
	events := mustBuildEventRepo(store)
	tuning := mustLoadTuning()
	defaultSize := mustDefaultSize()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		CreateUC: session.CreateUseCase{
			Cities:      cities,
			Events:      events,
			View:        kpiRecorder,
			Tuning:      tuning,
			DefaultSize: defaultSize,
			DefaultName: stringEnv("CITY_DEFAULT_NAME", city.DefaultName),
			Seed:        int64Env("CITY_SEED", 0),
			Now:         time.Now,
		},
		EndUC:      session.EndUseCase{Cities: cities},
		StatusUC:   status.UseCase{Cities: cities},
		InspectUC:  inspect.UseCase{Cities: cities},
		PlaceUC:    build.PlaceUseCase{Cities: cities, Events: events, Metrics: kpiRecorder, Now: time.Now},
		BulldozeUC: build.BulldozeUseCase{Cities: cities, Events: events, Metrics: kpiRecorder, Now: time.Now},
		SimulateUC: simulate.UseCase{Cities: cities, Events: events, Metrics: kpiRecorder, Now: time.Now},
		SearchUC:   search.UseCase{Cities: cities},
		ReplayUC:   replay.UseCase{Events: events},
		KPI:        kpiRecorder,
	}

	addr := stringEnv("CITYBUILDER_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("citybuilder server listening on %s", addr)
	s.Spin()
}

// mustBuildEventRepo journals to Postgres when CITYBUILDER_DB_DSN is set and
// falls back to the in-process journal otherwise.
func mustBuildEventRepo(store *memory.Store) ports.EventRepository {
	dsn := strings.TrimSpace(os.Getenv("CITYBUILDER_DB_DSN"))
	if dsn == "" {
		log.Println("CITYBUILDER_DB_DSN not set, using in-memory event journal")
		return memory.NewEventRepo(store)
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	dir := stringEnv("CITYBUILDER_MIGRATIONS_DIR", "./migrations")
	applied, err := gormrepo.ApplyMigrations(context.Background(), db, dir)
	if err != nil {
		log.Fatalf("apply migrations from %s: %v", dir, err)
	}
	if len(applied) > 0 {
		log.Printf("applied migrations: %s", strings.Join(applied, ", "))
	}
	return gormrepo.NewEventRepo(db)
}

func mustLoadTuning() city.Tuning {
	tuning, err := loadTuningFromEnv()
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	return tuning
}

func mustDefaultSize() int {
	size, err := defaultSizeFromEnv()
	if err != nil {
		log.Fatalf("default city size: %v", err)
	}
	return size
}

// defaultSizeFromEnv reads CITY_DEFAULT_SIZE; zero keeps session.DefaultSize.
func defaultSizeFromEnv() (int, error) {
	size := intEnv("CITY_DEFAULT_SIZE", session.DefaultSize)
	if size < 0 || size > session.MaxSize {
		return 0, fmt.Errorf("CITY_DEFAULT_SIZE=%d outside [0, %d]", size, session.MaxSize)
	}
	return size, nil
}

func loadTuningFromEnv() (city.Tuning, error) {
	path := strings.TrimSpace(os.Getenv("CITY_TUNING_FILE"))
	if path == "" {
		return city.DefaultTuning(), nil
	}
	return configadapter.LoadTuning(path)
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func int64Env(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
