package server

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"chatdj/internal/api"
	"chatdj/internal/blacklist"
	"chatdj/internal/catalog"
	"chatdj/internal/config"
	"chatdj/internal/db"
	"chatdj/internal/queue"
	"chatdj/internal/resolve"
	"chatdj/internal/sonos"
	"chatdj/internal/sonos/soap"
	"chatdj/internal/system"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestLoggerMiddleware logs all incoming HTTP requests
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, wrapped.status, time.Since(start).Round(time.Millisecond))
	})
}

// Options controls server wiring. Catalog and Player override the real
// Spotify client and Sonos device, used by tests.
type Options struct {
	Catalog catalog.Catalog
	Player  queue.Player
}

// NewHandler builds the HTTP handler and returns a shutdown function.
func NewHandler(cfg config.Config, options Options) (http.Handler, func(context.Context) error, error) {
	log.Printf("Using database: %s", cfg.SQLiteDBPath)
	dbPair, err := db.Init(cfg.SQLiteDBPath)
	if err != nil {
		return nil, nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(requestLoggerMiddleware)
	router.Use(api.RequestIDMiddleware)
	router.Use(api.RecovererMiddleware)

	cat := options.Catalog
	if cat == nil {
		cat, err = catalog.NewSpotifyCatalog(cfg.SpotifyClientID, cfg.SpotifyClientSecret, cfg.CatalogRateLimitRPS, nil)
		if err != nil {
			_ = dbPair.Close()
			return nil, nil, err
		}
	}

	player := options.Player
	if player == nil {
		soapClient := soap.NewClient(time.Duration(cfg.SonosTimeoutMs) * time.Millisecond)
		player = sonos.NewDevice(soapClient, cfg.SonosIP, cfg.SonosAccountSerial, nil)
	}

	var rules []resolve.BoosterRule
	if cfg.BoosterRulesPath != "" {
		rules, err = resolve.LoadBoosterRules(cfg.BoosterRulesPath)
		if err != nil {
			_ = dbPair.Close()
			return nil, nil, err
		}
	}
	booster := resolve.NewBooster(rules)

	blacklistRepo := blacklist.NewRepository(dbPair)
	playLog := queue.NewPlayLogRepository(dbPair)

	committer := queue.NewCoordinator(player, nil)
	queueService := queue.NewService(player, playLog, nil)

	aggregator := resolve.NewAggregator(cat, cfg.SearchResultCap, nil)
	resolveService := resolve.NewService(cat, booster, aggregator, committer, queueService, blacklistRepo, cfg, nil)

	router.Mount("/v1/resolve", resolve.Routes(resolveService))
	router.Mount("/v1/queue", resolve.QueueRoutes(resolveService, queueService))
	router.Mount("/v1/blacklist", blacklist.Routes(blacklistRepo))
	router.Mount("/v1/system", system.Routes(cfg, player, cfg.SonosIP, nil))

	sampler := system.NewSampler(cfg.StatusSampleSpec, player, nil)
	if err := sampler.Start(); err != nil {
		_ = dbPair.Close()
		return nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		sampler.Stop()
		if ctx == nil {
			ctx = context.Background()
		}
		return dbPair.Close()
	}

	return router, shutdown, nil
}
