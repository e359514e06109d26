package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/switmer/Get-Site-Styles-API/internal/fetch"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/apikey"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/cache"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/config"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/handler"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/middleware"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/server"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/snapshot"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/usage"
)

type App struct {
	server *server.Server
	keys   *apikey.Store
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	keys := apikey.NewFromDSN(cfg.DatabaseDSN, filepath.Join(cfg.DataDir, "api_keys.json"))
	usageLog := usage.NewFromDSN(cfg.DatabaseDSN, filepath.Join(cfg.DataDir, "usage.jsonl"))
	limiter := middleware.NewLimiter(cfg.RateLimitPerMin)
	results := cache.New(cfg.CacheEntries, cfg.CacheTTL)

	var snapshots snapshot.Repository = snapshot.NewMemoryStore()
	if cfg.Snapshot.Enabled {
		s3, err := snapshot.NewS3Store(snapshot.S3Config{
			Endpoint:  cfg.Snapshot.Endpoint,
			Region:    cfg.Snapshot.Region,
			AccessKey: cfg.Snapshot.AccessKey,
			SecretKey: cfg.Snapshot.SecretKey,
			Bucket:    cfg.Snapshot.Bucket,
			UseSSL:    cfg.Snapshot.UseSSL,
		})
		if err != nil {
			log.Printf("snapshot store disabled: %v", err)
		} else {
			snapshots = s3
		}
	}

	analyzeHandler := handler.NewAnalyzeHandler(fetch.New(), results, snapshots)

	// Routing & Server
	mux := server.NewMux(analyzeHandler, keys, limiter, usageLog)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		keys:   keys,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.keys.Save()
	return a.server.Shutdown(ctx)
}
