package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-admin/internal/backup"
	"github.com/BruksfildServices01/dental-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/dental-admin/internal/db"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/logging"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
	"github.com/BruksfildServices01/dental-admin/internal/routes"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	backend, err := openBackend(cfg)
	if err != nil {
		logger.Fatal("storage unavailable", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}

	facade := storage.NewFacade(backend, cfg.StorageNamespace, logger)
	stores := entity.NewStores(entity.NewKeyspace(facade, logger))
	clock := timezone.NewClock(cfg.ClinicTimezone)

	hub := notify.NewHub(logger)
	journal := notify.NewJournal(facade, 0)
	dispatcher := notify.NewDispatcher(logger, journal, hub)
	defer dispatcher.Close()

	repairer := repair.New(stores, dispatcher, logger)
	if res, err := repairer.Run(context.Background()); err != nil {
		logger.Warn("startup repair failed", zap.Error(err))
	} else if res.Changed() {
		logger.Info("startup repair",
			zap.Int("repaired", len(res.Repaired)),
			zap.Int("pruned", len(res.Pruned)),
		)
	}

	var uploader backup.Uploader
	if cfg.BackupEnabled() {
		uploader = backup.NewS3Client(cfg)
	}
	backups := backup.New(facade, uploader, cfg.BackupBucket, clock, dispatcher, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Log:      logger,
		Stores:   stores,
		Clock:    clock,
		Notify:   dispatcher,
		Journal:  journal,
		Hub:      hub,
		Repairer: repairer,
		Backups:  backups,
	})

	logger.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("storage", cfg.StorageBackend),
		zap.Bool("auth", cfg.AuthEnabled()),
		zap.Bool("backup", cfg.BackupEnabled()),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func openBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case "memory", "":
		return storage.NewMemoryBackend(), nil
	case "postgres":
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewGormBackend(db), nil
	case "redis":
		return storage.NewRedisBackend(storage.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
