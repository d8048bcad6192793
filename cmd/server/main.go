package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appprojectops "github.com/AutomationProtocolsService/business-management-platform-sub000/internal/application/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/cache"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/config"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/logger"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/objectstore"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/persistence"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting business platform",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database schema up to date")

	// Session store. The server stays up without redis; session-backed
	// flows report unavailable until it returns.
	sessions, err := cache.NewSessionStore(&cfg.Redis, &cfg.Session)
	if err != nil {
		log.Warn("Session store unavailable", zap.Error(err))
		sessions = nil
	} else {
		defer func() {
			if err := sessions.Close(); err != nil {
				log.Error("Error closing session store", zap.Error(err))
			}
		}()
		log.Info("Session store connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Object store: real S3 when a bucket is configured, stub otherwise
	var store appprojectops.ObjectStore
	if cfg.Storage.Bucket != "" {
		s3Store, err := objectstore.NewS3ObjectStore(&cfg.Storage, objectstore.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object store", zap.Error(err))
		}
		if err := s3Store.EnsureBucket(context.Background()); err != nil {
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		store = s3Store
		log.Info("Object store ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		store = objectstore.NewStubObjectStore()
		log.Warn("No storage bucket configured, using stub object store")
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/health", healthHandler(db, sessions, store))

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports database, session store and object store
// connectivity. The database is the only hard dependency; the others are
// reported but do not fail the check on their own.
func healthHandler(db *persistence.Database, sessions *cache.SessionStore, store appprojectops.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		dbState := "ok"
		if err := db.Ping(); err != nil {
			dbState = "error"
			status = http.StatusServiceUnavailable
		}

		redisState := "ok"
		if sessions == nil {
			redisState = "unavailable"
		} else if err := sessions.Ping(c.Request.Context()); err != nil {
			redisState = "error"
		}

		storageState := "ok"
		if _, err := store.ObjectExists(c.Request.Context(), "healthcheck"); err != nil {
			storageState = "error"
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "unhealthy"
		}
		c.JSON(status, gin.H{
			"status":   overall,
			"time":     time.Now().Format(time.RFC3339),
			"database": dbState,
			"redis":    redisState,
			"storage":  storageState,
		})
	}
}
