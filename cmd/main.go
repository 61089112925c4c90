package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/darshanbachhav0/Entrepreneur/config"
	"github.com/darshanbachhav0/Entrepreneur/internal/container"
	"github.com/darshanbachhav0/Entrepreneur/internal/infrastructure/mongodb"
	"github.com/darshanbachhav0/Entrepreneur/internal/interface/middleware"
	"github.com/darshanbachhav0/Entrepreneur/internal/router"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
	"github.com/darshanbachhav0/Entrepreneur/pkg/response"
	"github.com/darshanbachhav0/Entrepreneur/pkg/validation"
	"github.com/darshanbachhav0/Entrepreneur/web"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// MongoDB
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoConnTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	// Redis (sessions, flash, rate limiting)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	// GCS blob storage for post media; optional when no bucket is configured
	var uploader *helpers.GCSUploader
	if cfg.GCSBucket != "" {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcsClient.Close() }()
		uploader = helpers.NewGCSUploader(gcsClient, cfg.GCSBucket)
	} else {
		logger.Warn("GCS_BUCKET not set, post media uploads are disabled")
	}

	sessions := helpers.NewSessionManager(rdb, cfg.SessionSecret, cfg.SessionTTL, cfg.RememberTTL, cfg.CookieDomain, cfg.CookieSecure)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetDatabase(db)
	container.SetRedis(rdb)
	if uploader != nil {
		container.SetUploader(uploader)
	}
	container.SetSessions(sessions)

	validation.Init()

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RealIP())
	r.Use(middleware.RequestID())
	r.Use(middleware.Identity(sessions))
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	r.SetHTMLTemplate(web.Templates())
	r.MaxMultipartMemory = cfg.UploadMaxBytes
	r.NoRoute(response.NotFound)

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
